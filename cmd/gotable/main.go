// Command gotable is a thin demo shell around the table package: it exposes
// the engine's operations as one-shot subcommands plus a line-oriented REPL
// for interactive poking, mirroring the original CLI's cmd/arg shape.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ogoodman/gotable/codec"
	"github.com/ogoodman/gotable/jsonvalue"
	"github.com/ogoodman/gotable/repr"
	"github.com/ogoodman/gotable/table"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: gotable <file> items|compact")
	fmt.Fprintln(os.Stderr, "       gotable <file> get <key>")
	fmt.Fprintln(os.Stderr, "       gotable <file> remove <key>")
	fmt.Fprintln(os.Stderr, "       gotable <file> set <key> <value>")
	fmt.Fprintln(os.Stderr, "       gotable <file> repl")
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()

	if len(args) < 2 {
		usage()
		os.Exit(1)
	}

	path, cmd, rest := args[0], args[1], args[2:]

	var err error
	switch cmd {
	case "items":
		err = runItems(path)
	case "get":
		err = runGet(path, rest)
	case "set":
		err = runSet(path, rest)
	case "remove":
		err = runRemove(path, rest)
	case "compact":
		err = runCompact(path)
	case "repl":
		err = runRepl(path)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseKey(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing key argument")
	}
	k, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", args[0], err)
	}
	return k, nil
}

func runItems(path string) error {
	t, _, err := table.Open(path, codec.Int64Key{})
	if err != nil {
		return err
	}
	defer t.Close()
	for _, e := range t.All() {
		fmt.Printf("%d: %s\n", e.Key, repr.Repr(e.Value))
	}
	return nil
}

func runGet(path string, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	t, _, err := table.Open(path, codec.Int64Key{})
	if err != nil {
		return err
	}
	defer t.Close()
	v, ok := t.Get(key)
	if !ok {
		fmt.Printf("no value for key: %d\n", key)
		return nil
	}
	fmt.Printf("value: %s\n", repr.Repr(v))
	return nil
}

func runSet(path string, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("missing value argument")
	}
	t, _, err := table.OpenRW(path, codec.Int64Key{})
	if err != nil {
		return err
	}
	defer t.Close()
	if _, err := t.Insert(key, []byte(args[1])); err != nil {
		return err
	}
	fmt.Println("table updated.")
	return nil
}

func runRemove(path string, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	t, _, err := table.OpenRW(path, codec.Int64Key{})
	if err != nil {
		return err
	}
	defer t.Close()
	if _, err := t.Remove(key); err != nil {
		return err
	}
	fmt.Println("table updated.")
	return nil
}

func runCompact(path string) error {
	t, _, err := table.OpenRW(path, codec.Int64Key{})
	if err != nil {
		return err
	}
	defer t.Close()
	return t.Compact()
}

// runRepl reads one line at a time: a command word followed by the rest of
// the line. "cmp <json> <json>" compares two JSON values using the
// cross-type total order; "items", "get <key>", "remove <key>" and "compact"
// act on the opened table; "insert <json>" stores the value's canonical
// encoding under one past the largest existing key (0 for an empty table).
// There is no "set" command in the REPL; any other command is echoed back.
func runRepl(path string) error {
	t, _, err := table.OpenRW(path, codec.Int64Key{})
	if err != nil {
		return err
	}
	defer t.Close()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			replDispatch(t, line)
		}
		fmt.Print("> ")
	}
	fmt.Println()
	return nil
}

func replDispatch(t *table.Table[int64], line string) {
	cmd, rest, hasRest := splitFirstField(line)
	switch cmd {
	case "cmp":
		replCmp(rest)
	case "items":
		for _, e := range t.All() {
			fmt.Printf("%d: %s\n", e.Key, repr.Repr(e.Value))
		}
	case "get":
		if !hasRest {
			fmt.Println("get requires a key")
			return
		}
		k, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			fmt.Printf("%q is not a number: %v\n", rest, err)
			return
		}
		v, ok := t.Get(k)
		if !ok {
			fmt.Printf("no value for key: %d\n", k)
			return
		}
		fmt.Printf("value: %s\n", repr.Repr(v))
	case "remove":
		if !hasRest {
			fmt.Println("remove requires a key")
			return
		}
		k, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			fmt.Printf("%q is not a number: %v\n", rest, err)
			return
		}
		if _, err := t.Remove(k); err != nil {
			fmt.Printf("error removing: %v\n", err)
			return
		}
		fmt.Println("table updated.")
	case "compact":
		if err := t.Compact(); err != nil {
			fmt.Printf("error compacting: %v\n", err)
		}
	case "insert":
		if !hasRest {
			fmt.Println("insert requires a JSON value")
			return
		}
		v, err := jsonvalue.Decode(rest)
		if err != nil {
			fmt.Printf("cmd: insert --invalid-json--\n")
			return
		}
		key := nextKey(t)
		if _, err := t.Insert(key, []byte(jsonvalue.Encode(v))); err != nil {
			fmt.Printf("error inserting: %v\n", err)
			return
		}
		fmt.Printf("inserted at key %d\n", key)
	default:
		fmt.Printf("cmd: %s %s\n", cmd, rest)
	}
}

func replCmp(rest string) {
	vals, err := jsonvalue.DecodeAll(rest)
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}
	if len(vals) != 2 {
		fmt.Println("need 2 values to compare")
		return
	}
	fmt.Printf("%s %d %s\n", jsonvalue.Encode(vals[0]), vals[0].Compare(vals[1]), jsonvalue.Encode(vals[1]))
}

func nextKey(t *table.Table[int64]) int64 {
	entries := t.All()
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].Key + 1
}

func splitFirstField(line string) (first, rest string, hasRest bool) {
	for i, c := range line {
		if c == ' ' {
			return line[:i], line[i+1:], true
		}
	}
	return line, "", false
}
