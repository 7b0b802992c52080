// Package jsonvalue implements a JSON-superset value tree: a tagged variant
// type with a canonical text encoding, a recursive-descent parser, and a
// total order across all variants (including a distinct Infinity and a
// well-defined NaN placement). It is named jsonvalue, not json, to avoid
// colliding with the standard library package of that name.
package jsonvalue

import "github.com/ogoodman/gotable/order"

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBinary
	KindString
	KindArray
	KindObject
	KindInfinity
)

// typeID groups Int and Float under one ordering tag: the two interleave
// numerically rather than sorting as separate types.
func (k Kind) typeID() uint8 {
	switch k {
	case KindNull:
		return 0
	case KindBool:
		return 1
	case KindInt, KindFloat:
		return 2
	case KindBinary:
		return 3
	case KindString:
		return 4
	case KindArray:
		return 5
	case KindObject:
		return 6
	case KindInfinity:
		return 7
	default:
		return 0xFF
	}
}

// Member is one key/value pair of an Object, stored in ascending key order.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON-superset tagged variant: Null, Bool, Int, Float, Binary,
// String, Array, Object, or Infinity. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	bin  []byte
	s    string
	arr  []Value
	obj  []Member
}

func Null() Value     { return Value{kind: KindNull} }
func Infinity() Value { return Value{kind: KindInfinity} }

func Bool(b bool) Value    { return Value{kind: KindBool, b: b} }
func Int(n int64) Value    { return Value{kind: KindInt, i: n} }
func Float(x float64) Value { return Value{kind: KindFloat, f: x} }
func String(s string) Value { return Value{kind: KindString, s: s} }

// Binary wraps a byte slice. The slice is stored by reference; callers that
// mutate it afterward mutate the Value too.
func Binary(b []byte) Value { return Value{kind: KindBinary, bin: b} }

// Array wraps a slice of Values, preserving insertion order.
func Array(v []Value) Value { return Value{kind: KindArray, arr: v} }

// Object builds an Object from members, sorting them by key ascending and
// keeping the last value for any duplicate key (mirroring a map insert).
func Object(members []Member) Value {
	sorted := sortMembers(members)
	return Value{kind: KindObject, obj: sorted}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool     { return v.kind == KindNull }
func (v Value) IsInfinity() bool { return v.kind == KindInfinity }

// BoolValue returns the wrapped bool; ok is false if v is not KindBool.
func (v Value) BoolValue() (val bool, ok bool) {
	return v.b, v.kind == KindBool
}

func (v Value) IntValue() (val int64, ok bool) {
	return v.i, v.kind == KindInt
}

func (v Value) FloatValue() (val float64, ok bool) {
	return v.f, v.kind == KindFloat
}

func (v Value) BinaryValue() (val []byte, ok bool) {
	return v.bin, v.kind == KindBinary
}

func (v Value) StringValue() (val string, ok bool) {
	return v.s, v.kind == KindString
}

func (v Value) ArrayValue() (val []Value, ok bool) {
	return v.arr, v.kind == KindArray
}

func (v Value) ObjectValue() (val []Member, ok bool) {
	return v.obj, v.kind == KindObject
}

func sortMembers(members []Member) []Member {
	out := make(map[string]Value, len(members))
	keys := make([]string, 0, len(members))
	for _, m := range members {
		if _, seen := out[m.Key]; !seen {
			keys = append(keys, m.Key)
		}
		out[m.Key] = m.Value
	}

	sortStrings(keys)

	result := make([]Member, len(keys))
	for i, k := range keys {
		result[i] = Member{Key: k, Value: out[k]}
	}
	return result
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// other, under the total order: Null < Bool < (Int|Float) < Binary <
// String < Array < Object < Infinity, with Int/Float interleaved
// numerically via the order package and NaN strictly smallest.
func (v Value) Compare(other Value) int {
	if tc := cmpUint8(v.kind.typeID(), other.kind.typeID()); tc != 0 {
		return tc
	}

	switch v.kind {
	case KindNull, KindInfinity:
		return 0
	case KindBool:
		return cmpBool(v.b, other.b)
	case KindInt:
		if other.kind == KindInt {
			return cmpInt64(v.i, other.i)
		}
		return order.CompareIntFloat(v.i, other.f)
	case KindFloat:
		if other.kind == KindInt {
			return order.CompareFloatInt(v.f, other.i)
		}
		return order.CompareFloat(v.f, other.f)
	case KindBinary:
		return cmpBytes(v.bin, other.bin)
	case KindString:
		return cmpString(v.s, other.s)
	case KindArray:
		return cmpArray(v.arr, other.arr)
	case KindObject:
		return cmpObject(v.obj, other.obj)
	default:
		return 0
	}
}

// Equal reports whether v and other compare equal under Compare.
func (v Value) Equal(other Value) bool { return v.Compare(other) == 0 }

func cmpUint8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return cmpInt64(int64(len(a)), int64(len(b)))
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpArray(a, b []Value) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return cmpInt64(int64(len(a)), int64(len(b)))
}

func cmpObject(a, b []Member) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := cmpString(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := a[i].Value.Compare(b[i].Value); c != 0 {
			return c
		}
	}
	return cmpInt64(int64(len(a)), int64(len(b)))
}
