package repr

import "testing"

func TestRepr(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte("Hello"), `"Hello"`},
		{[]byte{}, `""`},
		{[]byte{0x00}, `"\00"`},
		{[]byte{0x7F}, `"\7F"`},
		{[]byte{0x1F, 0x41, 0xFF}, `"\1FA\FF"`},
	}

	for _, c := range cases {
		if got := Repr(c.in); got != c.want {
			t.Errorf("Repr(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}
