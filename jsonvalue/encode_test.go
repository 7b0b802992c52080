package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_Primitives(t *testing.T) {
	assert.Equal(t, "null", Encode(Null()))
	assert.Equal(t, "true", Encode(Bool(true)))
	assert.Equal(t, "false", Encode(Bool(false)))
	assert.Equal(t, "42", Encode(Int(42)))
	assert.Equal(t, "infinity", Encode(Infinity()))
}

func TestEncode_String(t *testing.T) {
	assert.Equal(t, `"hi"`, Encode(String("hi")))
	assert.Equal(t, `"a\"b"`, Encode(String(`a"b`)))
}

func TestEncode_Binary(t *testing.T) {
	assert.Equal(t, `"Hi\00"`, Encode(Binary([]byte{'H', 'i', 0x00})))
}

func TestEncode_ArrayAndObject(t *testing.T) {
	v := Array([]Value{Int(1), String("x")})
	assert.Equal(t, `[1, "x"]`, Encode(v))

	obj := Object([]Member{{Key: "a", Value: Int(1)}, {Key: "b", Value: Bool(true)}})
	assert.Equal(t, `{"a": 1, "b": true}`, Encode(obj))
}

func TestEncode_EmptyArrayAndObject(t *testing.T) {
	assert.Equal(t, "[]", Encode(Array(nil)))
	assert.Equal(t, "{}", Encode(Object(nil)))
}
