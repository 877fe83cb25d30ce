package packet

import (
	"strconv"
	"strings"
)

// Used to denote which variant a Value holds
type Kind int8

const (
	INVALID Kind = 0
	SCALAR  Kind = 1
	LIST    Kind = 2
)

func (k Kind) String() string {
	switch k {
	case SCALAR:
		return "scalar"
	case LIST:
		return "list"
	default:
		return "invalid"
	}
}

// A packet datum. A Value is either a signed integer or an ordered sequence of
// Values. The zero Value is INVALID and must not be compared; construct Values
// with Scalar or List. Values are never mutated after construction.
type Value struct {
	kind   Kind
	scalar int64
	items  []Value
}

// Creates a scalar Value.
func Scalar(n int64) Value {
	return Value{kind: SCALAR, scalar: n}
}

// Creates a list Value holding a copy of the given items.
func List(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: LIST, items: copied}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsScalar() bool {
	return v.kind == SCALAR
}

func (v Value) IsList() bool {
	return v.kind == LIST
}

// Returns the integer held by a scalar Value, 0 for anything else.
func (v Value) Int() int64 {
	return v.scalar
}

// Returns the number of items in a list Value, 0 for anything else.
func (v Value) Len() int {
	return len(v.items)
}

// Returns the item at index i of a list Value. Panics when i is out of range.
func (v Value) At(i int) Value {
	return v.items[i]
}

// Renders the Value in the bracketed form it is parsed from, e.g. [1,[2,3]].
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case SCALAR:
		sb.WriteString(strconv.FormatInt(v.scalar, 10))
	case LIST:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("<invalid>")
	}
}
