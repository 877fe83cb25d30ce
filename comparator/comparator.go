package comparator

import (
	"fmt"

	"github.com/patrickgombert/distress/packet"
)

type comparison int

const (
	LESS_THAN    comparison = -1
	EQUAL        comparison = 0
	GREATER_THAN comparison = 1
)

func (c comparison) String() string {
	switch c {
	case LESS_THAN:
		return "LESS_THAN"
	case EQUAL:
		return "EQUAL"
	case GREATER_THAN:
		return "GREATER_THAN"
	default:
		return fmt.Sprintf("comparison(%d)", int(c))
	}
}

// Orders two packets. Integers compare numerically, lists compare item by item
// with the shorter list ordering first when it runs out, and an integer compared
// against a list is first promoted to a single item list.
//
// Panics if either Value was not built with packet.Scalar, packet.List or
// packet.Parse.
func Compare(a, b packet.Value) comparison {
	switch a.Kind() {
	case packet.SCALAR:
		switch b.Kind() {
		case packet.SCALAR:
			return compareInts(a.Int(), b.Int())
		case packet.LIST:
			return compareLists(Promote(a), b)
		}
	case packet.LIST:
		switch b.Kind() {
		case packet.SCALAR:
			return compareLists(a, Promote(b))
		case packet.LIST:
			return compareLists(a, b)
		}
	}

	panic(fmt.Sprintf("contract violation: cannot compare %s packet with %s packet", a.Kind(), b.Kind()))
}

// Signed form of Compare, suitable for slices.SortFunc.
func Cmp(a, b packet.Value) int {
	return int(Compare(a, b))
}

// Returns true when a orders before or equal to b.
func LessOrEqual(a, b packet.Value) bool {
	return Compare(a, b) != GREATER_THAN
}

// Wraps a scalar packet in a single item list. Lists are returned unchanged.
func Promote(v packet.Value) packet.Value {
	if v.IsScalar() {
		return packet.List(v)
	}
	return v
}

func compareInts(a, b int64) comparison {
	if a < b {
		return LESS_THAN
	} else if a > b {
		return GREATER_THAN
	}
	return EQUAL
}

func compareLists(a, b packet.Value) comparison {
	for i := 0; i < a.Len(); i++ {
		if i+1 > b.Len() {
			return GREATER_THAN
		}
		if c := Compare(a.At(i), b.At(i)); c != EQUAL {
			return c
		}
	}

	if b.Len() > a.Len() {
		return LESS_THAN
	}
	return EQUAL
}
