// Package distress orders nested packets and ranks them against divider packets.
package distress

import (
	"slices"

	c "github.com/patrickgombert/distress/comparator"
	"github.com/patrickgombert/distress/packet"
)

var (
	Divider1 = packet.List(packet.List(packet.Scalar(2)))
	Divider2 = packet.List(packet.List(packet.Scalar(6)))
)

// Sums the 1-based positions of every pair whose left packet orders before or
// equal to its right packet.
func CountOrderedPairs(pairs []packet.Pair) int {
	sum := 0
	for i, pair := range pairs {
		if c.LessOrEqual(pair.Left, pair.Right) {
			sum += i + 1
		}
	}
	return sum
}

// Sorts the packets together with Divider1 and Divider2 and multiplies the
// dividers' 1-based positions.
func RankWithDividers(values []packet.Value) int {
	return DecoderKey(values, Divider1, Divider2)
}

// Sorts the packets together with the given dividers and multiplies the
// dividers' 1-based positions. Each divider's position is the first sorted
// packet comparing EQUAL to it. The given slices are not modified.
func DecoderKey(values []packet.Value, dividers ...packet.Value) int {
	sorted := make([]packet.Value, 0, len(values)+len(dividers))
	sorted = append(sorted, values...)
	sorted = append(sorted, dividers...)
	slices.SortStableFunc(sorted, c.Cmp)

	key := 1
	for _, divider := range dividers {
		key *= position(sorted, divider)
	}
	return key
}

func position(sorted []packet.Value, divider packet.Value) int {
	return slices.IndexFunc(sorted, func(v packet.Value) bool {
		return c.Compare(v, divider) == c.EQUAL
	}) + 1
}
