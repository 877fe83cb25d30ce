package distress

import (
	"testing"

	"github.com/patrickgombert/distress/input"
	"github.com/patrickgombert/distress/packet"
)

const DEMO_INPUT string = "testdata/demo.txt"

func TestCountOrderedPairs(t *testing.T) {
	pairs := []packet.Pair{
		pair("[1,1,3,1,1]", "[1,1,5,1,1]"),
		pair("[[1],[2,3,4]]", "[[1],4]"),
	}
	// [[1],[2,3,4]] orders before [[1],4], so both pairs count
	testCount(t, pairs, 3)

	pairs = []packet.Pair{
		pair("[1,1,3,1,1]", "[1,1,5,1,1]"),
		pair("[9]", "[[8,7,6]]"),
	}
	testCount(t, pairs, 1)
}

func TestCountOrderedPairsCountsEqualPairs(t *testing.T) {
	pairs := []packet.Pair{
		pair("[2]", "[1]"),
		pair("[[3]]", "3"),
	}
	testCount(t, pairs, 2)
}

func TestCountOrderedPairsEmpty(t *testing.T) {
	testCount(t, nil, 0)
}

func TestCountOrderedPairsDemo(t *testing.T) {
	testCount(t, loadDemo(t), 13)
}

func TestRankWithDividers(t *testing.T) {
	values := []packet.Value{
		packet.MustParse("[1]"),
		packet.MustParse("[2,3,4]"),
		packet.MustParse("[9]"),
		packet.MustParse("[[8,7,6]]"),
	}
	for i := 0; i < 10; i++ {
		if key := RankWithDividers(values); key != 8 {
			t.Fatalf("Expected dividers to rank at 2 and 4 for a key of 8, got %d", key)
		}
	}
}

func TestRankWithDividersDemo(t *testing.T) {
	if key := RankWithDividers(input.Flatten(loadDemo(t))); key != 140 {
		t.Errorf("Expected demo decoder key 140, got %d", key)
	}
}

func TestRankWithDividersNoValues(t *testing.T) {
	if key := RankWithDividers(nil); key != 2 {
		t.Errorf("Expected dividers alone to rank at 1 and 2, got %d", key)
	}
}

func TestRankWithDividersUsesStructuralEquality(t *testing.T) {
	// an input copy of a divider ties with it, the first match wins
	values := []packet.Value{packet.MustParse("[[2]]"), packet.MustParse("[3]")}
	if key := RankWithDividers(values); key != 4 {
		t.Errorf("Expected dividers to rank at 1 and 4, got %d", key)
	}
}

func TestRankWithDividersDoesNotModifyInput(t *testing.T) {
	values := []packet.Value{packet.MustParse("[9]"), packet.MustParse("[1]")}
	RankWithDividers(values)
	if values[0].String() != "[9]" || values[1].String() != "[1]" {
		t.Errorf("Expected input order to be preserved, got %v", values)
	}
}

func TestDecoderKeyCustomDividers(t *testing.T) {
	values := []packet.Value{packet.MustParse("[1]"), packet.MustParse("[5]")}
	if key := DecoderKey(values, packet.MustParse("[3]")); key != 2 {
		t.Errorf("Expected [3] to rank at 2, got %d", key)
	}
	if key := DecoderKey(values); key != 1 {
		t.Errorf("Expected no dividers to produce 1, got %d", key)
	}
	if key := DecoderKey(values, packet.MustParse("[0]"), packet.MustParse("[3]"), packet.MustParse("[[9]]")); key != 1*3*5 {
		t.Errorf("Expected dividers to rank at 1, 3 and 5, got %d", key)
	}
}

func pair(left, right string) packet.Pair {
	return packet.Pair{Left: packet.MustParse(left), Right: packet.MustParse(right)}
}

func testCount(t *testing.T, pairs []packet.Pair, expected int) {
	t.Helper()
	if sum := CountOrderedPairs(pairs); sum != expected {
		t.Errorf("Expected ordered pair indices to sum to %d, got %d", expected, sum)
	}
}

func loadDemo(t *testing.T) []packet.Pair {
	t.Helper()
	pairs, err := input.LoadPairs(DEMO_INPUT)
	if err != nil {
		t.Fatalf("Failed to load %s: %v", DEMO_INPUT, err)
	}
	return pairs
}
