package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/patrickgombert/distress/common"
	"github.com/patrickgombert/distress/packet"
)

// A run of consecutive non-blank lines
type group struct {
	start int
	lines []string
}

// Opens the file at path and reads its packet pairs.
func LoadPairs(path string) ([]packet.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := ReadPairs(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	log.Debug().
		Str("path", path).
		Int("pairs", len(pairs)).
		Msg("loaded packet pairs")
	return pairs, nil
}

// Reads blank line delimited groups of exactly two packets each. Blank lines
// before the first group, after the last group and between groups are ignored.
func ReadPairs(r io.Reader) ([]packet.Pair, error) {
	groups, err := readGroups(r)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, common.ERR_NO_PACKETS
	}

	pairs := make([]packet.Pair, 0, len(groups))
	for i, g := range groups {
		if len(g.lines) != 2 {
			return nil, errors.Wrapf(common.ERR_INCOMPLETE_PAIR, "group %d starting at line %d has %d packets", i+1, g.start, len(g.lines))
		}

		left, err := packet.Parse(g.lines[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", g.start)
		}
		right, err := packet.Parse(g.lines[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", g.start+1)
		}
		pairs = append(pairs, packet.Pair{Left: left, Right: right})
	}
	return pairs, nil
}

// Reads the packet pairs and returns every packet in input order.
func ReadValues(r io.Reader) ([]packet.Value, error) {
	pairs, err := ReadPairs(r)
	if err != nil {
		return nil, err
	}
	return Flatten(pairs), nil
}

// Returns the left and right packet of each pair, in order.
func Flatten(pairs []packet.Pair) []packet.Value {
	values := make([]packet.Value, 0, 2*len(pairs))
	for _, pair := range pairs {
		values = append(values, pair.Left, pair.Right)
	}
	return values
}

func readGroups(r io.Reader) ([]group, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	groups := []group{}
	var current *group
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			current = nil
			continue
		}
		if current == nil {
			groups = append(groups, group{start: lineNumber})
			current = &groups[len(groups)-1]
		}
		current.lines = append(current.lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
