package packet

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/patrickgombert/distress/common"
)

// Parses a single packet line such as [1,[2,3],[]]. Only integers and lists are
// accepted. Any other token, or data following the packet, produces an error
// wrapping common.ERR_MALFORMED_PACKET.
func Parse(line string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	value, err := parseValue(dec)
	if err != nil {
		return Value{}, errors.Wrapf(err, "packet %q", line)
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.Wrapf(common.ERR_MALFORMED_PACKET, "trailing data in packet %q", line)
	}
	return value, nil
}

// Parses a packet and panics on error. Intended for literals in tests and for
// fixed packets such as dividers.
func MustParse(line string) Value {
	value, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return value
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return Value{}, errors.Wrap(common.ERR_MALFORMED_PACKET, "unexpected end of packet")
	}
	if err != nil {
		return Value{}, errors.Wrap(common.ERR_MALFORMED_PACKET, err.Error())
	}

	switch t := tok.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return Value{}, errors.Wrapf(common.ERR_MALFORMED_PACKET, "%s is not an integer", t)
		}
		return Scalar(n), nil
	case json.Delim:
		if t != '[' {
			return Value{}, errors.Wrapf(common.ERR_MALFORMED_PACKET, "unexpected %q", rune(t))
		}
		return parseList(dec)
	default:
		return Value{}, errors.Wrapf(common.ERR_MALFORMED_PACKET, "unexpected %v", t)
	}
}

func parseList(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}

	tok, err := dec.Token()
	if err != nil {
		return Value{}, errors.Wrap(common.ERR_MALFORMED_PACKET, err.Error())
	}
	if delim, ok := tok.(json.Delim); !ok || delim != ']' {
		return Value{}, errors.Wrapf(common.ERR_MALFORMED_PACKET, "unterminated list, found %v", tok)
	}
	return Value{kind: LIST, items: items}, nil
}
