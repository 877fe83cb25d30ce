package config

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/patrickgombert/distress/common"
	c "github.com/patrickgombert/distress/comparator"
	"github.com/patrickgombert/distress/packet"
)

const (
	DEFAULT_PATH string = "./data/input.txt"

	COLOR_AUTO   string = "auto"
	COLOR_ALWAYS string = "always"
	COLOR_NEVER  string = "never"
)

var DEFAULT_DIVIDERS []string = []string{"[[2]]", "[[6]]"}

type Options struct {
	Path     string
	Dividers []string
	Verbose  bool
	Color    string
}

// Returns Options populated with the default input path, dividers and color mode.
func Default() Options {
	dividers := make([]string, len(DEFAULT_DIVIDERS))
	copy(dividers, DEFAULT_DIVIDERS)
	return Options{Path: DEFAULT_PATH, Dividers: dividers, Color: COLOR_AUTO}
}

// Validates that all of the fields contained with the Options are valid. Returns a list
// of errors. If there are no errors then the list will be empty.
func (options Options) Validate() []error {
	errs := []error{}
	if options.Path == "" {
		errs = append(errs, errors.New("Must specify an input path"))
	}

	switch options.Color {
	case COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
	default:
		errs = append(errs, fmt.Errorf("Color %q must be one of %s, %s or %s", options.Color, COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER))
	}

	if len(options.Dividers) == 0 {
		errs = append(errs, common.ERR_NO_DIVIDERS)
	}

	parsed := []packet.Value{}
	for _, divider := range options.Dividers {
		value, err := packet.Parse(divider)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "invalid divider"))
			continue
		}
		for _, other := range parsed {
			if c.Compare(value, other) == c.EQUAL {
				errs = append(errs, errors.Wrapf(common.ERR_DUPLICATE_DIVIDER, "%s equals %s", divider, other))
			}
		}
		parsed = append(parsed, value)
	}

	return errs
}

// Parses the configured dividers. Assumes Validate produced no errors.
func (options Options) DividerPackets() []packet.Value {
	dividers := make([]packet.Value, len(options.Dividers))
	for i, divider := range options.Dividers {
		dividers[i] = packet.MustParse(divider)
	}
	return dividers
}
