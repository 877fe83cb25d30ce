package common

import "errors"

var (
	ERR_MALFORMED_PACKET  = errors.New("packet is not an integer or a bracketed list of packets")
	ERR_INCOMPLETE_PAIR   = errors.New("group must contain exactly two packets")
	ERR_NO_PACKETS        = errors.New("input does not contain any packets")
	ERR_NO_DIVIDERS       = errors.New("must specify at least one divider packet")
	ERR_DUPLICATE_DIVIDER = errors.New("divider packets must be distinct")
)
