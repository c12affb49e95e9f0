package iet

import "errors"

// ErrEmpty is returned by New when top (equivalently bottom) is empty.
var ErrEmpty = errors.New("iet: interval exchange transformation cannot be empty")

// ErrLabelMismatch is returned by New when top and bottom are not
// permutations of the same label multiset, or contain a repeated label.
var ErrLabelMismatch = errors.New("iet: top and bottom must be permutations of the same label set, without repetition")
