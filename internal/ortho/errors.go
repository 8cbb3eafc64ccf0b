package ortho

import (
	"errors"
	"fmt"
)

// UncoveredError reports that the longest-match lookup consumed zero
// characters during transduction: the table lacks a fallback entry for
// some symbol present in the input. It carries the whole boundary-padded
// word and the unmatched remainder for diagnosis.
//
// Like a segmentation failure this is a configuration or data bug, not an
// end-user condition; it propagates unmodified with no partial output.
type UncoveredError struct {
	// Word is the full boundary-padded phoneme string being transduced.
	Word string

	// Remainder is the suffix starting at the position nothing matched.
	Remainder string
}

// Error implements the error interface.
func (e *UncoveredError) Error() string {
	head := e.Remainder
	if n := len(head); n > 0 {
		runes := []rune(head)
		if len(runes) > 5 {
			head = string(runes[:5])
		}
	}
	return fmt.Sprintf("no table entry covers %q in word %q", head, e.Word)
}

// IsUncoveredError reports whether err is a table coverage failure.
// Uses errors.As to handle wrapped errors.
func IsUncoveredError(err error) bool {
	var ue *UncoveredError
	return errors.As(err, &ue)
}
