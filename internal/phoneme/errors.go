package phoneme

import (
	"errors"
	"fmt"
	"strings"
)

// SegmentationError reports that segmenting a transcription lost or
// double-counted characters: the produced tokens do not concatenate back
// to the input. It carries the offending input and the partial token list
// for diagnosis.
//
// This is a programmer-facing error - the input is malformed or the symbol
// class configuration is incomplete. It is never retried and must propagate
// unmodified to the caller.
type SegmentationError struct {
	// Input is the normalized (and possibly stress-stripped) transcription
	// that failed to segment.
	Input string

	// Phonemes is the partial token list produced before the integrity
	// check failed.
	Phonemes []Phoneme
}

// Error implements the error interface.
func (e *SegmentationError) Error() string {
	parts := make([]string, len(e.Phonemes))
	for i, p := range e.Phonemes {
		parts[i] = string(p)
	}
	return fmt.Sprintf("segmentation lost characters in %q (tokens: %s)",
		e.Input, strings.Join(parts, " "))
}

// IsSegmentationError reports whether err is a segmentation integrity
// failure. Uses errors.As to handle wrapped errors.
func IsSegmentationError(err error) bool {
	var se *SegmentationError
	return errors.As(err, &se)
}
