package bio

import (
	"errors"
	"fmt"
)

// ErrorKind classifies sequence errors.
type ErrorKind int

const (
	// MalformedSequence is a structural defect: the length doesn't
	// divide by 3 or the sequence contains non-ASCII data.
	MalformedSequence ErrorKind = iota
	// InvalidSymbol is a character outside the sequence alphabet.
	InvalidSymbol
)

var (
	// ErrMalformedSequence matches any SequenceError of kind
	// MalformedSequence when used with errors.Is.
	ErrMalformedSequence = errors.New("malformed sequence")
	// ErrInvalidSymbol matches any SequenceError of kind
	// InvalidSymbol when used with errors.Is.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedSequence:
		return "malformed sequence"
	case InvalidSymbol:
		return "invalid symbol"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SequenceError describes why a sequence was rejected.
type SequenceError struct {
	Kind ErrorKind
	// Alphabet is the expected alphabet, "DNA" or "RNA".
	Alphabet string
	// Symbol and Position are set for InvalidSymbol. Position is
	// zero-based in the normalized sequence.
	Symbol   rune
	Position int
	// Length is the normalized sequence length.
	Length int
	// Reason is a short description for MalformedSequence.
	Reason string
}

func (e *SequenceError) Error() string {
	switch e.Kind {
	case InvalidSymbol:
		return fmt.Sprintf("%s: %s: %q at position %d", e.Alphabet, e.Kind, e.Symbol, e.Position)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Alphabet, e.Kind, e.Reason)
	}
}

// Is makes SequenceError match ErrMalformedSequence and
// ErrInvalidSymbol.
func (e *SequenceError) Is(target error) bool {
	switch target {
	case ErrMalformedSequence:
		return e.Kind == MalformedSequence
	case ErrInvalidSymbol:
		return e.Kind == InvalidSymbol
	}
	return false
}

func malformed(alphabet string, length int, reason string) error {
	return &SequenceError{
		Kind:     MalformedSequence,
		Alphabet: alphabet,
		Length:   length,
		Reason:   reason,
	}
}

func invalidSymbol(alphabet string, length int, pos int, sym rune) error {
	return &SequenceError{
		Kind:     InvalidSymbol,
		Alphabet: alphabet,
		Symbol:   sym,
		Position: pos,
		Length:   length,
	}
}
