package codon

import (
	"errors"
	"fmt"

	"github.com/gonum/floats"
)

// Usage stores codon counts of a sequence.
type Usage struct {
	Counts [N]float64
}

// Count computes codon usage of a normalized RNA sequence (capital
// letters, length dividing by 3).
func Count(rna string) (u Usage, err error) {
	if len(rna)%3 != 0 {
		return u, errors.New("sequence length doesn't divide by 3")
	}
	for i := 0; i < len(rna); i += 3 {
		c, ok := Encode(rna[i : i+3])
		if !ok {
			return u, fmt.Errorf("unknown codon %q at position %d", rna[i:i+3], i)
		}
		u.Counts[c]++
	}
	return u, nil
}

// Total returns the number of codons counted.
func (u *Usage) Total() int {
	return int(floats.Sum(u.Counts[:]))
}

// Frequencies returns relative codon frequencies. For an empty
// sequence all frequencies are zero.
func (u *Usage) Frequencies() []float64 {
	f := make([]float64, N)
	copy(f, u.Counts[:])
	if sum := floats.Sum(f); sum > 0 {
		floats.Scale(1/sum, f)
	}
	return f
}

func (u Usage) String() (s string) {
	s = "<Usage: "
	for i, c := range u.Counts {
		if c == 0 {
			continue
		}
		s += fmt.Sprintf(" %v: %v,", Decode(i), c)
	}
	s = s[:len(s)-1] + ">"
	return
}
