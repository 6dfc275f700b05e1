// Package codon provides the packed codon encoding shared by the
// genetic code tables and codon usage statistics.
package codon

// N is the number of distinct codons.
const N = 64

var (
	// alphabet is the RNA nucleotide order used by the NCBI
	// translation tables.
	alphabet = [...]byte{'U', 'C', 'A', 'G'}
	// rAlphabet is reverse nucleotide alphabet (letter to a number),
	// -1 for letters outside the alphabet.
	rAlphabet [256]int8
)

func init() {
	for i := range rAlphabet {
		rAlphabet[i] = -1
	}
	for i, l := range alphabet {
		rAlphabet[l] = int8(i)
	}
}

// Base returns the 2-bit code of an RNA nucleotide (capital letter).
func Base(b byte) (int, bool) {
	n := rAlphabet[b]
	return int(n), n >= 0
}

// Encode packs a codon (capital RNA letters) into 0..63. The first
// nucleotide is the most significant. The second value is false if
// the codon has a wrong length or a letter outside the alphabet.
func Encode(codon string) (int, bool) {
	if len(codon) != 3 {
		return 0, false
	}
	i := 0
	for j := 0; j < 3; j++ {
		n, ok := Base(codon[j])
		if !ok {
			return 0, false
		}
		i = i<<2 | n
	}
	return i, true
}

// Decode is the inverse of Encode.
func Decode(i int) string {
	return string([]byte{
		alphabet[(i>>4)&3],
		alphabet[(i>>2)&3],
		alphabet[i&3],
	})
}

// All returns all 64 codons in the encoding order.
func All() []string {
	codons := make([]string, N)
	for i := range codons {
		codons[i] = Decode(i)
	}
	return codons
}
