// Package bio provides DNA to RNA transcription and RNA to protein
// translation using the genetic code.
package bio

import (
	"strings"
	"unicode/utf8"

	"bitbucket.org/Davydov/dna2aa/codon"
)

// pair holds the RNA nucleotide pairing each DNA nucleotide, zero for
// letters outside the DNA alphabet.
var pair = [256]byte{'A': 'U', 'T': 'A', 'C': 'G', 'G': 'C'}

// lineBreaks strips line breaks embedded into a sequence.
var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// Normalize removes line breaks and converts ASCII letters to
// uppercase. Other bytes are kept as is, so the length and the
// positions of non-ASCII symbols don't change.
func Normalize(seq string) string {
	b := []byte(lineBreaks.Replace(seq))
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Transcribe converts a DNA sequence into the RNA sequence by base
// pairing (A->U, T->A, C->G, G->C). The order of nucleotides is
// preserved. Error is returned if sequence is not divisible by three
// or a letter outside of the DNA alphabet is encountered.
func Transcribe(dna string) (string, error) {
	dna = Normalize(dna)

	if len(dna)%3 != 0 {
		return "", malformed("DNA", len(dna), "sequence length doesn't divide by 3")
	}

	rna := make([]byte, len(dna))
	for i := 0; i < len(dna); i++ {
		p := pair[dna[i]]
		if p == 0 {
			r, _ := utf8.DecodeRuneInString(dna[i:])
			return "", invalidSymbol("DNA", len(dna), i, r)
		}
		rna[i] = p
	}
	return string(rna), nil
}

// Translate translates RNA sequence into the string of three-letter
// amino acid abbreviations using the standard genetic code.
func Translate(rna string) (string, error) {
	return Standard().Translate(rna)
}

// Translate translates RNA sequence into the string of three-letter
// amino acid abbreviations. Stop codons are rendered as StopMarker.
// Error is returned if sequence is not ASCII, is not divisible by
// three or a wrong codon is encountered.
func (gc *GeneticCode) Translate(rna string) (string, error) {
	rna = Normalize(rna)

	if !isASCII(rna) {
		return "", malformed("RNA", len(rna), "sequence contains non-ASCII characters")
	}
	if len(rna)%3 != 0 {
		return "", malformed("RNA", len(rna), "sequence length doesn't divide by 3")
	}

	var b strings.Builder
	b.Grow(len(rna))
	for i := 0; i < len(rna); i += 3 {
		three, ok := gc.ThreeLetter(rna[i : i+3])
		if !ok {
			return "", unknownCodon(rna, i)
		}
		b.WriteString(three)
	}
	return b.String(), nil
}

// unknownCodon reports the first letter of the codon starting at pos
// which is not in the RNA alphabet.
func unknownCodon(rna string, pos int) error {
	for i := pos; i < pos+3; i++ {
		if _, ok := codon.Base(rna[i]); !ok {
			return invalidSymbol("RNA", len(rna), i, rune(rna[i]))
		}
	}
	// not reached for a codon of three RNA letters
	return invalidSymbol("RNA", len(rna), pos, rune(rna[pos]))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
