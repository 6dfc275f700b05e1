package bio

import (
	"fmt"

	"bitbucket.org/Davydov/dna2aa/codon"
)

// Stop is the one-letter stop codon symbol used in NCBI tables.
const Stop = '*'

// StopMarker is the three-letter rendering of a stop codon.
const StopMarker = "-"

// ThreeLetter maps one-letter amino acid codes to three-letter
// abbreviations.
var ThreeLetter = map[byte]string{
	'A': "Ala", 'R': "Arg", 'N': "Asn", 'D': "Asp",
	'C': "Cys", 'Q': "Gln", 'E': "Glu", 'G': "Gly",
	'H': "His", 'I': "Ile", 'L': "Leu", 'K': "Lys",
	'M': "Met", 'F': "Phe", 'P': "Pro", 'S': "Ser",
	'T': "Thr", 'W': "Trp", 'Y': "Tyr", 'V': "Val",
	Stop: StopMarker,
}

// GeneticCode is a translation table indexed by packed codons.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	// aa holds one-letter amino acids, Stop for stop codons.
	aa [codon.N]byte
	// three holds the three-letter rendering of aa.
	three [codon.N]string
}

// newGeneticCode creates a genetic code from the NCBI ncbieaa string
// (64 letters in the TCAG order).
func newGeneticCode(id int, name, shortName, ncbieaa string) *GeneticCode {
	if len(ncbieaa) != codon.N {
		panic(fmt.Sprintf("genetic code %d: wrong table length %d", id, len(ncbieaa)))
	}
	gc := &GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
	}
	for i := 0; i < codon.N; i++ {
		aa := ncbieaa[i]
		three, ok := ThreeLetter[aa]
		if !ok {
			panic(fmt.Sprintf("genetic code %d: unknown amino acid %q", id, aa))
		}
		gc.aa[i] = aa
		gc.three[i] = three
	}
	return gc
}

// Standard returns the standard genetic code (NCBI id 1).
func Standard() *GeneticCode {
	return GeneticCodes[1]
}

func (gc *GeneticCode) String() string {
	return fmt.Sprintf("<GC: Id=%d, Name=%q>", gc.ID, gc.Name)
}

// AminoAcid returns the one-letter amino acid for a codon (capital
// RNA letters). Stop codons give Stop. The second value is false for
// an unknown codon.
func (gc *GeneticCode) AminoAcid(c string) (byte, bool) {
	i, ok := codon.Encode(c)
	if !ok {
		return 0, false
	}
	return gc.aa[i], true
}

// ThreeLetter returns the three-letter abbreviation for a codon.
func (gc *GeneticCode) ThreeLetter(c string) (string, bool) {
	i, ok := codon.Encode(c)
	if !ok {
		return "", false
	}
	return gc.three[i], true
}

// IsStopCodon tests if the codon (RNA alphabet, capital letters) is
// a stop codon.
func (gc *GeneticCode) IsStopCodon(c string) bool {
	aa, ok := gc.AminoAcid(c)
	return ok && aa == Stop
}

// NStop returns the number of stop codons.
func (gc *GeneticCode) NStop() (n int) {
	for _, aa := range gc.aa {
		if aa == Stop {
			n++
		}
	}
	return
}
