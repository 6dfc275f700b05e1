// Package report builds run summaries and amino acid composition
// charts.
package report

import (
	"encoding/json"
	"os"

	"github.com/gonum/floats"
	"github.com/op/go-logging"

	"bitbucket.org/Davydov/dna2aa/bio"
	"bitbucket.org/Davydov/dna2aa/codon"
)

// log is the global logging variable.
var log = logging.MustGetLogger("report")

// order is the order of amino acids in compositions.
const order = "ARNDCQEGHILKMFPSTWYV*"

// Summary is storing dna2aa run summary information.
type Summary struct {
	// Version stores dna2aa version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// GCode is the NCBI genetic code id.
	GCode int `json:"gcode"`
	// Length is the normalized DNA length.
	Length int `json:"length"`
	// NCodon is the number of codons.
	NCodon int `json:"nCodon"`
	// Cached is true if the result was found in the archive.
	Cached bool `json:"cached,omitempty"`
	// Composition is the amino acid composition of the protein.
	Composition []AminoAcid `json:"composition,omitempty"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// AminoAcid stores the count and frequency of one amino acid (or
// the stop marker).
type AminoAcid struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// Composition computes amino acid composition from codon usage.
// Amino acids which are absent are skipped.
func Composition(gc *bio.GeneticCode, u codon.Usage) []AminoAcid {
	counts := make([]float64, len(order))
	for i, n := range u.Counts {
		if n == 0 {
			continue
		}
		aa, _ := gc.AminoAcid(codon.Decode(i))
		for j := 0; j < len(order); j++ {
			if order[j] == aa {
				counts[j] += n
				break
			}
		}
	}

	freqs := make([]float64, len(counts))
	copy(freqs, counts)
	if sum := floats.Sum(freqs); sum > 0 {
		floats.Scale(1/sum, freqs)
	}

	comp := make([]AminoAcid, 0, len(order))
	for j, n := range counts {
		if n == 0 {
			continue
		}
		comp = append(comp, AminoAcid{
			Name:      bio.ThreeLetter[order[j]],
			Count:     int(n),
			Frequency: freqs[j],
		})
	}
	return comp
}

// WriteJSON writes the summary in json format to a file.
func (s *Summary) WriteJSON(fn string) error {
	j, err := json.Marshal(s)
	if err != nil {
		return err
	}
	log.Debug(string(j))
	return os.WriteFile(fn, j, 0666)
}
