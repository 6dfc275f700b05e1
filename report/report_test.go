package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bitbucket.org/Davydov/dna2aa/bio"
	"bitbucket.org/Davydov/dna2aa/codon"
)

func usage(t *testing.T, rna string) codon.Usage {
	u, err := codon.Count(rna)
	require.NoError(t, err)
	return u
}

func TestComposition(t *testing.T) {
	// Met, Ala, Ala (two different codons), stop
	comp := Composition(bio.Standard(), usage(t, "AUGGCCGCAUAA"))
	require.Equal(t, []AminoAcid{
		{Name: "Ala", Count: 2, Frequency: 0.5},
		{Name: "Met", Count: 1, Frequency: 0.25},
		{Name: "-", Count: 1, Frequency: 0.25},
	}, comp)
}

func TestCompositionGeneticCode(t *testing.T) {
	// UGA is Trp in vertebrate mitochondria
	comp := Composition(bio.GeneticCodes[2], usage(t, "UGA"))
	require.Len(t, comp, 1)
	require.Equal(t, "Trp", comp[0].Name)
	require.Equal(t, 1.0, comp[0].Frequency)
}

func TestCompositionEmpty(t *testing.T) {
	require.Empty(t, Composition(bio.Standard(), usage(t, "")))
}

func TestWriteJSON(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "summary.json")
	s := &Summary{
		Version:     "test",
		GCode:       1,
		Length:      9,
		NCodon:      3,
		Composition: Composition(bio.Standard(), usage(t, "GCCAUGCCA")),
	}
	require.NoError(t, s.WriteJSON(fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, 3.0, got["nCodon"])
	require.Len(t, got["composition"], 3)
	require.NotContains(t, got, "cached")
}

func TestPlotComposition(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "composition.png")
	comp := Composition(bio.Standard(), usage(t, "GCCAUGCCAUGUGCAGGA"))
	require.NoError(t, PlotComposition(comp, fn))

	fi, err := os.Stat(fn)
	require.NoError(t, err)
	require.NotZero(t, fi.Size())
}

func TestPlotEmpty(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "composition.png")
	require.Error(t, PlotComposition(nil, fn))
}
