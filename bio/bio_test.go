package bio

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTranscribe(tst *testing.T) {
	for _, dna := range []string{"cggtacggt", "CGGTACGGT", "cGgTaCgGt", "cggt\nacggt\n", "cggtacggt\r\n"} {
		rna, err := Transcribe(dna)
		if err != nil {
			tst.Errorf("Error transcribing %q: %v", dna, err)
			continue
		}
		if rna != "GCCAUGCCA" {
			tst.Errorf("Wrong transcription of %q: %s", dna, rna)
		}
	}
}

func TestTranscribeEmpty(tst *testing.T) {
	rna, err := Transcribe("\n")
	if err != nil || rna != "" {
		tst.Error("Empty sequence should give empty RNA:", rna, err)
	}
}

func TestTranscribeErrors(tst *testing.T) {
	cases := []struct {
		dna  string
		kind ErrorKind
		pos  int
		sym  rune
	}{
		{"gccgc", MalformedSequence, 0, 0},
		{"abcdef", InvalidSymbol, 1, 'B'},
		{"ACGU", MalformedSequence, 0, 0},
		{"ACGUAC", InvalidSymbol, 3, 'U'},
		{"ACG TAC", MalformedSequence, 0, 0},
		{"AC TAC", InvalidSymbol, 2, ' '},
		{"ACGNNN", InvalidSymbol, 3, 'N'},
	}
	for _, c := range cases {
		_, err := Transcribe(c.dna)
		var serr *SequenceError
		if !errors.As(err, &serr) {
			tst.Errorf("%q: expected SequenceError, got %v", c.dna, err)
			continue
		}
		if serr.Kind != c.kind {
			tst.Errorf("%q: wrong error kind %v, expected %v", c.dna, serr.Kind, c.kind)
		}
		if c.kind == InvalidSymbol && (serr.Position != c.pos || serr.Symbol != c.sym) {
			tst.Errorf("%q: wrong symbol %q at %d", c.dna, serr.Symbol, serr.Position)
		}
	}
}

func TestTranscribeNonASCII(tst *testing.T) {
	// Ä takes two bytes, the sequence is six bytes long.
	_, err := Transcribe("AÄGTA")
	if !errors.Is(err, ErrInvalidSymbol) {
		tst.Fatal("Expected invalid symbol, got", err)
	}
	var serr *SequenceError
	errors.As(err, &serr)
	if serr.Symbol != 'Ä' {
		tst.Errorf("Wrong symbol reported: %q", serr.Symbol)
	}
}

// TestTranscribeNonASCIIPosition checks that non-ASCII symbols are
// reported as written, not after case conversion.
func TestTranscribeNonASCIIPosition(tst *testing.T) {
	cases := []struct {
		dna string
		sym rune
		pos int
	}{
		// ı is two bytes, upper case I is one
		{"ACGıA", 'ı', 3},
		{"acgıa", 'ı', 3},
		{"A\xffCGTA", utf8.RuneError, 1},
	}
	for _, c := range cases {
		_, err := Transcribe(c.dna)
		var serr *SequenceError
		if !errors.As(err, &serr) || serr.Kind != InvalidSymbol {
			tst.Errorf("%q: expected invalid symbol, got %v", c.dna, err)
			continue
		}
		if serr.Symbol != c.sym || serr.Position != c.pos {
			tst.Errorf("%q: wrong symbol %q at %d", c.dna, serr.Symbol, serr.Position)
		}
	}

	// seven bytes
	if _, err := Transcribe("ACGıAC"); !errors.Is(err, ErrMalformedSequence) {
		tst.Error("Expected malformed sequence, got", err)
	}
}

func TestNormalize(tst *testing.T) {
	if s := Normalize("acg\r\nTıa"); s != "ACGTıA" {
		tst.Errorf("Wrong normalization: %q", s)
	}
}

// TestTranscribePairing checks every position of random sequences.
func TestTranscribePairing(tst *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	dnaLetters := "ACGTacgt"
	pairs := map[byte]byte{'A': 'U', 'T': 'A', 'C': 'G', 'G': 'C'}
	for n := 0; n < 100; n++ {
		b := make([]byte, 3*rnd.Intn(50))
		for i := range b {
			b[i] = dnaLetters[rnd.Intn(len(dnaLetters))]
		}
		dna := string(b)
		rna, err := Transcribe(dna)
		if err != nil {
			tst.Fatal("Error transcribing:", err)
		}
		norm := strings.ToUpper(dna)
		if len(rna) != len(norm) {
			tst.Fatalf("Length mismatch: %d != %d", len(rna), len(norm))
		}
		for i := range norm {
			if rna[i] != pairs[norm[i]] {
				tst.Fatalf("Wrong pairing at %d: %c -> %c", i, norm[i], rna[i])
			}
		}
	}
}

func TestTranslate(tst *testing.T) {
	cases := map[string]string{
		"UGUGCAGGA":     "CysAlaGly",
		"ugugcagga":     "CysAlaGly",
		"UGU\nGCA\nGGA": "CysAlaGly",
		"GCCAUGCCA":     "AlaMetPro",
		"":              "",
		"AUGUAA":        "Met-",
	}
	for rna, exp := range cases {
		prot, err := Translate(rna)
		if err != nil {
			tst.Errorf("Error translating %q: %v", rna, err)
			continue
		}
		if prot != exp {
			tst.Errorf("Wrong translation of %q: %s, expected %s", rna, prot, exp)
		}
	}
}

func TestTranslateStop(tst *testing.T) {
	for _, stop := range []string{"UAA", "UAG", "UGA", "uaa"} {
		prot, err := Translate(stop)
		if err != nil {
			tst.Error("Error translating stop codon:", err)
		}
		if prot != "-" {
			tst.Errorf("Stop codon %s translated to %q", stop, prot)
		}
	}
}

func TestTranslateErrors(tst *testing.T) {
	cases := []struct {
		rna  string
		kind ErrorKind
		pos  int
		sym  rune
	}{
		{"cggtacggt", InvalidSymbol, 3, 'T'},
		{"cggtacgg", MalformedSequence, 0, 0},
		{"abcdef", InvalidSymbol, 1, 'B'},
		{"AUGÄ", MalformedSequence, 0, 0},
		{"AUG UAA", MalformedSequence, 0, 0},
		{"AUGU A", InvalidSymbol, 4, ' '},
	}
	for _, c := range cases {
		_, err := Translate(c.rna)
		var serr *SequenceError
		if !errors.As(err, &serr) {
			tst.Errorf("%q: expected SequenceError, got %v", c.rna, err)
			continue
		}
		if serr.Kind != c.kind {
			tst.Errorf("%q: wrong error kind %v, expected %v", c.rna, serr.Kind, c.kind)
		}
		if serr.Alphabet != "RNA" {
			tst.Errorf("%q: wrong alphabet %s", c.rna, serr.Alphabet)
		}
		if c.kind == InvalidSymbol && (serr.Position != c.pos || serr.Symbol != c.sym) {
			tst.Errorf("%q: wrong symbol %q at %d", c.rna, serr.Symbol, serr.Position)
		}
	}
}

func TestErrorsIs(tst *testing.T) {
	_, err := Transcribe("gccgc")
	if !errors.Is(err, ErrMalformedSequence) || errors.Is(err, ErrInvalidSymbol) {
		tst.Error("Length error should only match ErrMalformedSequence:", err)
	}
	_, err = Translate("cggtacggt")
	if !errors.Is(err, ErrInvalidSymbol) || errors.Is(err, ErrMalformedSequence) {
		tst.Error("Symbol error should only match ErrInvalidSymbol:", err)
	}
	if err.Error() != `RNA: invalid symbol: 'T' at position 3` {
		tst.Error("Unexpected message:", err)
	}
}

func TestPipeline(tst *testing.T) {
	rna, err := Transcribe("cggtacggt")
	if err != nil {
		tst.Fatal(err)
	}
	prot, err := Translate(rna)
	if err != nil {
		tst.Fatal(err)
	}
	if prot != "AlaMetPro" {
		tst.Error("Wrong pipeline result:", prot)
	}
}

func TestTranslateLength(tst *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	letters := "ACGUacgu"
	for n := 0; n < 50; n++ {
		b := make([]byte, 3*rnd.Intn(40))
		for i := range b {
			b[i] = letters[rnd.Intn(len(letters))]
		}
		prot, err := Translate(string(b))
		if err != nil {
			tst.Fatal(err)
		}
		// stop codons are a single character
		up := strings.ToUpper(string(b))
		exp := 0
		for i := 0; i < len(up); i += 3 {
			if Standard().IsStopCodon(up[i : i+3]) {
				exp++
			} else {
				exp += 3
			}
		}
		if len(prot) != exp {
			tst.Errorf("Wrong protein length %d, expected %d", len(prot), exp)
		}
	}
}

func BenchmarkTranscribe(b *testing.B) {
	dna := strings.Repeat("CGGTACGGT", 1000)
	for i := 0; i < b.N; i++ {
		Transcribe(dna)
	}
}

func BenchmarkTranslate(b *testing.B) {
	rna := strings.Repeat("GCCAUGCCA", 1000)
	for i := 0; i < b.N; i++ {
		Translate(rna)
	}
}
