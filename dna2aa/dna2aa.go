/*

Dna2aa transcribes a DNA sequence into mRNA and translates it into
the amino acid sequence.

The basic usage of dna2aa looks like this:

	dna2aa -f gene.txt -o -

, this will print three-letter amino acid codes to the standard
output. Use -r to also output the mRNA, and "-f -" to read a single
line from the standard input.

To see all the options run:

	dna2aa -h

*/
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/dna2aa/archive"
	"bitbucket.org/Davydov/dna2aa/bio"
	"bitbucket.org/Davydov/dna2aa/codon"
	"bitbucket.org/Davydov/dna2aa/report"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("dna2aa")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("dna2aa", "translate a DNA sequence to mRNA or amino acids").Version(version)

	// input/output
	inF  = app.Flag("file", "the input file for processing, use - for stdin").Short('f').Required().String()
	outF = app.Flag("output", "the output file, use - for stdout").Short('o').Required().String()
	rna  = app.Flag("rna", "also output mRNA (before amino acids)").Short('r').Bool()

	// translation
	gcodeID = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Int()

	// technical
	dbF      = app.Flag("db", "store results in (and reuse them from) a bolt database").String()
	jsonF    = app.Flag("json", "write json summary to a file").String()
	plotF    = app.Flag("plot", "plot amino acid composition to a file (png, svg, pdf)").String()
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// result is the outcome of a conversion.
type result struct {
	input   string
	rna     string
	protein string
	cached  bool
}

// convert transcribes and translates the DNA sequence. If the store
// has a record for the same input, it is reused.
func convert(dna string, gcode *bio.GeneticCode, store *archive.Store) (*result, error) {
	res := &result{input: bio.Normalize(dna)}

	rec, err := store.Load(archive.Key(res.input, gcode.ID))
	if err != nil {
		log.Warning("Error reading archive:", err)
	}
	if rec != nil {
		log.Info("Found the result in the archive")
		res.rna = rec.RNA
		res.protein = rec.Protein
		res.cached = true
		return res, nil
	}

	res.rna, err = bio.Transcribe(res.input)
	if err != nil {
		return nil, fmt.Errorf("error when transcribing DNA: %w", err)
	}
	log.Debugf("rna=%s", res.rna)

	res.protein, err = gcode.Translate(res.rna)
	if err != nil {
		return nil, fmt.Errorf("error when translating mRNA: %w", err)
	}
	log.Debugf("protein=%s", res.protein)

	err = store.Save(&archive.Record{
		Input:   res.input,
		RNA:     res.rna,
		Protein: res.protein,
		GCode:   gcode.ID,
		Time:    time.Now(),
	})
	if err != nil {
		log.Warning("Error saving to archive:", err)
	}

	return res, nil
}

func run() (summary *report.Summary, err error) {
	startTime := time.Now()
	summary = &report.Summary{}

	gcode, ok := bio.GeneticCodes[*gcodeID]
	if !ok {
		return nil, fmt.Errorf("couldn't load genetic code with id=%d", *gcodeID)
	}
	log.Infof("Genetic code: %d, %q", gcode.ID, gcode.Name)
	summary.GCode = gcode.ID

	dna, err := readInput(*inF, os.Stdin)
	if err != nil {
		return nil, err
	}

	var store *archive.Store
	if *dbF != "" {
		store, err = archive.Open(*dbF)
		if err != nil {
			return nil, fmt.Errorf("error opening database %s: %w", *dbF, err)
		}
		defer store.Close()
	}

	res, err := convert(dna, gcode, store)
	if err != nil {
		return nil, err
	}
	summary.Length = len(res.input)
	summary.NCodon = len(res.input) / 3
	summary.Cached = res.cached
	log.Infof("Converted %d nucleotides (%d codons)", summary.Length, summary.NCodon)

	outputs := []string{res.protein}
	if *rna {
		outputs = []string{res.rna, res.protein}
	}
	if err := writeOutput(*outF, os.Stdout, outputs...); err != nil {
		return nil, err
	}

	if *jsonF != "" || *plotF != "" {
		u, err := codon.Count(res.rna)
		if err != nil {
			return nil, err
		}
		log.Debug(u)
		summary.Composition = report.Composition(gcode, u)
	}

	if *plotF != "" {
		if err := report.PlotComposition(summary.Composition, *plotF); err != nil {
			log.Error("Error plotting composition:", err)
		}
	}

	deltaT := time.Since(startTime)
	log.Infof("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return summary, nil
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "dna2aa")
	logging.SetLevel(level, "archive")
	logging.SetLevel(level, "report")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	summary, err := run()
	if err != nil {
		log.Fatal(err)
	}
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		if err := summary.WriteJSON(*jsonF); err != nil {
			log.Error("Error creating json output file:", err)
		}
	}
}
