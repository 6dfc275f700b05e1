// gcode is a tool to generate bio/gcodes.go with genetic codes in go
// format from the NCBI asn1 file.
//
// Usage:
//
//	gcode [-o bio/gcodes.go] gc.prt
//
// More information is available here:
// - https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
// - ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// GeneticCode is a single table of the asn1 file.
type GeneticCode struct {
	Name      string
	ShortName string
	ID        int
	Ncbieaa   string
	Sncbieaa  string
}

func (gc GeneticCode) String() string {
	return fmt.Sprintf("<GC: Name=%q, ShortName=%q, Id=%d, A=%q, S=%q>",
		gc.Name, gc.ShortName, gc.ID, gc.Ncbieaa, gc.Sncbieaa)
}

// GoString returns the bio.newGeneticCode call creating the table.
func (gc GeneticCode) GoString() string {
	return fmt.Sprintf("newGeneticCode(%d,\n%q,\n%q,\n%q)",
		gc.ID, gc.Name, gc.ShortName, gc.Ncbieaa)
}

// tokenKind is the kind of an asn1 token.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokAssign
	tokOpen
	tokClose
	tokComma
)

type token struct {
	kind tokenKind
	text string
	line int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of file"
	}
	return fmt.Sprintf("%q at line %d", t.text, t.line)
}

func isWordByte(b byte) bool {
	return b == '-' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// lex splits asn1 text into tokens. Comments ("--" till the end of
// line) are dropped.
func lex(data []byte) (toks []token, err error) {
	line := 1
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case bytes.HasPrefix(data[i:], []byte("--")):
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case bytes.HasPrefix(data[i:], []byte("::=")):
			toks = append(toks, token{tokAssign, "::=", line})
			i += 3
		case c == '{' || c == '}' || c == ',':
			kind := map[byte]tokenKind{'{': tokOpen, '}': tokClose, ',': tokComma}[c]
			toks = append(toks, token{kind, string(c), line})
			i++
		case c == '"':
			end := bytes.IndexByte(data[i+1:], '"')
			if end < 0 {
				return nil, fmt.Errorf("line %d: unfinished string literal", line)
			}
			s := string(data[i+1 : i+1+end])
			toks = append(toks, token{tokString, s, line})
			line += strings.Count(s, "\n")
			i += end + 2
		case isWordByte(c):
			j := i + 1
			for j < len(data) && isWordByte(data[j]) && !bytes.HasPrefix(data[j:], []byte("--")) {
				j++
			}
			toks = append(toks, token{tokWord, string(data[i:j]), line})
			i = j
		default:
			return nil, fmt.Errorf("line %d: unexpected character %q", line, c)
		}
	}
	return append(toks, token{kind: tokEOF, line: line}), nil
}

// parser is a recursive descent parser over asn1 tokens.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// expect consumes a token of the given kind (and text, if not empty).
func (p *parser) expect(kind tokenKind, text string) (token, error) {
	t := p.next()
	if t.kind != kind || (text != "" && t.text != text) {
		if text == "" {
			text = map[tokenKind]string{tokWord: "a word", tokString: "a string"}[kind]
		}
		return t, fmt.Errorf("expecting %s, found %v", text, t)
	}
	return t, nil
}

// table parses a single { name "...", id N, ... } block.
func (p *parser) table() (gc GeneticCode, err error) {
	if _, err = p.expect(tokOpen, "{"); err != nil {
		return
	}
	for {
		name, err := p.expect(tokWord, "")
		if err != nil {
			return gc, err
		}
		if err := p.field(&gc, name.text); err != nil {
			return gc, err
		}
		switch t := p.next(); t.kind {
		case tokComma:
		case tokClose:
			return gc, nil
		default:
			return gc, fmt.Errorf("expecting ',' or '}', found %v", t)
		}
	}
}

// field parses the value of a table field. Unknown fields with a
// single value are skipped.
func (p *parser) field(gc *GeneticCode, name string) error {
	switch name {
	case "name":
		t, err := p.expect(tokString, "")
		if err != nil {
			return err
		}
		// long names are wrapped over several lines
		s := strings.Join(strings.Fields(t.text), " ")
		// the first name is the full one, the second is short
		if gc.Name == "" {
			gc.Name = s
		} else {
			gc.ShortName = s
		}
	case "id":
		t, err := p.expect(tokWord, "")
		if err != nil {
			return err
		}
		if gc.ID, err = strconv.Atoi(t.text); err != nil {
			return fmt.Errorf("wrong id %v: %w", t, err)
		}
	case "ncbieaa", "sncbieaa":
		t, err := p.expect(tokString, "")
		if err != nil {
			return err
		}
		if name == "ncbieaa" {
			gc.Ncbieaa = t.text
		} else {
			gc.Sncbieaa = t.text
		}
	default:
		if t := p.next(); t.kind != tokWord && t.kind != tokString {
			return fmt.Errorf("no value for %s, found %v", name, t)
		}
	}
	return nil
}

// ParseAsn1 parses genetic codes from the NCBI asn1 file.
func ParseAsn1(rd io.Reader) ([]GeneticCode, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	toks, err := lex(data)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	for _, exp := range []token{{tokWord, "Genetic-code-table", 0}, {tokAssign, "::=", 0}, {tokOpen, "{", 0}} {
		if _, err := p.expect(exp.kind, exp.text); err != nil {
			return nil, err
		}
	}

	var res []GeneticCode
	if p.peek().kind == tokClose {
		p.next()
	} else {
		for done := false; !done; {
			gc, err := p.table()
			if err != nil {
				return nil, err
			}
			res = append(res, gc)
			switch t := p.next(); t.kind {
			case tokComma:
			case tokClose:
				done = true
			default:
				return nil, fmt.Errorf("expecting ',' or '}', found %v", t)
			}
		}
	}

	if t := p.next(); t.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %v after the table", t)
	}
	return res, nil
}

// Generate returns gofmt-ed source of bio/gcodes.go. Tables with
// wrong length are skipped.
func Generate(gcodes []GeneticCode) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintln(&b, "package bio")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// GeneticCodes is a map holding genetic codes.")
	fmt.Fprintln(&b, "// This file was generated using gcode program from NCBI genetic codes file.")
	fmt.Fprintln(&b, "var GeneticCodes = map[int]*GeneticCode{")
	for _, gc := range gcodes {
		if len(gc.Ncbieaa) != 64 {
			continue
		}
		fmt.Fprintf(&b, "%d: %#v,\n", gc.ID, gc)
	}
	fmt.Fprintln(&b, "}")

	return format.Source(b.Bytes())
}

var (
	app    = kingpin.New("gcode", "generate genetic code tables from NCBI gc.prt")
	input  = app.Arg("gc", "NCBI genetic codes file in asn1 format").Required().ExistingFile()
	output = app.Flag("out", "output file, stdout by default").Short('o').String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	f, err := os.Open(*input)
	if err != nil {
		app.Fatalf("%v", err)
	}
	defer f.Close()

	gcodes, err := ParseAsn1(f)
	if err != nil {
		app.Fatalf("error parsing %s: %v", *input, err)
	}

	src, err := Generate(gcodes)
	if err != nil {
		app.Fatalf("error formatting source: %v", err)
	}

	if *output == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*output, src, 0666); err != nil {
		app.Fatalf("%v", err)
	}
}
