package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// stdio is the file name meaning standard input or output.
const stdio = "-"

// readInput returns the contents of a file, or a single line from
// stdin if the file name is "-".
func readInput(fn string, stdin io.Reader) (string, error) {
	if fn == stdio {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("error when reading stdin: %w", err)
		}
		return line, nil
	}
	s, err := mapFile(fn)
	if err != nil {
		return "", fmt.Errorf("error when reading %s: %w", fn, err)
	}
	return s, nil
}

// mapFile reads the whole file using mmap.
func mapFile(fn string) (string, error) {
	fp, err := os.Open(fn)
	if err != nil {
		return "", err
	}
	defer fp.Close()

	fi, err := fp.Stat()
	if err != nil {
		return "", err
	}
	// empty files cannot be mapped
	if fi.Size() == 0 {
		return "", nil
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer mm.Unmap()
	return string(mm), nil
}

// writeOutput writes results to a file, or to stdout if the file
// name is "-". On stdout every result is followed by a newline, in a
// file results are separated by newlines.
func writeOutput(fn string, stdout io.Writer, results ...string) error {
	if fn == stdio {
		for _, r := range results {
			if _, err := fmt.Fprintln(stdout, r); err != nil {
				return fmt.Errorf("error when writing stdout: %w", err)
			}
		}
		return nil
	}
	err := os.WriteFile(fn, []byte(strings.Join(results, "\n")), 0666)
	if err != nil {
		return fmt.Errorf("error when writing %s: %w", fn, err)
	}
	return nil
}
