package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadKeywords reads the first column of a CSV with a header row.
// Blank cells are skipped; case is left to the tally.
func LoadKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadKeywords(f)
}

func ReadKeywords(r io.Reader) ([]string, error) {
	cr := csv.NewReader(stripBOM(r))
	cr.FieldsPerRecord = -1

	var kws []string
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("keywords line %d: %w", line+1, err)
		}
		line++
		if line == 1 {
			continue // Skip header
		}
		if len(rec) == 0 {
			continue
		}
		if kw := strings.TrimSpace(rec[0]); kw != "" {
			kws = append(kws, kw)
		}
	}
	return kws, nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
