package core

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed phrases.txt
var defaultPhrases string

// ErrEmptyCatalog is returned when a phrase source yields no phrases.
var ErrEmptyCatalog = errors.New("phrase catalog is empty")

// Catalog is the canonical, ordered list of phrases. IDs and original
// indices are stable for a given source.
type Catalog struct {
	phrases []Phrase
	byID    map[string]int
}

// DefaultCatalog returns the built-in phrase list.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(strings.NewReader(defaultPhrases))
	if err != nil {
		// The embedded list is fixed at build time.
		panic(err)
	}
	return c
}

// LoadCatalog reads a newline-delimited phrase file.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phrases: %w", err)
	}
	defer f.Close()
	return ParseCatalog(f)
}

// ParseCatalog reads one phrase per line. Blank lines and lines starting
// with '#' are skipped.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := len(c.phrases)
		p := Phrase{
			ID:            fmt.Sprintf("phrase-%d", idx+1),
			Text:          line,
			OriginalIndex: idx,
		}
		c.byID[p.ID] = idx
		c.phrases = append(c.phrases, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read phrases: %w", err)
	}
	if len(c.phrases) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Phrases returns a copy of the catalog in canonical order.
func (c *Catalog) Phrases() []Phrase {
	out := make([]Phrase, len(c.phrases))
	copy(out, c.phrases)
	return out
}

// Lookup finds a phrase by ID.
func (c *Catalog) Lookup(id string) (Phrase, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Phrase{}, false
	}
	return c.phrases[idx], true
}

// Len returns the number of phrases.
func (c *Catalog) Len() int {
	return len(c.phrases)
}
