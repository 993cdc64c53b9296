package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Loader reads line-delimited word lists and feeds them to an insertion
// callback. The trie itself assumes lowercase ASCII, so the loader folds
// each line toward that alphabet (stripping combining marks, then
// lowercasing) and skips lines that still fall outside it, which keeps all
// input sanitation at this boundary. The loader is the only part of the
// package that performs I/O.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a loader that logs nowhere. Chain WithLogger to see
// skipped lines.
func NewLoader() *Loader {
	return &Loader{log: zap.NewNop()}
}

// WithLogger sets the logger used to report skipped lines and read errors.
func (ld *Loader) WithLogger(log *zap.Logger) *Loader {
	ld.log = log
	return ld
}

// Load reads one word per line from r, folds it to lowercase ASCII and
// passes it to insert. It returns the number of lines for which insert
// reported a new word. Blank lines and lines that cannot be folded into
// the a-z alphabet are skipped.
func (ld *Loader) Load(r io.Reader, insert func(string) bool) int {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	added := 0
	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		word, _, err := transform.String(transformer, raw)
		if err != nil {
			ld.log.Warn("skipping unfoldable line",
				zap.Int("line", line), zap.Error(err))
			continue
		}
		word = strings.ToLower(word)
		if !isLowerASCII(word) {
			ld.log.Warn("skipping word outside the a-z alphabet",
				zap.Int("line", line), zap.String("word", word))
			continue
		}
		if insert(word) {
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		ld.log.Warn("stopped reading word list early", zap.Error(err))
	}
	return added
}

// LoadFile opens the word list at path and delegates to Load. A non-nil
// error means the file could not be opened, as opposed to a readable file
// yielding zero new words.
func (ld *Loader) LoadFile(path string, insert func(string) bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return ld.Load(f, insert), nil
}

func isLowerASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
