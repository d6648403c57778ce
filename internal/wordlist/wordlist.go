package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultPaths are the platform word files probed in order.
var DefaultPaths = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// List answers whether a word is an ordinary word of the language, backed by
// a platform word file read fresh at construction.
type List struct {
	words map[string]struct{}
	path  string
}

// Load reads the first word file that exists among paths, or DefaultPaths
// when none are given. Entries are folded to lower case. When no word file
// exists the list loads empty and every word looks unknown.
func Load(paths ...string) (*List, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}

	l := &List{words: make(map[string]struct{})}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := l.readFile(path); err != nil {
			return nil, err
		}

		l.path = path
		log.Debug().Str("path", path).Int("words", len(l.words)).Msg("Loaded system word list")
		return l, nil
	}

	log.Warn().Strs("paths", paths).Msg("No system word list found, every word will look unknown")
	return l, nil
}

func (l *List) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			l.words[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read word list %s: %w", path, err)
	}
	return nil
}

// Size returns the number of loaded words.
func (l *List) Size() int {
	return len(l.words)
}

// Contains reports whether word or any derived base form of it is in the
// list. Matching is case-insensitive.
func (l *List) Contains(word string) bool {
	w := strings.ToLower(word)
	if _, ok := l.words[w]; ok {
		return true
	}
	for _, v := range variants(w) {
		if _, ok := l.words[v]; ok {
			return true
		}
	}
	return false
}
