package dict

import (
	"errors"
	"fmt"
	"os"

	"unabbreviator/internal/fsutil"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var (
	// ErrLoad marks an unreadable or malformed abbreviation/ignore source.
	ErrLoad = errors.New("load dictionary")
	// ErrSave marks a failed write of staged dictionary changes.
	ErrSave = errors.New("save dictionary")
)

// Entry is one abbreviation record: a shorthand key and its expansions in
// presentation order.
type Entry struct {
	Brev  string   `yaml:"brev"`
	Terms []string `yaml:"terms"`
}

// Store holds the abbreviation entries and the ignore set loaded from their
// YAML sources, plus a buffer of staged mutations. Nothing reaches disk
// until Commit.
type Store struct {
	abbrevPath string
	ignorePath string

	entries []Entry        // file order, preserved on save
	index   map[string]int // brev → position in entries

	ignored    []string // file order, preserved on save
	ignoredSet map[string]struct{}

	staged staging
}

// staging buffers session mutations until commit or discard.
type staging struct {
	terms      map[string][]string // brev → terms appended this session
	newBrevs   []string            // creation order of brand-new entries
	newSet     map[string]struct{}
	ignored    []string
	ignoredSet map[string]struct{}
}

// Load reads the abbreviation source and the ignore source. The ignore file
// may be absent; the abbreviation file must exist and parse as a sequence of
// {brev, terms} records.
func Load(abbrevPath, ignorePath string) (*Store, error) {
	data, err := os.ReadFile(abbrevPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, abbrevPath, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrLoad, abbrevPath, err)
	}
	for i, e := range entries {
		if e.Brev == "" || len(e.Terms) == 0 {
			return nil, fmt.Errorf("%w: %s: entry %d needs both brev and terms", ErrLoad, abbrevPath, i)
		}
	}

	ignored, err := loadIgnored(ignorePath)
	if err != nil {
		return nil, err
	}

	s := &Store{
		abbrevPath: abbrevPath,
		ignorePath: ignorePath,
		entries:    entries,
		index:      make(map[string]int, len(entries)),
		ignored:    ignored,
		ignoredSet: make(map[string]struct{}, len(ignored)),
	}
	for i, e := range entries {
		s.index[e.Brev] = i
	}
	for _, w := range ignored {
		s.ignoredSet[w] = struct{}{}
	}
	s.resetStaging()

	log.Debug().
		Int("abbreviations", len(entries)).
		Int("ignored", len(ignored)).
		Msg("Loaded dictionary sources")

	return s, nil
}

func loadIgnored(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, path, err)
	}

	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrLoad, path, err)
	}
	return words, nil
}

// Lookup returns the entry for word by exact, case-sensitive key match. The
// returned terms merge the loaded list with any staged this session.
func (s *Store) Lookup(word string) (Entry, bool) {
	if i, ok := s.index[word]; ok {
		e := s.entries[i]
		extra := s.staged.terms[word]
		if len(extra) == 0 {
			return e, true
		}
		merged := make([]string, 0, len(e.Terms)+len(extra))
		merged = append(merged, e.Terms...)
		merged = append(merged, extra...)
		return Entry{Brev: e.Brev, Terms: merged}, true
	}

	if _, ok := s.staged.newSet[word]; ok {
		terms := s.staged.terms[word]
		return Entry{Brev: word, Terms: append([]string(nil), terms...)}, true
	}

	return Entry{}, false
}

// IsIgnored reports whether word is in the ignore set, exact match, staged
// additions included.
func (s *Store) IsIgnored(word string) bool {
	if _, ok := s.ignoredSet[word]; ok {
		return true
	}
	_, ok := s.staged.ignoredSet[word]
	return ok
}

// StageEntry buffers a brand-new abbreviation keyed by brev with term as its
// first expansion. If brev already exists the term is appended to it.
func (s *Store) StageEntry(brev, term string) {
	s.stage(brev, term)
}

// StageTerm buffers an additional expansion for an existing or staged
// abbreviation. Terms already present for brev are never duplicated.
func (s *Store) StageTerm(brev, term string) {
	s.stage(brev, term)
}

func (s *Store) stage(brev, term string) {
	if s.hasTerm(brev, term) {
		return
	}
	if _, exists := s.index[brev]; !exists {
		if _, stagedNew := s.staged.newSet[brev]; !stagedNew {
			s.staged.newBrevs = append(s.staged.newBrevs, brev)
			s.staged.newSet[brev] = struct{}{}
		}
	}
	s.staged.terms[brev] = append(s.staged.terms[brev], term)
}

func (s *Store) hasTerm(brev, term string) bool {
	if i, ok := s.index[brev]; ok {
		for _, t := range s.entries[i].Terms {
			if t == term {
				return true
			}
		}
	}
	for _, t := range s.staged.terms[brev] {
		if t == term {
			return true
		}
	}
	return false
}

// StageIgnore buffers word into the ignore set. Staging an already-ignored
// word has no effect.
func (s *Store) StageIgnore(word string) {
	if s.IsIgnored(word) {
		return
	}
	s.staged.ignored = append(s.staged.ignored, word)
	s.staged.ignoredSet[word] = struct{}{}
}

// Dirty reports whether any staged mutations await commit.
func (s *Store) Dirty() bool {
	return len(s.staged.terms) > 0 || len(s.staged.ignored) > 0
}

// Counts returns the number of abbreviation entries and ignored words,
// staged additions included.
func (s *Store) Counts() (abbrevs, ignored int) {
	return len(s.entries) + len(s.staged.newBrevs), len(s.ignored) + len(s.staged.ignored)
}

// Commit writes staged mutations to disk, one atomic replace per dirty file.
// Existing entries keep their position; new entries and new ignore words
// append. On success the staged view becomes the loaded view.
func (s *Store) Commit() error {
	entries := s.mergedEntries()
	ignored := s.mergedIgnored()

	if len(s.staged.terms) > 0 {
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("%w: encode abbreviations: %v", ErrSave, err)
		}
		if err := fsutil.WriteFileAtomic(s.abbrevPath, data, 0644); err != nil {
			return fmt.Errorf("%w: write %s: %v", ErrSave, s.abbrevPath, err)
		}
		log.Debug().Str("path", s.abbrevPath).Int("entries", len(entries)).Msg("Saved abbreviations")
	}

	if len(s.staged.ignored) > 0 {
		data, err := yaml.Marshal(ignored)
		if err != nil {
			return fmt.Errorf("%w: encode ignored words: %v", ErrSave, err)
		}
		if err := fsutil.WriteFileAtomic(s.ignorePath, data, 0644); err != nil {
			return fmt.Errorf("%w: write %s: %v", ErrSave, s.ignorePath, err)
		}
		log.Debug().Str("path", s.ignorePath).Int("words", len(ignored)).Msg("Saved ignored words")
	}

	s.entries = entries
	s.index = make(map[string]int, len(entries))
	for i, e := range entries {
		s.index[e.Brev] = i
	}
	s.ignored = ignored
	for _, w := range s.staged.ignored {
		s.ignoredSet[w] = struct{}{}
	}
	s.resetStaging()

	return nil
}

// Discard drops all staged mutations without writing anything.
func (s *Store) Discard() {
	s.resetStaging()
}

func (s *Store) resetStaging() {
	s.staged = staging{
		terms:      make(map[string][]string),
		newSet:     make(map[string]struct{}),
		ignoredSet: make(map[string]struct{}),
	}
}

func (s *Store) mergedEntries() []Entry {
	out := make([]Entry, 0, len(s.entries)+len(s.staged.newBrevs))
	for i, e := range s.entries {
		extra := s.staged.terms[e.Brev]
		// Staged terms attach to the indexed occurrence only, in case the
		// source file carried a duplicate key.
		if len(extra) == 0 || s.index[e.Brev] != i {
			out = append(out, e)
			continue
		}
		merged := make([]string, 0, len(e.Terms)+len(extra))
		merged = append(merged, e.Terms...)
		merged = append(merged, extra...)
		out = append(out, Entry{Brev: e.Brev, Terms: merged})
	}
	for _, brev := range s.staged.newBrevs {
		out = append(out, Entry{
			Brev:  brev,
			Terms: append([]string(nil), s.staged.terms[brev]...),
		})
	}
	return out
}

func (s *Store) mergedIgnored() []string {
	out := make([]string, 0, len(s.ignored)+len(s.staged.ignored))
	out = append(out, s.ignored...)
	out = append(out, s.staged.ignored...)
	return out
}
