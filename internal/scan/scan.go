// Package scan audits note files for expandable words without prompting.
package scan

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"

	"unabbreviator/internal/classify"
	"unabbreviator/internal/filewalker"
	"unabbreviator/internal/textutil"
	"unabbreviator/internal/token"
	"unabbreviator/internal/worker"
)

// topUnknownLimit caps the aggregated unknown-word list.
const topUnknownLimit = 10

// FileReport summarizes the words of one file.
type FileReport struct {
	Path       string
	Words      int
	Known      int
	Unknown    int
	Ignored    int
	Dictionary int
	// UnknownWords counts each unknown word form in this file.
	UnknownWords map[string]int
}

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// Report aggregates a directory audit.
type Report struct {
	Files        []FileReport
	TotalWords   int
	TotalKnown   int
	TotalUnknown int
	// TopUnknown lists the most frequent unknown words across all files,
	// most frequent first.
	TopUnknown []WordCount
}

// Scanner classifies every word of every note file under a directory.
type Scanner struct {
	store   classify.Store
	oracle  classify.Oracle
	workers int
}

// New creates a Scanner reading classifications from store and oracle.
func New(store classify.Store, oracle classify.Oracle, workers int) *Scanner {
	return &Scanner{store: store, oracle: oracle, workers: workers}
}

// Run walks root and produces the aggregated report. Unreadable or binary
// files are logged and skipped rather than failing the audit.
func (s *Scanner) Run(ctx context.Context, root string) (Report, error) {
	entries, err := filewalker.NewWalker().Walk(root)
	if err != nil {
		return Report{}, err
	}

	pool := worker.NewPool(s.workers, s.scanFile)
	outcomes := pool.Execute(ctx, entries)
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("scan cancelled: %w", err)
	}

	var report Report
	unknownCounts := make(map[string]int)
	for _, o := range outcomes {
		if o.Err != nil {
			log.Warn().Err(o.Err).Str("path", o.Input.Path).Msg("Skipping file")
			continue
		}
		report.Files = append(report.Files, o.Result)
		report.TotalWords += o.Result.Words
		report.TotalKnown += o.Result.Known
		report.TotalUnknown += o.Result.Unknown
		for w, n := range o.Result.UnknownWords {
			unknownCounts[w] += n
		}
	}
	report.TopUnknown = topWords(unknownCounts, topUnknownLimit)

	log.Info().
		Int("files", len(report.Files)).
		Int("words", report.TotalWords).
		Int("unknown", report.TotalUnknown).
		Msg("Scan complete")
	return report, nil
}

func (s *Scanner) scanFile(ctx context.Context, entry filewalker.FileEntry) (FileReport, error) {
	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return FileReport{}, fmt.Errorf("read file: %w", err)
	}
	if textutil.LooksBinary(data) {
		return FileReport{}, fmt.Errorf("not plain text: %s", entry.Path)
	}

	report := FileReport{Path: entry.Path, UnknownWords: make(map[string]int)}
	for _, tok := range token.Tokenize(string(data)) {
		if tok.Kind != token.Word {
			continue
		}
		report.Words++
		switch classify.Word(tok.Text, s.store, s.oracle) {
		case classify.Known:
			report.Known++
		case classify.Unknown:
			report.Unknown++
			report.UnknownWords[tok.Text]++
		case classify.Ignored:
			report.Ignored++
		case classify.Dictionary:
			report.Dictionary++
		}
	}
	return report, nil
}

// topWords orders counts descending, ties alphabetically, capped at limit.
func topWords(counts map[string]int, limit int) []WordCount {
	out := make([]WordCount, 0, len(counts))
	for w, n := range counts {
		out = append(out, WordCount{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
