// Package session drives one interactive document pass end to end.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"unabbreviator/internal/apply"
	"unabbreviator/internal/classify"
	"unabbreviator/internal/dict"
	"unabbreviator/internal/fsutil"
	"unabbreviator/internal/resolve"
	"unabbreviator/internal/term"
	"unabbreviator/internal/textutil"
	"unabbreviator/internal/token"
)

// ErrUnsupportedInput reports a document that is not plain text.
var ErrUnsupportedInput = errors.New("unsupported input")

// Prompter yields a decision for one word token.
type Prompter interface {
	Resolve(ctx context.Context, doc string, tok token.Token, terms []string, shown, total int) (resolve.Decision, error)
}

// Options configure one pass.
type Options struct {
	// DryRun runs the full pass but writes nothing to disk.
	DryRun bool
	// MatchCase transfers each word's case pattern onto its replacement.
	MatchCase bool
}

// Result summarizes one pass.
type Result struct {
	// Output is the final document text, whether or not it was written.
	Output string
	// Expanded is the number of word tokens replaced.
	Expanded int
	// PromptsShown and PromptsTotal report prompt progress. The total is
	// fixed by the up-front classification.
	PromptsShown int
	PromptsTotal int
	// Stopped reports an early save-and-stop.
	Stopped bool
	// Aborted reports a user abort; nothing was written.
	Aborted bool
}

// Controller owns one interactive document pass.
type Controller struct {
	store    *dict.Store
	oracle   classify.Oracle
	prompter Prompter
	out      io.Writer
	opts     Options
}

// New assembles a Controller around a loaded store and a prompter.
func New(store *dict.Store, oracle classify.Oracle, prompter Prompter, out io.Writer, opts Options) *Controller {
	return &Controller{store: store, oracle: oracle, prompter: prompter, out: out, opts: opts}
}

// Run processes the document at inputPath and, unless the pass is dry-run or
// aborted, writes the result to outputPath and commits staged dictionary
// changes. The document file is only rewritten when at least one word was
// expanded.
func (c *Controller) Run(ctx context.Context, inputPath, outputPath string) (Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("read document: %w", err)
	}
	if textutil.LooksBinary(data) {
		return Result{}, fmt.Errorf("%w: %s is not plain text", ErrUnsupportedInput, inputPath)
	}

	doc := string(data)
	tokens := token.Tokenize(doc)

	// 1. Classify every word up front. The prompt total is fixed here;
	// decisions made later never reclassify other tokens.
	cats := make([]classify.Category, len(tokens))
	total := 0
	for i, tok := range tokens {
		if tok.Kind != token.Word {
			continue
		}
		cats[i] = classify.Word(tok.Text, c.store, c.oracle)
		if cats[i].NeedsPrompt() {
			total++
		}
	}
	log.Debug().Int("tokens", len(tokens)).Int("prompts", total).Msg("Classified document")

	// 2. Prompt for each word that needs a decision. Term lists are looked
	// up live so additions made earlier in the pass show up.
	edits := make(map[int]string)
	shown := 0
	stopped := false
	for i, tok := range tokens {
		if tok.Kind != token.Word || !cats[i].NeedsPrompt() {
			continue
		}

		var terms []string
		if cats[i] == classify.Known {
			entry, _ := c.store.Lookup(tok.Text)
			terms = entry.Terms
		}

		shown++
		decision, err := c.prompter.Resolve(ctx, doc, tok, terms, shown, total)
		if err != nil {
			return Result{}, err
		}

		switch decision.Action {
		case resolve.Expand:
			text := decision.Text
			if c.opts.MatchCase {
				text = textutil.TransferCase(tok.Text, text)
			}
			edits[i] = text
		case resolve.Stop:
			fmt.Fprintln(c.out, term.Warn("Saving and stopping..."))
			stopped = true
		case resolve.Abort:
			fmt.Fprintln(c.out, term.Error("Aborted. No changes saved."))
			c.store.Discard()
			return Result{Output: doc, PromptsShown: shown, PromptsTotal: total, Aborted: true}, nil
		}
		if stopped {
			break
		}
	}

	// 3. Apply decisions and persist.
	output := apply.Render(doc, tokens, edits)
	result := Result{
		Output:       output,
		Expanded:     len(edits),
		PromptsShown: shown,
		PromptsTotal: total,
		Stopped:      stopped,
	}

	if c.opts.DryRun {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, term.Rule())
		fmt.Fprintln(c.out, term.WarnBold("Dry run - changes not saved:"))
		fmt.Fprintln(c.out, output)
		c.store.Discard()
		return result, nil
	}

	if len(edits) > 0 {
		if err := fsutil.WriteFileAtomic(outputPath, []byte(output), 0644); err != nil {
			return Result{}, fmt.Errorf("write document %s: %w", outputPath, err)
		}
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, term.SuccessBold("File saved: "+outputPath))
	} else {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, term.Warn("No changes made."))
	}

	if err := c.store.Commit(); err != nil {
		return Result{}, err
	}

	return result, nil
}
