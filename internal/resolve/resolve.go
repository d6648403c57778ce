// Package resolve drives the per-word decision prompt.
package resolve

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"unabbreviator/internal/term"
	"unabbreviator/internal/token"
)

// ErrInterrupted reports that input ended or the context was cancelled while
// a prompt was waiting for an answer.
var ErrInterrupted = errors.New("interrupted")

// Action is the outcome a prompt produced for one word.
type Action int

const (
	// Skip leaves the word as written.
	Skip Action = iota
	// Expand replaces the word with the decision text.
	Expand
	// Ignore leaves the word as written and marks it never-ask-again.
	Ignore
	// Stop saves the work done so far and ends the pass early.
	Stop
	// Abort discards all work and ends the pass.
	Abort
)

// Decision is the outcome of one prompt.
type Decision struct {
	// Action taken for the word.
	Action Action
	// Text is the replacement text for Expand decisions.
	Text string
}

// Store is the slice of the abbreviation store the prompt mutates.
type Store interface {
	StageEntry(brev, term string)
	StageTerm(brev, term string)
	StageIgnore(word string)
}

// Options tune prompt rendering.
type Options struct {
	// ShortLine is the line length below which the context widens to the
	// neighbouring lines.
	ShortLine int
	// ProgressWidth is the progress bar cell count.
	ProgressWidth int
}

// Resolver prompts the user for one decision at a time, reading answers line
// by line from a single input stream.
type Resolver struct {
	out   io.Writer
	store Store
	lines chan string
	opts  Options
}

// New starts a Resolver reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer, store Store, opts Options) *Resolver {
	if opts.ShortLine == 0 {
		opts.ShortLine = 40
	}
	if opts.ProgressWidth == 0 {
		opts.ProgressWidth = 30
	}

	r := &Resolver{out: out, store: store, lines: make(chan string), opts: opts}
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			r.lines <- scanner.Text()
		}
		close(r.lines)
	}()
	return r
}

// Resolve shows the prompt for one word token and blocks until the user
// answers. A non-empty terms list presents the known-abbreviation menu; an
// empty list the unknown-word menu. Dictionary staging for the n, e and i
// keys happens here; the caller only sees the resulting Decision.
func (r *Resolver) Resolve(ctx context.Context, doc string, tok token.Token, terms []string, shown, total int) (Decision, error) {
	word := tok.Text
	known := len(terms) > 0

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, term.Rule())
	if total > 0 {
		fmt.Fprintln(r.out, term.Progress(shown, total, r.opts.ProgressWidth))
	}
	fmt.Fprintln(r.out, term.Context(doc, tok.Start, tok.End, r.opts.ShortLine))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, term.Menu(word, terms))

	// A single known term resolves on plain Enter; everything else
	// defaults to skip.
	def := "s"
	if len(terms) == 1 {
		def = "1"
	}

	for {
		fmt.Fprint(r.out, term.ChoosePrompt(def))
		line, err := r.readLine(ctx)
		if err != nil {
			return Decision{}, err
		}
		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == "" {
			choice = def
		}

		switch {
		case choice == "s":
			return Decision{Action: Skip}, nil

		case choice == "i":
			r.store.StageIgnore(word)
			fmt.Fprintln(r.out, term.Success(fmt.Sprintf("Added %q to ignored words.", word)))
			return Decision{Action: Ignore}, nil

		case choice == "v":
			return Decision{Action: Stop}, nil

		case choice == "a":
			return Decision{Action: Abort}, nil

		case choice == "o":
			text, err := r.readExpansion(ctx, "Enter expansion (one-time)")
			if err != nil {
				return Decision{}, err
			}
			if text == "" {
				continue
			}
			return Decision{Action: Expand, Text: text}, nil

		case choice == "n" && known:
			text, err := r.readExpansion(ctx, "Enter new expansion")
			if err != nil {
				return Decision{}, err
			}
			if text == "" {
				continue
			}
			if !hasTerm(terms, text) {
				r.store.StageTerm(word, text)
				fmt.Fprintln(r.out, term.Success(fmt.Sprintf("Added %q to abbreviations for %q.", text, word)))
			}
			return Decision{Action: Expand, Text: text}, nil

		case choice == "e" && !known:
			text, err := r.readExpansion(ctx, "Enter expansion")
			if err != nil {
				return Decision{}, err
			}
			if text == "" {
				continue
			}
			r.store.StageEntry(word, text)
			fmt.Fprintln(r.out, term.Success(fmt.Sprintf("Added abbreviation %q -> %q.", word, text)))
			return Decision{Action: Expand, Text: text}, nil

		case known && isDigits(choice):
			idx, _ := strconv.Atoi(choice)
			if idx >= 1 && idx <= len(terms) {
				return Decision{Action: Expand, Text: terms[idx-1]}, nil
			}
			fmt.Fprintln(r.out, term.Error("Invalid choice."))

		default:
			fmt.Fprintln(r.out, term.Error("Invalid choice."))
		}
	}
}

func (r *Resolver) readExpansion(ctx context.Context, label string) (string, error) {
	fmt.Fprint(r.out, term.InputPrompt(label))
	line, err := r.readLine(ctx)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(line)
	if text == "" {
		fmt.Fprintln(r.out, term.Error("Empty expansion not allowed."))
	}
	return text, nil
}

func (r *Resolver) readLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-r.lines:
		if !ok {
			return "", fmt.Errorf("%w: input closed", ErrInterrupted)
		}
		return line, nil
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
	}
}

func hasTerm(terms []string, text string) bool {
	for _, t := range terms {
		if t == text {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
