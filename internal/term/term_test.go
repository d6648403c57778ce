package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule(t *testing.T) {
	assert.Equal(t, 60, strings.Count(Rule(), "─"))
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name   string
		shown  int
		total  int
		text   string
		filled int
	}{
		{"zero of five", 0, 5, "0/5 words (0%)", 0},
		{"partway", 3, 7, "3/7 words (42%)", 12},
		{"complete", 5, 5, "5/5 words (100%)", 30},
		{"no prompts expected", 0, 0, "0/0 words (100%)", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.shown, tt.total, 30)
			assert.Contains(t, got, tt.text)
			assert.Equal(t, tt.filled, strings.Count(got, "█"))
			assert.Equal(t, 30-tt.filled, strings.Count(got, "░"))
		})
	}
}

func contextLines(s string) int {
	return strings.Count(s, "\n  ")
}

func TestContext(t *testing.T) {
	text := "first line here\nthe govt plans sweeping econ reform for the next decade\nlast line here"
	start := strings.Index(text, "govt")
	end := start + len("govt")

	t.Run("long line stands alone", func(t *testing.T) {
		got := Context(text, start, end, 40)
		assert.Contains(t, got, "Context:")
		assert.Contains(t, got, "govt")
		assert.Contains(t, got, "reform")
		assert.NotContains(t, got, "first line")
		assert.NotContains(t, got, "last line")
		assert.Equal(t, 1, contextLines(got))
	})

	t.Run("short line pulls in neighbours", func(t *testing.T) {
		short := "first line here\nthe govt plan\nlast line here"
		s := strings.Index(short, "govt")
		got := Context(short, s, s+len("govt"), 40)
		assert.Contains(t, got, "first line here")
		assert.Contains(t, got, "last line here")
		assert.Equal(t, 3, contextLines(got))
	})

	t.Run("short first line has no predecessor", func(t *testing.T) {
		text := "govt memo\nsecond line here"
		got := Context(text, 0, 4, 40)
		assert.Contains(t, got, "second line here")
		assert.Equal(t, 2, contextLines(got))
	})

	t.Run("short last line has no successor", func(t *testing.T) {
		text := "first line here\nends with econ"
		s := strings.Index(text, "econ")
		got := Context(text, s, s+4, 40)
		assert.Contains(t, got, "first line here")
		assert.Equal(t, 2, contextLines(got))
	})

	t.Run("single short line", func(t *testing.T) {
		got := Context("just govt", 5, 9, 40)
		assert.Equal(t, 1, contextLines(got))
	})
}

func TestMenuKnown(t *testing.T) {
	got := Menu("econ", []string{"economy", "economic", "economics"})
	assert.Contains(t, got, "Found abbreviation:")
	assert.Contains(t, got, "econ")
	assert.Contains(t, got, "[1] economy")
	assert.Contains(t, got, "[2] economic")
	assert.Contains(t, got, "[3] economics")
	assert.Contains(t, got, "[n] New expansion...")
	assert.Contains(t, got, "[s] Skip    [i] Ignore    [o] Once...")
	assert.Contains(t, got, "[v] Save & stop    [a] Abort")
	assert.NotContains(t, got, "[e] Add expansion")
}

func TestMenuUnknown(t *testing.T) {
	got := Menu("xyzzy", nil)
	assert.Contains(t, got, "Unknown word:")
	assert.Contains(t, got, "xyzzy")
	assert.Contains(t, got, "[e] Add expansion...")
	assert.Contains(t, got, "[s] Skip")
	assert.NotContains(t, got, "[n] New expansion")
	assert.NotContains(t, got, "[1]")
}

func TestPrompts(t *testing.T) {
	assert.Equal(t, "Choose [s]: ", ChoosePrompt("s"))
	assert.Equal(t, "Choose [1]: ", ChoosePrompt("1"))
	assert.Equal(t, "Enter expansion: ", InputPrompt("Enter expansion"))
}
