// Package frontmost finds the document focused in a supported macOS editor.
package frontmost

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNoDocument reports that no frontmost document could be determined.
var ErrNoDocument = errors.New("no frontmost document")

// queryTimeout bounds the osascript round trip.
const queryTimeout = 5 * time.Second

// script asks System Events which application is frontmost, then asks that
// application for the path of its front document. Applications without a
// document model fall through to the empty result.
const script = `tell application "System Events"
	set frontApp to name of first application process whose frontmost is true
end tell

if frontApp is "TextEdit" then
	tell application "TextEdit"
		if (count of documents) > 0 then
			set docPath to path of document 1
			return docPath
		end if
	end tell
else if frontApp is "Typora" then
	tell application "Typora"
		if (count of documents) > 0 then
			return path of document 1
		end if
	end tell
else
	-- generic document-based fallback
	tell application frontApp
		try
			if (count of documents) > 0 then
				return path of document 1
			end if
		end try
	end tell
end if
return ""`

// Document returns the absolute path of the document open in the frontmost
// supported application. Only available on macOS.
func Document(ctx context.Context) (string, error) {
	if runtime.GOOS != "darwin" {
		return "", fmt.Errorf("%w: only available on macOS", ErrNoDocument)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		return "", fmt.Errorf("%w: osascript: %v", ErrNoDocument, err)
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", ErrNoDocument
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNoDocument, path, err)
	}

	log.Debug().Str("path", path).Msg("Resolved frontmost document")
	return path, nil
}
