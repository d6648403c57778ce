package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"unabbreviator/internal/wordlist"
)

type Config struct {
	// AbbreviationsPath is the abbreviation file. The ignore file lives
	// beside it as ignored.yml.
	AbbreviationsPath string
	// WordlistPaths are probed in order for the system word list.
	WordlistPaths []string
	// ShortLine is the line length below which prompt context widens.
	ShortLine int
	// ProgressWidth is the progress bar cell count.
	ProgressWidth int
	// WorkerCount bounds scan concurrency.
	WorkerCount int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	return &Config{
		AbbreviationsPath: getEnv("UNABBR_ABBREVIATIONS", defaultAbbrevPath()),
		WordlistPaths:     getEnvList("UNABBR_WORDLISTS", wordlist.DefaultPaths),
		ShortLine:         getEnvInt("UNABBR_SHORT_LINE", 40),
		ProgressWidth:     getEnvInt("UNABBR_PROGRESS_WIDTH", 30),
		WorkerCount:       getEnvInt("UNABBR_WORKERS", 8),
	}
}

// IgnorePath returns the ignore file beside the abbreviation file.
func (c *Config) IgnorePath() string {
	return filepath.Join(filepath.Dir(c.AbbreviationsPath), "ignored.yml")
}

// defaultAbbrevPath is abbreviations.yml beside the executable, where the
// tool ships its starter dictionary.
func defaultAbbrevPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "abbreviations.yml"
	}
	return filepath.Join(filepath.Dir(exe), "abbreviations.yml")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return filepath.SplitList(v)
}
