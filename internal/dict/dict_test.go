package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const abbrevFixture = `- brev: govt
  terms:
    - government
- brev: econ
  terms:
    - economy
    - economic
    - economics
`

const ignoreFixture = `- asap
- fyi
`

func writeFixtures(t *testing.T) (abbrevPath, ignorePath string) {
	t.Helper()
	dir := t.TempDir()
	abbrevPath = filepath.Join(dir, "abbreviations.yml")
	ignorePath = filepath.Join(dir, "ignored.yml")
	require.NoError(t, os.WriteFile(abbrevPath, []byte(abbrevFixture), 0644))
	require.NoError(t, os.WriteFile(ignorePath, []byte(ignoreFixture), 0644))
	return abbrevPath, ignorePath
}

func TestLoad(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	abbrevs, ignored := s.Counts()
	assert.Equal(t, 2, abbrevs)
	assert.Equal(t, 2, ignored)

	e, ok := s.Lookup("econ")
	require.True(t, ok)
	assert.Equal(t, []string{"economy", "economic", "economics"}, e.Terms)

	_, ok = s.Lookup("nonesuch")
	assert.False(t, ok)

	assert.True(t, s.IsIgnored("asap"))
	assert.False(t, s.IsIgnored("govt"))
	assert.False(t, s.Dirty())
}

func TestLoadCaseSensitive(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	_, ok := s.Lookup("Govt")
	assert.False(t, ok)
	assert.False(t, s.IsIgnored("ASAP"))
}

func TestLoadMissingIgnoreFile(t *testing.T) {
	abbrevPath, _ := writeFixtures(t)
	ignorePath := filepath.Join(filepath.Dir(abbrevPath), "no-such-ignored.yml")

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	_, ignored := s.Counts()
	assert.Zero(t, ignored)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing abbreviations file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Load(filepath.Join(dir, "nope.yml"), filepath.Join(dir, "ignored.yml"))
		assert.ErrorIs(t, err, ErrLoad)
	})

	t.Run("malformed abbreviations yaml", func(t *testing.T) {
		dir := t.TempDir()
		abbrevPath := filepath.Join(dir, "abbreviations.yml")
		require.NoError(t, os.WriteFile(abbrevPath, []byte("{not: [valid"), 0644))

		_, err := Load(abbrevPath, filepath.Join(dir, "ignored.yml"))
		assert.ErrorIs(t, err, ErrLoad)
	})

	t.Run("entry without terms", func(t *testing.T) {
		dir := t.TempDir()
		abbrevPath := filepath.Join(dir, "abbreviations.yml")
		require.NoError(t, os.WriteFile(abbrevPath, []byte("- brev: govt\n  terms: []\n"), 0644))

		_, err := Load(abbrevPath, filepath.Join(dir, "ignored.yml"))
		assert.ErrorIs(t, err, ErrLoad)
	})

	t.Run("malformed ignore yaml", func(t *testing.T) {
		abbrevPath, _ := writeFixtures(t)
		ignorePath := filepath.Join(filepath.Dir(abbrevPath), "bad-ignored.yml")
		require.NoError(t, os.WriteFile(ignorePath, []byte("key: value\n"), 0644))

		_, err := Load(abbrevPath, ignorePath)
		assert.ErrorIs(t, err, ErrLoad)
	})
}

func TestStagingInvisibleOnDisk(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	s.StageTerm("govt", "governmental")
	s.StageEntry("xyzzy", "placeholder term")
	s.StageIgnore("foobar")

	abbrevData, err := os.ReadFile(abbrevPath)
	require.NoError(t, err)
	assert.Equal(t, abbrevFixture, string(abbrevData))

	ignoreData, err := os.ReadFile(ignorePath)
	require.NoError(t, err)
	assert.Equal(t, ignoreFixture, string(ignoreData))
}

func TestStagedLookupMergesTerms(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	s.StageTerm("govt", "governmental")

	e, ok := s.Lookup("govt")
	require.True(t, ok)
	assert.Equal(t, []string{"government", "governmental"}, e.Terms)
	assert.True(t, s.Dirty())
}

func TestStagedNewEntry(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	s.StageEntry("xyzzy", "placeholder term")

	e, ok := s.Lookup("xyzzy")
	require.True(t, ok)
	assert.Equal(t, "xyzzy", e.Brev)
	assert.Equal(t, []string{"placeholder term"}, e.Terms)

	abbrevs, _ := s.Counts()
	assert.Equal(t, 3, abbrevs)
}

func TestStagingIdempotent(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	t.Run("duplicate of loaded term is dropped", func(t *testing.T) {
		s.StageTerm("govt", "government")
		assert.False(t, s.Dirty())
	})

	t.Run("identical term staged twice", func(t *testing.T) {
		s.StageTerm("govt", "governmental")
		s.StageTerm("govt", "governmental")

		e, _ := s.Lookup("govt")
		assert.Equal(t, []string{"government", "governmental"}, e.Terms)
	})

	t.Run("identical entry staged twice", func(t *testing.T) {
		s.StageEntry("xyzzy", "placeholder term")
		s.StageEntry("xyzzy", "placeholder term")

		e, _ := s.Lookup("xyzzy")
		assert.Equal(t, []string{"placeholder term"}, e.Terms)
	})

	t.Run("ignored word staged twice", func(t *testing.T) {
		s.StageIgnore("foobar")
		s.StageIgnore("foobar")
		s.StageIgnore("asap") // already on disk

		_, ignored := s.Counts()
		assert.Equal(t, 3, ignored)
	})
}

func TestDiscard(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	s.StageTerm("govt", "governmental")
	s.StageEntry("xyzzy", "placeholder term")
	s.StageIgnore("foobar")
	s.Discard()

	assert.False(t, s.Dirty())

	e, _ := s.Lookup("govt")
	assert.Equal(t, []string{"government"}, e.Terms)

	_, ok := s.Lookup("xyzzy")
	assert.False(t, ok)
	assert.False(t, s.IsIgnored("foobar"))
}

func TestCommit(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	s.StageTerm("govt", "governmental")
	s.StageEntry("xyzzy", "placeholder term")
	s.StageIgnore("foobar")

	require.NoError(t, s.Commit())
	assert.False(t, s.Dirty())

	// Reload from disk and check placement.
	reloaded, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	e, ok := reloaded.Lookup("govt")
	require.True(t, ok)
	assert.Equal(t, []string{"government", "governmental"}, e.Terms)

	e, ok = reloaded.Lookup("xyzzy")
	require.True(t, ok)
	assert.Equal(t, []string{"placeholder term"}, e.Terms)

	assert.True(t, reloaded.IsIgnored("asap"))
	assert.True(t, reloaded.IsIgnored("foobar"))
}

func TestCommitPreservesOrder(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	s.StageEntry("xyzzy", "placeholder term")
	require.NoError(t, s.Commit())

	var entries []Entry
	data, err := os.ReadFile(abbrevPath)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &entries))

	require.Len(t, entries, 3)
	assert.Equal(t, "govt", entries[0].Brev)
	assert.Equal(t, "econ", entries[1].Brev)
	assert.Equal(t, "xyzzy", entries[2].Brev)
}

func TestCommitTouchesOnlyDirtyFiles(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	s.StageIgnore("foobar")
	require.NoError(t, s.Commit())

	abbrevData, err := os.ReadFile(abbrevPath)
	require.NoError(t, err)
	assert.Equal(t, abbrevFixture, string(abbrevData))

	ignoreData, err := os.ReadFile(ignorePath)
	require.NoError(t, err)
	assert.Contains(t, string(ignoreData), "foobar")
}

func TestCommitNothingStaged(t *testing.T) {
	abbrevPath, ignorePath := writeFixtures(t)

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)
	require.NoError(t, s.Commit())

	abbrevData, err := os.ReadFile(abbrevPath)
	require.NoError(t, err)
	assert.Equal(t, abbrevFixture, string(abbrevData))
}

func TestCommitSaveError(t *testing.T) {
	abbrevPath, _ := writeFixtures(t)
	ignorePath := filepath.Join(filepath.Dir(abbrevPath), "missing-dir", "ignored.yml")

	s, err := Load(abbrevPath, ignorePath)
	require.NoError(t, err)

	s.StageIgnore("foobar")
	err = s.Commit()
	assert.ErrorIs(t, err, ErrSave)

	// The abbreviations file is untouched by the failed commit.
	abbrevData, readErr := os.ReadFile(abbrevPath)
	require.NoError(t, readErr)
	assert.Equal(t, abbrevFixture, string(abbrevData))
}
