package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "namestat")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Config directory should exist")

	logDir := filepath.Join(tmpDir, ".local", "share", "namestat",
		"logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Log directory should exist")
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}
}

// TestTouchDir_FileInTheWay verifies a file blocking a directory
// path gives CreateDirError.
func TestTouchDir_FileInTheWay(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := touchDir(filepath.Join(blocker, "sub"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
}

// TestEnsureFiles_Create verifies default files are written from
// embedded content.
func TestEnsureFiles_Create(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		file    string
		content string
	}{
		{"config", EnsureConfigFile, "config.yaml", ConfigYAML},
		{"name lists", EnsureNameListsFile, "namelists.yaml", NameListsYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))
			require.NoError(t, tt.fn(tmpDir))

			path := filepath.Join(tmpDir, ".config", "namestat", tt.file)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(content))
		})
	}
}

// TestEnsureFiles_Idempotent verifies existing files are not
// overwritten.
func TestEnsureFiles_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	path := filepath.Join(tmpDir, ".config", "namestat", "namelists.yaml")
	custom := "heuristic:\n  female_endings: а\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	require.NoError(t, EnsureNameListsFile(tmpDir))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

// TestEnsureConfigFile_NoDir verifies missing config dir gives
// CopyFileError.
func TestEnsureConfigFile_NoDir(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, errcode.CopyFileError, err.(*gn.Error).Code)
}

// TestEmbedded verifies embedded defaults have expected sections.
func TestEmbedded(t *testing.T) {
	assert.Contains(t, ConfigYAML, "parser:")
	assert.Contains(t, ConfigYAML, "gender:")
	assert.Contains(t, ConfigYAML, "log:")
	assert.Contains(t, NameListsYAML, "male_exceptions")
	assert.Contains(t, NameListsYAML, "forced_female")
}

func TestReadSource(t *testing.T) {
	text := "<tbody><tr><td><a href=\"1\">Иванов Пётр</a></td></tr>"
	tmpDir := t.TempDir()

	t.Run("cp1251", func(t *testing.T) {
		bs, err := charmap.Windows1251.NewEncoder().String(text)
		require.NoError(t, err)
		path := filepath.Join(tmpDir, "cp1251.html")
		require.NoError(t, os.WriteFile(path, []byte(bs), 0644))

		res, err := ReadSource(path, "cp1251")
		require.NoError(t, err)
		assert.Equal(t, text, res)
	})

	t.Run("utf-8", func(t *testing.T) {
		path := filepath.Join(tmpDir, "utf8.html")
		require.NoError(t, os.WriteFile(path, []byte(text), 0644))

		res, err := ReadSource(path, "utf-8")
		require.NoError(t, err)
		assert.Equal(t, text, res)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSource(filepath.Join(tmpDir, "nope.html"), "utf-8")
		require.Error(t, err)
		gnErr := err.(*gn.Error)
		assert.Equal(t, errcode.ReadFileError, gnErr.Code)
		assert.ErrorIs(t, gnErr.Err, os.ErrNotExist)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := Decode([]byte(text), "koi8-r", "doc.html")
		require.Error(t, err)
		gnErr := err.(*gn.Error)
		assert.Equal(t, errcode.UnknownEncodingError, gnErr.Code)
		assert.Equal(t, "koi8-r", gnErr.Vars[0])
	})
}

func TestDecodeBrokenUTF8(t *testing.T) {
	bs := append([]byte("Пётр "), 0xff, 0xfe)
	res, err := Decode(bs, "utf-8", "doc.html")
	require.NoError(t, err)
	assert.Contains(t, res, "Пётр")
}
