package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "hello", NormalizeQuery("  HeLLo \n"))
	assert.Equal(t, "", NormalizeQuery(" \t "))
	assert.True(t, IsExitCommand("exit", "exit"))
	assert.True(t, IsExitCommand("quit", " QUIT"))
	assert.False(t, IsExitCommand("", ""))
	assert.False(t, IsExitCommand("exits", "exit"))
}

func TestTokenFilter(t *testing.T) {
	f, err := NewTokenFilter("")
	require.NoError(t, err)

	tests := []struct {
		line     string
		expected []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"  it's a well-known fact  ", []string{"it's", "a", "well-known", "fact"}},
		{"born in 1984 (or so)", []string{"born", "in", "or", "so"}},
		{"a  b", []string{"a", "b"}},
		{`[brackets] \back\ {curly} "quotes" ~tilde^`, []string{"brackets", "back", "curly", "quotes", "tilde"}},
		{"   ", nil},
		{"123 456", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, f.Tokens(tt.line), tt.line)
	}

	_, err = NewTokenFilter("(")
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0", FormatWithCommas(0))
	assert.Equal(t, "999", FormatWithCommas(999))
	assert.Equal(t, "1,234,567", FormatWithCommas(1234567))
	assert.Equal(t, "2.50", FormatMillis(2500*time.Microsecond))
}

func TestGetAbsolutePath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, "unknown", GetAbsolutePath(""))
	assert.Equal(t, filepath.Join(cwd, "text", "text.txt"), GetAbsolutePath(filepath.Join("text", "text.txt")))

	abs := filepath.Join(t.TempDir(), "corpus.txt")
	assert.Equal(t, abs, GetAbsolutePath(abs))
}

func TestPathResolverConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")

	pr, err := NewPathResolver()
	require.NoError(t, err)

	assert.Equal(t, AppDirName, filepath.Base(pr.ConfigDir()))
	assert.Equal(t, filepath.Join(pr.ConfigDir(), "config.toml"), pr.GetConfigPath("config.toml"))
	assert.DirExists(t, pr.ConfigDir())
}

func TestValidateTextFile(t *testing.T) {
	dir := t.TempDir()

	text := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(text, []byte("hello"), 0644))
	assert.NoError(t, ValidateTextFile(text))

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	assert.ErrorContains(t, ValidateTextFile(empty), "empty")

	assert.ErrorContains(t, ValidateTextFile(dir), "not a regular file")
	assert.ErrorIs(t, ValidateTextFile(filepath.Join(dir, "missing.txt")), os.ErrNotExist)

	if runtime.GOOS != "windows" {
		assert.ErrorContains(t, ValidateTextFile(os.DevNull), "not a regular file")
	}
}
