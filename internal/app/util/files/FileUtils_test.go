package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTemp(t *testing.T) {
	path, err := SaveTemp(strings.NewReader("audio-bytes"), ".mp3")
	require.NoError(t, err)
	defer os.Remove(path)

	assert.Equal(t, ".mp3", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))
}

func TestShortID(t *testing.T) {
	a, b := ShortID(), ShortID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}

func TestIsBareFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"lucidscript_abcd1234.docx", true},
		{"", false},
		{"..", false},
		{"../secret", false},
		{`..\secret`, false},
		{"dir/file.docx", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBareFilename(tt.name), tt.name)
	}
}

func TestEnsureDirAndExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	assert.False(t, Exists(dir))
	require.NoError(t, EnsureDir(dir))
	assert.True(t, Exists(dir))
}

func TestReadOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("  text \n"), 0o644))
	got, err := ReadOutputFile(path)
	require.NoError(t, err)
	assert.Equal(t, "text", got)
}
