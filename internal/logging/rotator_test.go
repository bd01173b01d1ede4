package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// smallRotator returns a rotator with a limit of limit bytes.
func smallRotator(t *testing.T, limit int64, backups int) (*Rotator, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fractui.log")
	r, err := NewRotator(path, 1, backups)
	require.NoError(t, err)
	r.maxSize = limit
	t.Cleanup(func() { _ = r.Close() })
	return r, path
}

func TestRotator_AppendsBelowLimit(t *testing.T) {
	r, path := smallRotator(t, 100, 2)

	_, err := r.Write([]byte("one\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("two\n"))
	require.NoError(t, err)

	assert.Equal(t, "one\ntwo\n", readString(t, path))
	assert.NoFileExists(t, path+".1")
}

func TestRotator_ShiftsBackups(t *testing.T) {
	r, path := smallRotator(t, 10, 2)

	for _, line := range []string{"aaaaaaaa\n", "bbbbbbbb\n", "cccccccc\n", "dddddddd\n"} {
		n, err := r.Write([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, len(line), n)
	}

	assert.Equal(t, "dddddddd\n", readString(t, path))
	assert.Equal(t, "cccccccc\n", readString(t, path+".1"))
	assert.Equal(t, "bbbbbbbb\n", readString(t, path+".2"))
	assert.NoFileExists(t, path+".3")
}

func TestRotator_NoBackupsTruncates(t *testing.T) {
	r, path := smallRotator(t, 10, 0)

	_, err := r.Write([]byte("aaaaaaaa\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("bbbbbbbb\n"))
	require.NoError(t, err)

	assert.Equal(t, "bbbbbbbb\n", readString(t, path))
	assert.NoFileExists(t, path+".1")
}

func TestRotator_OversizedWriteStillLands(t *testing.T) {
	r, path := smallRotator(t, 4, 1)

	big := strings.Repeat("x", 32)
	_, err := r.Write([]byte(big))
	require.NoError(t, err)

	assert.Equal(t, big, readString(t, path))
}

func TestRotator_ResumesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractui.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0600))

	r, err := NewRotator(path, 1, 1)
	require.NoError(t, err)
	_, err = r.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	assert.Equal(t, "old\nnew\n", readString(t, path))
}
