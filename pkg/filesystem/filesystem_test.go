package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	require.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	renamed := filepath.Join(tmpDir, "renamed.txt")
	require.NoError(t, fs.Rename(testFile, renamed))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.Remove(renamed))
}

func TestAferoFS_ReadFileOnDirectory(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/node_modules/react", 0755))

	_, err := fs.ReadFile("/node_modules/react")
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		fs := NewAferoFS(afero.NewMemMapFs())

		require.NoError(t, WriteFileAtomic(fs, "/project/app/remix.ts", []byte("export {};\n"), 0644))

		content, err := fs.ReadFile("/project/app/remix.ts")
		require.NoError(t, err)
		assert.Equal(t, "export {};\n", string(content))

		_, err = fs.Stat("/project/app/.remix.ts.gen-remix-tmp")
		assert.True(t, os.IsNotExist(err), "temp file should not survive")
	})

	t.Run("replaces existing content", func(t *testing.T) {
		fs := NewAferoFS(afero.NewMemMapFs())
		require.NoError(t, fs.MkdirAll("/app", 0755))
		require.NoError(t, fs.WriteFile("/app/remix.ts", []byte("old"), 0644))

		require.NoError(t, WriteFileAtomic(fs, "/app/remix.ts", []byte("new"), 0644))

		content, err := fs.ReadFile("/app/remix.ts")
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("read-only filesystem leaves target untouched", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(base, "/app/remix.ts", []byte("old"), 0644))
		fs := NewAferoFS(afero.NewReadOnlyFs(base))

		err := WriteFileAtomic(fs, "/app/remix.ts", []byte("new"), 0644)
		require.Error(t, err)

		content, err := afero.ReadFile(base, "/app/remix.ts")
		require.NoError(t, err)
		assert.Equal(t, "old", string(content))
	})
}
