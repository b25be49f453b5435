package keychain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*************
 * MemoryStore
 *************/

func TestMemoryStore_Lifecycle(t *testing.T) {
	var s TokenStore = NewMemoryStore()

	assert.False(t, s.HasToken())
	_, ok := s.GetToken()
	assert.False(t, ok)

	require.NoError(t, s.SaveToken("abc"))
	tok, ok := s.GetToken()
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)
	assert.True(t, s.HasToken())

	require.NoError(t, s.DeleteToken())
	assert.False(t, s.HasToken())
}

/*************
 * FileStore
 *************/

func TestFileStore_Plaintext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "token.json")
	s := NewFileStore(path, "")

	assert.False(t, s.HasToken(), "missing file means no token")

	require.NoError(t, s.SaveToken("tok-1"))
	tok, ok := s.GetToken()
	require.True(t, ok)
	assert.Equal(t, "tok-1", tok)

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}

	// a second store over the same file sees the same token (restart)
	again := NewFileStore(path, "")
	assert.True(t, again.HasToken())

	require.NoError(t, s.DeleteToken())
	assert.False(t, again.HasToken())
	require.NoError(t, s.DeleteToken(), "deleting twice is fine")
}

func TestFileStore_Sealed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	s := NewFileStore(path, "hunter2")

	require.NoError(t, s.SaveToken("secret-token"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "secret-token"), "token must not be stored in clear")

	fresh := NewFileStore(path, "hunter2")
	tok, ok := fresh.GetToken()
	require.True(t, ok)
	assert.Equal(t, "secret-token", tok)

	wrong := NewFileStore(path, "letmein")
	_, err = wrong.Load()
	require.ErrorIs(t, err, ErrCorrupt)
	assert.False(t, wrong.HasToken())

	noPass := NewFileStore(path, "")
	_, err = noPass.Load()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewFileStore(path, "")
	_, err := s.Load()
	require.ErrorIs(t, err, ErrCorrupt)
	assert.False(t, s.HasToken())
}
