package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringRoundTrip(t *testing.T) {
	keyring.MockInit()

	store, err := New(t.TempDir())
	require.NoError(t, err)
	assert.False(t, store.NoKeyRingMode)
	assert.Empty(t, store.Token())

	require.NoError(t, store.SetToken("first"))
	require.NoError(t, store.SetToken(`{"accessToken":"second"}`))

	// simulate a restart
	reloaded, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, `{"accessToken":"second"}`, reloaded.Token())

	raw, err := keyring.Get(keyringService, keyringUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"{\"accessToken\":\"second\"}"}`, raw)

	require.NoError(t, reloaded.Clear())
	cleared, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cleared.Token())
}

func TestFileRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("raw token"))

	info, err := os.Stat(filepath.Join(dir, dataFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, Data{Token: "raw token"}, reloaded.Data())

	require.NoError(t, reloaded.Clear())
	require.NoError(t, reloaded.Clear())
	_, err = os.Stat(filepath.Join(dir, dataFile))
	assert.True(t, os.IsNotExist(err))
}

func TestMalformedData(t *testing.T) {
	for _, content := range []string{`not json`, `{}`, `{"token":42}`, `{"token":null}`} {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, dataFile), []byte(content), 0600))

		store, err := NewFileStore(dir)
		assert.ErrorIs(t, err, ErrMalformed, "content %s", content)
		require.NotNil(t, store)
		assert.Empty(t, store.Token())
	}
}

func TestFailedWriteKeepsPreviousToken(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mcprofile")
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("first"))

	// a file where the config dir should be makes every write fail
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0600))

	assert.Error(t, store.SetToken("second"))
	assert.Equal(t, "first", store.Token())
}
