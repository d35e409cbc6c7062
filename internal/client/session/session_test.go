package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), ".fittrack", "session.json"))
}

func TestLoad_MissingFileIsEmptySession(t *testing.T) {
	store := testStore(t)

	sess, err := store.Load()
	require.NoError(t, err)
	require.False(t, sess.LoggedIn())
	require.Empty(t, sess.UserID)
}

func TestSaveAndLoad(t *testing.T) {
	store := testStore(t)

	saved := Session{UserID: "65f1c3b2a4d5e6f7a8b9c0d1", Token: "header.payload.sig"}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
	require.True(t, loaded.LoggedIn())
}

func TestSave_OwnerOnlyPermissions(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(Session{UserID: "id", Token: "tok"}))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestClear(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(Session{UserID: "id", Token: "tok"}))

	require.NoError(t, store.Clear())

	sess, err := store.Load()
	require.NoError(t, err)
	require.False(t, sess.LoggedIn())

	// Clearing again is a no-op
	require.NoError(t, store.Clear())
}

func TestLoad_CorruptFile(t *testing.T) {
	store := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o600))

	_, err := store.Load()
	require.Error(t, err)
}
