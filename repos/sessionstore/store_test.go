package sessionstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	empty, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, empty.Empty(), "Missing file should load as empty")

	saved := Snapshot{CurrentUser: `{"id":1,"username":"root","role":"ADMIN"}`}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "Temporary files should not be left behind")
}

func TestFileStoreEmptySnapshotRemovesFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(ctx, Snapshot{CurrentTeam: `{"id":3}`}))
	require.NoError(t, store.Save(ctx, Snapshot{}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, store.Save(ctx, Snapshot{}), "Clearing twice is fine")
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	assert.True(t, errors.Is(err, ErrCorrupt))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Snapshot{CurrentTeam: `{"id":9}`})

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"id":9}`, loaded.CurrentTeam)

	require.NoError(t, store.Save(ctx, Snapshot{}))
	loaded, _ = store.Load(ctx)
	assert.True(t, loaded.Empty())
	assert.Equal(t, 1, store.Saves())
}

// Runs against the Firestore emulator when FIRESTORE_EMULATOR_HOST is set.
func TestFirestoreStore(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()

	client, err := firestore.NewClient(ctx, "league-desk-test")
	require.NoError(t, err)
	defer client.Close()

	store := NewFirestoreStore(client, t.Name())
	require.NoError(t, store.Save(ctx, Snapshot{}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Empty())

	saved := Snapshot{CurrentUser: `{"id":1,"username":"root"}`}
	require.NoError(t, store.Save(ctx, saved))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}
