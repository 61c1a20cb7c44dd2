package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ghexplorer/internal/domain"
	"github.com/yourusername/ghexplorer/internal/logging"
)

func sampleEntries() []domain.SearchHistoryEntry {
	return []domain.SearchHistoryEntry{
		{
			FullName:    "facebook/react",
			Description: "The library for web and native user interfaces.",
			Owner:       domain.Owner{Login: "facebook", AvatarURL: "https://avatars.githubusercontent.com/u/69631?v=4"},
		},
		{
			FullName:    "golang/go",
			Description: "The Go programming language",
			Owner:       domain.Owner{Login: "golang", AvatarURL: "https://avatars.githubusercontent.com/u/4314092?v=4"},
		},
	}
}

// backends opens a fresh store of every kind.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	bolt, err := Open(domain.StorageConfig{Backend: domain.StorageBolt, Path: filepath.Join(t.TempDir(), "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	file, err := Open(domain.StorageConfig{Backend: domain.StorageFile, Path: filepath.Join(t.TempDir(), "history.json")})
	require.NoError(t, err)

	return map[string]Store{
		domain.StorageBolt: bolt,
		domain.StorageFile: file,
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(domain.StorageConfig{Backend: "redis"})
	assert.Error(t, err)
}

func TestStore_GetPut(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Put("k", []byte(`[1,2]`)))
			require.NoError(t, store.Put("k", []byte(`[3]`)))

			got, ok, err := store.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[3]`, string(got))
		})
	}
}

func TestHistoryRepository_RoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := NewHistoryRepository(store, logging.Discard())

			want := sampleEntries()
			require.NoError(t, repo.Save(want))

			got, err := repo.Load()
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHistoryRepository_MissingKeyIsEmpty(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got, err := NewHistoryRepository(store, logging.Discard()).Load()
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestHistoryRepository_CorruptPayloadIsEmpty(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(HistoryKey, []byte(`{not json`)))

			got, err := NewHistoryRepository(store, logging.Discard()).Load()
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestHistoryRepository_EmptySavesArray(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, NewHistoryRepository(store, logging.Discard()).Save(nil))

			raw, ok, err := store.Get(HistoryKey)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "[]", string(raw))
		})
	}
}

func TestHistoryRepository_PayloadShape(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.json"))
	repo := NewHistoryRepository(store, logging.Discard())
	require.NoError(t, repo.Save(sampleEntries()[:1]))

	raw, ok, err := store.Get(HistoryKey)
	require.NoError(t, err)
	require.True(t, ok)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "facebook/react", decoded[0]["fullName"])
	assert.Contains(t, decoded[0], "description")
	owner, ok := decoded[0]["owner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "facebook", owner["login"])
	assert.Contains(t, owner, "avatarURL")
}

func TestHistoryRepository_HistoryPersistsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := OpenBolt(path)
	require.NoError(t, err)

	history, err := NewHistoryRepository(store, logging.Discard()).History()
	require.NoError(t, err)
	assert.Equal(t, 0, history.Len())

	for _, e := range sampleEntries() {
		require.NoError(t, history.Append(e))
	}
	require.NoError(t, store.Close())

	// A new session sees the same entries in the same order.
	store, err = OpenBolt(path)
	require.NoError(t, err)
	defer store.Close()

	reloaded, err := NewHistoryRepository(store, logging.Discard()).History()
	require.NoError(t, err)

	if diff := cmp.Diff(sampleEntries(), reloaded.Entries()); diff != "" {
		t.Errorf("reloaded history mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore_KeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store := NewFileStore(path)

	require.NoError(t, store.Put("other", []byte("value")))
	require.NoError(t, store.Put(HistoryKey, []byte("[]")))

	got, ok, err := store.Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", string(got))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte(HistoryKey)))
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, ok, err := NewFileStore(path).Get(HistoryKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"githubexplorer::repositories": "[`), 0o600))

	store := NewFileStore(path)
	_, _, err := store.Get(HistoryKey)
	assert.ErrorIs(t, err, ErrCorrupt)

	repo := NewHistoryRepository(store, logging.Discard())
	history, err := repo.History()
	require.NoError(t, err)
	assert.Equal(t, 0, history.Len())

	// The next save replaces the unreadable file.
	require.NoError(t, history.Append(sampleEntries()[0]))

	got, err := repo.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(sampleEntries()[:1], got); diff != "" {
		t.Errorf("Load() after recovery mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenBolt_LockedByAnotherHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := OpenBolt(path)
	require.NoError(t, err)
	defer first.Close()

	_, err = OpenBolt(path)
	assert.ErrorIs(t, err, ErrLocked)
	assert.ErrorContains(t, err, path)
}
