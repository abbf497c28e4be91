package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/graphio"
	"github.com/graphforge/graphgen/pkg/store"
)

func sampleDoc() *graphio.Document {
	return &graphio.Document{
		Depth: 2,
		Vertices: []graphio.VertexRecord{
			{ID: 0, EdgeIDs: []int{0}, Depth: 1},
			{ID: 1, EdgeIDs: []int{0}, Depth: 2},
		},
		Edges: []graphio.EdgeRecord{
			{ID: 0, VertexIDs: [2]int{0, 1}, Color: "grey"},
		},
	}
}

func newFileStore(t *testing.T) *store.FileStore {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewRecord(t *testing.T) {
	rec := store.NewRecord("demo", 6, 3, 42, sampleDoc())

	require.NotEmpty(t, rec.ID)
	require.Equal(t, "demo", rec.Name)
	require.Equal(t, 6, rec.Depth)
	require.Equal(t, 3, rec.NewVertices)
	require.EqualValues(t, 42, rec.Seed)
	require.WithinDuration(t, time.Now(), rec.CreatedAt, time.Minute)

	// Each record gets its own id
	require.NotEqual(t, rec.ID, store.NewRecord("demo", 6, 3, 42, sampleDoc()).ID)
}

func TestFileStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	rec := store.NewRecord("demo", 6, 3, 42, sampleDoc())
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Get(ctx, "demo")
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, rec.Name, got.Name)
	require.Equal(t, rec.Depth, got.Depth)
	require.Equal(t, rec.NewVertices, got.NewVertices)
	require.Equal(t, rec.Seed, got.Seed)
	require.Equal(t, rec.Graph, got.Graph)
	require.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Second)
}

func TestFileStoreSaveDuplicate(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	require.NoError(t, s.Save(ctx, store.NewRecord("demo", 6, 3, 42, sampleDoc())))

	err := s.Save(ctx, store.NewRecord("demo", 7, 2, 1, sampleDoc()))
	require.ErrorIs(t, err, store.ErrExists)
}

func TestFileStoreGetMissing(t *testing.T) {
	s := newFileStore(t)

	_, err := s.Get(context.Background(), "absent")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	require.NoError(t, s.Save(ctx, store.NewRecord("demo", 6, 3, 42, sampleDoc())))
	require.NoError(t, s.Delete(ctx, "demo"))

	_, err := s.Get(ctx, "demo")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Delete(ctx, "demo"), store.ErrNotFound)
}

func TestFileStoreList(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"oldest", "middle", "newest"} {
		rec := store.NewRecord(name, 1, 1, uint64(i), sampleDoc())
		rec.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.Save(ctx, rec))
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "newest", records[0].Name)
	require.Equal(t, "middle", records[1].Name)
	require.Equal(t, "oldest", records[2].Name)
}

func TestFileStoreListEmpty(t *testing.T) {
	records, err := newFileStore(t).List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestFileStoreListSkipsCorrupt(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	require.NoError(t, s.Save(ctx, store.NewRecord("good", 1, 1, 0, sampleDoc())))
	require.NoError(t, os.WriteFile(filepath.Join(s.Path(), "bad.json"), []byte("{not json"), 0644))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "good", records[0].Name)
}

func TestFileStoreRejectsBadNames(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	for _, name := range []string{"", "../evil", "a/b", ".hidden"} {
		err := s.Save(ctx, store.NewRecord(name, 1, 1, 0, sampleDoc()))
		require.Error(t, err, "Save(%q)", name)
		require.True(t, errors.Is(err, errors.ErrCodeInvalidName), "Save(%q) code = %s", name, errors.GetCode(err))

		_, err = s.Get(ctx, name)
		require.True(t, errors.Is(err, errors.ErrCodeInvalidName), "Get(%q) code = %s", name, errors.GetCode(err))

		err = s.Delete(ctx, name)
		require.True(t, errors.Is(err, errors.ErrCodeInvalidName), "Delete(%q) code = %s", name, errors.GetCode(err))
	}
}
