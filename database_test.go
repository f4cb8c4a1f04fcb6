package noteseek

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/noteseek/core"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		assert.NotNil(t, db.NoteRepository())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.NoError(t, db.Close())
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db, err := NewDatabase(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create search engine", func(t *testing.T) {
		engine, err := db.NewEngine()
		require.NoError(t, err)
		require.NotNil(t, engine)
		engine.Close()
	})
}

func TestDatabase_EndToEnd(t *testing.T) {
	db, err := NewDatabase(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	_, err = db.NoteRepository().AddNotes(ctx,
		&core.Note{Title: "Python Basics", Body: "Introduction to Python programming language."},
		&core.Note{Title: "Sourdough Starter", Body: "Feed the starter twice a day."},
	)
	require.NoError(t, err)

	notes, err := db.NoteRepository().AllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	engine, err := db.NewEngine()
	require.NoError(t, err)
	defer engine.Close()

	results, err := engine.Search(ctx, "python", notes, nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Python Basics", results[0].Note.Title)
}
