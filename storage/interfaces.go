package storage

import (
	"context"
	"time"

	"github.com/poiesic/noteseek/core"
)

// NoteRepository provides operations for managing notes.
// Implementations must be thread-safe and support concurrent access.
type NoteRepository interface {
	// AddNotes adds one or more notes to storage.
	// For notes with Id=0, generates content-based IDs from title and body.
	// Sets CreatedAt and UpdatedAt timestamps if not already set.
	// Returns the notes with generated IDs and timestamps populated.
	AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// UpdateNotes updates existing notes.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any note doesn't exist.
	UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// DeleteNotes removes notes by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any note doesn't exist.
	DeleteNotes(ctx context.Context, ids ...core.ID) error

	// GetNote retrieves a single note by ID.
	// Returns ErrNotFound if the note doesn't exist.
	GetNote(ctx context.Context, id core.ID) (*core.Note, error)

	// GetNotes retrieves multiple notes by their IDs.
	// Returns only the notes that exist (no error for missing notes).
	GetNotes(ctx context.Context, ids ...core.ID) ([]*core.Note, error)

	// GetNotesByTag retrieves all notes carrying the given tag,
	// ordered by ID ascending.
	GetNotesByTag(ctx context.Context, tag string) ([]*core.Note, error)

	// GetNotesByDateRange retrieves notes whose update time falls in the
	// range start <= UpdatedAt < end, ordered by update time ascending.
	GetNotesByDateRange(ctx context.Context, start, end time.Time) ([]*core.Note, error)

	// AllNotes retrieves every stored note. This is the corpus loader for
	// the search engine; order is unspecified but stable for an unchanged
	// store.
	AllNotes(ctx context.Context) ([]*core.Note, error)

	// CountNotes returns the number of stored notes.
	CountNotes(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
