package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/noteseek/core"
	"github.com/poiesic/noteseek/storage"
)

// NoteRepository implements storage.NoteRepository for BadgerDB.
type NoteRepository struct {
	backend *Backend
}

var _ storage.NoteRepository = (*NoteRepository)(nil)

// NewRepository opens a note repository backed by a BadgerDB database at
// the given path.
func NewRepository(path string) (storage.NoteRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &NoteRepository{backend: backend}, nil
}

// NewNoteRepository creates a NoteRepository on an already-open backend.
func NewNoteRepository(backend *Backend) *NoteRepository {
	return &NoteRepository{backend: backend}
}

// Close closes the underlying backend.
func (r *NoteRepository) Close() error {
	if r.backend.IsClosed() {
		return nil
	}
	return r.backend.Close()
}

// WithTransaction delegates to the backend.
func (r *NoteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddNotes adds one or more notes to storage.
func (r *NoteRepository) AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, note := range notes {
			if err := core.ValidateNote(note); err != nil {
				return err
			}

			// Content-based IDs keep re-imports of the same file idempotent.
			if note.Id == 0 {
				note.Id = core.IDFromContent(note.Title + "\n" + note.Body)
			}
			if note.CreatedAt.IsZero() {
				note.CreatedAt = now
			}
			if note.UpdatedAt.IsZero() {
				note.UpdatedAt = now
			}

			// A re-import lands on the same content-based ID; clean the
			// previous record's index entries so they don't accumulate.
			key := makeNoteKey(note.Id)
			old, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				if !old.UpdatedAt.Equal(note.UpdatedAt) {
					if err := tx.Delete(makeNoteDateKey(old.UpdatedAt, old.Id)); err != nil {
						return err
					}
				}
				if !slices.Equal(old.Tags, note.Tags) {
					if err := r.deleteTagIndex(tx, old); err != nil {
						return err
					}
				}
			}

			// Store primary record
			value := storage.MarshalNote(note)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index
			dateKey := makeNoteDateKey(note.UpdatedAt, note.Id)
			if err := tx.Set(dateKey, storage.MarshalID(note.Id)); err != nil {
				return err
			}

			// Update tag index
			if err := r.updateTagIndex(tx, note); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// UpdateNotes updates existing notes.
func (r *NoteRepository) UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			if err := core.ValidateNote(note); err != nil {
				return err
			}

			key := makeNoteKey(note.Id)

			// Read old note to detect index changes
			old, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			note.CreatedAt = old.CreatedAt
			note.UpdatedAt = time.Now().UTC()

			// Store updated note
			value := storage.MarshalNote(note)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Move the date index entry
			if !old.UpdatedAt.Equal(note.UpdatedAt) {
				oldDateKey := makeNoteDateKey(old.UpdatedAt, old.Id)
				if err := tx.Delete(oldDateKey); err != nil {
					return err
				}
				newDateKey := makeNoteDateKey(note.UpdatedAt, note.Id)
				if err := tx.Set(newDateKey, storage.MarshalID(note.Id)); err != nil {
					return err
				}
			}

			// Update tag index if tags changed
			if !slices.Equal(old.Tags, note.Tags) {
				if err := r.deleteTagIndex(tx, old); err != nil {
					return err
				}
				if err := r.updateTagIndex(tx, note); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// DeleteNotes removes notes by their IDs.
func (r *NoteRepository) DeleteNotes(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNoteKey(id)

			// Read note to get metadata for index cleanup
			note, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if note == nil {
				return storage.ErrNotFound
			}

			// Delete from date index
			dateKey := makeNoteDateKey(note.UpdatedAt, note.Id)
			if err := tx.Delete(dateKey); err != nil {
				return err
			}

			// Delete from tag index
			if err := r.deleteTagIndex(tx, note); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetNote retrieves a single note by ID.
func (r *NoteRepository) GetNote(ctx context.Context, id core.ID) (*core.Note, error) {
	var result *core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeNoteKey(id)
		var err error
		result, err = r.readNote(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetNotes retrieves multiple notes by their IDs.
func (r *NoteRepository) GetNotes(ctx context.Context, ids ...core.ID) ([]*core.Note, error) {
	var result []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNoteKey(id)
			note, err := r.readNote(tx, key)
			if err != nil {
				return err
			}
			if note != nil {
				result = append(result, note)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetNotesByTag retrieves all notes carrying the given tag.
func (r *NoteRepository) GetNotesByTag(ctx context.Context, tag string) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialNoteTagKey(tag)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the ID from the index
			var noteID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				noteID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full note
			note, err := r.readNote(tx, makeNoteKey(noteID))
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetNotesByDateRange retrieves notes where start <= UpdatedAt < end,
// ordered by update time ascending.
func (r *NoteRepository) GetNotesByDateRange(ctx context.Context, start, end time.Time) ([]*core.Note, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialNoteDateKey(start)
		endKey := makePartialNoteDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		prefix := []byte(noteRecordDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}
			if slices.Compare(key, endKey) >= 0 {
				break
			}

			// Read the ID from the index
			var noteID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				noteID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full note
			note, err := r.readNote(tx, makeNoteKey(noteID))
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
			}
		}
		return nil
	}, false)

	return results, err
}

// AllNotes retrieves every stored note, ordered by ID key.
func (r *NoteRepository) AllNotes(ctx context.Context) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(noteRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var note *core.Note
			err := iter.Item().Value(func(val []byte) error {
				var err error
				note, err = storage.UnmarshalNote(val)
				return err
			})
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
			}
		}
		return nil
	}, false)

	return results, err
}

// CountNotes returns the number of stored notes.
func (r *NoteRepository) CountNotes(ctx context.Context) (int, error) {
	var count int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(noteRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Helper methods

// readNote reads a note from the transaction.
func (r *NoteRepository) readNote(tx *badger.Txn, key []byte) (*core.Note, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var note *core.Note
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		note, unmarshalErr = storage.UnmarshalNote(val)
		return unmarshalErr
	})
	return note, err
}

// updateTagIndex adds tag index entries for a note.
func (r *NoteRepository) updateTagIndex(tx *badger.Txn, note *core.Note) error {
	for _, tag := range note.Tags {
		key := makeNoteTagKey(tag, note.Id)
		if err := tx.Set(key, storage.MarshalID(note.Id)); err != nil {
			return err
		}
	}
	return nil
}

// deleteTagIndex removes tag index entries for a note.
func (r *NoteRepository) deleteTagIndex(tx *badger.Txn, note *core.Note) error {
	for _, tag := range note.Tags {
		key := makeNoteTagKey(tag, note.Id)
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
