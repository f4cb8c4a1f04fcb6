package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/noteseek/core"
	"github.com/poiesic/noteseek/storage"
)

func TestNoteBasics(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	// Test adding a note
	note := &core.Note{
		Title: "Shopping List",
		Body:  "Flour, salt, yeast.",
		Tags:  []string{"errands"},
	}

	added, err := repo.AddNotes(ctx, note)
	if err != nil {
		t.Fatalf("Failed to add note: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].CreatedAt.IsZero() || added[0].UpdatedAt.IsZero() {
		t.Fatal("Expected timestamps to be set")
	}

	// Test retrieving the note
	retrieved, err := repo.GetNote(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get note: %v", err)
	}

	if retrieved.Title != "Shopping List" {
		t.Fatalf("Expected 'Shopping List', got '%s'", retrieved.Title)
	}
}

func TestNoteContentBasedID(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	first := &core.Note{Title: "Same", Body: "Same body."}
	second := &core.Note{Title: "Same", Body: "Same body."}

	if _, err := repo.AddNotes(ctx, first); err != nil {
		t.Fatalf("Failed to add first note: %v", err)
	}
	if _, err := repo.AddNotes(ctx, second); err != nil {
		t.Fatalf("Failed to add second note: %v", err)
	}

	if first.Id != second.Id {
		t.Fatalf("Expected identical content to produce identical IDs, got %d and %d", first.Id, second.Id)
	}

	// Re-importing the same content must not duplicate the note.
	count, err := repo.CountNotes(ctx)
	if err != nil {
		t.Fatalf("Failed to count notes: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 note after duplicate add, got %d", count)
	}
}

func TestNoteReimportReplacesIndexEntries(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	t1 := time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Microsecond)
	t2 := time.Now().UTC().Add(-1 * time.Hour).Truncate(time.Microsecond)

	first := &core.Note{Title: "Alpha", Body: "Body.", Tags: []string{"draft"}, UpdatedAt: t1}
	if _, err := repo.AddNotes(ctx, first); err != nil {
		t.Fatalf("Failed to add note: %v", err)
	}

	// Same content, newer mod time and edited tags: re-importing the file
	// lands on the same content-based ID and must replace the old date and
	// tag index entries instead of stacking new ones on top.
	second := &core.Note{Title: "Alpha", Body: "Body.", Tags: []string{"final"}, UpdatedAt: t2}
	if _, err := repo.AddNotes(ctx, second); err != nil {
		t.Fatalf("Failed to re-add note: %v", err)
	}

	count, err := repo.CountNotes(ctx)
	if err != nil {
		t.Fatalf("Failed to count notes: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 note after re-import, got %d", count)
	}

	inRange, err := repo.GetNotesByDateRange(ctx, t1.Add(-time.Hour), t2.Add(time.Hour))
	if err != nil {
		t.Fatalf("Failed to query date range: %v", err)
	}
	if len(inRange) != 1 {
		t.Fatalf("Expected 1 note in date range after re-import, got %d", len(inRange))
	}
	if !inRange[0].UpdatedAt.Equal(t2) {
		t.Fatalf("Expected UpdatedAt %v, got %v", t2, inRange[0].UpdatedAt)
	}

	drafts, err := repo.GetNotesByTag(ctx, "draft")
	if err != nil {
		t.Fatalf("Failed to query old tag: %v", err)
	}
	if len(drafts) != 0 {
		t.Fatalf("Expected old tag entries to be removed, got %d", len(drafts))
	}

	finals, err := repo.GetNotesByTag(ctx, "final")
	if err != nil {
		t.Fatalf("Failed to query new tag: %v", err)
	}
	if len(finals) != 1 {
		t.Fatalf("Expected 1 note under new tag, got %d", len(finals))
	}
}

func TestNoteValidation(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	_, err = repo.AddNotes(ctx, &core.Note{})
	if !errors.Is(err, core.ErrEmptyNote) {
		t.Fatalf("Expected ErrEmptyNote, got %v", err)
	}
}

func TestNoteUpdate(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	note := &core.Note{Title: "Draft", Body: "First pass.", Tags: []string{"draft"}}
	if _, err := repo.AddNotes(ctx, note); err != nil {
		t.Fatalf("Failed to add note: %v", err)
	}
	created := note.CreatedAt

	note.Body = "Second pass."
	note.Tags = []string{"final"}
	if _, err := repo.UpdateNotes(ctx, note); err != nil {
		t.Fatalf("Failed to update note: %v", err)
	}

	retrieved, err := repo.GetNote(ctx, note.Id)
	if err != nil {
		t.Fatalf("Failed to get note: %v", err)
	}
	if retrieved.Body != "Second pass." {
		t.Fatalf("Expected updated body, got '%s'", retrieved.Body)
	}
	if !retrieved.CreatedAt.Equal(created) {
		t.Fatal("Expected CreatedAt to be preserved on update")
	}
	if !retrieved.UpdatedAt.After(created) && !retrieved.UpdatedAt.Equal(created) {
		t.Fatal("Expected UpdatedAt to advance on update")
	}

	// Old tag index entry must be gone
	byOldTag, err := repo.GetNotesByTag(ctx, "draft")
	if err != nil {
		t.Fatalf("Failed to get notes by tag: %v", err)
	}
	if len(byOldTag) != 0 {
		t.Fatalf("Expected no notes under old tag, got %d", len(byOldTag))
	}

	byNewTag, err := repo.GetNotesByTag(ctx, "final")
	if err != nil {
		t.Fatalf("Failed to get notes by tag: %v", err)
	}
	if len(byNewTag) != 1 {
		t.Fatalf("Expected 1 note under new tag, got %d", len(byNewTag))
	}
}

func TestNoteUpdateMissing(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	note := &core.Note{Id: 999, Title: "Ghost", Body: "Not stored."}
	_, err = repo.UpdateNotes(context.Background(), note)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestNoteDelete(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	note := &core.Note{Title: "Ephemeral", Body: "Gone soon.", Tags: []string{"tmp"}}
	if _, err := repo.AddNotes(ctx, note); err != nil {
		t.Fatalf("Failed to add note: %v", err)
	}

	if err := repo.DeleteNotes(ctx, note.Id); err != nil {
		t.Fatalf("Failed to delete note: %v", err)
	}

	if _, err := repo.GetNote(ctx, note.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	byTag, err := repo.GetNotesByTag(ctx, "tmp")
	if err != nil {
		t.Fatalf("Failed to get notes by tag: %v", err)
	}
	if len(byTag) != 0 {
		t.Fatalf("Expected tag index cleaned up, got %d entries", len(byTag))
	}

	if err := repo.DeleteNotes(ctx, note.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on double delete, got %v", err)
	}
}

func TestGetNotesMissingSkipped(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	note := &core.Note{Title: "Only One", Body: "Present."}
	if _, err := repo.AddNotes(ctx, note); err != nil {
		t.Fatalf("Failed to add note: %v", err)
	}

	notes, err := repo.GetNotes(ctx, note.Id, 424242)
	if err != nil {
		t.Fatalf("Failed to get notes: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(notes))
	}
}

func TestNotesByTag(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	notes := []*core.Note{
		{Title: "Go Basics", Body: "Slices and maps.", Tags: []string{"go", "basics"}},
		{Title: "Go Testing", Body: "Table tests.", Tags: []string{"go", "testing"}},
		{Title: "Bread", Body: "Sourdough starter.", Tags: []string{"baking"}},
	}
	if _, err := repo.AddNotes(ctx, notes...); err != nil {
		t.Fatalf("Failed to add notes: %v", err)
	}

	goNotes, err := repo.GetNotesByTag(ctx, "go")
	if err != nil {
		t.Fatalf("Failed to get notes by tag: %v", err)
	}
	if len(goNotes) != 2 {
		t.Fatalf("Expected 2 go notes, got %d", len(goNotes))
	}

	none, err := repo.GetNotesByTag(ctx, "missing")
	if err != nil {
		t.Fatalf("Failed to get notes by tag: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("Expected no notes, got %d", len(none))
	}
}

func TestNotesByDateRange(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	notes := []*core.Note{
		{Title: "Old", Body: "Two hours ago.", UpdatedAt: now.Add(-2 * time.Hour)},
		{Title: "Middle", Body: "One hour ago.", UpdatedAt: now.Add(-1 * time.Hour)},
		{Title: "Fresh", Body: "Just now.", UpdatedAt: now},
	}
	if _, err := repo.AddNotes(ctx, notes...); err != nil {
		t.Fatalf("Failed to add notes: %v", err)
	}

	results, err := repo.GetNotesByDateRange(ctx, now.Add(-90*time.Minute), now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Failed to get notes by date range: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 notes, got %d", len(results))
	}
	if results[0].Title != "Middle" || results[1].Title != "Fresh" {
		t.Fatalf("Expected ascending update order, got %q then %q", results[0].Title, results[1].Title)
	}
}

func TestAllNotesAndCount(t *testing.T) {
	repo, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	notes := []*core.Note{
		{Title: "One", Body: "First."},
		{Title: "Two", Body: "Second.", Tags: []string{"pair"}},
		{Title: "Three", Body: "Third."},
	}
	if _, err := repo.AddNotes(ctx, notes...); err != nil {
		t.Fatalf("Failed to add notes: %v", err)
	}

	all, err := repo.AllNotes(ctx)
	if err != nil {
		t.Fatalf("Failed to load all notes: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 notes, got %d", len(all))
	}

	count, err := repo.CountNotes(ctx)
	if err != nil {
		t.Fatalf("Failed to count notes: %v", err)
	}
	if count != 3 {
		t.Fatalf("Expected count 3, got %d", count)
	}
}
