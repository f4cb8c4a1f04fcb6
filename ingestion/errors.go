package ingestion

import "errors"

var (
	// ErrNoteRepositoryRequired is returned when a note repository is not provided.
	ErrNoteRepositoryRequired = errors.New("note repository required")

	// ErrEmptyFile is returned when a file yields no usable note content.
	ErrEmptyFile = errors.New("file has no usable content")
)
