// Package ingestion imports text and markdown files into the note store.
//
// The Pipeline type walks a directory tree, parses each candidate file
// into a core.Note (title from the first heading or first line, tags from
// #hashtags and a tags: line, file modification time as the update time),
// and writes the notes to storage in a single batch.
//
// Files are parsed concurrently on a worker pool. Errors on individual
// files are logged and counted but do not fail the import.
package ingestion
