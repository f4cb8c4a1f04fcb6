package ingestion

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/noteseek/core"
	"github.com/poiesic/noteseek/storage"
)

// noteExtensions lists the file extensions the pipeline imports.
var noteExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Pipeline imports note files into storage.
type Pipeline struct {
	notes  storage.NoteRepository
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent file parsing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline writing to the given
// repository.
func NewPipeline(notes storage.NoteRepository, opts ...Option) (*Pipeline, error) {
	if notes == nil {
		return nil, ErrNoteRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		notes:  notes,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// ImportStats summarizes an import run.
type ImportStats struct {
	Files    int // candidate files found
	Imported int // notes written to storage
	Failed   int // files that could not be read or parsed
}

// ImportDir walks a directory tree, parses every markdown and text file
// concurrently, and writes the resulting notes to storage in one batch.
// Per-file failures are logged and counted; they do not abort the import.
func (p *Pipeline) ImportDir(ctx context.Context, dir string) (*ImportStats, error) {
	type candidate struct {
		path    string
		modTime time.Time
	}

	var candidates []candidate
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !noteExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		candidates = append(candidates, candidate{path: path, modTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{Files: len(candidates)}
	if len(candidates) == 0 {
		return stats, nil
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		parsed []*core.Note
		failed int
	)

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := c
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			note, err := parseFile(c.path, c.modTime)
			if err != nil {
				p.logger.Warn("skipping file", "path", c.path, "err", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			parsed = append(parsed, note)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}
	wg.Wait()

	stats.Failed = failed
	if len(parsed) == 0 {
		return stats, nil
	}

	added, err := p.notes.AddNotes(ctx, parsed...)
	if err != nil {
		return nil, err
	}
	stats.Imported = len(added)

	p.logger.Info("import finished",
		"dir", dir, "files", stats.Files, "imported", stats.Imported, "failed", stats.Failed)
	return stats, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

func parseFile(path string, modTime time.Time) (*core.Note, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseNote(string(content), modTime)
}
