// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package noteseek

import (
	"log/slog"

	"github.com/poiesic/noteseek/ingestion"
	"github.com/poiesic/noteseek/search"
	"github.com/poiesic/noteseek/storage"
	"github.com/poiesic/noteseek/storage/badger"
)

// Database bundles the note store with factories for the search engine and
// the ingestion pipeline.
type Database struct {
	backend  *badger.Backend
	noteRepo storage.NoteRepository
	logger   *slog.Logger
}

func NewDatabase(filePath string) (*Database, error) {
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	return &Database{
		backend:  backend,
		noteRepo: badger.NewNoteRepository(backend),
		logger:   slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) NoteRepository() storage.NoteRepository {
	return db.noteRepo
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.noteRepo, opts...)
}

func (db *Database) NewEngine(opts ...search.Option) (*search.Engine, error) {
	return search.NewEngine(opts...)
}
