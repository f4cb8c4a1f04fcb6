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


package core

import (
	"fmt"
	"time"
)

// ValidateNote validates a Note according to domain rules.
//
// Validation rules:
//   - Title and Body must not both be empty
//   - CreatedAt and UpdatedAt must not be in the future
//
// NOT validated:
//   - ID (0 is valid; content-based IDs are assigned at ingestion)
//   - Tags (an empty tag set is valid)
//
// Validation applies only when notes are written to storage. The search
// engine itself tolerates malformed notes: missing fields are treated as
// empty values and never cause an error.
func ValidateNote(note *Note) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrInvalidNote)
	}

	if note.Title == "" && note.Body == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyNote)
	}

	if !IsValidTimestamp(note.CreatedAt) || !IsValidTimestamp(note.UpdatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp reports whether a timestamp is absent or not in the future.
// A small clock-skew allowance is applied.
func IsValidTimestamp(ts time.Time) bool {
	if ts.IsZero() {
		return true
	}
	return !ts.After(time.Now().Add(time.Minute))
}
