package ingestion

import (
	"regexp"
	"strings"
	"time"

	"github.com/poiesic/noteseek/core"
)

var hashtagPattern = regexp.MustCompile(`#([a-zA-Z][\w-]*)`)

// ParseNote parses file content into a note. The title is the first
// markdown heading, or the first non-empty line when no heading exists.
// Tags are gathered from inline #hashtags and from a "tags:" line, which
// is removed from the body. The file modification time becomes the note's
// update time; the store stamps the creation time on insert.
//
// Returns ErrEmptyFile when the content holds neither title nor body.
func ParseNote(content string, modTime time.Time) (*core.Note, error) {
	lines := strings.Split(content, "\n")

	note := &core.Note{UpdatedAt: modTime.UTC()}
	var tags []string
	var body []string
	titleFound := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !titleFound && trimmed != "" {
			note.Title = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			titleFound = true
			continue
		}

		if isTagsLine(trimmed) {
			tags = append(tags, splitTagsLine(trimmed)...)
			continue
		}

		if titleFound {
			body = append(body, line)
		}
	}

	note.Body = strings.TrimSpace(strings.Join(body, "\n"))
	if note.Title == "" && note.Body == "" {
		return nil, ErrEmptyFile
	}

	for _, match := range hashtagPattern.FindAllStringSubmatch(note.Body, -1) {
		tags = append(tags, match[1])
	}
	note.Tags = normalizeTags(tags)

	return note, nil
}

func isTagsLine(line string) bool {
	return len(line) > 5 && strings.EqualFold(line[:5], "tags:")
}

// splitTagsLine splits "tags: go, testing patterns" into its tag words.
func splitTagsLine(line string) []string {
	rest := line[5:]
	return strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '#'
	})
}

// normalizeTags lowercases and de-duplicates tags, preserving first-seen order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
