package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)
			if id1 != id2 {
				t.Errorf("IDFromContent(%q) not deterministic: %v != %v", tt.content, id1, id2)
			}
		})
	}

	t.Run("different content produces different IDs", func(t *testing.T) {
		if IDFromContent("alpha") == IDFromContent("beta") {
			t.Error("expected different IDs for different content")
		}
	})
}

func TestNoteText(t *testing.T) {
	tests := []struct {
		name string
		note Note
		want string
	}{
		{
			name: "title body and tags",
			note: Note{
				Title: "Python Basics",
				Body:  "Introduction to Python.",
				Tags:  []string{"python", "basics"},
			},
			want: "Python Basics Introduction to Python. python basics",
		},
		{
			name: "no tags",
			note: Note{
				Title: "Title",
				Body:  "Body",
			},
			want: "Title Body",
		},
		{
			name: "empty note",
			note: Note{},
			want: " ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.note.Text()
			if got != tt.want {
				t.Errorf("Note.Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
