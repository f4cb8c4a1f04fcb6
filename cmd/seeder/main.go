package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/noteseek"
	"github.com/poiesic/noteseek/core"
)

var dbPath = flag.String("db", "./notes_db", "path to the note database directory")

var seedNotes = []*core.Note{
	{
		Title: "Sourdough Starter",
		Body:  "Feed the starter twice a day with equal parts flour and water. Keep it near the oven where it stays warm.",
		Tags:  []string{"baking", "sourdough"},
	},
	{
		Title: "Python Basics",
		Body:  "Introduction to Python programming language. Variables, loops, and functions with worked examples.",
		Tags:  []string{"python", "programming", "basics"},
	},
	{
		Title: "JavaScript Programming Guide",
		Body:  "Learn JavaScript programming with examples. Covers closures, promises, and the event loop.",
		Tags:  []string{"javascript", "programming", "guide"},
	},
	{
		Title: "Go Concurrency Patterns",
		Body:  "Goroutines and channels make concurrency simple. Fan-out, fan-in, and pipeline patterns with code.",
		Tags:  []string{"go", "concurrency", "patterns"},
	},
	{
		Title: "Garden Planning",
		Body:  "Tomatoes go in after the last frost. Rotate beds yearly so the soil recovers. Companion plant basil nearby.",
		Tags:  []string{"garden"},
	},
	{
		Title: "Meeting Notes 2026-03-02",
		Body:  "Discussed the quarterly roadmap with Alice and Omar. Decided to ship the import tool first.",
		Tags:  []string{"work", "meetings"},
	},
	{
		Title: "How to Brew Cold Coffee",
		Body:  "Coarse grind, twelve hours in the fridge, one to eight ratio. Filter twice for clarity.",
		Tags:  []string{"coffee", "recipes"},
	},
	{
		Title: "Pasta Dough",
		Body:  "One egg per hundred grams of flour. Rest the dough thirty minutes before rolling.",
		Tags:  []string{"cooking", "recipes"},
	},
	{
		Title: "Reading List",
		Body:  "The Go Programming Language, Designing Data-Intensive Applications, The Pragmatic Programmer.",
		Tags:  []string{"books"},
	},
	{
		Title: "Bicycle Maintenance",
		Body:  "Clean and lube the chain every two hundred kilometers. Check brake pads monthly. True the wheels in spring.",
		Tags:  []string{"bike", "maintenance"},
	},
	{
		Title: "Trip Ideas",
		Body:  "Hike the coastal trail in Brittany. Visit the old observatory in Tartu. Take the night train to Vienna.",
		Tags:  []string{"travel"},
	},
	{
		Title: "SQL Window Functions",
		Body:  "Row_number, rank, and lag solve most reporting queries. Partition by the grouping key, order within it.",
		Tags:  []string{"sql", "programming"},
	},
	{
		Title: "Ferment Hot Sauce",
		Body:  "Three percent brine by weight. Burp the jar daily for the first week. Blend after three weeks.",
		Tags:  []string{"fermentation", "recipes"},
	},
	{
		Title: "Birthday Gift Ideas",
		Body:  "A good chef's knife for Sam. Watercolor paper for June. Climbing shoes for Priya.",
		Tags:  []string{"gifts"},
	},
	{
		Title: "Home Network Setup",
		Body:  "The router runs in bridge mode behind the fiber modem. Pihole handles DNS. Backups go to the NAS nightly.",
		Tags:  []string{"homelab", "network"},
	},
}

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	db, err := noteseek.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx := context.Background()
	added, err := db.NoteRepository().AddNotes(ctx, seedNotes...)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Seeded %d notes into %s\n", len(added), *dbPath)
}
