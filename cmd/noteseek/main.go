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


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/noteseek"
	"github.com/poiesic/noteseek/ingestion"
	"github.com/poiesic/noteseek/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "noteseek",
		Usage: "Multi-strategy search over a personal note collection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the note database directory",
				Value:   "./notes_db",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import markdown and text files from a directory",
				ArgsUsage: "<dir>",
				Action:    importCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent file parsers",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the note collection",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max",
						Usage: "Maximum number of results",
						Value: search.DefaultMaxResults,
					},
					&cli.Float64Flag{
						Name:  "fuzzy-threshold",
						Usage: "Minimum similarity for fuzzy matches (0..1)",
						Value: search.DefaultFuzzyThreshold,
					},
					&cli.BoolFlag{
						Name:  "cluster",
						Usage: "Group results into similarity clusters",
					},
					&cli.BoolFlag{
						Name:  "boost-recent",
						Usage: "Boost notes updated in the last 30 days",
					},
					&cli.BoolFlag{
						Name:  "boost-popular",
						Usage: "Boost frequently accessed notes",
					},
				},
			},
			{
				Name:      "suggest",
				Usage:     "Print autocomplete suggestions for a query prefix",
				ArgsUsage: "<prefix>",
				Action:    suggestCommand,
			},
			{
				Name:   "analytics",
				Usage:  "Analyze a query history file against the note collection",
				Action: analyticsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "history",
						Usage:    "Path to a query history file, one query per line",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func importCommand(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return fmt.Errorf("directory argument is required")
	}

	db, err := noteseek.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var opts []ingestion.Option
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, ingestion.WithPoolSize(workers))
	}
	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	stats, err := pipeline.ImportDir(context.Background(), dir)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d of %d files (%d failed)\n", stats.Imported, stats.Files, stats.Failed)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query argument is required")
	}

	db, err := noteseek.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	notes, err := db.NoteRepository().AllNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	engine, err := db.NewEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	opts := search.DefaultOptions()
	opts.MaxResults = c.Int("max")
	opts.FuzzyThreshold = c.Float64("fuzzy-threshold")
	opts.EnableClustering = c.Bool("cluster")
	opts.BoostRecent = c.Bool("boost-recent")
	opts.BoostPopular = c.Bool("boost-popular")

	results, err := engine.Search(ctx, query, notes, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' (%d)[%0.3f] via %s\n",
			i, hit.Note.Title, hit.Note.Id, hit.Score, hit.MatchType)
		if hit.Context != "" {
			fmt.Printf("   %s\n", hit.Context)
		}
		if hit.ClusterID != 0 {
			fmt.Printf("   cluster %d\n", hit.ClusterID)
		}
	}
	return nil
}

func suggestCommand(c *cli.Context) error {
	prefix := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(prefix) == "" {
		return fmt.Errorf("prefix argument is required")
	}

	db, err := noteseek.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	notes, err := db.NoteRepository().AllNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	engine, err := db.NewEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	for _, suggestion := range engine.Suggestions(prefix, notes) {
		fmt.Println(suggestion)
	}
	return nil
}

func analyticsCommand(c *cli.Context) error {
	queries, err := readQueryHistory(c.String("history"))
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	db, err := noteseek.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	notes, err := db.NoteRepository().AllNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	engine, err := db.NewEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	report, err := engine.Analytics(ctx, queries, notes)
	if err != nil {
		return fmt.Errorf("analytics failed: %w", err)
	}

	fmt.Printf("Queries: %d total, %d unique, avg length %.1f chars\n",
		report.TotalQueries, report.UniqueQueries, report.AverageQueryLength)
	fmt.Printf("Average effectiveness: %.2f\n", report.AverageEffectiveness)
	if len(report.TopWords) > 0 {
		fmt.Println("Top words:")
		for _, wc := range report.TopWords {
			fmt.Printf("  %s (%d)\n", wc.Word, wc.Count)
		}
	}
	for _, stat := range report.Queries {
		fmt.Printf("  %q: %d hits, top score %.3f, effectiveness %.2f\n",
			stat.Query, stat.Hits, stat.TopScore, stat.Effectiveness)
	}
	return nil
}

// readQueryHistory reads one query per line, skipping blank lines.
func readQueryHistory(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			queries = append(queries, line)
		}
	}
	return queries, scanner.Err()
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return nil
}
