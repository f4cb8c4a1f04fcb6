package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newLoggerContext(level string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", level, "")
	return cli.NewContext(nil, set, nil)
}

func TestSetupLogger(t *testing.T) {
	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
			assert.NoError(t, setupLogger(newLoggerContext(level)), "level %q", level)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		err := setupLogger(newLoggerContext("verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verbose")
	})
}

func TestReadQueryHistory(t *testing.T) {
	t.Run("skips blank lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.txt")
		content := "python basics\n\n  \njavascript guide\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		queries, err := readQueryHistory(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"python basics", "javascript guide"}, queries)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readQueryHistory(filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	app := &cli.App{
		Name: "noteseek",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Value: "./notes_db"},
		},
		Commands: []*cli.Command{
			{Name: "search", Action: searchCommand},
		},
	}

	err := app.Run([]string{"noteseek", "search"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query")
}
