package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	newApp := func(action cli.ActionFunc) *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: action,
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				app := newApp(func(c *cli.Context) error { return nil })
				err := app.Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				app := newApp(func(c *cli.Context) error { return nil })
				err := app.Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := newApp(func(c *cli.Context) error { return nil })
		err := app.Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		app := newApp(func(c *cli.Context) error {
			assert.Equal(t, "debug", c.String("log-level"))
			return nil
		})
		err := app.Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestReadQuery(t *testing.T) {
	t.Run("positional arguments join into the query", func(t *testing.T) {
		var got string
		app := &cli.App{
			Name: "test",
			Action: func(c *cli.Context) error {
				got = readQuery(c)
				return nil
			},
		}
		err := app.Run([]string{"test", "stage", "python", "paris"})
		require.NoError(t, err)
		assert.Equal(t, "stage python paris", got)
	})
}

func TestExcerptLine(t *testing.T) {
	t.Run("flattens whitespace", func(t *testing.T) {
		assert.Equal(t, "a b c", excerptLine("a\n  b\t c"))
	})

	t.Run("truncates long excerpts at a rune boundary", func(t *testing.T) {
		long := strings.Repeat("é", 300)
		line := excerptLine(long)
		assert.Equal(t, strings.Repeat("é", 200)+"...", line)
	})

	t.Run("short excerpts pass through", func(t *testing.T) {
		assert.Equal(t, "offre de stage", excerptLine("offre de stage"))
	})
}
