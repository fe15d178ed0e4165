// Copyright 2026 Veilleur Labs
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
	"time"

	"github.com/urfave/cli/v2"

	"github.com/veilleur/jobscout/ai"
	"github.com/veilleur/jobscout/ai/openai"
	"github.com/veilleur/jobscout/cache"
	"github.com/veilleur/jobscout/crawl"
	"github.com/veilleur/jobscout/fetch"
	"github.com/veilleur/jobscout/keywords"
	"github.com/veilleur/jobscout/websearch"
)

// defaultQuery is used when the caller provides nothing, interactively or
// as arguments.
const defaultQuery = "offre de stage étudiant Paris python"

func main() {
	app := &cli.App{
		Name:      "jobscout",
		Usage:     "Semantic crawler for job postings",
		ArgsUsage: "[query...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "keywords",
				Aliases: []string{"k"},
				Usage:   "Path to the keyword vocabulary JSON file",
				Value:   "keywords.json",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: "all-minilm",
			},
			&cli.IntFlag{
				Name:    "max-results",
				Aliases: []string{"n"},
				Usage:   "Maximum number of candidate pages to crawl",
				Value:   20,
			},
			&cli.DurationFlag{
				Name:  "cache-ttl",
				Usage: "How long cached embeddings stay valid",
				Value: cache.DefaultTTL,
			},
			&cli.DurationFlag{
				Name:  "fetch-timeout",
				Usage: "Per-page download timeout",
				Value: 10 * time.Second,
			},
		},
		Before: setupLogger,
		Action: searchCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	sets, err := keywords.Load(c.String("keywords"))
	if err != nil {
		return fmt.Errorf("loading keyword vocabulary: %w", err)
	}

	classifier, err := keywords.NewClassifier(sets)
	if err != nil {
		return fmt.Errorf("creating classifier: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid embedding configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}

	provider, err := websearch.NewDuckDuckGo(
		websearch.WithTimeout(c.Duration("fetch-timeout")),
	)
	if err != nil {
		return fmt.Errorf("creating search provider: %w", err)
	}

	fetcher, err := fetch.New(
		fetch.WithTimeout(c.Duration("fetch-timeout")),
	)
	if err != nil {
		return fmt.Errorf("creating fetcher: %w", err)
	}

	crawler, err := crawl.New(provider, fetcher, embedder, classifier,
		crawl.WithCacheTTL(c.Duration("cache-ttl")),
		crawl.WithMonitor(crawl.NewProgressMonitor(os.Stderr)),
	)
	if err != nil {
		return fmt.Errorf("creating crawler: %w", err)
	}
	defer crawler.Release()

	query := readQuery(c)

	results, err := crawler.Search(ctx, query, c.Int("max-results"))
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No relevant results found.")
		return nil
	}

	fmt.Printf("Found %d relevant pages for %q:\n\n", len(results), query)
	for i, r := range results {
		fmt.Printf("%d. [%.2f] %s\n", i+1, r.Score, r.Title)
		fmt.Printf("   %s\n", r.URL)
		if r.Contract != "" {
			fmt.Printf("   contract: %s\n", r.Contract)
		}
		if len(r.Skills) > 0 {
			fmt.Printf("   skills: %s\n", strings.Join(r.Skills, ", "))
		}
		fmt.Printf("   %s\n\n", excerptLine(r.Excerpt))
	}
	return nil
}

// readQuery resolves the query from positional arguments, then an
// interactive prompt, then the built-in default.
func readQuery(c *cli.Context) string {
	if c.Args().Len() > 0 {
		return strings.Join(c.Args().Slice(), " ")
	}

	fmt.Fprint(os.Stderr, "query (empty for default): ")
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		if q := strings.TrimSpace(scanner.Text()); q != "" {
			return q
		}
	}

	fmt.Fprintf(os.Stderr, "using default query: %s\n", defaultQuery)
	return defaultQuery
}

// excerptLine flattens an excerpt to a single display line.
func excerptLine(excerpt string) string {
	line := strings.Join(strings.Fields(excerpt), " ")
	const max = 200
	runes := []rune(line)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return line
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

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
