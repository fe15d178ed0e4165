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


package jobscout

import (
	"log/slog"

	"github.com/veilleur/jobscout/ai"
	"github.com/veilleur/jobscout/ai/openai"
	"github.com/veilleur/jobscout/crawl"
	"github.com/veilleur/jobscout/fetch"
	"github.com/veilleur/jobscout/keywords"
	"github.com/veilleur/jobscout/websearch"
)

// Scout bundles the collaborators a crawl needs: the keyword vocabulary,
// the classifier built over it, the embedding client, the search provider,
// and the page fetcher. It exists so callers wire everything once and then
// mint crawlers from it.
type Scout struct {
	sets       *keywords.Sets
	classifier *keywords.Classifier
	embedder   ai.Embedder
	provider   crawl.SearchProvider
	fetcher    crawl.Fetcher
	logger     *slog.Logger
}

// ScoutOption configures a Scout.
type ScoutOption func(*scoutOptions)

type scoutOptions struct {
	aiConfig *ai.Config
	embedder ai.Embedder
	provider crawl.SearchProvider
	fetcher  crawl.Fetcher
}

// WithAIConfig sets the embedding service configuration used to build the
// default embedder. Ignored when WithEmbedder is also given.
func WithAIConfig(cfg *ai.Config) ScoutOption {
	return func(o *scoutOptions) {
		o.aiConfig = cfg
	}
}

// WithEmbedder injects a pre-built embedder instead of constructing one
// from the AI configuration.
func WithEmbedder(embedder ai.Embedder) ScoutOption {
	return func(o *scoutOptions) {
		o.embedder = embedder
	}
}

// WithProvider injects a search provider. Default is DuckDuckGo.
func WithProvider(provider crawl.SearchProvider) ScoutOption {
	return func(o *scoutOptions) {
		o.provider = provider
	}
}

// WithFetcher injects a page fetcher. Default is a rate-limited HTTP
// client with standard timeouts.
func WithFetcher(fetcher crawl.Fetcher) ScoutOption {
	return func(o *scoutOptions) {
		o.fetcher = fetcher
	}
}

// NewScout loads the keyword vocabulary from keywordPath and assembles the
// default collaborators around it.
func NewScout(keywordPath string, opts ...ScoutOption) (*Scout, error) {
	options := &scoutOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	sets, err := keywords.Load(keywordPath)
	if err != nil {
		return nil, err
	}

	classifier, err := keywords.NewClassifier(sets)
	if err != nil {
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	provider := options.provider
	if provider == nil {
		provider, err = websearch.NewDuckDuckGo()
		if err != nil {
			return nil, err
		}
	}

	fetcher := options.fetcher
	if fetcher == nil {
		fetcher, err = fetch.New()
		if err != nil {
			return nil, err
		}
	}

	return &Scout{
		sets:       sets,
		classifier: classifier,
		embedder:   embedder,
		provider:   provider,
		fetcher:    fetcher,
		logger:     slog.Default(),
	}, nil
}

// Sets returns the loaded keyword vocabulary.
func (s *Scout) Sets() *keywords.Sets {
	return s.sets
}

// Classifier returns the classifier built over the vocabulary.
func (s *Scout) Classifier() *keywords.Classifier {
	return s.classifier
}

// Embedder returns the embedding client.
func (s *Scout) Embedder() ai.Embedder {
	return s.embedder
}

// NewCrawler creates a crawler over the Scout's collaborators. The caller
// owns the crawler and must Release it.
func (s *Scout) NewCrawler(opts ...crawl.Option) (*crawl.Crawler, error) {
	return crawl.New(s.provider, s.fetcher, s.embedder, s.classifier, opts...)
}
