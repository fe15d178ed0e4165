package crawl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilleur/jobscout/ai/mock"
	"github.com/veilleur/jobscout/keywords"
)

type stubProvider struct {
	urls []string
	err  error
}

func (s *stubProvider) Search(_ context.Context, _ string, maxResults int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if maxResults > 0 && len(s.urls) > maxResults {
		return s.urls[:maxResults], nil
	}
	return s.urls, nil
}

type stubFetcher struct {
	pages map[string]string
	errs  map[string]error
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	if err, ok := s.errs[url]; ok {
		return "", err
	}
	return s.pages[url], nil
}

const (
	pythonPage = `<html><head><title>Stage Python</title></head><body>` +
		`<p>Offre de stage python a Paris publiee hier</p></body></html>`
	waiterPage = `<html><head><title>Serveur</title></head><body>` +
		`<p>Offre emploi serveur restaurant</p></body></html>`
	recipePage = `<html><head><title>Recettes</title></head><body>` +
		`<p>Recette de cuisine aux legumes</p></body></html>`
)

func testClassifier(t *testing.T) *keywords.Classifier {
	t.Helper()
	sets, err := keywords.Parse([]byte(`{
		"employment_keywords": ["offre", "stage", "jobs", "emploi"],
		"tech_job_keywords": ["developpeur"],
		"location_keywords": ["paris"],
		"time_keywords": ["hier"],
		"skill_keywords": ["python", "go", "sql"],
		"contract_keywords": ["cdi", "stage"]
	}`))
	require.NoError(t, err)
	classifier, err := keywords.NewClassifier(sets)
	require.NoError(t, err)
	return classifier
}

// directionalEmbedder points python-related texts along one axis and
// everything else off-axis, so similarity ordering is predictable.
func directionalEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		if strings.Contains(strings.ToLower(text), "python") {
			return []float32{1, 0}, nil
		}
		return []float32{0.6, 0.8}, nil
	}
	return embedder
}

func TestNew(t *testing.T) {
	provider := &stubProvider{}
	fetcher := &stubFetcher{}
	embedder := mock.NewMockEmbedder()
	classifier := testClassifier(t)

	t.Run("valid configuration", func(t *testing.T) {
		c, err := New(provider, fetcher, embedder, classifier)
		require.NoError(t, err)
		defer c.Release()
		assert.NotNil(t, c)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := New(nil, fetcher, embedder, classifier)
		assert.Equal(t, ErrProviderRequired, err)
	})

	t.Run("nil fetcher", func(t *testing.T) {
		_, err := New(provider, nil, embedder, classifier)
		assert.Equal(t, ErrFetcherRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := New(provider, fetcher, nil, classifier)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("nil classifier", func(t *testing.T) {
		_, err := New(provider, fetcher, embedder, nil)
		assert.Equal(t, ErrClassifierRequired, err)
	})

	t.Run("invalid excerpt limit", func(t *testing.T) {
		_, err := New(provider, fetcher, embedder, classifier, WithExcerptLimit(0))
		assert.Error(t, err)
	})
}

func TestSearchRanking(t *testing.T) {
	provider := &stubProvider{urls: []string{
		"https://a.example.com/serveur",
		"https://b.example.com/python",
		"https://c.example.com/recettes",
	}}
	fetcher := &stubFetcher{pages: map[string]string{
		"https://a.example.com/serveur":  waiterPage,
		"https://b.example.com/python":   pythonPage,
		"https://c.example.com/recettes": recipePage,
	}}

	c, err := New(provider, fetcher, directionalEmbedder(), testClassifier(t))
	require.NoError(t, err)
	defer c.Release()

	results, err := c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err)
	require.Len(t, results, 2, "the recipe page must not pass the relevance gate")

	assert.Equal(t, "https://b.example.com/python", results[0].URL, "highest score first")
	assert.Equal(t, "https://a.example.com/serveur", results[1].URL)
	assert.Greater(t, results[0].Score, results[1].Score)

	top := results[0]
	assert.Equal(t, "Stage Python", top.Title)
	assert.Equal(t, "stage", top.Contract)
	assert.Contains(t, top.Skills, "python")
	assert.Equal(t, "offre stage python", top.Query)
	assert.NotEmpty(t, top.Excerpt)
	assert.NotEmpty(t, top.Vector)
}

func TestSearchRelevanceGateBeatsSimilarity(t *testing.T) {
	provider := &stubProvider{urls: []string{"https://c.example.com/recettes"}}
	fetcher := &stubFetcher{pages: map[string]string{
		"https://c.example.com/recettes": recipePage,
	}}

	// Embedder claims perfect similarity for everything; the gate must
	// still exclude the page before any embedding happens.
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return []float32{1, 0}, nil
	}

	c, err := New(provider, fetcher, embedder, testClassifier(t))
	require.NoError(t, err)
	defer c.Release()

	results, err := c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, embedder.CallCount(), "only the query may be embedded")
}

func TestSearchStableOrderOnTies(t *testing.T) {
	provider := &stubProvider{urls: []string{
		"https://first.example.com",
		"https://second.example.com",
		"https://third.example.com",
	}}
	// Identical content everywhere: identical scores.
	fetcher := &stubFetcher{pages: map[string]string{
		"https://first.example.com":  pythonPage,
		"https://second.example.com": pythonPage,
		"https://third.example.com":  pythonPage,
	}}

	c, err := New(provider, fetcher, directionalEmbedder(), testClassifier(t))
	require.NoError(t, err)
	defer c.Release()

	results, err := c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "https://first.example.com", results[0].URL)
	assert.Equal(t, "https://second.example.com", results[1].URL)
	assert.Equal(t, "https://third.example.com", results[2].URL)
}

func TestSearchFetchFailureIsolated(t *testing.T) {
	provider := &stubProvider{urls: []string{
		"https://down.example.com",
		"https://up.example.com",
	}}
	fetcher := &stubFetcher{
		pages: map[string]string{"https://up.example.com": pythonPage},
		errs:  map[string]error{"https://down.example.com": errors.New("connection refused")},
	}

	c, err := New(provider, fetcher, directionalEmbedder(), testClassifier(t))
	require.NoError(t, err)
	defer c.Release()

	results, err := c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://up.example.com", results[0].URL)
}

func TestSearchProviderFailureYieldsEmptyList(t *testing.T) {
	provider := &stubProvider{err: errors.New("no network")}

	c, err := New(provider, &stubFetcher{}, mock.NewMockEmbedder(), testClassifier(t))
	require.NoError(t, err)
	defer c.Release()

	results, err := c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err, "provider failure is not fatal")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchQueryEmbeddingFailureIsFatal(t *testing.T) {
	provider := &stubProvider{urls: []string{"https://up.example.com"}}
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return nil, errors.New("model exploded")
	}

	c, err := New(provider, &stubFetcher{}, embedder, testClassifier(t))
	require.NoError(t, err)
	defer c.Release()

	_, err = c.Search(context.Background(), "offre stage python", 10)
	assert.Error(t, err)
}

func TestSearchPageEmbeddingFailureSkipsPage(t *testing.T) {
	provider := &stubProvider{urls: []string{"https://up.example.com"}}
	fetcher := &stubFetcher{pages: map[string]string{"https://up.example.com": pythonPage}}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		if text == "offre stage python" {
			return []float32{1, 0}, nil
		}
		return nil, errors.New("encode failed")
	}

	c, err := New(provider, fetcher, embedder, testClassifier(t))
	require.NoError(t, err)
	defer c.Release()

	results, err := c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err, "page encode failure is isolated")
	assert.Empty(t, results)
}

func TestSearchEmbeddingCacheReuse(t *testing.T) {
	provider := &stubProvider{urls: []string{"https://b.example.com/python"}}
	fetcher := &stubFetcher{pages: map[string]string{
		"https://b.example.com/python": pythonPage,
	}}
	embedder := directionalEmbedder()

	c, err := New(provider, fetcher, embedder, testClassifier(t))
	require.NoError(t, err)
	defer c.Release()

	_, err = c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err)
	afterFirst := embedder.CallCount()
	assert.Equal(t, 2, afterFirst, "query plus one page")

	_, err = c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err)
	assert.Equal(t, afterFirst, embedder.CallCount(), "second crawl served from cache")
}

func TestSearchReportsProgress(t *testing.T) {
	provider := &stubProvider{urls: []string{
		"https://b.example.com/python",
		"https://c.example.com/recettes",
	}}
	fetcher := &stubFetcher{pages: map[string]string{
		"https://b.example.com/python":   pythonPage,
		"https://c.example.com/recettes": recipePage,
	}}

	var buf bytes.Buffer
	c, err := New(provider, fetcher, directionalEmbedder(), testClassifier(t),
		WithMonitor(NewProgressMonitor(&buf)))
	require.NoError(t, err)
	defer c.Release()

	_, err = c.Search(context.Background(), "offre stage python", 10)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "candidates: 2")
	assert.Contains(t, out, "skipped https://c.example.com/recettes")
	assert.Contains(t, out, "1 ranked")
}
