package jobscout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilleur/jobscout/ai/mock"
)

const testVocabulary = `{
	"employment_keywords": ["offre", "stage", "emploi"],
	"tech_job_keywords": ["developpeur"],
	"location_keywords": ["paris"],
	"time_keywords": ["hier"],
	"skill_keywords": ["python", "go"],
	"contract_keywords": ["cdi", "stage"]
}`

func writeVocabulary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.json")
	require.NoError(t, os.WriteFile(path, []byte(testVocabulary), 0644))
	return path
}

func TestNewScout(t *testing.T) {
	t.Run("create scout from vocabulary file", func(t *testing.T) {
		scout, err := NewScout(writeVocabulary(t), WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		require.NotNil(t, scout)

		assert.NotNil(t, scout.Sets())
		assert.NotNil(t, scout.Classifier())
		assert.NotNil(t, scout.Embedder())
		assert.NotNil(t, scout.provider)
		assert.NotNil(t, scout.fetcher)
		assert.NotNil(t, scout.logger)
	})

	t.Run("error with missing vocabulary file", func(t *testing.T) {
		scout, err := NewScout(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
		assert.Nil(t, scout)
	})

	t.Run("error with malformed vocabulary file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keywords.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

		scout, err := NewScout(path)
		assert.Error(t, err)
		assert.Nil(t, scout)
	})
}

func TestScout_NewCrawler(t *testing.T) {
	scout, err := NewScout(writeVocabulary(t), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)

	crawler, err := scout.NewCrawler()
	require.NoError(t, err)
	require.NotNil(t, crawler)
	crawler.Release()
}
