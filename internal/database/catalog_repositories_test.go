package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/landing/pkg/models"
)

func seedCatalogs(t *testing.T) {
	t.Helper()

	_, err := DB.Exec(`
		INSERT INTO vocabulary (name, size, description) VALUES
			('BEGINNER', 1000, 'CET-4 word book'),
			('INTERMEDIATE', 1500, 'CET-6 word book')
	`)
	require.NoError(t, err)

	_, err = DB.Exec(`
		INSERT INTO affix_catalog (id, type, description) VALUES
			(1, 'PREFIX', 'negation prefixes'),
			(2, 'SUFFIX', 'noun suffixes')
	`)
	require.NoError(t, err)
	_, err = DB.Exec(`
		INSERT INTO affix (id, catalog_id, text, meaning, example) VALUES
			(1, 1, 'un-', 'not', 'unhappy'),
			(2, 1, 'in-', 'not', 'invisible'),
			(3, 2, '-ness', 'state of', 'kindness')
	`)
	require.NoError(t, err)

	_, err = DB.Exec(`
		INSERT INTO help_catalog (id, name, description) VALUES
			(1, 'study', 'how lessons work')
	`)
	require.NoError(t, err)
	_, err = DB.Exec(`
		INSERT INTO help (id, catalog_id, title, content) VALUES
			(1, 1, 'phases', 'learn, choose, spell')
	`)
	require.NoError(t, err)
}

func TestVocabularyRepository_CachesList(t *testing.T) {
	setupTestDB(t)
	seedCatalogs(t)
	repo := NewVocabularyRepository()

	list, err := repo.GetVocabularyList()
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = DB.Exec("DELETE FROM vocabulary")
	require.NoError(t, err)

	cached, err := repo.GetVocabularyList()
	require.NoError(t, err)
	assert.Equal(t, list, cached)

	repo.Invalidate()
	fresh, err := repo.GetVocabularyList()
	require.NoError(t, err)
	assert.Empty(t, fresh)
}

func TestVocabularyRepository_GetVocabulary(t *testing.T) {
	setupTestDB(t)
	seedCatalogs(t)
	repo := NewVocabularyRepository()

	vocab, err := repo.GetVocabulary(models.VocabularyBeginner)
	require.NoError(t, err)
	require.NotNil(t, vocab)
	assert.Equal(t, 1000, vocab.Size)

	vocab, err = repo.GetVocabulary(models.VocabularyNone)
	require.NoError(t, err)
	assert.Nil(t, vocab)
}

func TestAffixRepository_CachesPerCatalog(t *testing.T) {
	setupTestDB(t)
	seedCatalogs(t)
	repo := NewAffixRepository()

	catalogs, err := repo.GetAffixCatalogList()
	require.NoError(t, err)
	require.Len(t, catalogs, 2)
	assert.Equal(t, models.AffixTypePrefix, catalogs[0].Type)

	prefixes, err := repo.GetAffixList(1)
	require.NoError(t, err)
	require.Len(t, prefixes, 2)

	suffixes, err := repo.GetAffixList(2)
	require.NoError(t, err)
	require.Len(t, suffixes, 1)
	assert.Equal(t, "-ness", suffixes[0].Text)

	_, err = DB.Exec("DELETE FROM affix")
	require.NoError(t, err)

	cached, err := repo.GetAffixList(1)
	require.NoError(t, err)
	assert.Equal(t, prefixes, cached)
}

func TestHelpRepository_CachesList(t *testing.T) {
	setupTestDB(t)
	seedCatalogs(t)
	repo := NewHelpRepository()

	catalogs, err := repo.GetHelpCatalogList()
	require.NoError(t, err)
	require.Len(t, catalogs, 1)

	helps, err := repo.GetHelpList(1)
	require.NoError(t, err)
	require.Len(t, helps, 1)
	assert.Equal(t, "phases", helps[0].Title)

	_, err = DB.Exec("DELETE FROM help")
	require.NoError(t, err)

	cached, err := repo.GetHelpList(1)
	require.NoError(t, err)
	assert.Equal(t, helps, cached)

	repo.Invalidate()
	fresh, err := repo.GetHelpList(1)
	require.NoError(t, err)
	assert.Empty(t, fresh)
}
