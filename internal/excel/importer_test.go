package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/landing/internal/database"
	"github.com/example/landing/pkg/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_TYPE", "")
	t.Setenv("DATA_DIR", t.TempDir())
	require.NoError(t, database.Connect())
	t.Cleanup(func() { database.Close() })
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportVocabulary_FromCSV(t *testing.T) {
	setupDB(t)

	csv := "spelling,ipa,cn,en,pron_name\n" +
		"apple,ˈæpəl,{},{},apple_uk\n" +
		"banana,bəˈnɑːnə,{},{},banana_uk\n" +
		",,,,\n"

	config := DefaultImportConfig()
	config.FilePath = writeCSV(t, csv)
	config.VocabularyName = models.VocabularyBeginner
	config.Description = "test word book"

	result, err := ImportVocabulary(config)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)

	word, err := database.NewWordRepository().SearchWord("apple")
	require.NoError(t, err)
	require.NotNil(t, word)
	assert.Equal(t, "ˈæpəl", word.Ipa)

	vocab, err := database.NewVocabularyRepository().GetVocabulary(models.VocabularyBeginner)
	require.NoError(t, err)
	require.NotNil(t, vocab)
	assert.Equal(t, 2, vocab.Size)
	assert.Equal(t, "test word book", vocab.Description)
}

func TestImportVocabulary_SkipsDuplicateSpellings(t *testing.T) {
	setupDB(t)

	csv := "spelling,ipa,cn,en,pron_name\n" +
		"apple,,{},{},\n" +
		"apple,,{},{},\n"

	config := DefaultImportConfig()
	config.FilePath = writeCSV(t, csv)
	config.VocabularyName = models.VocabularyBeginner

	result, err := ImportVocabulary(config)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
}
