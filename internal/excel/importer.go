package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/landing/internal/database"
	"github.com/example/landing/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines how a word book file maps onto the word table.
// Expected columns, in order: spelling, ipa, cn, en, pron_name.
type ImportConfig struct {
	FilePath       string
	VocabularyName models.VocabularyName
	Description    string
	SheetName      string
	StartRow       int // 1-based; rows above it are headers
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName: "Sheet1",
		StartRow:  2,
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportVocabulary loads a word book from an Excel or CSV file into the word
// table and registers it in the vocabulary catalog.
func ImportVocabulary(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	var result *ImportResult
	var err error
	if ext == ".csv" {
		result, err = importFromCSV(config)
	} else {
		result, err = importFromExcel(config)
	}
	if err != nil {
		return nil, err
	}

	if err := registerVocabulary(config); err != nil {
		return nil, err
	}
	return result, nil
}

func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %v", config.SheetName, err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		importRow(row, i+1, result)
	}
	return result, nil
}

func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	result := &ImportResult{}
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %v", err)
		}
		line++
		if line < config.StartRow {
			continue
		}
		importRow(row, line, result)
	}
	return result, nil
}

func importRow(row []string, line int, result *ImportResult) {
	result.TotalProcessed++

	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		result.Skipped++
		return
	}

	word := models.Word{Spelling: strings.TrimSpace(row[0])}
	if len(row) > 1 {
		word.Ipa = strings.TrimSpace(row[1])
	}
	if len(row) > 2 {
		word.Cn = strings.TrimSpace(row[2])
	}
	if len(row) > 3 {
		word.En = strings.TrimSpace(row[3])
	}
	if len(row) > 4 {
		word.PronName = strings.TrimSpace(row[4])
	}

	res, err := database.DB.Exec(`
		INSERT INTO word (spelling, ipa, cn, en, pron_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (spelling) DO NOTHING
	`, word.Spelling, word.Ipa, word.Cn, word.En, word.PronName)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
		return
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		result.Skipped++
		return
	}
	result.Created++
}

// registerVocabulary records the imported word book in the catalog, sized by
// the words now present.
func registerVocabulary(config ImportConfig) error {
	var size int
	if err := database.DB.Get(&size, "SELECT COUNT(*) FROM word"); err != nil {
		return fmt.Errorf("failed to count words: %v", err)
	}

	_, err := database.DB.Exec(`
		INSERT INTO vocabulary (name, size, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			size = excluded.size,
			description = excluded.description
	`, config.VocabularyName, size, config.Description)
	if err != nil {
		return fmt.Errorf("failed to register vocabulary: %v", err)
	}
	return nil
}
