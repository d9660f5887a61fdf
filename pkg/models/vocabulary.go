package models

// VocabularyName identifies one of the shipped word books
type VocabularyName string

const (
	// VocabularyBeginner is the CET-4 word book
	VocabularyBeginner VocabularyName = "BEGINNER"
	// VocabularyIntermediate is the CET-6 word book
	VocabularyIntermediate VocabularyName = "INTERMEDIATE"
	// VocabularyNone means no word book is selected
	VocabularyNone VocabularyName = "NONE"
)

// Vocabulary describes a word book available for study plans
type Vocabulary struct {
	Name        VocabularyName `json:"name" db:"name"`
	Size        int            `json:"size" db:"size"`
	Description string         `json:"description" db:"description"`
}
