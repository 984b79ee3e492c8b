package models

// Word is a vocabulary entry with its translation. Level and topic are free-form tags.
type Word struct {
	ID          int64  `json:"id" db:"id"`
	Word        string `json:"word" db:"word"`
	Translation string `json:"translation" db:"translation"`
	Level       string `json:"level" db:"level"`
	Topic       string `json:"topic" db:"topic"`
}

// WordFilter narrows a word listing. Empty fields are not applied.
type WordFilter struct {
	Level string
	Topic string
}
