package models

// Question is a multiple-choice quiz item.
type Question struct {
	ID            int64  `json:"id" db:"id"`
	Prompt        string `json:"question" db:"prompt"`
	CorrectAnswer string `json:"answer" db:"answer"`
	Category      string `json:"category" db:"category"` // Stored and returned, not used for selection
	Option1       string `json:"option1" db:"option1"`
	Option2       string `json:"option2" db:"option2"`
	Option3       string `json:"option3" db:"option3"`
}

// Options returns the three answer choices in display order.
func (q Question) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3}
}
