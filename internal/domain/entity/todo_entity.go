package entity

import (
	"strings"
	"time"
)

// Todo belongs to exactly one creator. CompletedAt is stamped when the
// completed flag flips to true and cleared when it flips back.
type Todo struct {
	ID          string
	Text        string
	Completed   bool
	CompletedAt *time.Time
	CreatorID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate trims and checks the text before persistence.
func (t *Todo) Validate() *ValidationError {
	t.Text = strings.TrimSpace(t.Text)
	if t.Text == "" {
		return &ValidationError{Fields: map[string]string{"text": "is required"}}
	}
	return nil
}
