package memo

import (
	"regexp"
	"time"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

const (
	maxTitleLen       = 500
	maxDescriptionLen = 5000
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// CreateInput holds parameters for creating a memo.
type CreateInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        *string // optional "HH:MM"
	Type        domain.MemoType
	Priority    domain.Priority
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Time != nil && !timeOfDayRe.MatchString(*i.Time) {
		errs = append(errs, domain.FieldError{Field: "time", Message: "must be HH:MM"})
	}

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid memo type"})
	}
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
