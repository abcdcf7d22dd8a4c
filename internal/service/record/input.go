package record

import (
	"github.com/heartmarshall/worklog-backend/internal/domain"
)

const (
	maxTitleLen       = 500
	maxDescriptionLen = 5000
	maxContentLen     = 100_000
	maxURLLen         = 2048
)

// CreateInput holds parameters for creating a work record.
type CreateInput struct {
	Title       string
	Description string
	RecordType  domain.RecordType
	Content     *string
	FileURL     *string
	LinkURL     *string
	FileType    *domain.FileType
	Priority    domain.Priority
	Progress    int
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

	if !i.RecordType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "record_type", Message: "invalid record type"})
	}

	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if i.Progress < 0 || i.Progress > 100 {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}

	if i.Content != nil && len(*i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}
	if i.FileURL != nil && len(*i.FileURL) > maxURLLen {
		errs = append(errs, domain.FieldError{Field: "file_url", Message: "too long"})
	}
	if i.LinkURL != nil && len(*i.LinkURL) > maxURLLen {
		errs = append(errs, domain.FieldError{Field: "link_url", Message: "too long"})
	}
	if i.FileType != nil && !i.FileType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "file_type", Message: "invalid file type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial record update.
type UpdateInput struct {
	Patch domain.RecordPatch
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "no fields to update"})
	}

	if i.Patch.Title != nil {
		if *i.Patch.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Patch.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Patch.Description != nil && len(*i.Patch.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Patch.Content != nil && len(*i.Patch.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}
	if i.Patch.Progress != nil && (*i.Patch.Progress < 0 || *i.Patch.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	if i.Patch.Priority != nil && !i.Patch.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput selects a record view.
type ListInput struct {
	// Deleted selects the trash view instead of the active one.
	Deleted bool

	// Category filters by record type (active view only).
	Category *domain.RecordType

	// Search filters by title/description substring (active view only).
	Search string
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid record type"})
	}
	if len(i.Search) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
