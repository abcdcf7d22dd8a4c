package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

const (
	maxNameLen        = 500
	maxDescriptionLen = 5000
	maxTypeLen        = 100
	maxFileNameLen    = 500
)

// CreateInput holds parameters for creating a project.
type CreateInput struct {
	Name            string
	Description     string
	ProjectType     string
	Status          domain.ProjectStatus
	Priority        domain.Priority
	Progress        int
	StartDate       time.Time
	EndDate         *time.Time
	TargetDate      *time.Time
	FileName        *string
	LinkedRecordIDs []uuid.UUID
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(i.ProjectType) > maxTypeLen {
		errs = append(errs, domain.FieldError{Field: "project_type", Message: "too long"})
	}

	if !i.Status.IsValid() || i.Status == domain.ProjectStatusDeleted {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if i.Progress < 0 || i.Progress > 100 {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}

	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if i.FileName != nil && len(*i.FileName) > maxFileNameLen {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for a partial project update.
type UpdateInput struct {
	Patch domain.ProjectPatch
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "no fields to update"})
	}

	if i.Patch.Name != nil {
		if *i.Patch.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(*i.Patch.Name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Patch.Description != nil && len(*i.Patch.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Patch.ProjectType != nil && len(*i.Patch.ProjectType) > maxTypeLen {
		errs = append(errs, domain.FieldError{Field: "project_type", Message: "too long"})
	}

	// Trash transitions go through Delete/Restore, not a field update.
	if i.Patch.Status != nil && (!i.Patch.Status.IsValid() || *i.Patch.Status == domain.ProjectStatusDeleted) {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Patch.Priority != nil && !i.Patch.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if i.Patch.Progress != nil && (*i.Patch.Progress < 0 || *i.Patch.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	if i.Patch.FileName != nil && len(*i.Patch.FileName) > maxFileNameLen {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
