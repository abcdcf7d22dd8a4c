package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a tracked initiative with progress and an ordered list of
// linked work records. Linked ids are not enforced referentially: a linked
// record may have been purged, and readers must tolerate ids that no longer
// resolve.
type Project struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Description     string
	ProjectType     string
	Status          ProjectStatus
	Priority        Priority
	Progress        int // 0-100
	StartDate       time.Time
	EndDate         *time.Time
	TargetDate      *time.Time
	FileName        *string
	LinkedRecordIDs []uuid.UUID
}

// IsDeleted reports whether the project sits in the trash.
// Every non-deleted status counts as active, including completed.
func (p *Project) IsDeleted() bool {
	return p.Status == ProjectStatusDeleted
}

// ProjectPatch holds the mutable fields of a project for partial updates.
// Nil pointers are left untouched. LinkedRecordIDs replaces the whole list
// when set.
type ProjectPatch struct {
	Name            *string
	Description     *string
	ProjectType     *string
	Status          *ProjectStatus
	Priority        *Priority
	Progress        *int
	EndDate         *time.Time
	TargetDate      *time.Time
	FileName        *string
	LinkedRecordIDs *[]uuid.UUID
}

// IsEmpty reports whether the patch changes nothing.
func (p ProjectPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.ProjectType == nil &&
		p.Status == nil && p.Priority == nil && p.Progress == nil &&
		p.EndDate == nil && p.TargetDate == nil && p.FileName == nil &&
		p.LinkedRecordIDs == nil
}
