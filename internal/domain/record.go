package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkRecord is a logged unit of work content: promotional material, meeting
// minutes, a policy filing or a project proposal. Records are owned by
// exactly one user and soft-deleted into the trash before being purged.
type WorkRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	RecordType  RecordType
	Content     *string
	FileURL     *string
	LinkURL     *string
	FileType    *FileType
	Status      RecordStatus
	Priority    Priority
	Progress    int // 0-100
	CreatedAt   time.Time
	AISummary   *string
}

// IsActive reports whether the record belongs to the main (non-trash) view.
func (r *WorkRecord) IsActive() bool {
	return r.Status == RecordStatusActive
}

// IsDeleted reports whether the record sits in the trash.
func (r *WorkRecord) IsDeleted() bool {
	return r.Status == RecordStatusDeleted
}

// CreatedInMonth reports whether the record was created in the given
// year/month (UTC). Used by the monthly report selection.
func (r *WorkRecord) CreatedInMonth(year int, month time.Month) bool {
	t := r.CreatedAt.UTC()
	return t.Year() == year && t.Month() == month
}

// RecordFilter narrows a record listing. The zero value lists everything
// for the user.
type RecordFilter struct {
	// Status restricts to one lifecycle state (active view, trash view).
	Status *RecordStatus

	// Category restricts to one record type.
	Category *RecordType

	// Search matches title OR description case-insensitively (substring).
	// Empty string means no text filter.
	Search string
}

// RecordPatch holds the mutable fields of a record for partial updates.
// Nil pointers are left untouched.
type RecordPatch struct {
	Title       *string
	Description *string
	Content     *string
	LinkURL     *string
	FileURL     *string
	Progress    *int
	Priority    *Priority
	AISummary   *string
}

// IsEmpty reports whether the patch changes nothing.
func (p RecordPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Content == nil &&
		p.LinkURL == nil && p.FileURL == nil && p.Progress == nil &&
		p.Priority == nil && p.AISummary == nil
}
