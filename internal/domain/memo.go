package domain

import (
	"time"

	"github.com/google/uuid"
)

// Memo is a dated reminder or meeting note on the calendar.
// Memos have no trash: deletion is immediate and permanent, a deliberate
// asymmetry with the record/project lifecycle.
type Memo struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Date        time.Time // calendar day, midnight UTC
	Time        *string   // optional "HH:MM"
	Type        MemoType
	Priority    Priority
	IsNotified  bool
}
