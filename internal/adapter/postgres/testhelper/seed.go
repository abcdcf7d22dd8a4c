package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a fixed (unchecked) password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// bcrypt hash of "password" — repo tests never log in with it.
	const hash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, hash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRecord creates a work record with the given status and returns it.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.RecordStatus) domain.WorkRecord {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	content := "Content " + suffix
	rec := domain.WorkRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Record " + suffix,
		Description: "Description " + suffix,
		RecordType:  domain.RecordTypeMeetingMinutes,
		Content:     &content,
		Status:      status,
		Priority:    domain.PriorityMedium,
		Progress:    0,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	var deletedAt *time.Time
	if status == domain.RecordStatusDeleted {
		now := time.Now().UTC()
		deletedAt = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO work_records (id, user_id, title, description, record_type, content, status, priority, progress, created_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.UserID, rec.Title, rec.Description, string(rec.RecordType),
		rec.Content, string(rec.Status), string(rec.Priority), rec.Progress, rec.CreatedAt, deletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}

// SeedProject creates a project with the given status and returns it.
func SeedProject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.ProjectStatus) domain.Project {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	p := domain.Project{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            "Project " + suffix,
		Description:     "Description " + suffix,
		ProjectType:     "internal",
		Status:          status,
		Priority:        domain.PriorityMedium,
		Progress:        0,
		StartDate:       time.Now().UTC().Truncate(24 * time.Hour),
		LinkedRecordIDs: []uuid.UUID{},
	}

	var deletedAt *time.Time
	if status == domain.ProjectStatusDeleted {
		now := time.Now().UTC()
		deletedAt = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO projects (id, user_id, name, description, project_type, status, priority, progress, start_date, linked_record_ids, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.UserID, p.Name, p.Description, p.ProjectType,
		string(p.Status), string(p.Priority), p.Progress, p.StartDate, p.LinkedRecordIDs, deletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert: %v", err)
	}

	return p
}

// SeedMemo creates a memo on today's date and returns it.
func SeedMemo(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Memo {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	m := domain.Memo{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Memo " + suffix,
		Description: "Description " + suffix,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Type:        domain.MemoTypeMemo,
		Priority:    domain.PriorityMedium,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO memos (id, user_id, title, description, date, time, type, priority, is_notified)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.UserID, m.Title, m.Description, m.Date, m.Time,
		string(m.Type), string(m.Priority), m.IsNotified,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMemo insert: %v", err)
	}

	return m
}
