package rest

import (
	"time"

	"github.com/heartmarshall/worklog-backend/internal/domain"
)

// Wire shapes follow the client's snake_case field names.

type recordResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	RecordType  string  `json:"record_type"`
	Content     *string `json:"content,omitempty"`
	FileURL     *string `json:"file_url,omitempty"`
	LinkURL     *string `json:"link_url,omitempty"`
	FileType    *string `json:"file_type,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Progress    int     `json:"progress"`
	CreatedAt   string  `json:"created_at"`
	AISummary   *string `json:"ai_summary,omitempty"`
}

func toRecordResponse(rec *domain.WorkRecord) recordResponse {
	resp := recordResponse{
		ID:          rec.ID.String(),
		Title:       rec.Title,
		Description: rec.Description,
		RecordType:  rec.RecordType.String(),
		Content:     rec.Content,
		FileURL:     rec.FileURL,
		LinkURL:     rec.LinkURL,
		Status:      rec.Status.String(),
		Priority:    rec.Priority.String(),
		Progress:    rec.Progress,
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339),
		AISummary:   rec.AISummary,
	}
	if rec.FileType != nil {
		ft := rec.FileType.String()
		resp.FileType = &ft
	}
	return resp
}

func toRecordResponses(records []*domain.WorkRecord) []recordResponse {
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	return out
}

type projectResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ProjectType     string   `json:"project_type"`
	Status          string   `json:"status"`
	Priority        string   `json:"priority"`
	Progress        int      `json:"progress"`
	StartDate       string   `json:"start_date"`
	EndDate         *string  `json:"end_date,omitempty"`
	TargetDate      *string  `json:"target_date,omitempty"`
	FileName        *string  `json:"file_name,omitempty"`
	LinkedRecordIDs []string `json:"linked_record_ids"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	resp := projectResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Description:     p.Description,
		ProjectType:     p.ProjectType,
		Status:          p.Status.String(),
		Priority:        p.Priority.String(),
		Progress:        p.Progress,
		StartDate:       p.StartDate.UTC().Format("2006-01-02"),
		FileName:        p.FileName,
		LinkedRecordIDs: make([]string, 0, len(p.LinkedRecordIDs)),
	}
	for _, id := range p.LinkedRecordIDs {
		resp.LinkedRecordIDs = append(resp.LinkedRecordIDs, id.String())
	}
	if p.EndDate != nil {
		d := p.EndDate.UTC().Format("2006-01-02")
		resp.EndDate = &d
	}
	if p.TargetDate != nil {
		d := p.TargetDate.UTC().Format("2006-01-02")
		resp.TargetDate = &d
	}
	return resp
}

func toProjectResponses(projects []*domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}

type memoResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        *string `json:"time,omitempty"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
	IsNotified  bool    `json:"is_notified"`
}

func toMemoResponse(m *domain.Memo) memoResponse {
	return memoResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date.UTC().Format("2006-01-02"),
		Time:        m.Time,
		Type:        m.Type.String(),
		Priority:    m.Priority.String(),
		IsNotified:  m.IsNotified,
	}
}

func toMemoResponses(memos []*domain.Memo) []memoResponse {
	out := make([]memoResponse, 0, len(memos))
	for _, m := range memos {
		out = append(out, toMemoResponse(m))
	}
	return out
}

type userResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}
