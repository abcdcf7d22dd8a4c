package domain

// RecordType classifies a work record by the kind of content it logs.
type RecordType string

const (
	RecordTypePromotional       RecordType = "promotional"
	RecordTypeMeetingMinutes    RecordType = "meeting_minutes"
	RecordTypePolicyApplication RecordType = "policy_application"
	RecordTypeProjectProposal   RecordType = "project_proposal"
)

func (t RecordType) String() string { return string(t) }

func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypePromotional, RecordTypeMeetingMinutes,
		RecordTypePolicyApplication, RecordTypeProjectProposal:
		return true
	}
	return false
}

// RecordStatus is the lifecycle state of a work record.
//
// archived is a valid, storable value but no operation currently produces it:
// the only transitions are active -> deleted (soft delete), deleted -> active
// (restore) and deleted -> gone (purge). It is reserved for a future archive
// feature and ignored by both the active and trash partitions.
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusArchived RecordStatus = "archived"
	RecordStatusDeleted  RecordStatus = "deleted"
)

func (s RecordStatus) String() string { return string(s) }

func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusActive, RecordStatusArchived, RecordStatusDeleted:
		return true
	}
	return false
}

// ProjectStatus is the lifecycle/progress state of a project.
// deleted doubles as the trash marker; everything else counts as active.
type ProjectStatus string

const (
	ProjectStatusPlanned    ProjectStatus = "planned"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusDelayed    ProjectStatus = "delayed"
	ProjectStatusDeleted    ProjectStatus = "deleted"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanned, ProjectStatusInProgress, ProjectStatusCompleted,
		ProjectStatusDelayed, ProjectStatusDeleted:
		return true
	}
	return false
}

// FileType describes the kind of attachment linked to a record.
type FileType string

const (
	FileTypePDF   FileType = "pdf"
	FileTypeDoc   FileType = "doc"
	FileTypeTxt   FileType = "txt"
	FileTypeLink  FileType = "link"
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

func (t FileType) String() string { return string(t) }

func (t FileType) IsValid() bool {
	switch t {
	case FileTypePDF, FileTypeDoc, FileTypeTxt, FileTypeLink, FileTypeImage, FileTypeVideo:
		return true
	}
	return false
}

// MemoType classifies a calendar memo.
type MemoType string

const (
	MemoTypeMeeting  MemoType = "meeting"
	MemoTypeReminder MemoType = "reminder"
	MemoTypeMemo     MemoType = "memo"
)

func (t MemoType) String() string { return string(t) }

func (t MemoType) IsValid() bool {
	switch t {
	case MemoTypeMeeting, MemoTypeReminder, MemoTypeMemo:
		return true
	}
	return false
}

// Priority is shared by records, projects and memos.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// AIProvider selects which LLM backend serves an analyze/report call.
type AIProvider string

const (
	AIProviderGemini   AIProvider = "gemini"
	AIProviderDeepSeek AIProvider = "deepseek"
)

func (p AIProvider) String() string { return string(p) }

func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderDeepSeek:
		return true
	}
	return false
}
