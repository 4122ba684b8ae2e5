package domain

type ChapterStatus string

const (
	ChapterNotStarted ChapterStatus = "not_started"
	ChapterInProgress ChapterStatus = "in_progress"
	ChapterCompleted  ChapterStatus = "completed"
)

// ValidChapterStatuses is the canonical set of accepted chapter status strings.
var ValidChapterStatuses = map[ChapterStatus]bool{
	ChapterNotStarted: true,
	ChapterInProgress: true,
	ChapterCompleted:  true,
}

type ResourceType string

const (
	ResourceLink  ResourceType = "link"
	ResourceVideo ResourceType = "video"
	ResourcePDF   ResourceType = "pdf"
	ResourceNote  ResourceType = "note"
)

// ValidResourceTypes is the canonical set of accepted resource type strings.
var ValidResourceTypes = map[ResourceType]bool{
	ResourceLink:  true,
	ResourceVideo: true,
	ResourcePDF:   true,
	ResourceNote:  true,
}

type UrgencyLevel string

const (
	UrgencySafe     UrgencyLevel = "safe"
	UrgencyModerate UrgencyLevel = "moderate"
	UrgencyUrgent   UrgencyLevel = "urgent"
)

type NotificationKind string

const (
	NotifyUrgent  NotificationKind = "urgent"
	NotifyWarning NotificationKind = "warning"
	NotifyInfo    NotificationKind = "info"
)
