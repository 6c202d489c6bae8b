package model

// ContentStatus is the publication state of a material or video.
type ContentStatus string

const (
	StatusPublished ContentStatus = "published"
	StatusDraft     ContentStatus = "draft"
)

// Valid reports whether s is one of the known statuses.
func (s ContentStatus) Valid() bool {
	return s == StatusPublished || s == StatusDraft
}
