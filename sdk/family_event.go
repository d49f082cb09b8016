package sdk

import "time"

// FamilyEvent represents a scheduled family activity.
type FamilyEvent struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Duration    string     `json:"duration,omitempty"`
	IsUpcoming  bool       `json:"is_upcoming,omitempty"`
	IsToday     bool       `json:"is_today,omitempty"`
	Created     *time.Time `json:"created_at,omitempty"`
	LastUpdated *time.Time `json:"updated_at,omitempty"`
}

// FamilyEventSpec is the payload for creating or updating a family event.
type FamilyEventSpec struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// FamilyEventList is a paged collection of family events.
type FamilyEventList struct {
	Items      []FamilyEvent  `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}
