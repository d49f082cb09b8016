package sdk

import "time"

// Community represents a local parenting community.
type Community struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	Category     string     `json:"category"`
	MembersCount int        `json:"members_count"`
	Created      *time.Time `json:"created_at,omitempty"`
}

// CommunityCreate is the payload for creating a new community.
type CommunityCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

// CommunitySelector filters community listings.
type CommunitySelector struct {
	Location string
	Category string
}

// CommunityList is a paged collection of communities.
type CommunityList struct {
	Items      []Community    `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}
