package sdk

import "time"

// PostAuthor identifies the author of a community post.
type PostAuthor struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// PostCommunity identifies the community a post belongs to.
type PostCommunity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Post represents a post in a community feed.
type Post struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Author      PostAuthor    `json:"author"`
	Community   PostCommunity `json:"community"`
	Created     *time.Time    `json:"created_at,omitempty"`
	LastUpdated *time.Time    `json:"updated_at,omitempty"`
	TimeAgo     string        `json:"time_ago,omitempty"`
	IsAuthor    bool          `json:"is_author,omitempty"`
}

// PostCreate is the payload for publishing a post to a community.
type PostCreate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostList is a paged collection of posts.
type PostList struct {
	Items      []Post         `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}
