package sdk

import "time"

// DashboardActivity is a single entry in the recent-activity feed.
type DashboardActivity struct {
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Created     *time.Time `json:"created_at,omitempty"`
}

// UpcomingEvent is the dashboard's condensed view of a family event.
type UpcomingEvent struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	DaysUntil int       `json:"days_until"`
}

// PendingTask is the dashboard's condensed view of an open task.
type PendingTask struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Priority  int        `json:"priority"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	DaysUntil *int       `json:"days_until,omitempty"`
}

// DashboardStats is the engagement summary the API computes for a user.
type DashboardStats struct {
	TotalCommunities int                 `json:"total_communities"`
	TotalPosts       int                 `json:"total_posts"`
	TotalUsers       int                 `json:"total_users"`
	UserEngagement   float64             `json:"user_engagement"`
	RecentActivities []DashboardActivity `json:"recent_activities,omitempty"`
	UpcomingEvents   []UpcomingEvent     `json:"upcoming_events,omitempty"`
	PendingTasks     []PendingTask       `json:"pending_tasks,omitempty"`
}
