package sdk

import "time"

// User represents a Hearth user profile as returned by the API.
type User struct {
	ID              int64                  `json:"id"`
	Email           string                 `json:"email"`
	FirstName       string                 `json:"first_name"`
	LastName        string                 `json:"last_name"`
	FullName        string                 `json:"full_name,omitempty"`
	Location        string                 `json:"location"`
	ChildrenAges    []int                  `json:"children_ages,omitempty"`
	ParentingGoals  []string               `json:"parenting_goals,omitempty"`
	Preferences     map[string]interface{} `json:"preferences,omitempty"`
	EngagementScore *float64               `json:"engagement_score,omitempty"`
	Created         *time.Time             `json:"created_at,omitempty"`
	LastUpdated     *time.Time             `json:"updated_at,omitempty"`
}

// UserUpdate represents the subset of a profile a user may modify. Zero-valued
// fields are omitted from the request body and left untouched by the server.
type UserUpdate struct {
	FirstName      string                 `json:"first_name,omitempty"`
	LastName       string                 `json:"last_name,omitempty"`
	Location       string                 `json:"location,omitempty"`
	ChildrenAges   []int                  `json:"children_ages,omitempty"`
	ParentingGoals []string               `json:"parenting_goals,omitempty"`
	Preferences    map[string]interface{} `json:"preferences,omitempty"`
}
