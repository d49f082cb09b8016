package sdk

// AuthResponse is the payload returned by successful login and registration
// calls.
type AuthResponse struct {
	Token   string `json:"token"`
	Exp     string `json:"exp,omitempty"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email                string                 `json:"email"`
	Password             string                 `json:"password"`
	PasswordConfirmation string                 `json:"password_confirmation"`
	FirstName            string                 `json:"first_name"`
	LastName             string                 `json:"last_name"`
	Location             string                 `json:"location"`
	ChildrenAges         []int                  `json:"children_ages,omitempty"`
	ParentingGoals       []string               `json:"parenting_goals,omitempty"`
	Preferences          map[string]interface{} `json:"preferences,omitempty"`
}
