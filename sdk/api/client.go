package api

// Client is the general interface for the Hearth API. It does little more
// than expose functions for obtaining more specialized clients for different
// areas of concern, like session management or the marketplace.
type Client interface {
	// Sessions returns a specialized client for session management.
	Sessions() SessionsClient
	// Users returns a specialized client for user profile management.
	Users() UsersClient
	// Communities returns a specialized client for community management.
	Communities() CommunitiesClient
	// Marketplace returns a specialized client for marketplace listings.
	Marketplace() MarketplaceClient
	// Tasks returns a specialized client for task management.
	Tasks() TasksClient
	// FamilyEvents returns a specialized client for the family schedule.
	FamilyEvents() FamilyEventsClient
	// Chat returns a specialized client for the AI chat assistant.
	Chat() ChatClient
}

type client struct {
	sessionsClient     SessionsClient
	usersClient        UsersClient
	communitiesClient  CommunitiesClient
	marketplaceClient  MarketplaceClient
	tasksClient        TasksClient
	familyEventsClient FamilyEventsClient
	chatClient         ChatClient
}

// NewClient returns a Hearth API client. The token is read from the given
// TokenGetter on every request, so a single client remains valid across
// logins and logouts.
func NewClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) Client {
	base := NewBaseClient(apiAddress, tokens, opts)
	return &client{
		sessionsClient:     &sessionsClient{BaseClient: base},
		usersClient:        &usersClient{BaseClient: base},
		communitiesClient:  &communitiesClient{BaseClient: base},
		marketplaceClient:  &marketplaceClient{BaseClient: base},
		tasksClient:        &tasksClient{BaseClient: base},
		familyEventsClient: &familyEventsClient{BaseClient: base},
		chatClient:         &chatClient{BaseClient: base},
	}
}

func (c *client) Sessions() SessionsClient {
	return c.sessionsClient
}

func (c *client) Users() UsersClient {
	return c.usersClient
}

func (c *client) Communities() CommunitiesClient {
	return c.communitiesClient
}

func (c *client) Marketplace() MarketplaceClient {
	return c.marketplaceClient
}

func (c *client) Tasks() TasksClient {
	return c.tasksClient
}

func (c *client) FamilyEvents() FamilyEventsClient {
	return c.familyEventsClient
}

func (c *client) Chat() ChatClient {
	return c.chatClient
}
