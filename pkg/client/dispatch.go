package client

// EventType names a state-update event emitted after an action
// completes.
type EventType string

const (
	EventUserLoaded      EventType = "user_loaded"
	EventRegisterSuccess EventType = "register_success"
	EventLoginSuccess    EventType = "login_success"
	EventAuthError       EventType = "auth_error"
	EventAccountDeleted  EventType = "account_deleted"

	EventGetProfile    EventType = "get_profile"
	EventGetProfiles   EventType = "get_profiles"
	EventUpdateProfile EventType = "update_profile"
	EventClearProfile  EventType = "clear_profile"
	EventProfileError  EventType = "profile_error"
	EventGetRepos      EventType = "get_repos"

	EventGetPosts      EventType = "get_posts"
	EventGetPost       EventType = "get_post"
	EventAddPost       EventType = "add_post"
	EventDeletePost    EventType = "delete_post"
	EventUpdateLikes   EventType = "update_likes"
	EventAddComment    EventType = "add_comment"
	EventRemoveComment EventType = "remove_comment"
	EventPostError     EventType = "post_error"
)

// Event carries an action outcome to the registered dispatcher.
// Success events hold the decoded response payload; error events hold
// an *APIError.
type Event struct {
	Type    EventType
	Payload interface{}
}

// Dispatcher receives every event an action emits. Implementations
// typically fold events into UI state.
type Dispatcher interface {
	Dispatch(Event)
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(Event)

func (f DispatcherFunc) Dispatch(ev Event) { f(ev) }
