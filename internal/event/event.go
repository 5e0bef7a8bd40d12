package event

import "encoding/json"

const (
	EventPostCreated    = "post_created"
	EventPostDeleted    = "post_deleted"
	EventLikesUpdated   = "likes_updated"
	EventCommentAdded   = "comment_added"
	EventCommentRemoved = "comment_removed"
)

// FeedEvent is pushed to live-feed websocket clients after a
// successful post mutation.
type FeedEvent struct {
	Event     string          `json:"event"`
	PostID    string          `json:"postId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}
