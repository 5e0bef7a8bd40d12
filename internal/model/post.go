package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a status update authored by a user. Name and Avatar are
// denormalized from the author at creation time so feeds render
// without a join.
type Post struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Text      string             `json:"text" bson:"text"`
	Name      string             `json:"name" bson:"name"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	Likes     []Like             `json:"likes" bson:"likes"`
	Comments  []Comment          `json:"comments" bson:"comments"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

// Like records that a user liked the post. At most one entry per user.
type Like struct {
	User primitive.ObjectID `json:"user" bson:"user"`
}

// Comment is embedded in its post, newest first.
type Comment struct {
	ID        string             `json:"id" bson:"id"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Text      string             `json:"text" bson:"text"`
	Name      string             `json:"name" bson:"name"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

// LikedBy reports whether the user already has a like on the post.
func (p *Post) LikedBy(user primitive.ObjectID) bool {
	for _, l := range p.Likes {
		if l.User == user {
			return true
		}
	}
	return false
}
