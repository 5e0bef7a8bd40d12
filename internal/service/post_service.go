package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/saurabh1105/Socail-Connect/internal/event"
	"github.com/saurabh1105/Socail-Connect/internal/model"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// Duplicate likes are rejected rather than treated as a no-op, so a
	// client that raced itself hears about it.
	ErrAlreadyLiked = errors.New("post already liked")
	ErrNotLiked     = errors.New("post has not yet been liked")
	ErrNotOwner     = errors.New("user is not the author")
)

// FeedPublisher receives events after successful post mutations. The
// live-feed hub implements it; a nil-safe no-op is used in tests.
type FeedPublisher interface {
	Publish(ev event.FeedEvent)
}

type PostService interface {
	Create(ctx context.Context, userID, text string) (*model.Post, error)
	Get(ctx context.Context, postID string) (*model.Post, error)
	GetAll(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, userID, postID string) error
	AddLike(ctx context.Context, userID, postID string) ([]model.Like, error)
	RemoveLike(ctx context.Context, userID, postID string) ([]model.Like, error)
	AddComment(ctx context.Context, userID, postID, text string) ([]model.Comment, error)
	RemoveComment(ctx context.Context, userID, postID, commentID string) ([]model.Comment, error)
}

type postService struct {
	posts repo.PostRepository
	users repo.UserRepository
	feed  FeedPublisher
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, feed FeedPublisher) PostService {
	return &postService{
		posts: posts,
		users: users,
		feed:  feed,
	}
}

func (s *postService) publish(eventName, postID string, payload interface{}) {
	if s.feed == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	s.feed.Publish(event.FeedEvent{
		Event:     eventName,
		PostID:    postID,
		Payload:   raw,
		Timestamp: time.Now().Unix(),
	})
}

func (s *postService) Create(ctx context.Context, userID, text string) (*model.Post, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		User:   user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	post, err = s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.publish(event.EventPostCreated, post.ID.Hex(), post)
	return post, nil
}

func (s *postService) Get(ctx context.Context, postID string) (*model.Post, error) {
	return s.posts.FindByID(ctx, postID)
}

func (s *postService) GetAll(ctx context.Context) ([]model.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *postService) Delete(ctx context.Context, userID, postID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.User.Hex() != userID {
		return ErrNotOwner
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.publish(event.EventPostDeleted, postID, nil)
	return nil
}

func (s *postService) AddLike(ctx context.Context, userID, postID string) ([]model.Like, error) {
	post, uid, err := s.findPostAndUser(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(uid) {
		return nil, ErrAlreadyLiked
	}

	likes := append(post.Likes, model.Like{User: uid})
	post, err = s.posts.SaveLikes(ctx, postID, likes)
	if err != nil {
		return nil, err
	}

	s.publish(event.EventLikesUpdated, postID, post.Likes)
	return post.Likes, nil
}

func (s *postService) RemoveLike(ctx context.Context, userID, postID string) ([]model.Like, error) {
	post, uid, err := s.findPostAndUser(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !post.LikedBy(uid) {
		return nil, ErrNotLiked
	}

	likes := Filter(post.Likes, func(l model.Like) bool { return l.User != uid })
	if likes == nil {
		likes = []model.Like{}
	}
	post, err = s.posts.SaveLikes(ctx, postID, likes)
	if err != nil {
		return nil, err
	}

	s.publish(event.EventLikesUpdated, postID, post.Likes)
	return post.Likes, nil
}

func (s *postService) AddComment(ctx context.Context, userID, postID, text string) ([]model.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := model.Comment{
		User:      user.ID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	comments := InsertFront(post.Comments, entry, func(c *model.Comment, id string) { c.ID = id })
	post, err = s.posts.SaveComments(ctx, postID, comments)
	if err != nil {
		return nil, err
	}

	s.publish(event.EventCommentAdded, postID, post.Comments)
	return post.Comments, nil
}

func (s *postService) RemoveComment(ctx context.Context, userID, postID, commentID string) ([]model.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var target *model.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			target = &post.Comments[i]
			break
		}
	}
	if target == nil {
		return nil, ErrEntryNotFound
	}
	if target.User.Hex() != userID {
		return nil, ErrNotOwner
	}

	comments, err := RemoveByID(post.Comments, commentID, func(c model.Comment) string { return c.ID })
	if err != nil {
		return nil, err
	}
	post, err = s.posts.SaveComments(ctx, postID, comments)
	if err != nil {
		return nil, err
	}

	s.publish(event.EventCommentRemoved, postID, post.Comments)
	return post.Comments, nil
}

func (s *postService) findPostAndUser(ctx context.Context, userID, postID string) (*model.Post, primitive.ObjectID, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, primitive.NilObjectID, repo.ErrNotFound
	}
	return post, uid, nil
}
