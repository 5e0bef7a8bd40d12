package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saurabh1105/Socail-Connect/internal/db"
	"github.com/saurabh1105/Socail-Connect/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, id string) error
	SaveLikes(ctx context.Context, postID string, likes []model.Like) (*model.Post, error)
	SaveComments(ctx context.Context, postID string, comments []model.Comment) (*model.Post, error)
}

type postRepository struct {
	posts  *db.Repository[model.Post]
	logger *zap.Logger
}

func NewPostRepository(posts *db.Repository[model.Post], logger *zap.Logger) PostRepository {
	return &postRepository{
		posts:  posts,
		logger: logger,
	}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	post.CreatedAt = time.Now().UTC()
	if post.Likes == nil {
		post.Likes = []model.Like{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}

	res, err := r.posts.Create(ctx, *post)
	if err != nil {
		r.logger.Error("post insert failed", zap.Error(err))
		return nil, fmt.Errorf("insert post: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return post, nil
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	post, err := r.posts.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("post lookup failed", zap.Error(err), zap.String("post_id", id))
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

func (r *postRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	posts, err := r.posts.FindAll(ctx, db.Empty(), "created_at", true)
	if err != nil {
		r.logger.Error("post list failed", zap.Error(err))
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.posts.DeleteByID(ctx, id)
	if errors.Is(err, primitive.ErrInvalidHex) {
		return ErrNotFound
	}
	if err != nil {
		r.logger.Error("post delete failed", zap.Error(err), zap.String("post_id", id))
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) SaveLikes(ctx context.Context, postID string, likes []model.Like) (*model.Post, error) {
	return r.saveField(ctx, postID, "likes", likes)
}

func (r *postRepository) SaveComments(ctx context.Context, postID string, comments []model.Comment) (*model.Post, error) {
	return r.saveField(ctx, postID, "comments", comments)
}

func (r *postRepository) saveField(ctx context.Context, postID, field string, value interface{}) (*model.Post, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrNotFound
	}

	post, err := r.posts.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}}, false)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("post field save failed", zap.Error(err),
			zap.String("post_id", postID), zap.String("field", field))
		return nil, fmt.Errorf("save %s: %w", field, err)
	}
	return post, nil
}
