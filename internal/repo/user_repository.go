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

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// DeleteCascade removes the user together with its profile and all
	// of its posts. On replica-set deployments the three deletes run in
	// a single transaction; otherwise they run as an ordered sequence
	// (posts, profile, user) so a retry never strands owned documents.
	DeleteCascade(ctx context.Context, userID string) error
}

type userRepository struct {
	users    *db.Repository[model.User]
	profiles *db.Repository[model.Profile]
	posts    *db.Repository[model.Post]
	logger   *zap.Logger
}

func NewUserRepository(users *db.Repository[model.User], profiles *db.Repository[model.Profile], posts *db.Repository[model.Post], logger *zap.Logger) UserRepository {
	return &userRepository{
		users:    users,
		profiles: profiles,
		posts:    posts,
		logger:   logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	taken, err := r.users.Exists(ctx, db.NewFilter().Eq("email", user.Email).Build())
	if err != nil {
		r.logger.Error("user exists check failed", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user.CreatedAt = time.Now().UTC()
	res, err := r.users.Create(ctx, *user)
	if err != nil {
		r.logger.Error("user insert failed", zap.Error(err))
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	user, err := r.users.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("user lookup failed", zap.Error(err), zap.String("user_id", id))
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	user, err := r.users.FindOne(ctx, db.NewFilter().Eq("email", email).Build())
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("user lookup failed", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *userRepository) DeleteCascade(ctx context.Context, userID string) error {
	ctx, cancel := ensureTimeout(ctx, 15*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	session, err := r.users.Client().StartSession()
	if err != nil {
		r.logger.Error("start session failed", zap.Error(err))
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, r.deleteOwned(sc, oid)
	})
	if err == nil {
		return nil
	}

	// Standalone mongod has no transactions; fall back to the ordered
	// sequence so owned documents go first.
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && (cmdErr.Name == "IllegalOperation" || cmdErr.HasErrorLabel("TransientTransactionError")) {
		r.logger.Warn("cascade transaction unavailable, deleting sequentially", zap.String("user_id", userID))
		return r.deleteOwned(ctx, oid)
	}

	r.logger.Error("cascade delete failed", zap.Error(err), zap.String("user_id", userID))
	return fmt.Errorf("cascade delete: %w", err)
}

func (r *userRepository) deleteOwned(ctx context.Context, user primitive.ObjectID) error {
	if _, err := r.posts.DeleteMany(ctx, bson.M{"user": user}); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}
	if _, err := r.profiles.Delete(ctx, bson.M{"user": user}); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	res, err := r.users.Delete(ctx, bson.M{"_id": user})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
