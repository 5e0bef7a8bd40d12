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

type ProfileRepository interface {
	FindByUser(ctx context.Context, userID string) (*model.Profile, error)
	FindAll(ctx context.Context) ([]model.Profile, error)
	// Upsert applies the partial field document to the user's profile,
	// creating it on first write, and returns the resulting profile.
	Upsert(ctx context.Context, userID string, fields bson.M) (*model.Profile, error)
	SaveExperience(ctx context.Context, userID string, list []model.Experience) (*model.Profile, error)
	SaveEducation(ctx context.Context, userID string, list []model.Education) (*model.Profile, error)
}

type profileRepository struct {
	profiles *db.Repository[model.Profile]
	logger   *zap.Logger
}

func NewProfileRepository(profiles *db.Repository[model.Profile], logger *zap.Logger) ProfileRepository {
	return &profileRepository{
		profiles: profiles,
		logger:   logger,
	}
}

func (r *profileRepository) FindByUser(ctx context.Context, userID string) (*model.Profile, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	profile, err := r.profiles.FindOne(ctx, db.NewFilter().Eq("user", oid).Build())
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("profile lookup failed", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]model.Profile, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	profiles, err := r.profiles.FindAll(ctx, db.Empty(), "created_at", true)
	if err != nil {
		r.logger.Error("profile list failed", zap.Error(err))
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) Upsert(ctx context.Context, userID string, fields bson.M) (*model.Profile, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{
		"$set": fields,
		"$setOnInsert": bson.M{
			"user":       oid,
			"experience": []model.Experience{},
			"education":  []model.Education{},
			"created_at": time.Now().UTC(),
		},
	}
	profile, err := r.profiles.FindOneAndUpdate(ctx, bson.M{"user": oid}, update, true)
	if err != nil {
		r.logger.Error("profile upsert failed", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return profile, nil
}

func (r *profileRepository) SaveExperience(ctx context.Context, userID string, list []model.Experience) (*model.Profile, error) {
	return r.saveList(ctx, userID, "experience", list)
}

func (r *profileRepository) SaveEducation(ctx context.Context, userID string, list []model.Education) (*model.Profile, error) {
	return r.saveList(ctx, userID, "education", list)
}

func (r *profileRepository) saveList(ctx context.Context, userID, field string, list interface{}) (*model.Profile, error) {
	ctx, cancel := ensureTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{"$set": bson.M{field: list}}
	profile, err := r.profiles.FindOneAndUpdate(ctx, bson.M{"user": oid}, update, false)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("profile list save failed", zap.Error(err),
			zap.String("user_id", userID), zap.String("field", field))
		return nil, fmt.Errorf("save %s: %w", field, err)
	}
	return profile, nil
}
