package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/saurabh1105/Socail-Connect/internal/auth"
	"github.com/saurabh1105/Socail-Connect/internal/db"
	"github.com/saurabh1105/Socail-Connect/internal/handler"
	"github.com/saurabh1105/Socail-Connect/internal/hub"
	"github.com/saurabh1105/Socail-Connect/internal/model"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"github.com/saurabh1105/Socail-Connect/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Container struct {
	AuthHandler    handler.AuthHandler
	ProfileHandler handler.ProfileHandler
	PostHandler    handler.PostHandler
	Tokens         *auth.Manager
	Feed           *hub.Hub
	Config         Config
	Logger         *zap.Logger

	// private - for cleanup
	mongoClient *mongo.Database
}

func BuildContainer(configPath string) (*Container, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	con, err := db.OpenConnection(config.Database.Uri, config.Database.Database)
	if err != nil {
		return nil, fmt.Errorf("open mongo connection: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	users := db.NewRepository[model.User](con, config.Database.UsersCollection)
	profiles := db.NewRepository[model.Profile](con, config.Database.ProfilesCollection)
	posts := db.NewRepository[model.Post](con, config.Database.PostsCollection)

	tokens := auth.NewManager(config.Auth.JwtSecret, time.Duration(config.Auth.TokenTTLMinutes)*time.Minute)
	feed := hub.NewHub(logger)

	userRepo := repo.NewUserRepository(users, profiles, posts, logger)
	profileRepo := repo.NewProfileRepository(profiles, logger)
	postRepo := repo.NewPostRepository(posts, logger)

	userService := service.NewUserService(userRepo, tokens, logger)
	profileService := service.NewProfileService(profileRepo)
	postService := service.NewPostService(postRepo, userRepo, feed)
	githubService := service.NewGithubService(config.Github.ApiUrl, config.Github.ClientId, config.Github.ClientSecret, logger)

	return &Container{
		AuthHandler:    handler.NewAuthHandler(userService),
		ProfileHandler: handler.NewProfileHandler(profileService, userService, githubService),
		PostHandler:    handler.NewPostHandler(postService, feed),
		Tokens:         tokens,
		Feed:           feed,
		Config:         *config,
		Logger:         logger,
		mongoClient:    con,
	}, nil
}

// Close gracefully shuts down all connections
func (c *Container) Close() error {
	// Stop the feed hub first (closes all WebSocket connections)
	if c.Feed != nil {
		c.Feed.Stop()
	}

	// Sync logger
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	// Close MongoDB connection pool
	if c.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.mongoClient.Client().Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close MongoDB connection: %w", err)
		}
	}

	return nil
}
