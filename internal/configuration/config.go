package configuration

import (
	"encoding/json"
	"os"
)

type MongoConfig struct {
	Uri                string `json:"uri"`
	Database           string `json:"database"`
	UsersCollection    string `json:"usersCollection"`
	ProfilesCollection string `json:"profilesCollection"`
	PostsCollection    string `json:"postsCollection"`
}

type AuthConfig struct {
	JwtSecret       string `json:"jwt_secret"`
	TokenTTLMinutes int    `json:"token_ttl_minutes"`
}

type GithubConfig struct {
	ApiUrl       string `json:"api_url"`
	ClientId     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type ServerConfig struct {
	Port           int      `json:"port"`
	AllowedOrigins []string `json:"allowed_origins"`
}

type Config struct {
	Database MongoConfig  `json:"mongo"`
	Auth     AuthConfig   `json:"auth"`
	Github   GithubConfig `json:"github"`
	Server   ServerConfig `json:"server"`
}

func LoadConfig(config_path string) (*Config, error) {
	file, err := os.ReadFile(config_path)
	if err != nil {
		return nil, err
	}

	var config Config
	err = json.Unmarshal(file, &config)
	if err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 60
	}
	if c.Github.ApiUrl == "" {
		c.Github.ApiUrl = "https://api.github.com"
	}
	if c.Database.UsersCollection == "" {
		c.Database.UsersCollection = "users"
	}
	if c.Database.ProfilesCollection == "" {
		c.Database.ProfilesCollection = "profiles"
	}
	if c.Database.PostsCollection == "" {
		c.Database.PostsCollection = "posts"
	}
}
