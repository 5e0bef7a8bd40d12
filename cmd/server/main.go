package main

import (
	"log"
	"os"

	approuters "github.com/saurabh1105/Socail-Connect/internal/app_routers"
	"github.com/saurabh1105/Socail-Connect/internal/configuration"
)

func main() {
	configPath := os.Getenv("SOCAIL_CONNECT_CONFIG")
	if configPath == "" {
		configPath = "config.json"
	}

	container, err := configuration.BuildContainer(configPath)
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	// Ensure cleanup on shutdown
	defer container.Close()

	// Setup routers
	approuters.StartServer(container)
}
