package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"scoretally/internal/common/clock"
	uuidGen "scoretally/internal/common/uuid"
	"scoretally/internal/handlers/rest"
	"scoretally/internal/repositories/game"
	gameService "scoretally/internal/services/game"
	"scoretally/internal/ws"
)

func main() {
	godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:      gameRepo,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuidGen.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize the websocket hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize the REST handler and routes
	handler, err := rest.New(&rest.Config{
		GameService: gameSvc,
		Hub:         hub,
	})
	if err != nil {
		log.Fatalf("Failed to create REST handler: %v", err)
	}

	r := rest.NewRouter(handler, hub)

	port := getEnv("PORT", "8080")
	log.Println("Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
