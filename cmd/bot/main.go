package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/tavernbot/dicebot/internal/config"
	"github.com/tavernbot/dicebot/internal/handlers/discord"
	"github.com/tavernbot/dicebot/internal/repositories/fortunes"
	"github.com/tavernbot/dicebot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	// Create service provider config
	providerConfig := &services.ProviderConfig{
		DecksDir:  cfg.Data.DecksDir,
		RulesFile: cfg.Data.RulesFile,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory fortune storage")
		} else {
			redisClient = redis.NewClient(opts)

			// Test connection
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				cancel()
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory fortune storage")
			} else {
				defer cancel()
				log.Println("Successfully connected to Redis")

				providerConfig.FortuneRepository = fortunes.NewRedisRepository(&fortunes.RedisRepoConfig{
					Client: redisClient,
				})

				log.Println("Using Redis for fortune storage")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory fortune storage")
	}

	// Create service provider
	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		CommandPrefix:   cfg.Bot.CommandPrefix,
	})

	// Register message handler
	dg.AddHandler(handler.HandleMessageCreate)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
