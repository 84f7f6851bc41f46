package main

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"lol-damage-engine/internal/cache"
	"lol-damage-engine/internal/engine"
	"lol-damage-engine/internal/handlers"
	"lol-damage-engine/internal/refstore"
	"lol-damage-engine/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// loadEnv loads environment variables from .env file
func loadEnv() {
	file, err := os.Open(".env")
	if err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("⚠️ Error reading .env file: %v", err)
	} else {
		log.Println("✅ Loaded environment variables from .env file")
	}
}

func main() {
	log.Println("🚀 Starting damage engine service...")

	loadEnv()

	var database *store.Database
	var err error
	if getEnv("DB_DRIVER", "postgres") == "sqlite" {
		database, err = store.NewLocalDatabase(getEnv("DB_SQLITE_PATH", "./data/dev.db"))
		if err != nil {
			log.Fatalf("❌ Failed to open local database: %v", err)
		}
	} else {
		dbConfig := store.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "lol_user"),
			Password: getEnv("DB_PASSWORD", "lol_password"),
			DBName:   getEnv("DB_NAME", "lol_damage_engine"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		}
		database, err = store.NewDatabase(dbConfig)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	cacheService := cache.NewCacheService(cache.CacheConfig{
		Host:    getEnv("REDIS_HOST", "localhost"),
		Port:    getEnvInt("REDIS_PORT", 6379),
		DB:      getEnvInt("REDIS_DB", 0),
		Enabled: getEnv("REDIS_ENABLED", "true") == "true",
	})
	defer cacheService.Close()

	refStore := refstore.New(refstore.Config{DataDir: getEnv("REFERENCE_DATA_DIR", "./data")})
	eng := engine.New(refStore)

	gameHandler := handlers.NewGameHandler(database, cacheService, eng)

	if getEnv("GIN_MODE", "debug") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{getEnv("CORS_ORIGIN", "http://localhost:5173")}
	corsConfig.AllowHeaders = []string{"Authorization", "Accept", "Content-Type"}
	corsConfig.AllowMethods = []string{"GET", "POST"}
	corsConfig.MaxAge = time.Hour
	r.Use(cors.New(corsConfig))

	r.Use(static.Serve("/", static.LocalFile("./web/public", false)))

	handlers.RegisterRoutes(r, gameHandler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "message": "not found"})
	})

	port := getEnv("PORT", "8000")
	log.Printf("✅ Server starting on port %s", port)
	log.Printf("🔌 API endpoint: http://localhost:%s/api", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
