package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string // Application port
	StorageBackend string // Storage backend: redis, mysql or memory
	DBUser         string // Database user (mysql backend)
	DBPassword     string // Database password
	DBHost         string // Database host
	DBPort         string // Database port
	DBName         string // Database name
	RedisAddr      string // Redis server address (redis backend)
	RedisPass      string // Redis password
	RedisDB        int    // Redis database number
	JWTSecret      string // JWT secret key
	AdminUsername  string // Hardcoded admin username
	AdminPassword  string // Hardcoded admin password
	ContactEmail   string // Address contact submissions are logged against
	ContactDelayMS int    // Simulated send delay for the contact form
	IsProd         bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	contactDelay, _ := strconv.Atoi(getEnv("CONTACT_DELAY_MS", "1000"))
	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),                  // Application port
		StorageBackend: getEnv("STORAGE_BACKEND", "redis"),          // Storage backend
		DBUser:         os.Getenv("DB_USER"),                        // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                    // Database password
		DBHost:         os.Getenv("DB_HOST"),                        // Database host
		DBPort:         os.Getenv("DB_PORT"),                        // Database port
		DBName:         os.Getenv("DB_NAME"),                        // Database name
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),      // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                     // Redis password
		RedisDB:        redisDB,                                     // Redis database number
		JWTSecret:      os.Getenv("JWT_SECRET"),                     // JWT secret key
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),           // Admin username
		AdminPassword:  getEnv("ADMIN_PASSWORD", "SagarAdmin2025!"), // Admin password
		ContactEmail:   getEnv("CONTACT_EMAIL", "bhandarisagar512@gmail.com"),
		ContactDelayMS: contactDelay,                   // Simulated send delay
		IsProd:         os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// getEnv returns the environment variable or a fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
