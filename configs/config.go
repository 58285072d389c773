package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	RedisAddr       string
	CatalogCacheTTL time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	ttl := 5 * time.Minute
	if v := os.Getenv("CATALOG_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid CATALOG_CACHE_TTL: %v", err)
		}
		ttl = d
	}

	return &Config{
		Port:            getEnv("PORT", "8000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "order-me"),
		RedisAddr:       os.Getenv("REDIS_ADDR"), // ว่าง = ปิด cache
		CatalogCacheTTL: ttl,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
