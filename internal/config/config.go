package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends selectable with ALUMNET_STORE.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":3000"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Store      string // "file" | "sqlite" | "redis"
	DataDir    string // directory holding <collection>.json files
	SQLitePath string // database file when Store == "sqlite"
	SeedEmpty  bool   // create missing collections as [] on startup

	StaticDir string // single-page client root (empty = static serving disabled)

	SeedFile       string        // optional alumni directory YAML imported on startup
	ReloadInterval time.Duration // interval to re-import the seed file (default: 24h)

	CORSOrigins []string // allowed origins, "*" = any

	// Redis (only when Store == "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers

	RateLimitBurst  int // requests allowed in a burst per client IP (0 = disabled)
	RateLimitPerMin int // tokens refilled per client IP per minute
}

// Load reads the optional .env file, then the environment.
// Invalid configuration is fatal and panics, like a missing required variable.
func Load() *Config {
	loadEnvFile(getenv("ALUMNET_ENV_FILE", ".env"))

	dataDir := getenv("ALUMNET_DATA_DIR", "./data")

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("ALUMNET_LISTEN_PORT", ":3000"),
		ShutdownTimeout: mustDuration("ALUMNET_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("ALUMNET_REQUEST_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("ALUMNET_LOG_LEVEL", "info"),
		PrettyLog: mustBool("ALUMNET_PRETTY_LOG", true),

		// Storage
		Store:      strings.ToLower(getenv("ALUMNET_STORE", StoreFile)),
		DataDir:    dataDir,
		SQLitePath: getenv("ALUMNET_SQLITE_PATH", filepath.Join(dataDir, "alumnet.db")),
		SeedEmpty:  mustBool("ALUMNET_SEED_EMPTY", true),

		// Client
		StaticDir: getenv("ALUMNET_STATIC_DIR", ""),

		// Directory seed
		SeedFile:       getenv("ALUMNET_SEED_FILE", ""), // Optional, empty = import disabled
		ReloadInterval: mustDuration("ALUMNET_RELOAD_INTERVAL", 24*time.Hour),

		CORSOrigins: splitAndTrim(getenv("ALUMNET_CORS_ORIGINS", "*")),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("ALUMNET_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("ALUMNET_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("ALUMNET_TRUST_PROXY", false),

		RateLimitBurst:  getenvInt("ALUMNET_RATE_LIMIT_BURST", 60),
		RateLimitPerMin: getenvInt("ALUMNET_RATE_LIMIT_PER_MIN", 120),
	}

	switch cfg.Store {
	case StoreFile, StoreSQLite:
	case StoreRedis:
		loadRedis(cfg)
	default:
		panic(fmt.Sprintf("❌ FATAL: Invalid ALUMNET_STORE %q (want file, sqlite or redis)", cfg.Store))
	}

	if cfg.ReloadInterval <= 0 {
		panic("❌ FATAL: ALUMNET_RELOAD_INTERVAL must be > 0")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func loadRedis(cfg *Config) {
	cfg.RedisAddr = requireEnv("ALUMNET_REDIS_ADDR")
	cfg.RedisUser = getenv("ALUMNET_REDIS_USERNAME", "")
	cfg.RedisPassword = getenv("ALUMNET_REDIS_PASSWORD", "")
	cfg.RedisDB = getenvInt("ALUMNET_REDIS_DB", 0)
	cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
	cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
	cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
	cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
	cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
	cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
	cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is fine.
func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(fmt.Sprintf("❌ FATAL: Failed to load env file %s: %v", path, err))
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
