package config

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// RateLimitConfig tunes the Redis token bucket applied to the public write
// endpoints (create reservation, register for event, subscribe). The bucket
// refills RefillTokens every RefillInterval up to Capacity; TTL bounds how
// long idle buckets live in Redis.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    KeyStrategy    string // "ip" (default) or "ip_route"
    Prefix         string
    Debug          bool
}

// LoadRateLimitConfig reads RATELIMIT_* environment variables, applying
// defaults suited to an anonymous booking form: 10 requests burst, one
// token back per 6 seconds per client IP.
func LoadRateLimitConfig() RateLimitConfig {
    return RateLimitConfig{
        Enabled:        getenv("RATELIMIT_ENABLED", "true") == "true",
        Capacity:       atoi(getenv("RATELIMIT_CAPACITY", "10")),
        RefillTokens:   atoi(getenv("RATELIMIT_REFILL_TOKENS", "1")),
        RefillInterval: parseDur(getenv("RATELIMIT_REFILL_INTERVAL", "6s")),
        TTL:            parseDur(getenv("RATELIMIT_TTL", "10m")),
        KeyStrategy:    strings.ToLower(getenv("RATELIMIT_KEY_STRATEGY", "ip")),
        Prefix:         getenv("RATELIMIT_PREFIX", "rl"),
        Debug:          getenv("RATELIMIT_DEBUG", "false") == "true",
    }
}

// CacheConfig tunes the response cache wrapped around the public catalog
// reads (products, events, services). When Enabled is false or no Redis
// client is available the middleware is a no-op.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads CACHE_* environment variables with defaults.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        TTL:          parseDur(getenv("CACHE_TTL", "30s")),
        Prefix:       getenv("CACHE_PREFIX", "cache"),
        MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func atoi(s string) int {
    i, _ := strconv.Atoi(s)
    return i
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
