package config // package config loads application configuration from environment variables

import (
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings" // strings splits the comma separated CORS list
    "time"    // time converts the token TTL into a duration
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The struct is built exactly once in main and
// passed explicitly into every component that needs it; there is no cached
// global lookup anywhere in the codebase.
type Config struct {
    Env          string   // application environment (e.g. "dev", "prod")
    Port         string   // HTTP port to listen on
    DBUser       string   // database username
    DBPass       string   // database password (optional)
    DBHost       string   // database host address
    DBPort       string   // database port number
    DBName       string   // database name
    JWTSecret    string   // secret used to sign access tokens
    JWTAlg       string   // HMAC signing algorithm identifier (HS256/HS384/HS512)
    AccessTTLMin int      // access token time-to-live in minutes
    CORSOrigins  []string // origins allowed to call the API cross-origin
}

// DefaultJWTSecret is the development fallback signing secret.  main logs a
// warning when the process runs with it.
const DefaultJWTSecret = "CHANGE_ME_DEV_SECRET"

// Load reads configuration values from environment variables and returns a
// Config.  Every variable has a development-friendly default so the service
// can start with an empty environment.
func Load() Config {
    cfg := Config{
        Env:          envOr("APP_ENV", "dev"),
        Port:         envOr("APP_PORT", "8080"),
        DBUser:       envOr("DB_USER", "recipes"),
        DBPass:       os.Getenv("DB_PASS"), // empty password allowed
        DBHost:       envOr("DB_HOST", "127.0.0.1"),
        DBPort:       envOr("DB_PORT", "3306"),
        DBName:       envOr("DB_NAME", "recipes"),
        JWTSecret:    envOr("JWT_SECRET", DefaultJWTSecret),
        JWTAlg:       envOr("JWT_ALG", "HS256"),
        AccessTTLMin: envOrInt("ACCESS_TOKEN_TTL_MIN", 60),
        CORSOrigins:  splitList(envOr("CORS_ORIGINS", "*")),
    }
    // Only the HMAC family is supported for signing; anything else falls
    // back to HS256 rather than producing tokens nobody can verify.
    switch cfg.JWTAlg {
    case "HS256", "HS384", "HS512":
    default:
        cfg.JWTAlg = "HS256"
    }
    return cfg
}

// AccessTTL converts the configured minutes into a time.Duration.
func (c Config) AccessTTL() time.Duration {
    return time.Duration(c.AccessTTLMin) * time.Minute
}

// envOr retrieves the value of an environment variable, returning the given
// default when the variable is unset or empty.
func envOr(key, def string) string {
    if v, ok := os.LookupEnv(key); ok && v != "" {
        return v
    }
    return def
}

// envOrInt is like envOr but converts the retrieved string into an integer.
// Unparseable values fall back to the default instead of halting startup.
func envOrInt(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        return def
    }
    return n
}

// splitList turns a comma separated env value into a trimmed slice.
func splitList(raw string) []string {
    parts := strings.Split(raw, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
