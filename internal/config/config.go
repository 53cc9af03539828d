package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Strings carry identifiers and secrets; ints carry
// durations, ports and costs.
type Config struct {
    Env          string // application environment (e.g. "dev", "prod")
    Port         string // HTTP port to listen on
    DBUser       string // database username
    DBPass       string // database password (optional)
    DBHost       string // database host address
    DBPort       string // database port number
    DBName       string // database name
    JWTSecret    string // secret used to sign admin JWTs
    AccessTTLMin int    // access token time‑to‑live in minutes
    BcryptCost   int    // bcrypt cost for admin password hashing
    SMTPHost     string // SMTP relay host (e.g. smtp.gmail.com)
    SMTPPort     int    // SMTP relay port (587 for STARTTLS)
    SMTPUser     string // SMTP account username
    SMTPPass     string // SMTP app-level password
    MailFrom     string // From header for outgoing mail, e.g. `"Cutie" <cutie.cafea@gmail.com>`
    AMQPURL      string // RabbitMQ URL for status events (optional; empty disables publishing)
    AdminEmail   string // seed admin account email (optional; empty skips seeding)
    AdminPass    string // seed admin account password, hashed with BcryptCost at startup
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:          must("APP_ENV"),                 // environment (dev/test/prod)
        Port:         must("APP_PORT"),                // port to bind the HTTP server
        DBUser:       must("DB_USER"),                 // database user
        DBPass:       os.Getenv("DB_PASS"),            // database password (empty allowed)
        DBHost:       must("DB_HOST"),                 // database host
        DBPort:       must("DB_PORT"),                 // database port
        DBName:       must("DB_NAME"),                 // database name
        JWTSecret:    must("JWT_SECRET"),              // secret used for signing JWTs
        AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for admin access tokens in minutes
        BcryptCost:   mustInt("BCRYPT_COST"),          // bcrypt cost factor
        SMTPHost:     must("SMTP_HOST"),               // mail relay host
        SMTPPort:     mustInt("SMTP_PORT"),            // mail relay port
        SMTPUser:     must("SMTP_USER"),               // mail account
        SMTPPass:     must("SMTP_APP_PASSWORD"),       // mail app password
        MailFrom:     must("MAIL_FROM"),               // From header for all outgoing mail
        AMQPURL:      os.Getenv("AMQP_URL"),           // broker URL (empty disables the audit pipeline)
        AdminEmail:   os.Getenv("ADMIN_EMAIL"),        // seed account (empty skips seeding)
        AdminPass:    os.Getenv("ADMIN_PASSWORD"),     // seed account password (hashed, never stored raw)
    }
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
