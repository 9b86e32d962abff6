package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Database and session settings are required;
// the GitHub settings are optional because the file-commit backend
// degrades to a 503 at request time instead of refusing to boot, and the
// read surface works without them.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	JWTSecret         string // secret used to sign admin session tokens
	AdminPasswordHash string // bcrypt hash the admin password is checked against
	AdminCookieName   string // cookie carrying the admin session token
	SessionTTLMin     int    // admin session time-to-live in minutes

	GitHubToken      string // token for the contents API (optional)
	GitHubRepo       string // "owner/name" of the content repository (optional)
	GitHubBranch     string // branch for commits (optional, default branch when empty)
	GitHubPathPrefix string // prefix prepended to committed paths (optional)

	DirectoryUseDatabase bool   // true: directory saves hit the database; false: committed file
	DirectoryFilePath    string // repo path of the committed directory file
}

// Load reads configuration values from environment variables and returns
// a Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:  must("APP_ENV"),
		Port: must("APP_PORT"),

		DBUser: must("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: must("DB_HOST"),
		DBPort: must("DB_PORT"),
		DBName: must("DB_NAME"),

		JWTSecret:         must("JWT_SECRET"),
		AdminPasswordHash: must("ADMIN_PASSWORD_HASH"),
		AdminCookieName:   envStr("ADMIN_COOKIE_NAME", "callboard_admin"),
		SessionTTLMin:     envInt("ADMIN_SESSION_TTL_MIN", 720),

		GitHubToken:      os.Getenv("GITHUB_TOKEN"),
		GitHubRepo:       os.Getenv("GITHUB_REPO"),
		GitHubBranch:     os.Getenv("GITHUB_BRANCH"),
		GitHubPathPrefix: os.Getenv("GITHUB_PATH_PREFIX"),

		DirectoryUseDatabase: envBool("DIRECTORY_USE_DATABASE", true),
		DirectoryFilePath:    envStr("DIRECTORY_FILE_PATH", "public/data/directory.json"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return def
}
