package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Google Sheets replica
	GoogleServiceAccountKey string
	GoogleSheetsID          string
	SheetNameCandidates     []string
	SyncQueueSize           int

	// Server
	Port        string
	CORSOrigins string
	Environment string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "recruitment_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		GoogleServiceAccountKey: getEnv("GOOGLE_SERVICE_ACCOUNT_KEY", ""),
		GoogleSheetsID:          getEnv("GOOGLE_SHEETS_ID", ""),
		SheetNameCandidates:     splitList(getEnv("GOOGLE_SHEET_NAME_CANDIDATES", "Registrations,Data_Luxshare,Sheet1,Trang tính1")),
		SyncQueueSize:           parsePositiveInt(getEnv("SHEETS_SYNC_QUEUE_SIZE", "256"), 256),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		Environment: getEnv("APP_ENV", "development"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// HasSheetsConfig reports whether both Google Sheets settings required for
// initialization are present.
func (c *Config) HasSheetsConfig() bool {
	return c.GoogleServiceAccountKey != "" && c.GoogleSheetsID != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
