package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName      string        `json:"appname"`
	AppEnv       string        `json:"appenv"`
	AppPort      uint16        `json:"appport"`
	GinMode      string        `json:"ginmode"`
	DBDriver     string        `json:"dbdriver"`
	DBHost       string        `json:"dbhost"`
	DBPort       uint16        `json:"dbport"`
	DBName       string        `json:"dbname"`
	DBUSER       string        `json:"dbuser"`
	DBPass       string        `json:"dbpass"`
	DBPath       string        `json:"dbpath"`
	JWTSecret    string        `json:"-"`
	SessionTTL   time.Duration `json:"session_ttl"`
	CORSOrigins  []string      `json:"cors_origins"`
	EnforceRoles bool          `json:"enforce_roles"`
	GeoIPDBPath  string        `json:"geoip_db_path"`
	SentryDSN    string        `json:"-"`
	LogLevel     string        `json:"loglevel"`
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSessionTTL = time.Hour
)

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
// A missing .env file is not an error; the process environment is used as is.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Error loading .env file: %v", err)
		}
		config = fromEnv()
	})
	return config
}

// ResetConfigForTest drops the cached configuration so the next LoadConfig re-reads the environment.
func ResetConfigForTest() {
	config = nil
	once = sync.Once{}
}

func fromEnv() *Config {
	appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
	dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

	ttl := defaultSessionTTL
	if minutes, err := strconv.Atoi(os.Getenv("SESSIONTTLMINUTES")); err == nil && minutes > 0 {
		ttl = time.Duration(minutes) * time.Minute
	}

	driver := strings.ToLower(os.Getenv("DBDRIVER"))
	if driver == "" {
		driver = DriverMySQL
	}

	return &Config{
		AppName:      getEnv("APPNAME", "Clinic Management"),
		AppEnv:       os.Getenv("APPENV"),
		AppPort:      uint16(appPort),
		GinMode:      getEnv("GINMODE", "debug"),
		DBDriver:     driver,
		DBHost:       os.Getenv("DBHOST"),
		DBPort:       uint16(dbPort),
		DBName:       os.Getenv("DBNAME"),
		DBUSER:       os.Getenv("DBUSER"),
		DBPass:       os.Getenv("DBPASS"),
		DBPath:       getEnv("DBPATH", "clinic.db"),
		JWTSecret:    os.Getenv("JWTSECRET"),
		SessionTTL:   ttl,
		CORSOrigins:  splitList(getEnv("CORSORIGINS", "*")),
		EnforceRoles: getEnv("ENFORCEROLES", "true") != "false",
		GeoIPDBPath:  os.Getenv("GEOIP_DB_PATH"),
		SentryDSN:    os.Getenv("SENTRY_DSN"),
		LogLevel:     getEnv("LOGLEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsTestEnv reports whether the process runs under APPENV=test.
func IsTestEnv() bool {
	if os.Getenv("APPENV") == "test" {
		return true
	}
	cfg := LoadConfig()
	return cfg != nil && cfg.AppEnv == "test"
}

// ConnectDatabase opens the relational store selected by DBDRIVER.
// Under APPENV=test every call returns a fresh in-memory sqlite database.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()

	var dialector gorm.Dialector
	switch {
	case IsTestEnv():
		dsn := fmt.Sprintf("file:clinic_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
		dialector = sqlite.Open(dsn)
	case cfg.DBDriver == DriverSQLite:
		dialector = sqlite.Open(cfg.DBPath)
	case cfg.DBDriver == DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUSER, cfg.DBPass, cfg.DBName)
		dialector = postgres.Open(dsn)
	case cfg.DBDriver == DriverMySQL:
		// Build the Data Source Name (DSN) using the configuration values.
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local",
			cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DBDRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, nil
}
