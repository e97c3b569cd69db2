package config

import (
	"log"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string

	// Seeded admin credential. Defaults mirror the legacy site; override in
	// any real deployment.
	AdminUser string
	AdminPass string

	// External map widget on the contacts page.
	MapScriptURL string
	MapLat       float64
	MapLng       float64
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.DBDSN, validation.Required),
		validation.Field(&c.MediaDir, validation.Required),
		validation.Field(&c.AdminUser, validation.Required, validation.Length(1, 64)),
		validation.Field(&c.AdminPass, validation.Required),
		validation.Field(&c.MapLat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&c.MapLng, validation.Min(-180.0), validation.Max(180.0)),
	)
}

func Load() Config {
	// .env is optional; env vars win.
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		DBDSN:        getenv("DB_DSN", "agrosite.db"),
		MediaDir:     getenv("MEDIA_DIR", "./web/media"),
		LogFile:      os.Getenv("LOG_FILE"),
		AdminUser:    getenv("ADMIN_USER", "admin"),
		AdminPass:    getenv("ADMIN_PASS", "admin"),
		MapScriptURL: getenv("MAP_SCRIPT_URL", "https://api-maps.yandex.ru/2.1/?lang=ru_RU"),
		MapLat:       getfloat("MAP_LAT", 53.6884),
		MapLng:       getfloat("MAP_LNG", 23.8181),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[config] invalid configuration: %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getfloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] bad float for %s: %q, using default", key, v)
		return def
	}
	return f
}
