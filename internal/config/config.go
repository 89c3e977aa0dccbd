package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Admin     AdminConfig
	Billing   BillingConfig
	Store     StoreConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// DatabaseConfig selects the backing store. Driver "postgres" is the
// server-backed deployment; "sqlite" is the embedded single-terminal store.
// Both sit behind the same repository interfaces.
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	Name       string
	User       string
	Password   string
	SSLMode    string
	Timezone   string
	SQLitePath string
}

// AdminConfig holds the static shared admin password. If PasswordHash is set
// it takes precedence and is compared with bcrypt; otherwise Password is
// compared in constant time.
type AdminConfig struct {
	Password       string
	PasswordHash   string
	JWTSecret      string
	SessionMinutes time.Duration
}

type BillingConfig struct {
	NumberWidth int
	TaxEnabled  bool
}

// StoreConfig is the business header printed on bills.
type StoreConfig struct {
	Name    string
	Tagline string
	Address string
	Phone   string
	GSTIN   string
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
	Width   int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	LoginAttempts int
	LoginWindow   int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Info("no .env file found, using environment variables")
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "madhuram-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "madhuram")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("DB_SQLITE_PATH", "./madhuram.db")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("ADMIN_JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("ADMIN_SESSION_MINUTES", 60)
	viper.SetDefault("BILL_NUMBER_WIDTH", 5)
	viper.SetDefault("BILL_TAX_ENABLED", false)
	viper.SetDefault("STORE_NAME", "MADHURAM")
	viper.SetDefault("STORE_TAGLINE", "CAFE AND TIFFINS")
	viper.SetDefault("STORE_ADDRESS", "")
	viper.SetDefault("STORE_PHONE", "")
	viper.SetDefault("STORE_GSTIN", "")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("LOGIN_RATE_LIMIT_ATTEMPTS", 5)
	viper.SetDefault("LOGIN_RATE_LIMIT_WINDOW", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Driver:     viper.GetString("DB_DRIVER"),
			Host:       viper.GetString("DB_HOST"),
			Port:       viper.GetString("DB_PORT"),
			Name:       viper.GetString("DB_NAME"),
			User:       viper.GetString("DB_USER"),
			Password:   viper.GetString("DB_PASSWORD"),
			SSLMode:    viper.GetString("DB_SSL_MODE"),
			Timezone:   viper.GetString("DB_TIMEZONE"),
			SQLitePath: viper.GetString("DB_SQLITE_PATH"),
		},
		Admin: AdminConfig{
			Password:       viper.GetString("ADMIN_PASSWORD"),
			PasswordHash:   viper.GetString("ADMIN_PASSWORD_HASH"),
			JWTSecret:      viper.GetString("ADMIN_JWT_SECRET"),
			SessionMinutes: time.Duration(viper.GetInt("ADMIN_SESSION_MINUTES")) * time.Minute,
		},
		Billing: BillingConfig{
			NumberWidth: viper.GetInt("BILL_NUMBER_WIDTH"),
			TaxEnabled:  viper.GetBool("BILL_TAX_ENABLED"),
		},
		Store: StoreConfig{
			Name:    viper.GetString("STORE_NAME"),
			Tagline: viper.GetString("STORE_TAGLINE"),
			Address: viper.GetString("STORE_ADDRESS"),
			Phone:   viper.GetString("STORE_PHONE"),
			GSTIN:   viper.GetString("STORE_GSTIN"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			LoginAttempts: viper.GetInt("LOGIN_RATE_LIMIT_ATTEMPTS"),
			LoginWindow:   viper.GetInt("LOGIN_RATE_LIMIT_WINDOW"),
		},
	}
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
