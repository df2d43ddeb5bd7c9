package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPath         string
	ServerPort     string
	JWTSecret      string
	JWTExpiryHours int
	LogLevel       string
	LogFormat      string

	// Sources lists what was read besides the process environment, for logging
	// once the logger exists.
	Sources []string
}

// Load reads .env (if present), then config.toml (if present), then the
// environment. Environment variables win over the file.
func Load() (*Config, error) {
	var sources []string
	if err := godotenv.Load(); err == nil {
		sources = append(sources, ".env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		sources = append(sources, v.ConfigFileUsed())
	}

	return &Config{
		DBDriver:       v.GetString("db_driver"),
		DBHost:         v.GetString("db_host"),
		DBPort:         v.GetString("db_port"),
		DBUser:         v.GetString("db_user"),
		DBPassword:     v.GetString("db_password"),
		DBName:         v.GetString("db_name"),
		DBPath:         v.GetString("db_path"),
		ServerPort:     v.GetString("server_port"),
		JWTSecret:      v.GetString("jwt_secret"),
		JWTExpiryHours: v.GetInt("jwt_expiry_hours"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		Sources:        sources,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_driver", "postgres")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5431")
	v.SetDefault("db_user", "lello_user")
	v.SetDefault("db_password", "lello_pass")
	v.SetDefault("db_name", "lello_db")
	v.SetDefault("db_path", "lello.db")
	v.SetDefault("server_port", "8080")
	v.SetDefault("jwt_secret", "supersecretkey")
	v.SetDefault("jwt_expiry_hours", 24)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}
