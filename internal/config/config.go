package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server Server
	DB     DBConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Cache  CacheConfig
	Logger LoggerConfig
}

type Server struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Service  string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AuthConfig struct {
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	SessionTTL    time.Duration
}

type CacheConfig struct {
	QuizTTL time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

// GetDSN builds the godror connection string from the DB config
func (c *Config) GetDSN() string {
	connectString := fmt.Sprintf("%s:%d/%s", c.DB.Host, c.DB.Port, c.DB.Service)
	return fmt.Sprintf("user=%q password=%q connectString=%q", c.DB.User, c.DB.Password, connectString)
}

// GetMigrateDSN builds the go-ora connection string used by the migration
// runner, which connects through a different driver than the API server.
func (c *Config) GetMigrateDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s", c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Service)
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.idle_timeout", 20)
	viper.SetDefault("auth.session_ttl_hours", 24)
	viper.SetDefault("cache.quiz_ttl_minutes", 10)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: Server{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  viper.GetDuration("server.idle_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			Service:  viper.GetString("db.service"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			AdminEmail:    viper.GetString("auth.admin_email"),
			AdminPassword: viper.GetString("auth.admin_password"),
			JWTSecret:     viper.GetString("auth.jwt_secret"),
			SessionTTL:    viper.GetDuration("auth.session_ttl_hours") * time.Hour,
		},
		Cache: CacheConfig{
			QuizTTL: viper.GetDuration("cache.quiz_ttl_minutes") * time.Minute,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Environment variables take precedence over the config file so
	// deployments can keep credentials out of it.
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if service := os.Getenv("DB_SERVICE_NAME"); service != "" {
		config.DB.Service = service
	}
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		config.Auth.AdminEmail = email
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		config.Auth.AdminPassword = password
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}

	return config, nil
}
