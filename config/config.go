package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	HospitalAPI HospitalAPIConfig
	Redis       RedisConfig
	Booking     BookingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type HospitalAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type BookingConfig struct {
	SessionTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	apiTimeout, err := time.ParseDuration(viper.GetString("HOSPITAL_API_TIMEOUT"))
	if err != nil {
		apiTimeout = 30 * time.Second
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("BOOKING_SESSION_TTL"))
	if err != nil {
		sessionTTL = 30 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		HospitalAPI: HospitalAPIConfig{
			BaseURL: viper.GetString("HOSPITAL_API_URL"),
			Timeout: apiTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Booking: BookingConfig{
			SessionTTL: sessionTTL,
		},
	}

	return config, nil
}
