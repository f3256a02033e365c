package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type RoomConfig struct {
	Number        int     `mapstructure:"number"`
	Type          string  `mapstructure:"type"`
	Floor         string  `mapstructure:"floor"`
	Capacity      int     `mapstructure:"capacity"`
	PricePerNight float64 `mapstructure:"price_per_night"`
}

type Config struct {
	Port        string `mapstructure:"PORT"`
	MySQLURL    string `mapstructure:"MYSQL_URL"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPass      string `mapstructure:"DB_PASS"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      string `mapstructure:"DB_PORT"`
	DBName      string `mapstructure:"DB_NAME"`
	CorsOrigins string `mapstructure:"CORS_ORIGINS"`

	Rooms []RoomConfig `mapstructure:"-"`
}

// defaultRooms is the built-in catalogue, used until a config file provides a
// `rooms:` section. Capacities feed the occupant-count suggestion.
var defaultRooms = []RoomConfig{
	{Number: 1, Type: "Matrimoniale", Floor: "1", Capacity: 2, PricePerNight: 80},
	{Number: 2, Type: "Doppia", Floor: "1", Capacity: 2, PricePerNight: 75},
	{Number: 3, Type: "Tripla", Floor: "1", Capacity: 3, PricePerNight: 95},
	{Number: 4, Type: "Matrimoniale", Floor: "2", Capacity: 2, PricePerNight: 80},
	{Number: 5, Type: "Quadrupla", Floor: "2", Capacity: 4, PricePerNight: 120},
	{Number: 6, Type: "Singola", Floor: "2", Capacity: 1, PricePerNight: 55},
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_PASS", "")
	viper.SetDefault("DB_HOST", "127.0.0.1")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_NAME", "hotel_backoffice")
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.BindEnv("PORT")
	viper.BindEnv("MYSQL_URL")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASS")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("CORS_ORIGINS")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		log.Println("no config file found; continuing with environment variables")
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	config.Rooms = defaultRooms
	if viper.IsSet("rooms") {
		var rooms []RoomConfig
		if err := viper.UnmarshalKey("rooms", &rooms); err != nil {
			log.Printf("warning: invalid rooms section in config file: %v", err)
		} else if len(rooms) > 0 {
			config.Rooms = rooms
		}
	}

	return &config
}

func (c *Config) CorsOriginList() []string {
	parts := strings.Split(c.CorsOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
