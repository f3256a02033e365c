package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-backoffice/models"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN(cfg *Config) (string, error) {
	if raw := strings.TrimSpace(cfg.MySQLURL); raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName,
	), nil
}

// SeedRooms fills the catalogue from configuration on first boot. Existing
// room numbers are left untouched.
func SeedRooms(db *gorm.DB, rooms []RoomConfig) {
	for _, rc := range rooms {
		var count int64
		db.Model(&models.Room{}).Where("room_number = ?", rc.Number).Count(&count)
		if count > 0 {
			continue
		}
		room := models.Room{
			Number:        rc.Number,
			Type:          rc.Type,
			Floor:         rc.Floor,
			Capacity:      rc.Capacity,
			PricePerNight: rc.PricePerNight,
		}
		if err := db.Create(&room).Error; err != nil {
			log.Printf("warning: failed to seed room %d: %v", rc.Number, err)
		}
	}
	log.Println("Room catalogue ensured")
}

func ConnectDatabase(cfg *Config) error {
	dsn, err := resolveMySQLDSN(cfg)
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedRooms(DB, cfg.Rooms)
	return nil
}

// Migrate applies the schema in parent-first order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Reservation{},
		&models.Expense{},
		&models.Invoice{},
	)
}
