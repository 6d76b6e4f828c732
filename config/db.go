package config

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wedding-backend/models"
)

// ConnectDatabase opens the pool, creates the database when allowed,
// migrates the schema and seeds the default admin.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	mc, err := resolveMySQLConfig(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.CreateIfMissing && mc.DBName != "" {
		if err := ensureDatabase(mc); err != nil {
			// not fatal: the user may lack CREATE privileges on an existing db
			log.Printf("info: could not ensure database %q exists: %v", mc.DBName, err)
		}
	}

	db, err := OpenDatabase(mc.FormatDSN(), cfg.DB.LogLevel)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	SeedDatabase(db, cfg.AdminEmail, cfg.AdminPassword)
	return db, nil
}

// OpenDatabase opens a GORM handle with the shared pool settings.
func OpenDatabase(dsn, logLevel string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseLogLevel(logLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Service{},
		&models.Item{},
		&models.ServiceItem{},
		&models.Order{},
		&models.CustomRequest{},
		&models.SuratJalan{},
		&models.PaymentMethod{},
		&models.GalleryCategory{},
		&models.GalleryImage{},
		&models.ContentSection{},
		&models.ServiceFeature{},
		&models.ContactMessage{},
		&models.Article{},
	)
}

// SeedDatabase is idempotent: it only inserts what is missing.
func SeedDatabase(db *gorm.DB, adminEmail, adminPassword string) {
	// ---------------- Admin ----------------
	var adminCount int64
	db.Model(&models.Admin{}).Where("email = ?", adminEmail).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{Email: adminEmail, Password: string(hash)}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Payment methods ----------------
	var pmCount int64
	db.Model(&models.PaymentMethod{}).Count(&pmCount)
	if pmCount == 0 {
		pm := models.PaymentMethod{
			Type:          "bank",
			Name:          "BSI",
			AccountNumber: "4321",
			Details:       "Atas Nama User Wedding",
		}
		if err := db.Create(&pm).Error; err != nil {
			log.Printf("warning: failed to seed payment method: %v", err)
		} else {
			log.Println("Payment methods seeded")
		}
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func resolveMySQLConfig(cfg DBConfig) (*mysqldriver.Config, error) {
	var (
		mc  *mysqldriver.Config
		err error
	)

	switch {
	case strings.HasPrefix(cfg.URL, "mysql://"):
		mc, err = mysqlConfigFromURL(cfg.URL)
	case cfg.URL != "":
		mc, err = mysqldriver.ParseDSN(cfg.URL)
	default:
		mc = mysqldriver.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mc.DBName = cfg.Name
	}
	if err != nil {
		return nil, err
	}

	normalizeMySQLConfig(mc)
	return mc, nil
}

func mysqlConfigFromURL(raw string) (*mysqldriver.Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	pass, _ := u.User.Password()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return nil, errors.New("mysql url missing database name")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s", u.User.Username(), pass, net.JoinHostPort(u.Hostname(), port), dbName)
	if q := u.Query().Encode(); q != "" {
		dsn += "?" + q
	}
	return mysqldriver.ParseDSN(dsn)
}

// normalizeMySQLConfig forces the options the services rely on:
// DATE/DATETIME scanned into time.Time and UPDATE reporting matched rows
// so an unchanged update is not mistaken for a missing row.
func normalizeMySQLConfig(mc *mysqldriver.Config) {
	mc.ParseTime = true
	mc.ClientFoundRows = true
	if mc.Loc == nil || mc.Loc == time.UTC {
		mc.Loc = time.Local
	}
	if mc.Params == nil {
		mc.Params = map[string]string{}
	}
	if _, ok := mc.Params["charset"]; !ok {
		mc.Params["charset"] = "utf8mb4"
	}
}

func ensureDatabase(mc *mysqldriver.Config) error {
	server := mc.Clone()
	server.DBName = ""

	connector, err := mysqldriver.NewConnector(server)
	if err != nil {
		return err
	}
	sqlDB := sql.OpenDB(connector)
	defer sqlDB.Close()

	name := strings.ReplaceAll(mc.DBName, "`", "")
	_, err = sqlDB.Exec("CREATE DATABASE IF NOT EXISTS `" + name + "` CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci")
	return err
}
