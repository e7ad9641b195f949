package db

import (
	"fmt"
	"log"
	"os"

	"coffee-wifi-server/model"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB
var testMode string

func InitDB(testModeArg string) (*gorm.DB, error) {
	// save testMode
	testMode = testModeArg

	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	var dsn string
	if testMode == "real" {
		dsn = "host=" + host + " user=" + user + " password=" + password + " dbname=coffee_wifi_db port=5432 sslmode=disable"
	} else if testMode == "test" {
		dsn = "host=" + host + " user=" + user + " password=" + password + " dbname=coffee_wifi_db_test port=5432 sslmode=disable"
	} else {
		log.Fatal("Invalid test mode")
	}

	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})

	if err != nil {
		// can't connect to the db, the server should stop
		log.Fatalf("Failed to connect to database: %v", err)
		return nil, err
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(database *gorm.DB) error {
	err := database.AutoMigrate(
		&model.User{},
		&model.Cafe{},
		&model.Comment{},
		&model.Session{},
	)
	if err != nil {
		return err
	}

	// legacy deployments had no role column, the admin was whoever got
	// id 1 at registration: keep that account an admin after migration
	result := database.Model(&model.User{}).
		Where("id_user = ? AND is_admin = ?", 1, false).
		Update("is_admin", true)

	return result.Error
}

func GetDB() *gorm.DB {
	return db
}

// SetDB replaces the shared handle, used by tests running against a mock driver.
func SetDB(database *gorm.DB) {
	db = database
}

func CloseDBConnection() {
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
	err = sqlDB.Close()
	if err != nil {
		log.Fatal("Failed closing connection: ", err)
	}
}

func ResetTestDatabase() error {
	// check correct test mode
	if testMode != "test" {
		return fmt.Errorf("wrong test mode")
	}

	err := db.Exec(`TRUNCATE TABLE comment, sessions, cafe, users CASCADE;`)

	if err.Error != nil {
		return err.Error
	}

	return nil
}
