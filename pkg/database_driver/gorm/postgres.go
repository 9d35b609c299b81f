package gorm

import (
	"errors"
	"fmt"

	"storefront/configs"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	Postgres *gorm.DB
}

// DSN builds the libpq connection string for config
func DSN(config configs.Postgres) (string, error) {
	if config.Host == "" && config.Port == "" && config.DbName == "" {
		return "", errors.New("cannot estabished the connection")
	}

	sslmode := "disable"
	if config.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=0",
		config.Host, config.Username, config.Password, config.DbName, config.Port, sslmode), nil
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(config configs.Postgres) (*DB, error) {
	connectionStr, err := DSN(config)
	if err != nil {
		return nil, err
	}

	pg, err := gorm.Open(postgres.Open(connectionStr), &gorm.Config{
		DryRun: false,
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	logrus.Infof("Connected to postgres at %s:%s/%s", config.Host, config.Port, config.DbName)
	return &DB{Postgres: pg}, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	err = sqlDb.Close()
	if err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with postgres has closed")
}
