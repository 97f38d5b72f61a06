// file: database/connect.go
package database

import (
	"log"
	"os"
	"time"

	"github.com/tom-sartori/ChemistryDeathRace-api/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dsn := os.Getenv("CDR_DSN")
	if dsn == "" {
		dsn = "root:123456@tcp(localhost:3306)/chemistry_death_race?charset=utf8mb4&parseTime=True&loc=Local"
	}

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// 连接池配置。ConnMaxLifetime 设为 1 小时用于规避 MySQL 的 wait_timeout：
	// 过期连接会在下次使用前被 GORM 安全地重建。
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 同步表结构
func MigrateTables() {
	err := DB.AutoMigrate(&models.User{}, &models.Question{}, &models.Game{})
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
