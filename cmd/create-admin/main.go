// Command create-admin generates an admin account with a random username and password.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"jobportal-backend/internal/config"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"

	"gorm.io/gorm"
)

// generateRandomString creates a random hex string of length 2n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueUsername tries until a unique username is found
func generateUniqueUsername(db *gorm.DB) (string, error) {
	for {
		username := "admin_" + generateRandomString(4)
		var count int64
		if err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return username, nil
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewDBInstance(&cfg.Database, nil)
	if err != nil {
		log.Fatalf("database failed to initialize: %v", err)
	}
	defer func() { _ = db.Close() }()

	username, err := generateUniqueUsername(db.DB)
	if err != nil {
		log.Fatalf("failed to generate username: %v", err)
	}
	password := generateRandomString(8)

	if err := utilities.CreateAdmin(password, username, db.DB); err != nil {
		log.Fatal(err)
	}

	// Print credentials (only show plain password here!)
	fmt.Println("Admin credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("Username: %s\n", username)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")
}
