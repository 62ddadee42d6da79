// Command-line tool to clean the database by dropping every table the API server migrates.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"jobportal-backend/internal/config"
	"jobportal-backend/internal/database"
)

func main() {
	// Warning message
	fmt.Println("⚠️ WARNING: This command will DROP ALL job portal tables of your database.")
	fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

	// Ask for confirmation
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))

	if input != "yes" {
		fmt.Println("Operation cancelled.")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDBInstance(&cfg.Database, nil)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.DropAll(); err != nil {
		log.Fatalf("failed to drop tables: %v", err)
	}

	fmt.Println("✅ All tables dropped successfully.")
}
