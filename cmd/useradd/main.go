// Command useradd provisions operator accounts directly in the dashboard
// database. The server itself never creates users; this tool is the
// out-of-band path for that.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gorm.io/gorm"

	"trading-dashboard/internal/auth"
	"trading-dashboard/internal/database"
	"trading-dashboard/internal/models"
)

func main() {
	dsn := flag.String("dsn", "dashboard.db", "database DSN")
	username := flag.String("username", "", "username to create")
	password := flag.String("password", "", "password (stored as sha256 hex digest)")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "useradd: -username and -password are required")
		os.Exit(2)
	}

	db, err := database.NewDatabase(*dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "useradd: %v\n", err)
		os.Exit(1)
	}

	var existing models.User
	err = db.Where("username = ?", *username).First(&existing).Error
	if err == nil {
		fmt.Fprintf(os.Stderr, "useradd: user %q already exists\n", *username)
		os.Exit(1)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		fmt.Fprintf(os.Stderr, "useradd: %v\n", err)
		os.Exit(1)
	}

	user := models.User{Username: *username, PasswordHash: auth.Digest(*password)}
	if err := db.Create(&user).Error; err != nil {
		fmt.Fprintf(os.Stderr, "useradd: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created user %q\n", *username)
}
