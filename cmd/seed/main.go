package main

import (
	"log"
	"os"
	"time"

	"luma-companion-be/internal/model"
	"luma-companion-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo account...")

	email := "demo@luma.app"
	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping...")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash demo password:", err)
	}
	hashStr := string(hash)

	user := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Demo User",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user:", err)
	}
	color.Green("Created demo user: %s", email)

	notes := "Felt good after the morning walk."
	moods := []model.MoodEntry{
		{UserId: user.Id, Mood: "happy", Notes: &notes, CreatedAt: time.Now().Add(-48 * time.Hour)},
		{UserId: user.Id, Mood: "anxious", CreatedAt: time.Now().Add(-24 * time.Hour)},
		{UserId: user.Id, Mood: "calm", CreatedAt: time.Now()},
	}
	for _, m := range moods {
		if err := db.Create(&m).Error; err != nil {
			color.Red("Failed to create mood entry: %v", err)
		}
	}
	color.Green("Created %d mood entries", len(moods))

	title := "First week"
	journal := model.JournalEntry{
		UserId:  user.Id,
		Title:   &title,
		Content: "Started using the app this week. Trying to build a habit of writing down how each day went.",
	}
	if err := db.Create(&journal).Error; err != nil {
		color.Red("Failed to create journal entry: %v", err)
	} else {
		color.Green("Created journal entry: %s", title)
	}

	color.Cyan("Seeding completed!")
}
