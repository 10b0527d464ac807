package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"gymhub/internal/auth"
	"gymhub/internal/config"
	"gymhub/internal/db"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

// seedTrainer holds plaintext seed credentials; the password is hashed
// before insert.
type seedTrainer struct {
	Name           string
	Email          string
	Password       string
	Specialization string
}

var trainers = []seedTrainer{
	{
		Name:           "John Smith",
		Email:          "john.trainer@gym.com",
		Password:       "trainer123",
		Specialization: "Strength Training & Bodybuilding",
	},
	{
		Name:           "Sarah Johnson",
		Email:          "sarah.trainer@gym.com",
		Password:       "trainer123",
		Specialization: "Cardio & Weight Loss",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Trainer{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	trainerRepo := repository.NewTrainerRepository(gormDB)
	ctx := context.Background()

	created := 0
	for _, t := range trainers {
		existing, err := trainerRepo.FindByEmail(ctx, t.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check trainer %s: %v", t.Email, err)
		}
		if existing != nil {
			log.Printf("Trainer %s already exists, skipping", t.Email)
			continue
		}

		hashed, err := auth.HashPassword(t.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", t.Email, err)
		}

		trainer := &model.Trainer{
			Name:           t.Name,
			Email:          t.Email,
			PasswordHash:   hashed,
			Specialization: t.Specialization,
		}
		if err := trainerRepo.Create(ctx, trainer); err != nil {
			log.Fatalf("Failed to create trainer %s: %v", t.Email, err)
		}
		log.Printf("Created trainer: %s (%s)", t.Name, t.Email)
		created++
	}

	log.Printf("Seeding completed, %d trainer(s) created", created)
}
