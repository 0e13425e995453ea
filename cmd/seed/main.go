package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"favoritesapi/internal/config"
	"favoritesapi/internal/database"
	"favoritesapi/internal/domain"
)

// Seeds one account per role so the API is usable right after boot.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	accounts := []struct {
		name     string
		email    string
		password string
		role     domain.Role
	}{
		{"Manager Teste", "manager@teste.com", "password", domain.RoleManager},
		{"Usuário Teste", "user@teste.com", "password", domain.RoleUser},
	}

	for _, a := range accounts {
		var existing domain.Client
		if err := db.Where("email = ?", a.email).First(&existing).Error; err == nil {
			log.Printf("Already exists: %s", a.email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}

		c := domain.Client{
			Name:         a.name,
			Email:        a.email,
			PasswordHash: string(hash),
			Role:         a.role,
		}
		if err := db.Create(&c).Error; err != nil {
			log.Fatal("seed failed:", err)
		}
		log.Printf("Created %s: %s / %s", a.role, a.email, a.password)
	}

	log.Println("Seed completed")
}
