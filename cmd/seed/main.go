package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/lawbridge/lawbridge-backend/config"
	"github.com/lawbridge/lawbridge-backend/pkg/helpers"
)

var specializationNames = []string{
	"Family Law",
	"Criminal Defense",
	"Corporate Law",
	"Immigration",
	"Intellectual Property",
	"Real Estate",
	"Employment Law",
	"Tax Law",
	"Personal Injury",
	"Bankruptcy",
}

var languages = []struct{ Name, Code string }{
	{"English", "en"},
	{"Spanish", "es"},
	{"French", "fr"},
	{"German", "de"},
	{"Mandarin", "zh"},
	{"Arabic", "ar"},
	{"Portuguese", "pt"},
	{"Hindi", "hi"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Catalogs
	for _, name := range specializationNames {
		if _, err := db.Exec(`
			INSERT INTO specializations (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
		`, name); err != nil {
			log.Fatalf("failed to seed specialization %q: %v", name, err)
		}
	}
	fmt.Printf("seeded %d specializations\n", len(specializationNames))

	for _, l := range languages {
		if _, err := db.Exec(`
			INSERT INTO languages (name, code) VALUES ($1, $2)
			ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
		`, l.Name, l.Code); err != nil {
			log.Fatalf("failed to seed language %q: %v", l.Code, err)
		}
	}
	fmt.Printf("seeded %d languages\n", len(languages))

	// Bootstrap admin
	email := "admin@lawbridge.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO accounts (display_name, email, email_verified, password_hash, role, onboarding_completed)
		VALUES ($1, $2, TRUE, $3, 'admin', TRUE)
		ON CONFLICT (email) DO UPDATE SET role = 'admin'
		RETURNING id
	`, "LawBridge Admin", email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)
}
