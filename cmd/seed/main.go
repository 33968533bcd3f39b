package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mockmate/mockmate-api/config"
	"github.com/mockmate/mockmate-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@mockmate.dev"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
		RETURNING id
	`, email, hash, name, "").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var sessionID string
	err = db.QueryRow(`
		INSERT INTO sessions (user_id, role, experience, topics_to_focus, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, userID, "Backend Engineer", "3 years", "Go, PostgreSQL, REST APIs", "Practice run for a mid-level backend interview").Scan(&sessionID)
	if err != nil {
		log.Fatalf("failed to seed session: %v", err)
	}

	seedQuestions := []struct {
		q, a string
	}{
		{"What is a goroutine and how does it differ from an OS thread?", "A goroutine is a lightweight unit of execution managed by the Go runtime. Goroutines are multiplexed onto a small number of OS threads, start with tiny stacks that grow on demand, and are cheap enough to run in the thousands."},
		{"How do transactions provide atomicity in PostgreSQL?", "All statements inside a transaction either commit together or roll back together. PostgreSQL uses MVCC and a write-ahead log so partial effects of an aborted transaction are never visible to other sessions."},
		{"What status code should a REST API return when a resource does not exist?", "404 Not Found. The response body should carry a consistent error envelope so clients can handle it uniformly."},
	}
	for i, sq := range seedQuestions {
		if _, err := db.Exec(`
			INSERT INTO questions (session_id, position, question, answer)
			VALUES ($1, $2, $3, $4)
		`, sessionID, i, sq.q, sq.a); err != nil {
			log.Fatalf("failed to seed question: %v", err)
		}
	}
	fmt.Printf("seeded session %s with %d questions\n", sessionID, len(seedQuestions))
}
