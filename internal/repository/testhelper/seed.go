package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUser inserts a staff user and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name) VALUES ($1, $2, $3)`,
		id, id.String()[:8]+"@example.com", name)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedInquiry inserts an inquiry with the given creation time and returns its id.
func SeedInquiry(t *testing.T, pool *pgxpool.Pool, name string, createdAt time.Time) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO inquiries (name, created_at) VALUES ($1, $2) RETURNING id`,
		name, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedInquiry: %v", err)
	}
	return id
}

// SeedStatusEvent appends a status event with an explicit timestamp.
func SeedStatusEvent(t *testing.T, pool *pgxpool.Pool, inquiryID int64, status string, by uuid.UUID, at time.Time) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO inquiry_status_events (inquiry_id, status, updated_by, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		inquiryID, status, by, at).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedStatusEvent: %v", err)
	}
	return id
}

// SeedRegistration inserts a registration and returns its id.
func SeedRegistration(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO registrations (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedRegistration: %v", err)
	}
	return id
}
