// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"studioportal/internal/database"
	"studioportal/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "studioportal")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "studioportal")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testProfile inserts a client profile for foreign keys and registers its
// removal. Dependent rows must be cleaned up first by the caller.
func testProfile(t *testing.T, db *sql.DB, email string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO profiles (name, email, role) VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		"Test Client", email, models.RoleClient,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert test profile: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM profiles WHERE id = $1", id)
	})
	return id
}

// cleanOrders removes test orders by business name. Call in t.Cleanup().
func cleanOrders(t *testing.T, db *sql.DB, businessNames ...string) {
	t.Helper()
	for _, name := range businessNames {
		db.Exec("DELETE FROM template_orders WHERE business_name = $1", name)
	}
}

// cleanProjects removes test projects by name. Call in t.Cleanup().
func cleanProjects(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM projects WHERE name = $1", name)
	}
}

// cleanInvoices removes test invoices by invoice number. Call in t.Cleanup().
func cleanInvoices(t *testing.T, db *sql.DB, numbers ...string) {
	t.Helper()
	for _, num := range numbers {
		db.Exec("DELETE FROM invoices WHERE invoice_number = $1", num)
	}
}

// cleanMessages removes test messages for a user. Call in t.Cleanup().
func cleanMessages(t *testing.T, db *sql.DB, userIDs ...uuid.UUID) {
	t.Helper()
	for _, id := range userIDs {
		db.Exec("DELETE FROM messages WHERE user_id = $1", id)
	}
}

// cleanCampaigns removes test campaigns by title. Call in t.Cleanup().
func cleanCampaigns(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM campaigns WHERE title = $1", title)
	}
}

// cleanContacts removes test contact submissions by email. Call in t.Cleanup().
func cleanContacts(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, email := range emails {
		db.Exec("DELETE FROM contact_submissions WHERE email = $1", email)
	}
}
