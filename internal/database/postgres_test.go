package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
)

func TestConnectDBRejectsMalformedURL(t *testing.T) {
	if _, err := ConnectDB("://not-a-url"); err == nil {
		t.Fatal("expected an error for a malformed database url")
	}
}

func TestConnectDBReturnsOwnedPool(t *testing.T) {
	_ = godotenv.Load(filepath.Join("..", "..", ".env"))

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		t.Skipf("skipping integration test: DB_URL is not set")
	}

	pool, err := ConnectDB(dbURL)
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
