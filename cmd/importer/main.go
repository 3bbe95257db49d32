package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"poi-api/internal/config"
	"poi-api/internal/repository"

	"github.com/jackc/pgx/v5"
)

func main() {
	file := flag.String("file", "", "Path to a JSON array or JSON lines file of documents to import")
	migrateOnly := flag.Bool("migrate-only", false, "Create the tables and exit")
	flag.Parse()

	if *file == "" && !*migrateOnly {
		fmt.Println("Error: --file flag is required unless --migrate-only is set")
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is not set")
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure tables exist
	if err := repository.Migrate(context.Background(), conn); err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Schema is up to date")

	if *migrateOnly {
		return
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	documents, err := parseDocuments(*file)
	if err != nil {
		fmt.Printf("Error parsing documents: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d documents\n", len(documents))

	before, err := countDocuments(conn)
	if err != nil {
		fmt.Printf("Error counting documents: %v\n", err)
		os.Exit(1)
	}

	if err := insertDocuments(conn, documents); err != nil {
		fmt.Printf("Error inserting documents: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(conn, before+len(documents)); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d documents\n", len(documents))
}

// parseDocuments accepts either a single JSON array or one JSON value per line.
func parseDocuments(filePath string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var documents []json.RawMessage
		if err := json.Unmarshal(trimmed, &documents); err != nil {
			return nil, fmt.Errorf("failed to decode array: %w", err)
		}
		return documents, nil
	}

	var documents []json.RawMessage
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if !json.Valid(raw) {
			return nil, fmt.Errorf("invalid JSON on line %d", line)
		}
		documents = append(documents, json.RawMessage(bytes.Clone(raw)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", line, err)
	}

	return documents, nil
}

func insertDocuments(conn *pgx.Conn, documents []json.RawMessage) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"key_value_store"},
		[]string{"json_body"},
		pgx.CopyFromSlice(len(documents), func(i int) ([]any, error) {
			return []any{string(documents[i])}, nil
		}),
	)
	return err
}

func countDocuments(conn *pgx.Conn) (int, error) {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM key_value_store").Scan(&count)
	return count, err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	count, err := countDocuments(conn)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Check a sample document
	var sample string
	err = conn.QueryRow(context.Background(), "SELECT json_body::text FROM key_value_store ORDER BY id DESC LIMIT 1").Scan(&sample)
	if err != nil {
		return fmt.Errorf("failed to check document: %w", err)
	}

	fmt.Printf("Sample document: %s\n", sample)
	return nil
}
