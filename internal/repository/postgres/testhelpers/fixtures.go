package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// InsertBed inserts a raised bed and returns its ID
func InsertBed(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO raised_beds (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert bed %s: %w", name, err)
	}
	return id, nil
}

// InsertPlant inserts a catalog plant and returns its ID
func InsertPlant(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO plants (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert plant %s: %w", name, err)
	}
	return id, nil
}

// InsertCareAction inserts a care action and returns its ID
func InsertCareAction(db *sql.DB, name, actionType string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO care_actions (name, action_type) VALUES ($1, $2) RETURNING id",
		name, actionType).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert care action %s: %w", name, err)
	}
	return id, nil
}
