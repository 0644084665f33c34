package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
)

// CountPoints returns the number of rows in points
func CountPoints(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM points").Scan(&n); err != nil {
		return 0, fmt.Errorf("count points: %w", err)
	}
	return n, nil
}

// CountOrphanPointCategories returns association rows whose point does not exist
func CountOrphanPointCategories(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(context.Background(), `
		SELECT COUNT(*)
		FROM point_categories pc
		LEFT JOIN points p ON p.id = pc.point_id
		WHERE p.id IS NULL
	`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orphan point categories: %w", err)
	}
	return n, nil
}

// MaxPointID returns the current max point id, 0 when the table is empty
func MaxPointID(db *sql.DB) (int64, error) {
	var id sql.NullInt64
	if err := db.QueryRowContext(context.Background(), "SELECT MAX(id) FROM points").Scan(&id); err != nil {
		return 0, fmt.Errorf("max point id: %w", err)
	}
	return id.Int64, nil
}
