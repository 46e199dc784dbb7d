package database

import (
	"context"
	_ "embed"
	"fmt"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the schema if it does not exist. Existing tables are left untouched.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
