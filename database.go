package main

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	// Auto migrate tables (lazy schema creation on first use)
	if err := db.AutoMigrate(allModels...); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %v", err)
	}

	return &Database{db: db}, nil
}

// AddFavorite records a (user, stock) pair. Adding an existing pair is a no-op.
// Callers are expected to validate the stock code before inserting.
func (d *Database) AddFavorite(userID, stockCode string) error {
	favorite := Favorite{
		UserID:    userID,
		StockCode: stockCode,
	}

	result := d.db.Where("user_id = ? AND stock_code = ?", userID, stockCode).
		FirstOrCreate(&favorite)
	if result.Error != nil {
		return fmt.Errorf("failed to add favorite: %v", result.Error)
	}

	return nil
}

// GetFavorites returns the user's favorited stock codes in insertion order.
// A user with no favorites gets an empty slice, not an error.
func (d *Database) GetFavorites(userID string) ([]string, error) {
	var codes []string
	result := d.db.Model(&Favorite{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("stock_code", &codes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query favorites: %v", result.Error)
	}

	return codes, nil
}

// RemoveFavorite deletes the pair if present. Removing an absent pair is a no-op.
func (d *Database) RemoveFavorite(userID, stockCode string) error {
	result := d.db.Where("user_id = ? AND stock_code = ?", userID, stockCode).
		Delete(&Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %v", result.Error)
	}

	return nil
}

// AllFavoriteCodes returns every distinct stock code favorited by any user.
func (d *Database) AllFavoriteCodes() ([]string, error) {
	var codes []string
	result := d.db.Model(&Favorite{}).
		Distinct("stock_code").
		Order("stock_code ASC").
		Pluck("stock_code", &codes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query favorite codes: %v", result.Error)
	}

	return codes, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %v", err)
	}
	return sqlDB.Close()
}
