package main

import "time"

// GORM models for the database

// Favorite represents one (user, stock) favorite pairing.
// The composite unique index makes re-inserting the same pair a no-op.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_user_stock_unique,unique;not null" json:"userId"`
	StockCode string    `gorm:"index:idx_user_stock_unique,unique;not null" json:"stockCode"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}

// Get all model types for auto migration
var allModels = []interface{}{
	&Favorite{},
}
