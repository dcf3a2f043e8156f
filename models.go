package main

import "time"

// PricePoint is one daily close for a ticker.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

type AddFavoritesRequest struct {
	UserID     string   `json:"userId"`
	StockCodes []string `json:"stockCodes"`
}

type AddFavoritesResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SymbolEntry is one row of the exchange's listed-security directory.
type SymbolEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
