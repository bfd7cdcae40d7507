package travellog

import (
	"fmt"
	"time"
)

// TravelLog is a single recorded trip. Values are immutable once the Factory
// returns them; Description is derived at construction and never recomputed.
type TravelLog struct {
	ID          int64     `json:"id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Distance    float64   `json:"distance"` // kilometers
	Duration    float64   `json:"duration"` // hours
	Mode        Mode      `json:"type"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	CreatedAt   time.Time `json:"date"`
	Description string    `json:"description"`
}

func describe(to string, createdAt time.Time) string {
	return fmt.Sprintf("For %s on %d %s", to, createdAt.Day(), createdAt.Month().String())
}
