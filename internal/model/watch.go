package model

import "time"

// WatchState is the persisted watchlist.
type WatchState struct {
	Symbols   []string  `json:"symbols"`
	UpdatedAt time.Time `json:"updated_at"`
}
