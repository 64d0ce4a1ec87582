// Package watchlist persists the set of coins the scheduler analyzes.
package watchlist

import (
	"log"
	"strings"
	"sync"

	"CoinScope/internal/model"
)

// Manager guards the persisted watchlist with a mutex.
type Manager struct {
	mu       sync.Mutex
	state    *model.WatchState
	filePath string
}

// NewManager creates a Manager, loading state from disk and seeding it
// with defaults when empty.
func NewManager(filePath string, defaults []string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	if len(state.Symbols) == 0 {
		for _, s := range defaults {
			state.Symbols = append(state.Symbols, normalize(s))
		}
	}

	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// Symbols returns a copy of the watched symbols.
func (m *Manager) Symbols() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.state.Symbols))
	copy(out, m.state.Symbols)
	return out
}

// Add puts a symbol on the watchlist. Returns false if already present.
func (m *Manager) Add(symbol string) bool {
	symbol = normalize(symbol)
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.state.Symbols {
		if s == symbol {
			return false
		}
	}
	m.state.Symbols = append(m.state.Symbols, symbol)
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save watchlist: %v", err)
	}
	return true
}

// Remove drops a symbol from the watchlist. Returns false if absent.
func (m *Manager) Remove(symbol string) bool {
	symbol = normalize(symbol)
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.state.Symbols {
		if s == symbol {
			m.state.Symbols = append(m.state.Symbols[:i], m.state.Symbols[i+1:]...)
			if err := m.save(); err != nil {
				log.Printf("[ERROR] failed to save watchlist: %v", err)
			}
			return true
		}
	}
	return false
}

// Contains reports whether a symbol is watched.
func (m *Manager) Contains(symbol string) bool {
	symbol = normalize(symbol)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.state.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}

// normalize maps user input to a CoinGecko coin id.
func normalize(symbol string) string {
	return strings.ToLower(strings.TrimSpace(symbol))
}
