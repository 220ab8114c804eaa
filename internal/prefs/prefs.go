// Package prefs is the per-visitor key-value store behind the persisted
// language choice. Backends: sqlite (repository), Redis, and memory.
package prefs

import (
	"context"
	"fmt"
	"sync"

	"github.com/lehmann314159/heimwerker/internal/models"
)

// Store reads and writes one visitor's preferences. Get returns "" for a
// missing key.
type Store interface {
	Get(ctx context.Context, visitorID, key string) (string, error)
	Set(ctx context.Context, visitorID, key, value string) error
}

// Language binds a Store to one visitor's language key.
type Language struct {
	Store   Store
	Visitor string
}

func (l Language) Load(ctx context.Context) (string, error) {
	lang, err := l.Store.Get(ctx, l.Visitor, models.PreferenceLanguage)
	if err != nil {
		return "", fmt.Errorf("load language for %s: %w", l.Visitor, err)
	}
	return lang, nil
}

func (l Language) Save(ctx context.Context, lang string) error {
	if err := l.Store.Set(ctx, l.Visitor, models.PreferenceLanguage, lang); err != nil {
		return fmt.Errorf("save language for %s: %w", l.Visitor, err)
	}
	return nil
}

// Memory keeps preferences for the process lifetime only.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, visitorID, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[visitorID+"\x00"+key], nil
}

func (m *Memory) Set(_ context.Context, visitorID, key, value string) error {
	m.mu.Lock()
	m.data[visitorID+"\x00"+key] = value
	m.mu.Unlock()
	return nil
}
