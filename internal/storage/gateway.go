// Package storage persists the two state blobs through a two-tier write
// policy: best-effort to the priority store, always synchronously to the
// secondary store. Load and save never return errors to the caller; failures
// are diagnostics only.
package storage

import (
	"encoding/json"
	"log"

	"lifeos/internal/state"
)

// Persisted keys.
const (
	StateKey   = "lifeOS"
	UIStateKey = "lifeOUIState"
)

// Backend is one key-value store tier.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

type Gateway struct {
	priority  Backend // nil when the sync store is unavailable
	secondary Backend
}

func NewGateway(priority, secondary Backend) *Gateway {
	return &Gateway{priority: priority, secondary: secondary}
}

// LoadAppState returns the persisted snapshot, or fallback when the key is
// absent, unreadable, or fails schema validation.
func (g *Gateway) LoadAppState(fallback state.AppState) state.AppState {
	raw, ok := g.load(StateKey)
	if !ok {
		return fallback
	}
	st, ok := state.DecodeAppState(raw)
	if !ok {
		log.Printf("storage: discarding malformed %q blob", StateKey)
		return fallback
	}
	return st
}

// SaveAppState reports false only when the secondary write fails; the
// in-memory snapshot stays authoritative either way.
func (g *Gateway) SaveAppState(st state.AppState) bool {
	return g.save(StateKey, st)
}

func (g *Gateway) LoadUIState(fallback state.UIState) state.UIState {
	raw, ok := g.load(UIStateKey)
	if !ok {
		return fallback
	}
	ui, ok := state.DecodeUIState(raw)
	if !ok {
		log.Printf("storage: discarding malformed %q blob", UIStateKey)
		return fallback
	}
	return ui
}

func (g *Gateway) SaveUIState(ui state.UIState) bool {
	return g.save(UIStateKey, ui)
}

func (g *Gateway) load(key string) ([]byte, bool) {
	if g.priority != nil {
		raw, ok, err := g.priority.Get(key)
		if err != nil {
			log.Printf("storage: priority read of %q failed: %v", key, err)
		} else if ok {
			return raw, true
		}
	}
	raw, ok, err := g.secondary.Get(key)
	if err != nil {
		log.Printf("storage: secondary read of %q failed: %v", key, err)
		return nil, false
	}
	return raw, ok
}

func (g *Gateway) save(key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage: encoding %q failed: %v", key, err)
		return false
	}
	if g.priority != nil {
		if err := g.priority.Set(key, raw); err != nil {
			// Best effort: the secondary write below is the durable one.
			log.Printf("storage: priority write of %q failed: %v", key, err)
		}
	}
	if err := g.secondary.Set(key, raw); err != nil {
		log.Printf("storage: secondary write of %q failed: %v", key, err)
		return false
	}
	return true
}
