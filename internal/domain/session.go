package domain

import (
	"context"
	"time"
)

// ThemePreference is the per-session light/dark choice. Cosmetic only.
type ThemePreference struct {
	Dark bool `json:"dark"`
}

// Toggle flips the preference.
func (t ThemePreference) Toggle() ThemePreference {
	return ThemePreference{Dark: !t.Dark}
}

// Session is one browser's isolated interaction state.
type Session struct {
	ID        string            `json:"id"`
	Theme     ThemePreference   `json:"theme"`
	Upload    *UploadedDocument `json:"upload,omitempty"`
	Result    *ExtractionResult `json:"result,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	LastSeen  time.Time         `json:"last_seen"`
}

// SessionStore keeps sessions in memory.
type SessionStore interface {
	Create() *Session
	Get(id string) (*Session, error)
	Update(id string, mutate func(*Session)) (*Session, error)
	Sweep(now time.Time) int
}

// SessionService holds the interactions a user can perform.
type SessionService interface {
	Resolve(id string) *Session
	SetUpload(id string, doc *UploadedDocument) (*Session, error)
	ToggleTheme(id string) (*Session, error)
	Extract(ctx context.Context, id string) (*Session, error)
}
