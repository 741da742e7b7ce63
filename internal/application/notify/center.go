// Package notify implementa las notificaciones de usuario que se descartan
// solas tras un TTL (equivalente a los avisos temporales de la interfaz).
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Niveles de notificación.
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// DefaultTTL tiempo de vida por defecto de una notificación.
const DefaultTTL = 5 * time.Second

// Notification aviso visible para el usuario.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notifier lo que necesitan los casos de uso para avisar al usuario.
type Notifier interface {
	Push(level, message string) Notification
}

// Center cola de notificaciones con auto-descarte.
type Center struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []Notification
}

// NewCenter crea el centro. ttl<=0 usa DefaultTTL; now nil usa time.Now.
func NewCenter(ttl time.Duration, now func() time.Time) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Center{ttl: ttl, now: now}
}

// Push publica una notificación.
func (c *Center) Push(level, message string) Notification {
	now := c.now()
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()
	return n
}

// Active notificaciones no expiradas, de la más antigua a la más reciente.
// Descarta las expiradas.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked(c.now())
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Dismiss descarta id; devuelve false si no existe.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear descarta todas las notificaciones y devuelve cuántas había.
func (c *Center) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = nil
	return n
}

// Prune elimina las expiradas y devuelve cuántas quitó.
func (c *Center) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pruneLocked(c.now())
}

func (c *Center) pruneLocked(now time.Time) int {
	kept := c.items[:0]
	removed := 0
	for _, n := range c.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
			continue
		}
		removed++
	}
	c.items = kept
	return removed
}
