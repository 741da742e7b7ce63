package viewstate

import (
	"fmt"
	"sync"

	"github.com/jhoicas/painel-ajuda/internal/domain"
)

// InFlight registra las mutaciones en curso por registro. Una segunda
// mutación sobre la misma clave antes de que la primera resuelva se rechaza.
type InFlight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewInFlight crea el registro vacío.
func NewInFlight() *InFlight {
	return &InFlight{keys: map[string]struct{}{}}
}

// Key compone la clave "<kind>:<id>".
func Key(kind Kind, id any) string {
	return fmt.Sprintf("%s:%v", kind, id)
}

// Begin reserva key. Devuelve domain.ErrInFlight si ya está reservada;
// si no, la función release libera la reserva (puede llamarse varias veces).
func (f *InFlight) Begin(key string) (release func(), err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.keys[key]; busy {
		return nil, fmt.Errorf("%w: %s", domain.ErrInFlight, key)
	}
	f.keys[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.keys, key)
			f.mu.Unlock()
		})
	}, nil
}

// Busy indica si key tiene una mutación en curso.
func (f *InFlight) Busy(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.keys[key]
	return ok
}
