package viewstate

import "sync"

// Value caché de un único documento (estadísticas o paneles agregados).
// Como Collection, la carga nueva reemplaza siempre la anterior.
type Value[T any] struct {
	mu  sync.RWMutex
	v   T
	set bool
}

// NewValue crea un Value vacío.
func NewValue[T any]() *Value[T] {
	return &Value[T]{}
}

// Load reemplaza el documento.
func (v *Value[T]) Load(doc T) {
	v.mu.Lock()
	v.v, v.set = doc, true
	v.mu.Unlock()
}

// Get devuelve el documento; false si nunca se cargó.
func (v *Value[T]) Get() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.v, v.set
}

// Clear vacía el documento.
func (v *Value[T]) Clear() {
	v.mu.Lock()
	var zero T
	v.v, v.set = zero, false
	v.mu.Unlock()
}
