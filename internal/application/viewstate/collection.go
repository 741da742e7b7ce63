// Package viewstate mantiene en memoria la última copia conocida de cada
// colección de la API remota y aplica sobre ella las mutaciones ya
// confirmadas por el servidor. Las vistas se construyen solo a partir de
// estas copias.
package viewstate

import "sync"

// Collection lista ordenada por inserción con índice por clave.
// Es segura para uso concurrente; las lecturas devuelven copias.
//
// gen cuenta las mutaciones aplicadas (Update, Remove, Append, Prepend). Una
// recarga que empezó antes de una mutación puede traer datos anteriores a
// ella; LoadIf la descarta.
type Collection[K comparable, T any] struct {
	mu    sync.RWMutex
	key   func(T) K
	items []T
	index map[K]int
	gen   uint64
}

// NewCollection crea una colección vacía que identifica cada registro con key.
func NewCollection[K comparable, T any](key func(T) K) *Collection[K, T] {
	return &Collection[K, T]{key: key, index: map[K]int{}}
}

// Load reemplaza el contenido completo. No hay merge: la carga nueva siempre gana.
// Si la respuesta repite una clave, el último valor ocupa la posición del primero.
func (c *Collection[K, T]) Load(list []T) {
	items, index := c.build(list)

	c.mu.Lock()
	c.items = items
	c.index = index
	c.mu.Unlock()
}

// Generation valor actual del contador de mutaciones. Se toma antes de pedir
// un listado y se pasa a LoadIf con la respuesta.
func (c *Collection[K, T]) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// LoadIf como Load, pero solo si no se aplicó ninguna mutación desde gen.
// Devuelve false, sin tocar la caché, si la respuesta quedó obsoleta.
func (c *Collection[K, T]) LoadIf(list []T, gen uint64) bool {
	items, index := c.build(list)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.items = items
	c.index = index
	return true
}

func (c *Collection[K, T]) build(list []T) ([]T, map[K]int) {
	items := make([]T, 0, len(list))
	index := make(map[K]int, len(list))
	for _, it := range list {
		k := c.key(it)
		if pos, ok := index[k]; ok {
			items[pos] = it
			continue
		}
		index[k] = len(items)
		items = append(items, it)
	}
	return items, index
}

// Get devuelve una copia del registro con clave id.
func (c *Collection[K, T]) Get(id K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[pos], true
}

// Has indica si id está en la colección.
func (c *Collection[K, T]) Has(id K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.index[id]
	return ok
}

// Update modifica en sitio el registro id. Devuelve false (sin cambios) si no existe.
// fn no debe cambiar la clave del registro.
func (c *Collection[K, T]) Update(id K, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos, ok := c.index[id]
	if !ok {
		return false
	}
	fn(&c.items[pos])
	c.gen++
	return true
}

// Remove elimina id si existe. Es idempotente; devuelve si hubo borrado.
func (c *Collection[K, T]) Remove(id K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[c.key(c.items[i])] = i
	}
	c.gen++
	return true
}

// Append añade el eco del servidor tras una creación. Si la clave ya existe,
// se reemplaza en su posición.
func (c *Collection[K, T]) Append(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	k := c.key(rec)
	if pos, ok := c.index[k]; ok {
		c.items[pos] = rec
		return
	}
	c.index[k] = len(c.items)
	c.items = append(c.items, rec)
}

// Prepend como Append pero coloca los registros nuevos al principio.
func (c *Collection[K, T]) Prepend(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	k := c.key(rec)
	if pos, ok := c.index[k]; ok {
		c.items[pos] = rec
		return
	}
	c.items = append([]T{rec}, c.items...)
	for i, it := range c.items {
		c.index[c.key(it)] = i
	}
}

// Snapshot copia el contenido en el orden de la caché.
func (c *Collection[K, T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Filter proyección pura: nueva secuencia, mismo orden, sin mutar la caché.
func (c *Collection[K, T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Count cuenta los registros que cumplen pred.
func (c *Collection[K, T]) Count(pred func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, it := range c.items {
		if pred(it) {
			n++
		}
	}
	return n
}

// Keys claves en orden de la caché.
func (c *Collection[K, T]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]K, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, c.key(it))
	}
	return out
}

// Len número de registros.
func (c *Collection[K, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
