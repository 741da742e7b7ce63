package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-ajuda/internal/application/notify"
)

// fakeClock reloj manual para controlar la expiración.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newCenter(ttl time.Duration) (*notify.Center, *fakeClock) {
	clk := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	return notify.NewCenter(ttl, clk.now), clk
}

func TestCenter_PushYActive(t *testing.T) {
	c, clk := newCenter(5 * time.Second)

	a := c.Push(notify.LevelSuccess, "Instituição aprovada com sucesso!")
	b := c.Push(notify.LevelError, "x")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, clk.t.Add(5*time.Second), a.ExpiresAt)

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "Instituição aprovada com sucesso!", active[0].Message)
	assert.Equal(t, "x", active[1].Message)
}

func TestCenter_ExpiranTrasElTTL(t *testing.T) {
	c, clk := newCenter(5 * time.Second)
	c.Push(notify.LevelInfo, "primera")
	clk.advance(3 * time.Second)
	c.Push(notify.LevelInfo, "segunda")

	clk.advance(2 * time.Second) // la primera cumple exactamente su TTL
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "segunda", active[0].Message)

	clk.advance(10 * time.Second)
	assert.Equal(t, 1, c.Prune(), "Active ya descartó la primera; Prune quita la segunda")
	assert.Empty(t, c.Active())
}

func TestCenter_Prune(t *testing.T) {
	c, clk := newCenter(time.Second)
	c.Push(notify.LevelInfo, "a")
	c.Push(notify.LevelInfo, "b")
	clk.advance(2 * time.Second)
	c.Push(notify.LevelInfo, "c")

	assert.Equal(t, 2, c.Prune())
	assert.Len(t, c.Active(), 1)
}

func TestCenter_Dismiss(t *testing.T) {
	c, _ := newCenter(0)
	n := c.Push(notify.LevelWarning, "aviso")

	assert.True(t, c.Dismiss(n.ID))
	assert.False(t, c.Dismiss(n.ID))
	assert.Empty(t, c.Active())
}

func TestCenter_TTLPorDefecto(t *testing.T) {
	c, clk := newCenter(0)
	n := c.Push(notify.LevelInfo, "x")
	assert.Equal(t, clk.t.Add(notify.DefaultTTL), n.ExpiresAt)
}

func TestCenter_Clear(t *testing.T) {
	c, _ := newCenter(0)
	c.Push(notify.LevelInfo, "a")
	c.Push(notify.LevelError, "b")

	assert.Equal(t, 2, c.Clear())
	assert.Empty(t, c.Active())
	assert.Zero(t, c.Clear())
}
