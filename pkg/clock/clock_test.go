package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tunezone-api/pkg/clock"
)

var epoch = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestFake_DisparaSoloAlVencer(t *testing.T) {
	c := clock.NewFake(epoch)
	fired := 0
	c.AfterFunc(time.Second, func() { fired++ })

	c.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, fired)

	c.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)

	c.Advance(time.Hour)
	assert.Equal(t, 1, fired, "un timer dispara una sola vez")
}

func TestFake_OrdenDeDisparo(t *testing.T) {
	c := clock.NewFake(epoch)
	var order []string
	c.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	c.AfterFunc(time.Second, func() { order = append(order, "a") })
	c.AfterFunc(2*time.Second, func() { order = append(order, "b") })

	c.Advance(5 * time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestFake_Stop(t *testing.T) {
	c := clock.NewFake(epoch)
	fired := false
	tm := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
	c.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestFake_CallbackPuedeProgramarOtroTimer(t *testing.T) {
	c := clock.NewFake(epoch)
	count := 0
	c.AfterFunc(time.Second, func() {
		count++
		c.AfterFunc(time.Second, func() { count++ })
	})

	c.Advance(2 * time.Second)
	assert.Equal(t, 2, count)
	assert.Equal(t, epoch.Add(2*time.Second), c.Now())
}
