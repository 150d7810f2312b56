// Package clock abstrae el tiempo para los temporizadores de la aplicación
// (auto-cierre de notificaciones, cuenta regresiva del pago QR, expiración de sesiones).
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer es el subconjunto de *time.Timer que usan los stores.
type Timer interface {
	Stop() bool
}

// Clock entrega la hora actual y programa callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real devuelve el reloj del sistema.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Fake es un reloj manual: los timers solo disparan al llamar Advance o Set.
// Los callbacks se ejecutan de forma síncrona, sin el lock interno tomado.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *Fake
	when    time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewFake crea un reloj detenido en start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now devuelve la hora simulada.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// AfterFunc registra fn para cuando la hora simulada alcance now+d.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{clock: f, when: f.now.Add(d), seq: f.seq, fn: fn}
	f.timers = append(f.timers, t)
	return t
}

// Advance mueve el reloj d hacia adelante y dispara los timers vencidos en orden.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()
	f.Set(target)
}

// Set mueve el reloj a t (nunca hacia atrás) y dispara los timers vencidos.
// El reloj avanza timer por timer, así un callback ve la hora en que venció.
func (f *Fake) Set(t time.Time) {
	for {
		f.mu.Lock()
		due := f.popDue(t)
		if due == nil {
			if t.After(f.now) {
				f.now = t
			}
			f.mu.Unlock()
			return
		}
		if due.when.After(f.now) {
			f.now = due.when
		}
		f.mu.Unlock()
		due.fn()
	}
}

// Pending cuenta los timers activos (no disparados ni detenidos).
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// popDue extrae el siguiente timer que vence hasta limit. Requiere f.mu.
func (f *Fake) popDue(limit time.Time) *fakeTimer {
	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].when.Equal(f.timers[j].when) {
			return f.timers[i].seq < f.timers[j].seq
		}
		return f.timers[i].when.Before(f.timers[j].when)
	})
	for i, t := range f.timers {
		if t.stopped || t.fired {
			continue
		}
		if t.when.After(limit) {
			return nil
		}
		t.fired = true
		f.timers = append(f.timers[:i], f.timers[i+1:]...)
		return t
	}
	return nil
}

// Stop cancela el timer. Devuelve false si ya había disparado o estaba detenido.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
