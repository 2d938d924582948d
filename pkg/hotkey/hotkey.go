// Package hotkey registers global keyboard shortcuts for the carousel.
package hotkey

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.design/x/hotkey"

	"github.com/dixieflatline76/Wallin/pkg/wallpaper"
	"github.com/dixieflatline76/Wallin/util/log"
)

// Cooldown is the minimum time between two presses of the same shortcut.
const Cooldown = 200 * time.Millisecond

// Actions is what the shortcuts trigger.
type Actions interface {
	Advance() error
	ApplyCurrent() error
}

// Binding maps a key chord to an action.
type Binding struct {
	Name   string
	Mods   []hotkey.Modifier
	Key    hotkey.Key
	Action func()
}

// DefaultBindings returns Ctrl+Alt+Right for the next wallpaper and Ctrl+Alt+Down to
// use the current one (Cmd+Option on macOS).
func DefaultBindings(a Actions) []Binding {
	return []Binding{
		{
			Name: "Next Wallpaper",
			Mods: []hotkey.Modifier{modCtrl, modAlt},
			Key:  keyRight,
			Action: func() {
				if err := a.Advance(); err != nil && !errors.Is(err, wallpaper.ErrRateLimited) {
					log.Printf("Hotkey next: %v", err)
				}
			},
		},
		{
			Name: "Use as Wallpaper",
			Mods: []hotkey.Modifier{modCtrl, modAlt},
			Key:  keyDown,
			Action: func() {
				if err := a.ApplyCurrent(); err != nil {
					log.Printf("Hotkey apply: %v", err)
				}
			},
		},
	}
}

// Listener owns the registered shortcuts. Actions run through the dispatcher.
type Listener struct {
	dispatch wallpaper.Dispatcher

	mu   sync.Mutex
	keys []*hotkey.Hotkey
	wg   sync.WaitGroup
}

// NewListener creates a Listener.
func NewListener(dispatch wallpaper.Dispatcher) *Listener {
	return &Listener{dispatch: dispatch}
}

// Supported reports whether global shortcuts work on this platform.
func Supported() bool {
	return supported
}

// Start registers the bindings and listens until ctx is done. It returns how many
// were registered; a binding that fails to register is logged and skipped.
func (l *Listener) Start(ctx context.Context, bindings []Binding) int {
	if !supported {
		log.Print("Global hotkeys are not supported on this platform")
		return 0
	}

	n := 0
	for _, b := range bindings {
		hk := hotkey.New(b.Mods, b.Key)
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register hotkey %s: %v", b.Name, err)
			continue
		}
		log.Printf("Registered hotkey: %s", b.Name)

		l.mu.Lock()
		l.keys = append(l.keys, hk)
		l.mu.Unlock()
		n++

		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			l.listen(ctx, b.Name, hk.Keydown(), b.Action)
		}()
	}
	return n
}

// listen dispatches action for each key press, dropping presses inside the cooldown.
func (l *Listener) listen(ctx context.Context, name string, keydown <-chan hotkey.Event, action func()) {
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			now := time.Now()
			if !last.IsZero() && now.Sub(last) < Cooldown {
				continue
			}
			last = now
			log.Debugf("Hotkey pressed: %s", name)
			l.dispatch.Do(action)
		}
	}
}

// Stop unregisters every shortcut. The listeners exit once ctx passed to Start is done.
func (l *Listener) Stop() {
	l.mu.Lock()
	keys := l.keys
	l.keys = nil
	l.mu.Unlock()

	for _, hk := range keys {
		if err := hk.Unregister(); err != nil {
			log.Printf("Failed to unregister hotkey: %v", err)
		}
	}
}

// Wait blocks until all listeners have returned.
func (l *Listener) Wait() {
	l.wg.Wait()
}
