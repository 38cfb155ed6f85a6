// Package evdev samples a single hardware button from a Linux input device.
// It is meant to drive interaction.SingleTouch on devices with one key.
package evdev

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

// Key event values reported by the kernel. Auto-repeat (2) is ignored.
const (
	keyReleased = 0
	keyPressed  = 1
)

// EventReader is the part of an input device the sampler needs.
type EventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Button tracks one key code on an input device. A background goroutine
// reads events; Pressed is sampled once per tick from the menu loop.
type Button struct {
	code   evdev.EvCode
	reader EventReader

	pressed *atomic.Bool
	latched *atomic.Bool // set on press, cleared by the next sample
	presses *atomic.Uint64
	closed  *atomic.Bool
	err     *atomic.Error

	wg sync.WaitGroup
}

// Open opens the input device at path and watches code on it.
func Open(path string, code evdev.EvCode) (*Button, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, minimenu.NewInfrastructureError("open_input_device", err)
	}
	if name, err := dev.Name(); err == nil {
		internal.GetInternalLogger().Debug("Opened input device", "path", path, "name", name, "code", code)
	}
	return NewButton(dev, code), nil
}

// NewButton starts watching code on r.
func NewButton(r EventReader, code evdev.EvCode) *Button {
	b := &Button{
		code:    code,
		reader:  r,
		pressed: atomic.NewBool(false),
		latched: atomic.NewBool(false),
		presses: atomic.NewUint64(0),
		closed:  atomic.NewBool(false),
		err:     atomic.NewError(nil),
	}
	b.wg.Add(1)
	go b.run()
	return b
}

func (b *Button) run() {
	defer b.wg.Done()

	for {
		ev, err := b.reader.ReadOne()
		if err != nil {
			if !b.closed.Load() {
				internal.GetInternalLogger().Error("Input device read failed", "error", err)
				b.err.Store(err)
			}
			b.pressed.Store(false)
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Code != b.code {
			continue
		}

		switch ev.Value {
		case keyPressed:
			b.pressed.Store(true)
			b.latched.Store(true)
			b.presses.Inc()
		case keyReleased:
			b.pressed.Store(false)
		}
	}
}

// Pressed reports whether the button is down, or went down since the
// previous call. A tap shorter than one tick is seen as one pressed sample.
func (b *Button) Pressed() bool {
	latched := b.latched.Swap(false)
	return b.pressed.Load() || latched
}

// Presses counts press transitions since the button was opened.
func (b *Button) Presses() uint64 {
	return b.presses.Load()
}

// Err returns the error that stopped the reader, if any.
func (b *Button) Err() error {
	return b.err.Load()
}

// Close stops the reader and releases the device.
func (b *Button) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	err := b.reader.Close()
	b.wg.Wait()
	return err
}

// ParseCode resolves a key name such as "KEY_ENTER" or a numeric code.
func ParseCode(s string) (evdev.EvCode, error) {
	if code, ok := evdev.KEYFromString[s]; ok {
		return code, nil
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("evdev: %w %q", ErrUnknownKey, s)
	}
	return evdev.EvCode(n), nil
}

// ErrUnknownKey is returned by ParseCode for names that are neither key
// names nor numbers.
var ErrUnknownKey = errors.New("unknown key")
