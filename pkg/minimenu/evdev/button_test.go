package evdev

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
)

// fakeDevice feeds events from a channel. Close unblocks ReadOne.
type fakeDevice struct {
	events chan *evdev.InputEvent
	once   sync.Once
	done   chan struct{}
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{events: make(chan *evdev.InputEvent), done: make(chan struct{})}
}

var errDeviceClosed = errors.New("device closed")

func (f *fakeDevice) ReadOne() (*evdev.InputEvent, error) {
	select {
	case ev, ok := <-f.events:
		if !ok {
			return nil, errors.New("device unplugged")
		}
		return ev, nil
	case <-f.done:
		return nil, errDeviceClosed
	}
}

func (f *fakeDevice) Close() error {
	f.once.Do(func() { close(f.done) })
	return nil
}

func (f *fakeDevice) send(t evdev.EvType, code evdev.EvCode, value int32) {
	f.events <- &evdev.InputEvent{Type: t, Code: code, Value: value}
}

// sync waits until the reader goroutine has taken the previous event by
// sending an event the button ignores.
func (f *fakeDevice) sync() {
	f.send(evdev.EV_SYN, 0, 0)
}

func TestButtonTracksPressAndRelease(t *testing.T) {
	dev := newFakeDevice()
	b := NewButton(dev, evdev.KEY_ENTER)
	defer b.Close()

	if b.Pressed() {
		t.Fatal("Pressed() before any event")
	}

	dev.send(evdev.EV_KEY, evdev.KEY_ENTER, 1)
	dev.sync()
	for i := 0; i < 3; i++ {
		if !b.Pressed() {
			t.Fatalf("sample %d: Pressed() = false while held", i)
		}
	}

	dev.send(evdev.EV_KEY, evdev.KEY_ENTER, 2)
	dev.send(evdev.EV_KEY, evdev.KEY_ENTER, 0)
	dev.sync()
	if b.Pressed() {
		t.Error("Pressed() after release")
	}
	if b.Presses() != 1 {
		t.Errorf("Presses() = %d, want 1", b.Presses())
	}
}

func TestButtonLatchesShortTaps(t *testing.T) {
	dev := newFakeDevice()
	b := NewButton(dev, evdev.KEY_ENTER)
	defer b.Close()

	dev.send(evdev.EV_KEY, evdev.KEY_ENTER, 1)
	dev.send(evdev.EV_KEY, evdev.KEY_ENTER, 0)
	dev.sync()

	if !b.Pressed() {
		t.Error("a tap between samples was lost")
	}
	if b.Pressed() {
		t.Error("the tap was reported twice")
	}
}

func TestButtonIgnoresOtherKeys(t *testing.T) {
	dev := newFakeDevice()
	b := NewButton(dev, evdev.KEY_ENTER)
	defer b.Close()

	dev.send(evdev.EV_KEY, evdev.KEY_SPACE, 1)
	dev.send(evdev.EV_ABS, evdev.KEY_ENTER, 1)
	dev.sync()
	if b.Pressed() || b.Presses() != 0 {
		t.Error("unrelated events changed the button")
	}
}

func TestButtonCloseIsClean(t *testing.T) {
	dev := newFakeDevice()
	b := NewButton(dev, evdev.KEY_ENTER)

	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if b.Err() != nil {
		t.Errorf("Err() = %v after Close", b.Err())
	}
}

func TestButtonReportsReadErrors(t *testing.T) {
	dev := newFakeDevice()
	b := NewButton(dev, evdev.KEY_ENTER)
	defer b.Close()

	close(dev.events)

	deadline := time.After(2 * time.Second)
	for b.Err() == nil {
		select {
		case <-deadline:
			t.Fatal("read error was not reported")
		case <-time.After(time.Millisecond):
		}
	}
	if b.Pressed() {
		t.Error("Pressed() after the device failed")
	}
}

func TestParseCode(t *testing.T) {
	if code, err := ParseCode("KEY_ENTER"); err != nil || code != evdev.KEY_ENTER {
		t.Errorf("ParseCode(KEY_ENTER) = %v, %v", code, err)
	}
	if code, err := ParseCode("0x74"); err != nil || code != 116 {
		t.Errorf("ParseCode(0x74) = %v, %v", code, err)
	}
	if _, err := ParseCode("KEY_BOGUS"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("ParseCode(KEY_BOGUS) error = %v", err)
	}
}
