package interaction

// DecodeState is the adapter-private state carried between samples. Its zero
// value is the reset state.
type DecodeState struct {
	HoldTicks uint32
}

// Adapter decodes one raw input sample of type I. Given the same decode
// state and input it always produces the same result.
type Adapter[I any] interface {
	HandleInput(state *DecodeState, raw I) InputState
}

// Controller owns the decode state of one menu's input adapter.
type Controller[I any] struct {
	adapter Adapter[I]
	state   DecodeState
	last    InputState
}

// NewController creates a controller in the reset state.
func NewController[I any](adapter Adapter[I]) *Controller[I] {
	return &Controller[I]{adapter: adapter}
}

// Update decodes raw and returns the committed action, or Nothing while the
// input is idle or still in progress.
func (c *Controller[I]) Update(raw I) Action {
	c.last = c.adapter.HandleInput(&c.state, raw)
	if c.last.Kind == InputActive {
		return c.last.Action
	}
	return Nothing
}

// Input returns the InputState produced by the most recent Update.
func (c *Controller[I]) Input() InputState {
	return c.last
}

// Reset clears decode state, e.g. when a menu is re-entered.
func (c *Controller[I]) Reset() {
	c.state = DecodeState{}
	c.last = Idle
}

// DecodeState returns a copy of the decode state for snapshots.
func (c *Controller[I]) DecodeState() DecodeState {
	return c.state
}

// Restore replaces the decode state with one taken from a snapshot.
func (c *Controller[I]) Restore(state DecodeState) {
	c.state = state
}
