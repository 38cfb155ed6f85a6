package interaction

// Programmed is the identity adapter: its raw input already is an Action.
// It suits scripted input and pre-decoded event streams.
type Programmed struct{}

func (Programmed) HandleInput(_ *DecodeState, raw Action) InputState {
	if raw.Kind == ActionNothing {
		return Idle
	}
	return Active(raw)
}
