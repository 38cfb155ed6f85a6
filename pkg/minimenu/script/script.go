// Package script loads recorded input for headless menu runs. A script is
// a YAML list of steps; each step is one action or a number of idle ticks,
// optionally followed by a captured frame.
//
//	width: 128
//	height: 64
//	steps:
//	  - action: next
//	  - action: forward
//	    n: 3
//	    capture: true
//	  - wait: 40
//	    capture: true
//	  - action: select
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
)

const (
	DefaultWidth  = 128
	DefaultHeight = 64
)

var ErrInvalidStep = errors.New("script: invalid step")

// Script is a parsed input recording.
type Script struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Steps  []Step `yaml:"steps"`
}

// Step is a single entry. Exactly one of Action and Wait is set.
type Step struct {
	Action  string `yaml:"action,omitempty"`
	N       int    `yaml:"n,omitempty"`
	Wait    int    `yaml:"wait,omitempty"`
	Capture bool   `yaml:"capture,omitempty"`
}

// Tick is one expanded menu tick.
type Tick struct {
	Action  interaction.Action
	Capture bool // Write a frame after this tick
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("script: parse: %w", err)
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("script: negative size %dx%d", s.Width, s.Height)
	}
	for i, step := range s.Steps {
		if _, err := step.action(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, minimenu.NewInfrastructureError("read_script", err)
	}
	return Parse(data)
}

func (st Step) action() (interaction.Action, error) {
	switch {
	case st.Action != "" && st.Wait != 0:
		return interaction.Nothing, fmt.Errorf("%w: both action %q and wait", ErrInvalidStep, st.Action)
	case st.Wait < 0:
		return interaction.Nothing, fmt.Errorf("%w: negative wait %d", ErrInvalidStep, st.Wait)
	case st.Action == "":
		return interaction.Nothing, nil
	}

	kind, ok := interaction.ParseActionKind(st.Action)
	if !ok {
		return interaction.Nothing, fmt.Errorf("%w: unknown action %q", ErrInvalidStep, st.Action)
	}
	return interaction.Action{Kind: kind, N: st.N}, nil
}

// Ticks expands the steps into one entry per menu tick. A wait of n
// becomes n idle ticks; an empty step is a single idle tick.
func (s *Script) Ticks() []Tick {
	var ticks []Tick
	for _, step := range s.Steps {
		action, _ := step.action()
		count := 1
		if step.Wait > 0 {
			count = step.Wait
		}
		for i := 0; i < count; i++ {
			ticks = append(ticks, Tick{Action: action, Capture: step.Capture && i == count-1})
		}
	}
	return ticks
}
