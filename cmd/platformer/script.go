package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrBadScript is returned for malformed key scripts.
var ErrBadScript = errors.New("bad script")

// Segment holds a set of actions for a number of ticks.
type Segment struct {
	Actions  []core.Action
	Duration time.Duration
	Ticks    int
}

// Frame returns the input frame sent on every tick of the segment.
func (s Segment) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range s.Actions {
		f.Set(a)
	}
	return f
}

// String formats the segment the way it is written in a script.
func (s Segment) String() string {
	if len(s.Actions) == 0 {
		return "wait:" + s.Duration.String()
	}
	names := make([]string, len(s.Actions))
	for i, a := range s.Actions {
		names[i] = strings.ToLower(a.String())
	}
	return strings.Join(names, "+") + ":" + s.Duration.String()
}

// scriptKeys maps key names in a script to actions.
var scriptKeys = map[string]core.Action{
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"up":    core.ActionJump,
	"jump":  core.ActionJump,
	"wait":  core.ActionNone,
	"idle":  core.ActionNone,
}

// ParseScript parses a comma separated list of keys:duration segments,
// such as "right:2s,up+right:0.5s,wait:1s". Durations use time.ParseDuration
// syntax and are rounded to whole ticks at tickRate.
func ParseScript(script string, tickRate int) ([]Segment, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("%w: tick rate must be positive", ErrBadScript)
	}
	if strings.TrimSpace(script) == "" {
		return nil, fmt.Errorf("%w: empty script", ErrBadScript)
	}

	var segments []Segment
	for i, part := range strings.Split(script, ",") {
		keys, dur, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("%w: segment %d %q: missing ':duration'", ErrBadScript, i+1, part)
		}

		d, err := time.ParseDuration(strings.TrimSpace(dur))
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %w", ErrBadScript, i+1, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%w: segment %d: duration must be positive", ErrBadScript, i+1)
		}

		seg := Segment{
			Duration: d,
			Ticks:    max(int(math.Round(d.Seconds()*float64(tickRate))), 1),
		}
		for _, name := range strings.Split(keys, "+") {
			a, ok := scriptKeys[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return nil, fmt.Errorf("%w: segment %d: unknown key %q", ErrBadScript, i+1, name)
			}
			if a != core.ActionNone {
				seg.Actions = append(seg.Actions, a)
			}
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
