// Package buildctx provides a per-run logging and timing context threaded
// through the pipeline stages, so a caller can observe progress/warnings
// and per-stage timings without a process-wide logger singleton and
// without the core's purity depending on what it logs.
package buildctx

import (
	"fmt"
	"time"
)

// Category classifies a logged message.
type Category int

const (
	Progress Category = iota
	Warning
	Error
)

func (c Category) String() string {
	switch c {
	case Progress:
		return "PROG"
	case Warning:
		return "WARN"
	case Error:
		return "ERR"
	default:
		return "?"
	}
}

// Message is one recorded log entry.
type Message struct {
	Category Category
	Text     string
}

// Stage names the pipeline stages that can be timed.
type Stage int

const (
	StageLoopMerge Stage = iota
	StageSurfaceBuild
	StagePerimeters
	StageFillClassify
	StageBridgeDetect
	numStages
)

func (s Stage) String() string {
	switch s {
	case StageLoopMerge:
		return "loop-merge"
	case StageSurfaceBuild:
		return "surface-build"
	case StagePerimeters:
		return "perimeters"
	case StageFillClassify:
		return "fill-classify"
	case StageBridgeDetect:
		return "bridge-detect"
	default:
		return "?"
	}
}

// Context is a non-owning, per-run logging/timer handle passed into
// every stage. Logging and timers are both opt-in: disabled, the
// methods are near-zero-cost no-ops.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	messages []Message

	start map[Stage]time.Time
	acc   map[Stage]time.Duration
}

// New returns a Context with logging and timers enabled or disabled as
// given.
func New(enableLog, enableTimer bool) *Context {
	return &Context{
		logEnabled:   enableLog,
		timerEnabled: enableTimer,
		start:        make(map[Stage]time.Time),
		acc:          make(map[Stage]time.Duration),
	}
}

// EnableLog toggles logging.
func (c *Context) EnableLog(state bool) { c.logEnabled = state }

// EnableTimer toggles timers.
func (c *Context) EnableTimer(state bool) { c.timerEnabled = state }

// ResetLog clears all recorded messages while logging is enabled; with
// logging disabled it leaves them in place.
func (c *Context) ResetLog() {
	if c.logEnabled {
		c.messages = c.messages[:0]
	}
}

// Progressf records a progress message.
func (c *Context) Progressf(format string, args ...interface{}) { c.logf(Progress, format, args...) }

// Warningf records a warning message -- used by the bridge stage when a
// bridge has no supporting edges and its angle stays undefined, a
// silent-drop condition a caller may still want visibility into.
func (c *Context) Warningf(format string, args ...interface{}) { c.logf(Warning, format, args...) }

// Errorf records an error message.
func (c *Context) Errorf(format string, args ...interface{}) { c.logf(Error, format, args...) }

func (c *Context) logf(cat Category, format string, args ...interface{}) {
	if !c.logEnabled {
		return
	}
	c.messages = append(c.messages, Message{Category: cat, Text: fmt.Sprintf(format, args...)})
}

// Messages returns every message logged so far.
func (c *Context) Messages() []Message { return c.messages }

// StartTimer starts (or resumes) the timer for stage.
func (c *Context) StartTimer(stage Stage) {
	if c.timerEnabled {
		c.start[stage] = time.Now()
	}
}

// StopTimer stops the timer for stage and accumulates the elapsed time.
func (c *Context) StopTimer(stage Stage) {
	if !c.timerEnabled {
		return
	}
	c.acc[stage] += time.Since(c.start[stage])
}

// AccumulatedTime returns the total time recorded for stage.
func (c *Context) AccumulatedTime(stage Stage) time.Duration {
	return c.acc[stage]
}

// ResetTimers clears every stage's accumulated time.
func (c *Context) ResetTimers() {
	c.acc = make(map[Stage]time.Duration, numStages)
}
