// Package timewindow computes the attendance "current day", which rolls over
// at a fixed morning anchor (05:30 by default) instead of midnight.
package timewindow

import (
	"fmt"
	"time"
)

const (
	DefaultAnchorHour   = 5
	DefaultAnchorMinute = 30
	DefaultLookbackDays = 40
)

// Clock is the wall-clock source for the resolver.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// WorkDate is the calendar date the window belongs to (midnight UTC of the
// start's local date), in the form stored in date columns.
func (w Window) WorkDate() time.Time {
	y, m, d := w.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Range is a half-open interval used for historical lookups.
type Range struct {
	From time.Time
	To   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// Snapshot freezes "now" and the window derived from it, so every caller in
// one request sees the same boundaries.
type Snapshot struct {
	Now     time.Time
	Current Window
	History Range
}

type Anchor struct {
	Hour   int
	Minute int
}

func (a Anchor) String() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

// ParseAnchor parses "HH:MM".
func ParseAnchor(v string) (Anchor, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return Anchor{}, fmt.Errorf("invalid window anchor %q, expected HH:MM: %w", v, err)
	}
	return Anchor{Hour: t.Hour(), Minute: t.Minute()}, nil
}

type Resolver struct {
	clock    Clock
	loc      *time.Location
	anchor   Anchor
	lookback time.Duration
}

type Option func(*Resolver)

func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.loc = loc
		}
	}
}

func WithAnchor(a Anchor) Option {
	return func(r *Resolver) { r.anchor = a }
}

func WithLookbackDays(days int) Option {
	return func(r *Resolver) {
		if days > 0 {
			r.lookback = time.Duration(days) * 24 * time.Hour
		}
	}
}

func NewResolver(clock Clock, opts ...Option) *Resolver {
	if clock == nil {
		clock = SystemClock{}
	}
	r := &Resolver{
		clock:    clock,
		loc:      time.Local,
		anchor:   Anchor{Hour: DefaultAnchorHour, Minute: DefaultAnchorMinute},
		lookback: DefaultLookbackDays * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Location() *time.Location { return r.loc }

func (r *Resolver) Lookback() time.Duration { return r.lookback }

// WindowAt returns the window containing now:
// anchor = today at HH:MM; before the anchor the window started at anchor-24h.
func (r *Resolver) WindowAt(now time.Time) Window {
	local := now.In(r.loc)
	y, m, d := local.Date()
	anchor := time.Date(y, m, d, r.anchor.Hour, r.anchor.Minute, 0, 0, r.loc)

	start := anchor
	if local.Before(anchor) {
		start = anchor.Add(-24 * time.Hour)
	}
	return Window{Start: start, End: start.Add(24 * time.Hour)}
}

// HistoryAt is [now-lookback, windowStart): the lookback excluding the
// current window.
func (r *Resolver) HistoryAt(now time.Time) Range {
	w := r.WindowAt(now)
	return Range{From: now.In(r.loc).Add(-r.lookback), To: w.Start}
}

func (r *Resolver) SnapshotAt(now time.Time) Snapshot {
	return Snapshot{
		Now:     now.In(r.loc),
		Current: r.WindowAt(now),
		History: r.HistoryAt(now),
	}
}

// Snapshot reads the clock once.
func (r *Resolver) Snapshot() Snapshot {
	return r.SnapshotAt(r.clock.Now())
}
