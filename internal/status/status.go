// Package status keeps the one transient message shown on the status line.
package status

import "time"

// Line holds the latest notice or error until it expires or is replaced.
type Line struct {
	ttl   time.Duration
	text  string
	isErr bool
	until time.Time
}

// New returns an empty line whose messages last ttl.
func New(ttl time.Duration) *Line {
	return &Line{ttl: ttl}
}

// Notice shows msg, replacing any earlier notice or error.
func (l *Line) Notice(msg string, now time.Time) {
	l.set(msg, false, now)
}

// Error shows err, replacing any earlier message. A nil err is ignored.
func (l *Line) Error(err error, now time.Time) {
	if err == nil {
		return
	}
	l.set("Error: "+err.Error(), true, now)
}

func (l *Line) set(text string, isErr bool, now time.Time) {
	l.text = text
	l.isErr = isErr
	l.until = now.Add(l.ttl)
}

// Text returns the current message, or "" once it has expired.
func (l *Line) Text(now time.Time) string {
	if l.text == "" || !now.Before(l.until) {
		return ""
	}
	return l.text
}

// IsError reports whether an unexpired error is showing.
func (l *Line) IsError(now time.Time) bool {
	return l.isErr && l.Text(now) != ""
}

// Clear drops the current message.
func (l *Line) Clear() {
	l.text = ""
	l.isErr = false
	l.until = time.Time{}
}
