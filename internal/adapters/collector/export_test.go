package collector

import "time"

// SetLocalClock replaces the clock used to stamp local records.
func SetLocalClock(l *Local, now func() time.Time) {
	l.now = now
}

// SetGlobalClock replaces the clock used to stamp global records.
func SetGlobalClock(g *Global, now func() time.Time) {
	g.now = now
}
