package model

import (
	"fmt"
	"regexp"
	"strconv"
)

var streakRegex = regexp.MustCompile(`^(?P<dir>[WL])(?P<len>\d+)$`)

// Streak is a parsed streak token like "W3" or "L2".
type Streak struct {
	Winning bool
	Length  int
}

// ParseStreak parses a platform streak token. Returns nil if the token
// is empty or not in the W3/L2 form.
func ParseStreak(token string) *Streak {
	m := streakRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}

	length, err := strconv.Atoi(m[streakRegex.SubexpIndex("len")])
	if err != nil || length == 0 {
		return nil
	}

	return &Streak{
		Winning: m[streakRegex.SubexpIndex("dir")] == "W",
		Length:  length,
	}
}

// FormatStreak renders a streak token for display, e.g. "Won 3" for "W3".
// Tokens that don't parse are rendered as-is so bad platform data still
// shows something.
func FormatStreak(token string) string {
	s := ParseStreak(token)
	if s == nil {
		return token
	}
	if s.Winning {
		return fmt.Sprintf("Won %d", s.Length)
	}
	return fmt.Sprintf("Lost %d", s.Length)
}
