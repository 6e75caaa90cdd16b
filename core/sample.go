package core

import (
	"math"
	"time"

	"github.com/huangsam/vigil/schema"
)

// AgeSample is one file's age captured once and expressed in every unit.
// Minutes, hours and days are rounded half away from zero, not truncated.
type AgeSample struct {
	Seconds int64
	Minutes int64
	Hours   int64
	Days    int64
}

// SampleAge derives a file's age from its modification time. A negative age
// from clock skew is clamped to zero.
func SampleAge(mtime, now time.Time) AgeSample {
	seconds := now.Unix() - mtime.Unix()
	if seconds < 0 {
		seconds = 0
	}
	return AgeSample{
		Seconds: seconds,
		Minutes: roundDiv(seconds, 60),
		Hours:   roundDiv(seconds, 3600),
		Days:    roundDiv(seconds, 86400),
	}
}

// In returns the age in the given unit. The value always comes from the same
// raw sample, never from a second stat.
func (a AgeSample) In(unit schema.Unit) int64 {
	switch unit {
	case schema.Minutes:
		return a.Minutes
	case schema.Hours:
		return a.Hours
	case schema.Days:
		return a.Days
	default:
		return a.Seconds
	}
}

func roundDiv(value, divisor int64) int64 {
	return int64(math.Round(float64(value) / float64(divisor)))
}
