package persistentcache

import (
	"time"
)

// MaxBackgroundRefreshThreshold caps the default threshold for long-lived entries.
const MaxBackgroundRefreshThreshold = time.Hour

type State int

const (
	Absent State = iota
	Fresh
	StaleButUsable
	Expired
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "FRESH"
	case StaleButUsable:
		return "STALE_BUT_USABLE"
	case Expired:
		return "EXPIRED"
	default:
		return "ABSENT"
	}
}

// Usable reports whether a value in this state may be served.
func (s State) Usable() bool {
	return s == Fresh || s == StaleButUsable
}

// StalenessPolicy classifies an entry by age.
// An entry is fresh below BackgroundRefreshThreshold, usable but due for a silent refresh
// until CacheDuration, and expired from CacheDuration on.
type StalenessPolicy struct {
	CacheDuration              time.Duration
	BackgroundRefreshThreshold time.Duration
}

// NewStalenessPolicy derives the threshold when it is not set and keeps it at or below half the duration.
func NewStalenessPolicy(cacheDuration, threshold time.Duration) StalenessPolicy {
	half := cacheDuration / 2
	if threshold <= 0 {
		threshold = half
		if threshold > MaxBackgroundRefreshThreshold {
			threshold = MaxBackgroundRefreshThreshold
		}
	}
	if threshold > half {
		threshold = half
	}

	return StalenessPolicy{
		CacheDuration:              cacheDuration,
		BackgroundRefreshThreshold: threshold,
	}
}

func (p StalenessPolicy) StateOf(age time.Duration) State {
	switch {
	case age >= p.CacheDuration:
		return Expired
	case age >= p.BackgroundRefreshThreshold:
		return StaleButUsable
	default:
		return Fresh
	}
}
