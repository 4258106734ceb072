// Package entity holds the persisted domain records.
package entity

import "time"

// LookupOutcome classifies a resolution attempt.
type LookupOutcome string

// Lookup outcomes.
const (
	OutcomeResolved LookupOutcome = "resolved"
	OutcomeFallback LookupOutcome = "fallback"
	OutcomeNotFound LookupOutcome = "not_found"
)

// LookupStat is a per-token hit count for one outcome.
type LookupStat struct {
	Token      string        `json:"token"`
	Outcome    LookupOutcome `json:"outcome"`
	Count      int64         `json:"count"`
	LastSeenAt time.Time     `json:"last_seen_at"`
}
