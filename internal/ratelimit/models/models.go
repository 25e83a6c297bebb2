package models

import "time"

// EndpointClass categorizes endpoints for differentiated rate limiting.
type EndpointClass string

const (
	// ClassRead: lookups and calculations (GET, validation endpoints)
	ClassRead EndpointClass = "read"
	// ClassWrite: record creation, closing and number issuance
	ClassWrite EndpointClass = "write"
	// ClassDestructive: record destruction
	ClassDestructive EndpointClass = "destructive"
)

// Limit is a request budget over a sliding window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// DefaultLimits are per-user budgets by endpoint class.
var DefaultLimits = map[EndpointClass]Limit{
	ClassRead:        {Requests: 300, Window: time.Minute},
	ClassWrite:       {Requests: 60, Window: time.Minute},
	ClassDestructive: {Requests: 10, Window: time.Minute},
}

// RateLimitResult represents the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
}

// RateLimitExceededResponse is the 429 body.
type RateLimitExceededResponse struct {
	Error      string    `json:"error"`
	Message    string    `json:"message"`
	QuotaLimit int       `json:"quota_limit"`
	QuotaReset time.Time `json:"quota_reset"`
	RetryAfter int       `json:"retry_after"`
}
