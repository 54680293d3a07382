package domain

import "time"

// DefaultDisableMessage is reported when the API response carries no message.
const DefaultDisableMessage = "Account disable operation initiated"

// UnknownAccountID is echoed by a halt when the job had no account id.
const UnknownAccountID = "unknown"

// TimestampFormat renders timestamps as ISO-8601 UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// FormatTimestamp formats t in UTC using TimestampFormat.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// DisableResult is returned when the API accepted the disable request.
type DisableResult struct {
	AccountID  string `json:"accountId"`
	Disabled   bool   `json:"disabled"`
	TaskID     string `json:"taskId,omitempty"`
	Message    string `json:"message"`
	DisabledAt string `json:"disabledAt"`
	Address    string `json:"address"`
}

// HaltResult acknowledges that a job was halted by the caller.
type HaltResult struct {
	AccountID        string `json:"accountId"`
	Reason           string `json:"reason"`
	HaltedAt         string `json:"haltedAt"`
	CleanupCompleted bool   `json:"cleanupCompleted"`
}

// NewHaltResult builds a HaltResult, substituting UnknownAccountID for an
// empty account id.
func NewHaltResult(accountID, reason string, at time.Time) HaltResult {
	if accountID == "" {
		accountID = UnknownAccountID
	}
	return HaltResult{
		AccountID:        accountID,
		Reason:           reason,
		HaltedAt:         FormatTimestamp(at),
		CleanupCompleted: true,
	}
}
