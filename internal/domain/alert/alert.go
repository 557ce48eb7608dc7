// Package alert defines the alert record shared by the journal and
// screening derivations and the merge that unions them.
package alert

import "time"

// Alert types.
const (
	TypeMood = "Mood"
	TypePHQ  = "PHQ"
)

// Alert severities.
const (
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Alert is a derived signal for caregiver follow-up.
type Alert struct {
	ID       string
	UserID   string
	Type     string
	Reason   string
	Severity string
	Date     time.Time
}

// Merge concatenates alert groups in order and removes exact full-row
// duplicates, keeping the first occurrence.
func Merge(groups ...[]Alert) []Alert {
	var merged []Alert
	seen := make(map[Alert]bool)
	for _, group := range groups {
		for _, a := range group {
			if seen[a] {
				continue
			}
			seen[a] = true
			merged = append(merged, a)
		}
	}
	return merged
}
