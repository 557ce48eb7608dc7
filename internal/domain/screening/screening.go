// Package screening generates weekly PHQ-9 depression-screening records
// and derives PHQ alerts from the total score.
package screening

import (
	"fmt"
	"time"

	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/alert"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/roster"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/synth"
)

// Items is the number of PHQ-9 questionnaire items; each scores 0-3.
const Items = 9

// Alert thresholds on the total score.
const (
	alertFloor   = 15 // total >= 15 emits an alert
	highSeverity = 20 // total > 20 escalates to High
)

// Score is one weekly PHQ-9 record.
type Score struct {
	ID       string
	UserID   string
	Week     int
	Answers  [Items]int
	Total    int
	Severity string
	Date     time.Time
}

// Severity maps a PHQ-9 total onto its clinical band (inclusive upper
// bounds).
func Severity(total int) string {
	switch {
	case total <= 4:
		return "None"
	case total <= 9:
		return "Mild"
	case total <= 14:
		return "Moderate"
	case total <= 19:
		return "Moderately Severe"
	default:
		return "Severe"
	}
}

// AlertSeverity reports whether a total warrants a PHQ alert and at what
// severity: High strictly above 20, Medium from 15.
func AlertSeverity(total int) (string, bool) {
	if total < alertFloor {
		return "", false
	}
	if total > highSeverity {
		return alert.SeverityHigh, true
	}
	return alert.SeverityMedium, true
}

type Generator struct {
	src   *synth.Source
	weeks int
}

func NewGenerator(src *synth.Source, weeks int) *Generator {
	return &Generator{src: src, weeks: weeks}
}

// Generate produces one record per user per week. The last week is dated
// today; each earlier week is seven days before the next.
func (g *Generator) Generate(users []roster.User) ([]Score, []alert.Alert) {
	var scores []Score
	var alerts []alert.Alert
	for _, u := range users {
		for week := 1; week <= g.weeks; week++ {
			s := g.scoreFor(u.ID, week)
			scores = append(scores, s)

			if severity, ok := AlertSeverity(s.Total); ok {
				alerts = append(alerts, alert.Alert{
					ID:       g.src.HexID("A"),
					UserID:   u.ID,
					Type:     alert.TypePHQ,
					Reason:   fmt.Sprintf("High PHQ Score: %d", s.Total),
					Severity: severity,
					Date:     s.Date,
				})
			}
		}
	}
	return scores, alerts
}

func (g *Generator) scoreFor(userID string, week int) Score {
	s := Score{
		ID:     g.src.HexID("SC"),
		UserID: userID,
		Week:   week,
		Date:   g.src.Today().AddDate(0, 0, -(g.weeks-week)*7),
	}
	for i := range s.Answers {
		s.Answers[i] = g.src.IntBetween(0, 3)
		s.Total += s.Answers[i]
	}
	s.Severity = Severity(s.Total)
	return s
}
