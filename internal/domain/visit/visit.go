// Package visit generates health-visit records for each user.
package visit

import (
	"time"

	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/roster"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/synth"
)

var reasons = []string{"Follow-up", "Pain", "Fever", "Checkup"}

var locations = []string{"Clinic", "Teleconsultation", "Hospital"}

// attendedPool biases attendance 2:1 toward true.
var attendedPool = []bool{true, true, false}

// Visit is one health-visit record.
type Visit struct {
	ID       string
	UserID   string
	Date     time.Time
	Reason   string
	Location string
	Attended bool
}

type Generator struct {
	src *synth.Source
}

func NewGenerator(src *synth.Source) *Generator {
	return &Generator{src: src}
}

// Generate produces one to three visits per user within the trailing 90
// days.
func (g *Generator) Generate(users []roster.User) []Visit {
	var visits []Visit
	for _, u := range users {
		n := g.src.IntBetween(1, 3)
		for i := 0; i < n; i++ {
			visits = append(visits, Visit{
				ID:       g.src.HexID("V"),
				UserID:   u.ID,
				Date:     g.src.PastDate(90),
				Reason:   g.src.Pick(reasons),
				Location: g.src.Pick(locations),
				Attended: attendedPool[g.src.IntBetween(0, len(attendedPool)-1)],
			})
		}
	}
	return visits
}
