// Package family generates family members and their access grants. Each
// user independently draws zero to two members; members are never shared
// between users even when names coincide.
package family

import (
	"time"

	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/roster"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/synth"
)

var relationships = []string{"Spouse", "Mother", "Father", "Sister", "Brother"}

var accessTypes = []string{"read-only", "alerts-only"}

// Member is one family contact of a monitored user.
type Member struct {
	ID           string
	Name         string
	Relationship string
	Email        string
	Phone        string
	CreatedAt    time.Time
}

// Access grants a family member visibility into a user's data.
type Access struct {
	UserID     string
	FamilyID   string
	AccessType string
	GrantedAt  time.Time
}

type Generator struct {
	src *synth.Source
}

func NewGenerator(src *synth.Source) *Generator {
	return &Generator{src: src}
}

// Generate returns members and access grants for the roster. Every member
// has exactly one access row; grant dates fall in the trailing six
// months.
func (g *Generator) Generate(users []roster.User) ([]Member, []Access) {
	var members []Member
	var grants []Access
	for _, u := range users {
		count := g.src.IntBetween(0, 2)
		for i := 0; i < count; i++ {
			m := Member{
				ID:           g.src.HexID("FM"),
				Name:         g.src.Name(),
				Relationship: g.src.Pick(relationships),
				Email:        g.src.Email(),
				Phone:        g.src.Phone(),
				CreatedAt:    g.src.PastDate(365),
			}
			members = append(members, m)
			grants = append(grants, Access{
				UserID:     u.ID,
				FamilyID:   m.ID,
				AccessType: g.src.Pick(accessTypes),
				GrantedAt:  g.src.PastDate(182),
			})
		}
	}
	return members, grants
}
