// Package roster generates the user and caregiver rosters plus the
// user-to-caregiver assignment map that the rest of the pipeline fans out
// from.
package roster

import (
	"fmt"
	"time"

	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/synth"
)

var regions = []string{"Bangalore", "Tumkur", "Mysore", "Chennai", "Hyderabad", "Pune"}

var languages = []string{"Kannada", "Hindi", "Tamil", "Telugu", "Marathi", "English"}

// User is one monitored mother in the roster.
type User struct {
	ID        string
	Name      string
	Age       int
	Region    string
	Language  string
	CreatedAt time.Time
}

// Caregiver is a community health worker. AssignedCount is part of the
// schema but stays zero: assignment never updates it. Known inert field,
// kept for schema compatibility.
type Caregiver struct {
	ID            string
	Name          string
	ContactEmail  string
	PhoneNumber   string
	Region        string
	AssignedCount int
	CreatedAt     time.Time
}

// Assignment maps a user to their caregiver, exactly one row per user.
type Assignment struct {
	UserID      string
	CaregiverID string
}

// Generator fabricates roster records from a shared random source.
type Generator struct {
	src *synth.Source
}

func NewGenerator(src *synth.Source) *Generator {
	return &Generator{src: src}
}

// Users returns n users with zero-padded sequential ids, ages in [20,42]
// and creation dates within the trailing year.
func (g *Generator) Users(n int) []User {
	users := make([]User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, User{
			ID:        fmt.Sprintf("U%05d", i),
			Name:      g.src.Name(),
			Age:       g.src.IntBetween(20, 42),
			Region:    g.src.Pick(regions),
			Language:  g.src.Pick(languages),
			CreatedAt: g.src.PastDate(365),
		})
	}
	return users
}

// Caregivers returns n caregivers with zero-padded sequential ids.
func (g *Generator) Caregivers(n int) []Caregiver {
	caregivers := make([]Caregiver, 0, n)
	for i := 0; i < n; i++ {
		caregivers = append(caregivers, Caregiver{
			ID:           fmt.Sprintf("CG%04d", i),
			Name:         g.src.Name(),
			ContactEmail: g.src.Email(),
			PhoneNumber:  g.src.Phone(),
			Region:       g.src.Pick(regions),
			CreatedAt:    g.src.PastDate(365),
		})
	}
	return caregivers
}

// Assign draws one caregiver per user, uniformly with replacement. There
// is no load balancing; AssignedCount stays untouched.
func (g *Generator) Assign(users []User, caregivers []Caregiver) []Assignment {
	assignments := make([]Assignment, 0, len(users))
	for _, u := range users {
		cg := caregivers[g.src.IntBetween(0, len(caregivers)-1)]
		assignments = append(assignments, Assignment{UserID: u.ID, CaregiverID: cg.ID})
	}
	return assignments
}
