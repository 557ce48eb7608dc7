// Package synth provides the shared random source for synthetic data
// generation. A Source wraps a seeded math/rand generator plus a gofakeit
// Faker seeded from the same value, so a single SEED reproduces the whole
// dataset. The source is passed explicitly to every generator stage; there
// is no package-level randomness.
package synth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Source is a deterministic supplier of random values and fake identities.
// It is not safe for concurrent use; the pipeline consumes it sequentially.
type Source struct {
	rng     *rand.Rand
	faker   *gofakeit.Faker
	today   time.Time
	counter uint64
}

// New returns a Source seeded for reproducibility. If seed is 0 a
// time-based seed is chosen.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := time.Now()
	return &Source{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(seed),
		today: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Today returns the generation date, fixed at construction so every stage
// agrees on "now".
func (s *Source) Today() time.Time {
	return s.today
}

// Pick returns a uniformly chosen element of pool.
func (s *Source) Pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// PastDate returns a date between maxDaysBack days ago and today,
// inclusive on both ends, at day resolution.
func (s *Source) PastDate(maxDaysBack int) time.Time {
	return s.today.AddDate(0, 0, -s.rng.Intn(maxDaysBack+1))
}

// HexID returns a prefixed identifier combining random hex with a
// monotonic counter. Unlike raw random suffixes the counter makes ids
// collision-free while staying reproducible under a fixed seed.
func (s *Source) HexID(prefix string) string {
	s.counter++
	return fmt.Sprintf("%s%06x%04x", prefix, s.rng.Intn(1<<24), s.counter)
}

// Name returns a fake full name.
func (s *Source) Name() string {
	return s.faker.Name()
}

// Email returns a fake email address.
func (s *Source) Email() string {
	return s.faker.Email()
}

// Phone returns a fake formatted phone number.
func (s *Source) Phone() string {
	return s.faker.PhoneFormatted()
}
