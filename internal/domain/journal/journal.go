// Package journal generates free-text journal entries, scores them for
// sentiment and derives Mood alerts from runs of negative entries.
package journal

import (
	"fmt"
	"math"
	"time"

	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/alert"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/roster"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/sentiment"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/synth"
)

// Streak and volume constants. An alert fires on the third consecutive
// negative entry and resets the streak, so overlapping windows cannot
// re-trigger.
const (
	minEntries      = 5
	streakTrigger   = 3
	entryWindow     = 30 // days back for entry dates
	moodAlertReason = "3 negative journal entries"
)

// Phrase pools for entry text. The stored emotion always comes from
// scoring the text, not from the pool it was drawn from.
var (
	negativePhrases = []string{
		"Felt completely exhausted and overwhelmed after another sleepless night with the baby.",
		"I was crying most of the evening and felt hopeless about everything.",
		"So anxious and scared today, I could not stop worrying about the baby.",
		"Feeling sad and alone, nobody understands how tired I am.",
		"Another miserable day, everything hurts and I feel like I am failing.",
		"Felt numb and empty today, full of dread about tomorrow.",
		"Angry at myself all morning and guilty about snapping at everyone.",
		"The pain is worse and I am worried it will never get better.",
	}
	positivePhrases = []string{
		"Felt happy and grateful watching the baby smile all afternoon.",
		"A peaceful morning, I finally feel rested and calm.",
		"So proud of myself today, I am getting stronger every week.",
		"Laughed a lot with my sister and felt truly loved.",
		"Feeling hopeful and confident that things are getting better.",
		"What a wonderful visit, the baby was cheerful and I felt blessed.",
		"Slept deeply and woke up energetic and happy for once.",
	}
	neutralPhrases = []string{
		"Went to the market in the morning and cooked lunch for the family.",
		"The baby slept through most of the afternoon while I folded laundry.",
		"Visited the clinic for a routine checkup and came home by bus.",
		"Wrote down the feeding schedule and cleaned the kitchen.",
		"My mother called about the weekend plans and we talked for a while.",
		"Watched the rain from the window while the baby napped.",
		"Spent the day arranging clothes and reading a magazine.",
	}
)

// Entry is one scored journal record. IDs come from a single counter
// spanning all users, so they are unique and monotonic process-wide.
type Entry struct {
	ID        string
	UserID    string
	Date      time.Time
	Text      string
	Sentiment float64
	Emotion   sentiment.Emotion
}

type Generator struct {
	src        *synth.Source
	maxEntries int
	nextID     int
	// pools is the weighted selection set for entry text; duplicated
	// slices raise a pool's draw probability.
	pools [][]string
}

func NewGenerator(src *synth.Source, maxEntries int) *Generator {
	return &Generator{
		src:        src,
		maxEntries: maxEntries,
		pools: [][]string{
			negativePhrases, negativePhrases,
			neutralPhrases, neutralPhrases, neutralPhrases,
			positivePhrases, positivePhrases,
		},
	}
}

// Generate produces entries and derived Mood alerts for every user. Each
// user draws an independent entry count in [5, max]; the negative-streak
// counter is per user and resets both on non-negative entries and when an
// alert fires.
func (g *Generator) Generate(users []roster.User) ([]Entry, []alert.Alert) {
	var entries []Entry
	var alerts []alert.Alert
	for _, u := range users {
		n := g.src.IntBetween(minEntries, g.maxEntries)
		es, as := g.entriesForUser(u.ID, n)
		entries = append(entries, es...)
		alerts = append(alerts, as...)
	}
	return entries, alerts
}

// negStreak counts consecutive negative entries. Firing resets the run,
// so a fourth negative entry starts a fresh streak instead of
// re-triggering.
type negStreak struct {
	run int
}

// observe advances the streak for one entry and reports whether a Mood
// alert fires.
func (s *negStreak) observe(e sentiment.Emotion) bool {
	if e != sentiment.Negative {
		s.run = 0
		return false
	}
	s.run++
	if s.run >= streakTrigger {
		s.run = 0
		return true
	}
	return false
}

func (g *Generator) entriesForUser(userID string, n int) ([]Entry, []alert.Alert) {
	entries := make([]Entry, 0, n)
	var alerts []alert.Alert
	var streak negStreak
	for i := 0; i < n; i++ {
		date := g.src.PastDate(entryWindow)
		text := g.entryText()
		score := round3(sentiment.Score(text))
		emotion := sentiment.Classify(score)

		entries = append(entries, Entry{
			ID:        fmt.Sprintf("J%d", g.nextID),
			UserID:    userID,
			Date:      date,
			Text:      text,
			Sentiment: score,
			Emotion:   emotion,
		})
		g.nextID++

		if streak.observe(emotion) {
			alerts = append(alerts, alert.Alert{
				ID:       g.src.HexID("A"),
				UserID:   userID,
				Type:     alert.TypeMood,
				Reason:   moodAlertReason,
				Severity: alert.SeverityMedium,
				Date:     date,
			})
		}
	}
	return entries, alerts
}

func (g *Generator) entryText() string {
	pool := g.pools[g.src.IntBetween(0, len(g.pools)-1)]
	return g.src.Pick(pool)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
