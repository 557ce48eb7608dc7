package journal

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/alert"
	"github.com/Aditi1968/postpartum-health-analytics/internal/domain/roster"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/sentiment"
	"github.com/Aditi1968/postpartum-health-analytics/internal/platform/synth"
)

func TestPhrasePoolsClassifyAsIntended(t *testing.T) {
	for _, p := range negativePhrases {
		if got := sentiment.Classify(sentiment.Score(p)); got != sentiment.Negative {
			t.Fatalf("negative phrase classified %s: %q", got, p)
		}
	}
	for _, p := range positivePhrases {
		if got := sentiment.Classify(sentiment.Score(p)); got != sentiment.Positive {
			t.Fatalf("positive phrase classified %s: %q", got, p)
		}
	}
	for _, p := range neutralPhrases {
		if got := sentiment.Classify(sentiment.Score(p)); got != sentiment.Neutral {
			t.Fatalf("neutral phrase classified %s: %q", got, p)
		}
	}
}

func TestGenerate_EntryInvariants(t *testing.T) {
	src := synth.New(42)
	users := roster.NewGenerator(src).Users(100)
	entries, _ := NewGenerator(src, 10).Generate(users)

	perUser := make(map[string]int)
	for i, e := range entries {
		if want := fmt.Sprintf("J%d", i); e.ID != want {
			t.Fatalf("entry %d: expected globally sequential id %s, got %s", i, want, e.ID)
		}
		if e.Sentiment < -1 || e.Sentiment > 1 {
			t.Fatalf("entry %s: sentiment out of range: %v", e.ID, e.Sentiment)
		}
		if got := sentiment.Classify(e.Sentiment); got != e.Emotion {
			t.Fatalf("entry %s: emotion %s inconsistent with score %v", e.ID, e.Emotion, e.Sentiment)
		}
		if e.Text == "" {
			t.Fatalf("entry %s: empty text", e.ID)
		}
		perUser[e.UserID]++
	}
	for uid, n := range perUser {
		if n < 5 || n > 10 {
			t.Fatalf("user %s has %d entries, want [5,10]", uid, n)
		}
	}
}

func TestGenerate_SentimentRoundedToThreeDecimals(t *testing.T) {
	src := synth.New(42)
	users := roster.NewGenerator(src).Users(20)
	entries, _ := NewGenerator(src, 10).Generate(users)

	for _, e := range entries {
		s := strconv.FormatFloat(e.Sentiment, 'f', -1, 64)
		if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > 3 {
			t.Fatalf("entry %s: score %s has more than 3 decimals", e.ID, s)
		}
	}
}

func TestEntriesForUser_ForcedNegativeStreaks(t *testing.T) {
	g := NewGenerator(synth.New(42), 10)
	g.pools = [][]string{negativePhrases}

	entries, alerts := g.entriesForUser("U00000", 9)
	if len(entries) != 9 {
		t.Fatalf("expected 9 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Emotion != sentiment.Negative {
			t.Fatalf("entry %s should be Negative, got %s", e.ID, e.Emotion)
		}
	}
	// Streak resets after each alert: entries 3, 6 and 9 complete streaks.
	if len(alerts) != 3 {
		t.Fatalf("expected 3 Mood alerts from 9 negative entries, got %d", len(alerts))
	}
	for _, a := range alerts {
		if a.Type != alert.TypeMood || a.Severity != alert.SeverityMedium {
			t.Fatalf("unexpected alert shape: %+v", a)
		}
		if a.Reason != "3 negative journal entries" {
			t.Fatalf("unexpected reason %q", a.Reason)
		}
		if a.UserID != "U00000" {
			t.Fatalf("alert for wrong user: %s", a.UserID)
		}
	}
}

func TestNegStreak_Observe(t *testing.T) {
	var s negStreak

	// Two negatives, a neutral break, then three negatives: only the
	// uninterrupted run of three fires.
	seq := []sentiment.Emotion{
		sentiment.Negative, sentiment.Negative, sentiment.Neutral,
		sentiment.Negative, sentiment.Negative, sentiment.Negative,
	}
	fired := 0
	for _, e := range seq {
		if s.observe(e) {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("expected exactly 1 firing, got %d", fired)
	}
	if s.run != 0 {
		t.Fatalf("streak must be 0 immediately after firing, got %d", s.run)
	}

	// A positive entry also resets a partial run.
	s.observe(sentiment.Negative)
	s.observe(sentiment.Negative)
	if s.observe(sentiment.Positive) {
		t.Fatal("positive entry must not fire")
	}
	if s.run != 0 {
		t.Fatalf("positive entry must reset the run, got %d", s.run)
	}
}
