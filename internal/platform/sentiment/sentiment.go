// Package sentiment scores free text for polarity and maps polarity onto
// the emotion labels used by the journal tables. Scoring is a small
// valence lexicon with single-token negation, which keeps the generator
// self-contained and reproducible.
package sentiment

import (
	"strings"
	"unicode"
)

// Emotion is the bucketed classification of a polarity score.
type Emotion string

const (
	Negative Emotion = "Negative"
	Neutral  Emotion = "Neutral"
	Positive Emotion = "Positive"
)

// Classification thresholds. Scores strictly below negativeBelow are
// Negative, strictly above positiveAbove are Positive, everything else
// Neutral.
const (
	negativeBelow = -0.1
	positiveAbove = 0.1
)

// lexicon maps sentiment-bearing tokens to valence in [-1, 1].
var lexicon = map[string]float64{
	// negative
	"exhausted":   -0.8,
	"overwhelmed": -0.7,
	"anxious":     -0.7,
	"hopeless":    -0.9,
	"crying":      -0.6,
	"alone":       -0.5,
	"scared":      -0.7,
	"tired":       -0.4,
	"sad":         -0.6,
	"worthless":   -0.9,
	"guilty":      -0.6,
	"pain":        -0.6,
	"hurts":       -0.6,
	"sleepless":   -0.5,
	"worried":     -0.5,
	"worrying":    -0.5,
	"numb":        -0.5,
	"dread":       -0.7,
	"failing":     -0.7,
	"angry":       -0.6,
	"miserable":   -0.8,
	"empty":       -0.5,

	// positive
	"happy":     0.8,
	"grateful":  0.7,
	"joyful":    0.9,
	"peaceful":  0.6,
	"proud":     0.7,
	"hopeful":   0.6,
	"smile":     0.6,
	"smiled":    0.6,
	"laughed":   0.7,
	"calm":      0.5,
	"rested":    0.5,
	"loved":     0.8,
	"better":    0.4,
	"stronger":  0.5,
	"blessed":   0.7,
	"cheerful":  0.7,
	"energetic": 0.6,
	"confident": 0.6,
	"wonderful": 0.8,
}

var negators = map[string]bool{
	"not":    true,
	"no":     true,
	"never":  true,
	"cannot": true,
}

// Score returns the polarity of text in [-1, 1]: the mean valence of
// lexicon tokens, with a token directly preceded by a negator
// contributing its flipped valence. Text with no lexicon hits scores 0.
func Score(text string) float64 {
	tokens := tokenize(text)
	var sum float64
	hits := 0
	negate := false
	for _, tok := range tokens {
		if negators[tok] {
			negate = true
			continue
		}
		if v, ok := lexicon[tok]; ok {
			if negate {
				v = -v
			}
			sum += v
			hits++
		}
		negate = false
	}
	if hits == 0 {
		return 0
	}
	score := sum / float64(hits)
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

// Classify buckets a polarity score into an Emotion.
func Classify(score float64) Emotion {
	switch {
	case score < negativeBelow:
		return Negative
	case score > positiveAbove:
		return Positive
	default:
		return Neutral
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
