package quiz

import (
	"math"
	"math/rand"
)

// Ratios configures the difficulty mix of a sampled quiz. Fractions should
// sum to 1.
type Ratios struct {
	Easy   float64
	Medium float64
	Hard   float64
}

// DefaultRatios is the 50/30/20 mix used by the assessments.
var DefaultRatios = Ratios{Easy: 0.5, Medium: 0.3, Hard: 0.2}

// BucketTargets computes per-difficulty draw counts for a quiz of the given
// size. Easy and medium round up but are capped by what is left of count;
// hard takes the remainder, so the three targets always sum to count
// exactly. For count=8 with the default mix that gives 4/3/1.
func BucketTargets(count int, ratios Ratios) (easy, medium, hard int) {
	easy = int(math.Ceil(float64(count) * ratios.Easy))
	if easy > count {
		easy = count
	}
	medium = int(math.Ceil(float64(count) * ratios.Medium))
	if medium > count-easy {
		medium = count - easy
	}
	hard = count - easy - medium
	return easy, medium, hard
}

// Sample draws a difficulty-balanced random selection from the pool. Each
// bucket is drawn uniformly without replacement; a bucket smaller than its
// target contributes everything it has, silently under-filling the quiz.
// The combined selection is shuffled once more so difficulties are not
// grouped in presentation order.
func Sample(pool []Question, count int, ratios Ratios, rng *rand.Rand) []Question {
	var easy, medium, hard []Question
	for _, q := range pool {
		switch q.Difficulty {
		case DifficultyEasy:
			easy = append(easy, q)
		case DifficultyMedium:
			medium = append(medium, q)
		case DifficultyHard:
			hard = append(hard, q)
		}
	}

	easyCount, mediumCount, hardCount := BucketTargets(count, ratios)

	selected := append([]Question{}, drawRandom(easy, easyCount, rng)...)
	selected = append(selected, drawRandom(medium, mediumCount, rng)...)
	selected = append(selected, drawRandom(hard, hardCount, rng)...)

	shuffle(selected, rng)
	return selected
}

// drawRandom returns up to count questions drawn uniformly from the pool
// without replacement.
func drawRandom(pool []Question, count int, rng *rand.Rand) []Question {
	shuffled := make([]Question, len(pool))
	copy(shuffled, pool)
	shuffle(shuffled, rng)
	if count > len(shuffled) {
		count = len(shuffled)
	}
	if count < 0 {
		count = 0
	}
	return shuffled[:count]
}

// shuffle is an in-place Fisher-Yates shuffle.
func shuffle(qs []Question, rng *rand.Rand) {
	for i := len(qs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}
