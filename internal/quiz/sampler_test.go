package quiz

import (
	"math/rand"
	"testing"
)

func testPool(easy, medium, hard int) []Question {
	var pool []Question
	add := func(prefix string, n int, d Difficulty) {
		for i := 0; i < n; i++ {
			pool = append(pool, Question{
				ID:            prefix + string(rune('a'+i)),
				Prompt:        "placeholder",
				Type:          TypeMultipleChoice,
				Options:       []string{"x", "y"},
				CorrectAnswer: 0,
				Difficulty:    d,
				Topic:         "general",
			})
		}
	}
	add("e-", easy, DifficultyEasy)
	add("m-", medium, DifficultyMedium)
	add("h-", hard, DifficultyHard)
	return pool
}

func TestBucketTargetsSumToCount(t *testing.T) {
	for count := 1; count <= 24; count++ {
		easy, medium, hard := BucketTargets(count, DefaultRatios)
		if easy+medium+hard != count {
			t.Errorf("count=%d: targets %d/%d/%d sum to %d", count, easy, medium, hard, easy+medium+hard)
		}
	}
}

func TestBucketTargetsReferenceMix(t *testing.T) {
	easy, medium, hard := BucketTargets(8, DefaultRatios)
	if easy != 4 || medium != 3 || hard != 1 {
		t.Fatalf("expected 4/3/1 for count=8, got %d/%d/%d", easy, medium, hard)
	}
}

func TestBucketTargetsSmallCounts(t *testing.T) {
	// The rounded-up easy and medium targets must never overrun count; the
	// remainder absorbs whatever is left.
	tests := []struct {
		count              int
		easy, medium, hard int
	}{
		{1, 1, 0, 0},
		{2, 1, 1, 0},
		{3, 2, 1, 0},
		{4, 2, 2, 0},
	}
	for _, tt := range tests {
		easy, medium, hard := BucketTargets(tt.count, DefaultRatios)
		if easy != tt.easy || medium != tt.medium || hard != tt.hard {
			t.Errorf("count=%d: got %d/%d/%d, want %d/%d/%d",
				tt.count, easy, medium, hard, tt.easy, tt.medium, tt.hard)
		}
	}
}

func TestSampleSingleQuestion(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	pool := testPool(3, 3, 3)
	for trial := 0; trial < 20; trial++ {
		if got := Sample(pool, 1, DefaultRatios, rng); len(got) != 1 {
			t.Fatalf("trial %d: Sample(count=1) returned %d questions", trial, len(got))
		}
	}
}

func TestSampleReturnsExactCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := testPool(10, 10, 10)
	for trial := 0; trial < 50; trial++ {
		got := Sample(pool, 8, DefaultRatios, rng)
		if len(got) != 8 {
			t.Fatalf("trial %d: expected 8 questions, got %d", trial, len(got))
		}
	}
}

func TestSampleHasNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pool := testPool(8, 6, 4)
	for trial := 0; trial < 100; trial++ {
		got := Sample(pool, 8, DefaultRatios, rng)
		seen := make(map[string]bool, len(got))
		for _, q := range got {
			if seen[q.ID] {
				t.Fatalf("trial %d: duplicate question id %q", trial, q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSampleRespectsDifficultyMix(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	got := Sample(testPool(10, 10, 10), 8, DefaultRatios, rng)

	counts := map[Difficulty]int{}
	for _, q := range got {
		counts[q.Difficulty]++
	}
	if counts[DifficultyEasy] != 4 || counts[DifficultyMedium] != 3 || counts[DifficultyHard] != 1 {
		t.Fatalf("expected 4 easy / 3 medium / 1 hard, got %v", counts)
	}
}

func TestSampleUnderfilledBucketShrinksQuiz(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	// No hard questions at all: the hard slot goes unfilled.
	got := Sample(testPool(10, 10, 0), 8, DefaultRatios, rng)
	if len(got) != 7 {
		t.Fatalf("expected 7 questions with an empty hard bucket, got %d", len(got))
	}
	for _, q := range got {
		if q.Difficulty == DifficultyHard {
			t.Fatalf("unexpected hard question %q", q.ID)
		}
	}
}

func TestSampleDrawsVary(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pool := testPool(10, 10, 10)

	ids := func(qs []Question) string {
		var s string
		for _, q := range qs {
			s += q.ID + ","
		}
		return s
	}

	first := ids(Sample(pool, 8, DefaultRatios, rng))
	for trial := 0; trial < 20; trial++ {
		if ids(Sample(pool, 8, DefaultRatios, rng)) != first {
			return
		}
	}
	t.Fatal("20 successive samples were identical")
}
