package quiz

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// QuestionsPerQuiz is the nominal quiz length; under-filled difficulty
	// buckets can yield fewer.
	QuestionsPerQuiz = 8
	// TimeLimitMinutes is the assessment countdown.
	TimeLimitMinutes = 20
	// PassingScore classifies an attempt as passed for messaging only; it
	// never gates registration.
	PassingScore = 60
)

// trackMeta holds the static per-track quiz metadata.
var trackMeta = map[Track]struct {
	id          string
	title       string
	description string
}{
	TrackJavaScript: {
		id:          "javascript-assessment",
		title:       "JavaScript Skills Assessment",
		description: "Test your JavaScript knowledge with practical coding questions and scenarios.",
	},
	TrackPython: {
		id:          "python-assessment",
		title:       "Python Skills Assessment",
		description: "Evaluate your Python programming skills with hands-on coding challenges.",
	},
}

// Assembler builds runnable quizzes from a bank set. The random source is
// injected so tests can make sampling deterministic.
type Assembler struct {
	banks BankSet
	rng   *rand.Rand
}

// NewAssembler creates an assembler over the given banks with a time-seeded
// random source.
func NewAssembler(banks BankSet) *Assembler {
	return NewAssemblerWithRand(banks, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewAssemblerWithRand creates an assembler using the provided random source.
func NewAssemblerWithRand(banks BankSet, rng *rand.Rand) *Assembler {
	return &Assembler{banks: banks, rng: rng}
}

// Tracks lists the tracks this assembler can build quizzes for.
func (a *Assembler) Tracks() []Track {
	tracks := make([]Track, 0, len(a.banks))
	for _, t := range []Track{TrackJavaScript, TrackPython} {
		if _, ok := a.banks[t]; ok {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// BuildQuiz samples a fresh quiz for the track. Every call draws a new
// question selection, so a retake gets a different quiz.
func (a *Assembler) BuildQuiz(track Track) (*Quiz, error) {
	bank, ok := a.banks[track]
	if !ok {
		return nil, fmt.Errorf("unknown track %q", track)
	}
	meta, ok := trackMeta[track]
	if !ok {
		return nil, fmt.Errorf("no quiz metadata for track %q", track)
	}
	return &Quiz{
		ID:           meta.id,
		Title:        meta.title,
		Description:  meta.description,
		Questions:    Sample(bank.Questions, QuestionsPerQuiz, DefaultRatios, a.rng),
		TimeLimitMin: TimeLimitMinutes,
		PassingScore: PassingScore,
	}, nil
}
