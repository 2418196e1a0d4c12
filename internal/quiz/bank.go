package quiz

import "fmt"

// Track identifies a subject area with its own question bank.
type Track string

const (
	TrackJavaScript Track = "javascript"
	TrackPython     Track = "python"
)

// Bank is an immutable pool of questions for one track.
type Bank struct {
	Track     Track
	Questions []Question
}

// BankSet holds the banks available to the assembler. Banks are injected
// configuration data, never mutated at runtime.
type BankSet map[Track]Bank

// DefaultBanks returns the built-in banks for the two supported tracks.
func DefaultBanks() BankSet {
	return BankSet{
		TrackJavaScript: {Track: TrackJavaScript, Questions: javascriptQuestions},
		TrackPython:     {Track: TrackPython, Questions: pythonQuestions},
	}
}

// Validate checks bank invariants: non-empty pools, unique question IDs, and
// multiple-choice answers that index into their options. A violation is a
// configuration error and should be fatal at startup.
func (s BankSet) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("no question banks configured")
	}
	for track, bank := range s {
		if len(bank.Questions) == 0 {
			return fmt.Errorf("question bank for track %q is empty", track)
		}
		seen := make(map[string]bool, len(bank.Questions))
		for _, q := range bank.Questions {
			if seen[q.ID] {
				return fmt.Errorf("track %q: duplicate question id %q", track, q.ID)
			}
			seen[q.ID] = true
			switch q.Type {
			case TypeMultipleChoice:
				idx, ok := q.CorrectAnswer.(int)
				if !ok || idx < 0 || idx >= len(q.Options) {
					return fmt.Errorf("track %q: question %q has an out-of-range correct answer", track, q.ID)
				}
			case TypeTrueFalse:
				tok, ok := q.CorrectAnswer.(string)
				if !ok || (tok != "true" && tok != "false") {
					return fmt.Errorf("track %q: question %q has an invalid true-false answer", track, q.ID)
				}
			}
		}
	}
	return nil
}
