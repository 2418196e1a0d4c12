package quiz

// Phase is the lifecycle stage of an assessment session.
type Phase string

const (
	PhaseActive    Phase = "active"
	PhaseSubmitted Phase = "submitted"
)

// NoCountdown marks a session without a time limit; Tick events are no-ops.
const NoCountdown = -1

// EventType enumerates assessment session events.
type EventType string

const (
	// EventAnswer records or overwrites the answer for a question.
	EventAnswer EventType = "answer"
	// EventNext advances to the next question, or submits on the last one.
	// Ignored while the current question is unanswered.
	EventNext EventType = "next"
	// EventPrevious moves back one question without clearing answers.
	EventPrevious EventType = "previous"
	// EventTick is a one-second countdown decrement; hitting zero forces a
	// submit regardless of progress.
	EventTick EventType = "tick"
	// EventSubmit ends the session immediately, freezing answers as-is.
	EventSubmit EventType = "submit"
)

// Event is a single input to the session reducer.
type Event struct {
	Type       EventType
	QuestionID string
	Value      any
}

// State is the assessment session state. It is a value; Reduce returns a new
// state and never mutates its input.
type State struct {
	Phase            Phase
	Index            int
	Answers          AnswerSet
	RemainingSeconds int
}

// NewState returns the starting state for an attempt at the given quiz.
func NewState(q *Quiz) State {
	remaining := NoCountdown
	if q.TimeLimitMin > 0 {
		remaining = q.TimeLimitMin * 60
	}
	return State{
		Phase:            PhaseActive,
		Index:            0,
		Answers:          AnswerSet{},
		RemainingSeconds: remaining,
	}
}

// Reduce applies one event to the session state. Disallowed transitions
// (answering after submit, advancing past an unanswered question) are silent
// no-ops rather than errors; once the state is submitted every further event
// leaves it unchanged, so a manual submit racing a timer-forced one resolves
// to a single submission.
func Reduce(q *Quiz, s State, e Event) State {
	if s.Phase != PhaseActive {
		return s
	}

	switch e.Type {
	case EventAnswer:
		if !hasQuestion(q, e.QuestionID) {
			return s
		}
		answers := make(AnswerSet, len(s.Answers)+1)
		for id, v := range s.Answers {
			answers[id] = v
		}
		answers[e.QuestionID] = e.Value
		s.Answers = answers
		return s

	case EventNext:
		current := q.Questions[s.Index]
		if _, answered := s.Answers[current.ID]; !answered {
			return s
		}
		if s.Index == len(q.Questions)-1 {
			return submit(s)
		}
		s.Index++
		return s

	case EventPrevious:
		if s.Index > 0 {
			s.Index--
		}
		return s

	case EventTick:
		if s.RemainingSeconds == NoCountdown {
			return s
		}
		if s.RemainingSeconds > 0 {
			s.RemainingSeconds--
		}
		if s.RemainingSeconds <= 0 {
			return submit(s)
		}
		return s

	case EventSubmit:
		return submit(s)
	}

	return s
}

func submit(s State) State {
	s.Phase = PhaseSubmitted
	return s
}

func hasQuestion(q *Quiz, id string) bool {
	for _, question := range q.Questions {
		if question.ID == id {
			return true
		}
	}
	return false
}
