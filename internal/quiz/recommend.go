package quiz

// Tier is the coarse skill classification derived from a score.
type Tier string

const (
	TierBeginner     Tier = "Beginner"
	TierIntermediate Tier = "Intermediate"
	TierAdvanced     Tier = "Advanced"
)

// Recommendation is a learning-path suggestion set for one tier.
type Recommendation struct {
	Tier        Tier
	Title       string
	Description string
	Suggestions []string
}

// The three tables below use different breakpoints on purpose: tier
// placement, message tone, and the server-side fallback suggestions are
// tuned independently.

// Recommend maps a score to a learning path. Boundaries are inclusive on the
// lower bound: 80 is Advanced, 60 is Intermediate.
func Recommend(scorePercent int) Recommendation {
	switch {
	case scorePercent >= 80:
		return Recommendation{
			Tier:        TierAdvanced,
			Title:       "Advanced Track",
			Description: "You're ready for advanced topics and can help mentor others.",
			Suggestions: []string{
				"Join advanced workshops and masterclasses",
				"Participate in hackathons and coding challenges",
				"Consider becoming a community mentor",
				"Contribute to open source projects",
			},
		}
	case scorePercent >= 60:
		return Recommendation{
			Tier:        TierIntermediate,
			Title:       "Intermediate Track",
			Description: "Build on your foundation with practical projects and mentorship.",
			Suggestions: []string{
				"Join intermediate workshops and study groups",
				"Work on guided projects with mentors",
				"Attend mock interview sessions",
				"Practice with coding challenges",
			},
		}
	default:
		return Recommendation{
			Tier:        TierBeginner,
			Title:       "Beginner Track",
			Description: "Start with fundamentals and build a strong foundation.",
			Suggestions: []string{
				"Begin with beginner-friendly workshops",
				"Join study groups for basic concepts",
				"Get paired with an experienced mentor",
				"Focus on one language at a time",
			},
		}
	}
}

// ScoreMessage returns the tone line shown with a score. Independent of the
// tier thresholds.
func ScoreMessage(scorePercent int) string {
	switch {
	case scorePercent >= 90:
		return "Excellent! You have a strong foundation."
	case scorePercent >= 80:
		return "Great job! You have solid programming knowledge."
	case scorePercent >= 70:
		return "Good work! You have a decent understanding."
	case scorePercent >= 60:
		return "Not bad! There's room for improvement."
	default:
		return "Keep learning! Everyone starts somewhere."
	}
}

// FallbackSuggestions is the server-side suggestion table used when a
// submitted result carries no recommendations. It keeps its own 40/70
// breakpoints.
func FallbackSuggestions(scorePercent int) []string {
	switch {
	case scorePercent < 40:
		return []string{
			"Start with JavaScript fundamentals course",
			"Practice basic programming concepts daily",
			"Join beginner study groups",
		}
	case scorePercent < 70:
		return []string{
			"Focus on intermediate JavaScript concepts",
			"Build small projects to practice",
			"Learn about modern ES6+ features",
		}
	default:
		return []string{
			"Explore advanced JavaScript patterns",
			"Learn a modern framework (React, Vue, or Angular)",
			"Consider contributing to open source projects",
		}
	}
}
