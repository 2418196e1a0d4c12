// Package content holds the site's static editorial data: events, blog
// posts, members, testimonials and community stats. The data is immutable
// and served read-only.
package content

// Event is a scheduled community event.
type Event struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Type                string   `json:"type"` // class, workshop, hackathon, game-night, interview, networking
	Date                string   `json:"date"` // RFC 3339
	DurationMin         int      `json:"duration"`
	Location            string   `json:"location"` // online, in-person, hybrid
	MaxParticipants     int      `json:"maxParticipants,omitempty"`
	CurrentParticipants int      `json:"currentParticipants"`
	TechStack           []string `json:"techStack"`
	Difficulty          string   `json:"difficulty"`
	Instructor          string   `json:"instructor,omitempty"`
	RegistrationURL     string   `json:"registrationUrl"`
	Featured            bool     `json:"featured"`
}

// BlogPost is one article's metadata and summary. Bodies live in the CMS;
// the API serves listings and previews.
type BlogPost struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Excerpt      string   `json:"excerpt"`
	AuthorName   string   `json:"authorName"`
	AuthorAvatar string   `json:"authorAvatar"`
	PublishDate  string   `json:"publishDate"`
	LastModified string   `json:"lastModified"`
	Tags         []string `json:"tags"`
	Category     string   `json:"category"` // tutorial, career, news, technology, community
	ReadTimeMin  int      `json:"readTime"`
	Featured     bool     `json:"featured"`
	Image        string   `json:"image"`
}

// Member is a community member profile.
type Member struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"` // mentor or member
	Avatar     string   `json:"avatar"`
	Bio        string   `json:"bio"`
	TechStack  []string `json:"techStack"`
	Experience string   `json:"experience"`
	JoinDate   string   `json:"joinDate"`
	GitHub     string   `json:"github,omitempty"`
	LinkedIn   string   `json:"linkedin,omitempty"`
}

// Testimonial is a member success story.
type Testimonial struct {
	ID           string `json:"id"`
	MemberID     string `json:"memberId"`
	MemberName   string `json:"memberName"`
	MemberAvatar string `json:"memberAvatar"`
	MemberRole   string `json:"memberRole"`
	Content      string `json:"content"`
	Rating       int    `json:"rating"`
	Category     string `json:"category"` // job-placement, skill-improvement, community
	Date         string `json:"date"`
	Featured     bool   `json:"featured"`
}

// CommunityStats are the headline numbers shown on the landing page.
type CommunityStats struct {
	TotalMembers    int `json:"totalMembers"`
	ActiveMembers   int `json:"activeMembers"`
	EventsHosted    int `json:"eventsHosted"`
	SuccessStories  int `json:"successStories"`
	MentorshipHours int `json:"mentorshipHours"`
	JobPlacements   int `json:"jobPlacements"`
}

// Events returns all events in the editorial order.
func Events() []Event { return events }

// FeaturedEvents returns the events flagged for the landing page.
func FeaturedEvents() []Event {
	var out []Event
	for _, e := range events {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}

// EventsByType filters events by type; "all" (or empty) returns everything.
func EventsByType(eventType string) []Event {
	if eventType == "" || eventType == "all" {
		return events
	}
	var out []Event
	for _, e := range events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Posts returns all blog posts.
func Posts() []BlogPost { return blogPosts }

// FeaturedPosts returns posts flagged for the landing page.
func FeaturedPosts() []BlogPost {
	var out []BlogPost
	for _, p := range blogPosts {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// PostBySlug finds one post; the second return is false when the slug is
// unknown.
func PostBySlug(slug string) (BlogPost, bool) {
	for _, p := range blogPosts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// PostsByCategory filters posts by category; "all" (or empty) returns
// everything.
func PostsByCategory(category string) []BlogPost {
	if category == "" || category == "all" {
		return blogPosts
	}
	var out []BlogPost
	for _, p := range blogPosts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Members returns all member profiles.
func Members() []Member { return members }

// Mentors returns the members with the mentor role.
func Mentors() []Member {
	var out []Member
	for _, m := range members {
		if m.Role == "mentor" {
			out = append(out, m)
		}
	}
	return out
}

// Testimonials returns all testimonials.
func Testimonials() []Testimonial { return testimonials }

// FeaturedTestimonials returns the testimonials flagged for the landing
// page.
func FeaturedTestimonials() []Testimonial {
	var out []Testimonial
	for _, t := range testimonials {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}

// Stats returns the community headline numbers.
func Stats() CommunityStats { return communityStats }
