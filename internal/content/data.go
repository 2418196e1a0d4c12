package content

var events = []Event{
	{
		ID:                  "1",
		Title:               "JavaScript Fundamentals Workshop",
		Description:         "Master the basics of JavaScript including variables, functions, objects, and DOM manipulation. Perfect for beginners starting their coding journey.",
		Type:                "class",
		Date:                "2024-03-15T18:00:00Z",
		DurationMin:         120,
		Location:            "online",
		MaxParticipants:     50,
		CurrentParticipants: 32,
		TechStack:           []string{"JavaScript", "HTML", "CSS"},
		Difficulty:          "beginner",
		Instructor:          "Mike Wilson",
		RegistrationURL:     "#",
		Featured:            true,
	},
	{
		ID:                  "2",
		Title:               "Python Data Science Bootcamp",
		Description:         "Learn data analysis and visualization with Python, pandas, and matplotlib. Build real projects with actual datasets.",
		Type:                "workshop",
		Date:                "2024-03-18T19:00:00Z",
		DurationMin:         180,
		Location:            "online",
		MaxParticipants:     30,
		CurrentParticipants: 28,
		TechStack:           []string{"Python", "Pandas", "Matplotlib", "Jupyter"},
		Difficulty:          "intermediate",
		Instructor:          "Jane Smith",
		RegistrationURL:     "#",
		Featured:            true,
	},
	{
		ID:                  "3",
		Title:               "Spring Hackathon 2024",
		Description:         "Join our 48-hour hackathon! Build innovative projects, collaborate with teammates, and compete for amazing prizes.",
		Type:                "hackathon",
		Date:                "2024-03-22T09:00:00Z",
		DurationMin:         2880,
		Location:            "hybrid",
		MaxParticipants:     100,
		CurrentParticipants: 67,
		TechStack:           []string{"JavaScript", "Python", "React", "Node.js"},
		Difficulty:          "all-levels",
		RegistrationURL:     "#",
		Featured:            true,
	},
	{
		ID:                  "4",
		Title:               "Friday Game Night",
		Description:         "Unwind with fellow developers! Play coding games, trivia, and connect with the community in a relaxed setting.",
		Type:                "game-night",
		Date:                "2024-03-08T20:00:00Z",
		DurationMin:         120,
		Location:            "online",
		CurrentParticipants: 45,
		TechStack:           []string{},
		Difficulty:          "all-levels",
		RegistrationURL:     "#",
	},
	{
		ID:                  "5",
		Title:               "Mock Technical Interview Session",
		Description:         "Practice technical interviews with experienced developers. Get feedback on your coding skills and interview techniques.",
		Type:                "interview",
		Date:                "2024-03-12T17:00:00Z",
		DurationMin:         90,
		Location:            "online",
		MaxParticipants:     20,
		CurrentParticipants: 18,
		TechStack:           []string{"JavaScript", "Python", "Algorithms"},
		Difficulty:          "intermediate",
		Instructor:          "John Doe",
		RegistrationURL:     "#",
	},
	{
		ID:                  "6",
		Title:               "React Advanced Patterns",
		Description:         "Deep dive into advanced React patterns including custom hooks, context patterns, and performance optimization.",
		Type:                "class",
		Date:                "2024-03-20T18:30:00Z",
		DurationMin:         150,
		Location:            "online",
		MaxParticipants:     25,
		CurrentParticipants: 22,
		TechStack:           []string{"React", "JavaScript", "TypeScript"},
		Difficulty:          "advanced",
		Instructor:          "Mike Wilson",
		RegistrationURL:     "#",
	},
	{
		ID:                  "7",
		Title:               "Career Development Workshop",
		Description:         "Learn how to build an impressive portfolio, write compelling resumes, and ace technical interviews.",
		Type:                "workshop",
		Date:                "2024-03-25T19:00:00Z",
		DurationMin:         120,
		Location:            "online",
		MaxParticipants:     40,
		CurrentParticipants: 15,
		TechStack:           []string{},
		Difficulty:          "all-levels",
		Instructor:          "Jane Smith",
		RegistrationURL:     "#",
	},
	{
		ID:                  "8",
		Title:               "Open Source Contribution Workshop",
		Description:         "Learn how to contribute to open source projects. We'll walk through finding projects, making PRs, and building your reputation.",
		Type:                "workshop",
		Date:                "2024-03-28T18:00:00Z",
		DurationMin:         135,
		Location:            "online",
		MaxParticipants:     35,
		CurrentParticipants: 12,
		TechStack:           []string{"Git", "GitHub", "JavaScript", "Python"},
		Difficulty:          "intermediate",
		Instructor:          "John Doe",
		RegistrationURL:     "#",
	},
	{
		ID:                  "9",
		Title:               "Monthly Networking Mixer",
		Description:         "Connect with fellow developers, share experiences, and build professional relationships in our monthly networking event.",
		Type:                "networking",
		Date:                "2024-03-30T17:00:00Z",
		DurationMin:         90,
		Location:            "online",
		CurrentParticipants: 38,
		TechStack:           []string{},
		Difficulty:          "all-levels",
		RegistrationURL:     "#",
	},
}

var blogPosts = []BlogPost{
	{
		ID:           "1",
		Title:        "JavaScript ES6+ Features Every Developer Should Know",
		Slug:         "javascript-es6-features-guide",
		Excerpt:      "Master modern JavaScript with this comprehensive guide to ES6+ features including arrow functions, destructuring, async/await, and more.",
		AuthorName:   "Mike Wilson",
		AuthorAvatar: "/avatars/mike-wilson.jpg",
		PublishDate:  "2024-02-15",
		LastModified: "2024-02-15",
		Tags:         []string{"JavaScript", "ES6", "Modern JS", "Tutorial"},
		Category:     "tutorial",
		ReadTimeMin:  8,
		Featured:     true,
		Image:        "/blog/javascript-es6.jpg",
	},
	{
		ID:           "2",
		Title:        "Python Data Analysis with Pandas: A Beginner's Guide",
		Slug:         "python-pandas-data-analysis-guide",
		Excerpt:      "Learn how to analyze data effectively using Python and Pandas. This beginner-friendly guide covers data loading, cleaning, and basic analysis.",
		AuthorName:   "Jane Smith",
		AuthorAvatar: "/avatars/jane-smith.jpg",
		PublishDate:  "2024-02-10",
		LastModified: "2024-02-10",
		Tags:         []string{"Python", "Pandas", "Data Analysis", "Tutorial"},
		Category:     "tutorial",
		ReadTimeMin:  12,
		Featured:     true,
		Image:        "/blog/python-pandas.jpg",
	},
	{
		ID:           "3",
		Title:        "How to Land Your First Developer Job in 2024",
		Slug:         "land-first-developer-job-2024",
		Excerpt:      "A comprehensive guide to breaking into the tech industry, from building your portfolio to acing technical interviews.",
		AuthorName:   "John Doe",
		AuthorAvatar: "/avatars/john-doe.jpg",
		PublishDate:  "2024-02-05",
		LastModified: "2024-02-05",
		Tags:         []string{"Career", "Job Search", "Interview Tips", "Portfolio"},
		Category:     "career",
		ReadTimeMin:  10,
		Featured:     true,
		Image:        "/blog/first-developer-job.jpg",
	},
	{
		ID:           "4",
		Title:        "React Hooks: useState and useEffect Explained",
		Slug:         "react-hooks-usestate-useeffect-explained",
		Excerpt:      "Master the two most important React hooks with practical examples and best practices for modern React development.",
		AuthorName:   "Mike Wilson",
		AuthorAvatar: "/avatars/mike-wilson.jpg",
		PublishDate:  "2024-01-30",
		LastModified: "2024-01-30",
		Tags:         []string{"React", "Hooks", "JavaScript", "Frontend"},
		Category:     "tutorial",
		ReadTimeMin:  6,
		Image:        "/blog/react-hooks.jpg",
	},
	{
		ID:           "5",
		Title:        "Building RESTful APIs with Node.js and Express",
		Slug:         "building-restful-apis-nodejs-express",
		Excerpt:      "Learn how to create robust RESTful APIs using Node.js and Express, including routing, middleware, and error handling.",
		AuthorName:   "John Doe",
		AuthorAvatar: "/avatars/john-doe.jpg",
		PublishDate:  "2024-01-25",
		LastModified: "2024-01-25",
		Tags:         []string{"Node.js", "Express", "API", "Backend"},
		Category:     "tutorial",
		ReadTimeMin:  15,
		Image:        "/blog/nodejs-express-api.jpg",
	},
	{
		ID:           "6",
		Title:        "Coders Den Community Update: February 2024",
		Slug:         "coders-den-community-update-february-2024",
		Excerpt:      "Exciting updates from our community including new features, upcoming events, and member spotlights.",
		AuthorName:   "Coders Den Team",
		AuthorAvatar: "/avatars/coders-den-team.jpg",
		PublishDate:  "2024-02-01",
		LastModified: "2024-02-01",
		Tags:         []string{"Community", "Updates", "News"},
		Category:     "news",
		ReadTimeMin:  3,
		Image:        "/blog/community-update-feb-2024.jpg",
	},
}

var members = []Member{
	{
		ID:         "john-doe",
		Name:       "John Doe",
		Role:       "mentor",
		Avatar:     "/avatars/john-doe.jpg",
		Bio:        "Senior Full Stack Developer with 8+ years experience. Passionate about mentoring and helping developers grow their careers.",
		TechStack:  []string{"JavaScript", "React", "Node.js", "Python", "AWS"},
		Experience: "advanced",
		JoinDate:   "2023-01-15",
		GitHub:     "https://github.com/johndoe",
		LinkedIn:   "https://linkedin.com/in/johndoe",
	},
	{
		ID:         "jane-smith",
		Name:       "Jane Smith",
		Role:       "mentor",
		Avatar:     "/avatars/jane-smith.jpg",
		Bio:        "Python specialist and data science enthusiast. Love teaching complex concepts in simple ways.",
		TechStack:  []string{"Python", "Django", "Data Science", "Machine Learning", "PostgreSQL"},
		Experience: "advanced",
		JoinDate:   "2023-02-20",
		GitHub:     "https://github.com/janesmith",
		LinkedIn:   "https://linkedin.com/in/janesmith",
	},
	{
		ID:         "mike-wilson",
		Name:       "Mike Wilson",
		Role:       "mentor",
		Avatar:     "/avatars/mike-wilson.jpg",
		Bio:        "Frontend architect and UI/UX enthusiast. Helping developers create beautiful and functional web applications.",
		TechStack:  []string{"JavaScript", "TypeScript", "React", "Vue.js", "CSS"},
		Experience: "advanced",
		JoinDate:   "2023-03-10",
		GitHub:     "https://github.com/mikewilson",
		LinkedIn:   "https://linkedin.com/in/mikewilson",
	},
	{
		ID:         "sarah-chen",
		Name:       "Sarah Chen",
		Role:       "member",
		Avatar:     "/avatars/sarah-chen.jpg",
		Bio:        "Recently transitioned to tech from marketing. Excited about web development and building user-friendly applications.",
		TechStack:  []string{"JavaScript", "React", "HTML", "CSS"},
		Experience: "beginner",
		JoinDate:   "2023-08-15",
		GitHub:     "https://github.com/sarahchen",
		LinkedIn:   "https://linkedin.com/in/sarahchen",
	},
	{
		ID:         "marcus-johnson",
		Name:       "Marcus Johnson",
		Role:       "member",
		Avatar:     "/avatars/marcus-johnson.jpg",
		Bio:        "Computer science student passionate about backend development and system design.",
		TechStack:  []string{"Python", "Java", "Spring Boot", "Docker"},
		Experience: "intermediate",
		JoinDate:   "2023-09-01",
		GitHub:     "https://github.com/marcusjohnson",
	},
	{
		ID:         "priya-patel",
		Name:       "Priya Patel",
		Role:       "member",
		Avatar:     "/avatars/priya-patel.jpg",
		Bio:        "Full-stack developer with a focus on creating scalable web applications. Love participating in hackathons!",
		TechStack:  []string{"JavaScript", "Node.js", "React", "MongoDB"},
		Experience: "intermediate",
		JoinDate:   "2023-07-20",
		GitHub:     "https://github.com/priyapatel",
		LinkedIn:   "https://linkedin.com/in/priyapatel",
	},
}

var testimonials = []Testimonial{
	{
		ID:           "1",
		MemberID:     "sarah-chen",
		MemberName:   "Sarah Chen",
		MemberAvatar: "/avatars/sarah-chen.jpg",
		MemberRole:   "member",
		Content:      "Coders Den transformed my career! I went from struggling with basic JavaScript to landing my first developer job in just 6 months. The mentorship and hands-on projects made all the difference.",
		Rating:       5,
		Category:     "job-placement",
		Date:         "2024-01-15",
		Featured:     true,
	},
	{
		ID:           "2",
		MemberID:     "marcus-johnson",
		MemberName:   "Marcus Johnson",
		MemberAvatar: "/avatars/marcus-johnson.jpg",
		MemberRole:   "member",
		Content:      "The Python workshops here are incredible. I've learned more in 3 months than I did in a year of self-study. The community is so supportive and the mentors are always available to help.",
		Rating:       5,
		Category:     "skill-improvement",
		Date:         "2024-02-03",
		Featured:     true,
	},
	{
		ID:           "3",
		MemberID:     "priya-patel",
		MemberName:   "Priya Patel",
		MemberAvatar: "/avatars/priya-patel.jpg",
		MemberRole:   "member",
		Content:      "I love the game nights and hackathons! It's not just about coding - we've built real friendships here. The community events make learning fun and engaging.",
		Rating:       5,
		Category:     "community",
		Date:         "2024-01-28",
		Featured:     true,
	},
	{
		ID:           "4",
		MemberID:     "alex-rodriguez",
		MemberName:   "Alex Rodriguez",
		MemberAvatar: "/avatars/alex-rodriguez.jpg",
		MemberRole:   "member",
		Content:      "The mock interview sessions prepared me perfectly for real interviews. I felt confident and well-prepared when I started applying for jobs. Highly recommend!",
		Rating:       5,
		Category:     "job-placement",
		Date:         "2024-02-10",
	},
	{
		ID:           "5",
		MemberID:     "emily-wang",
		MemberName:   "Emily Wang",
		MemberAvatar: "/avatars/emily-wang.jpg",
		MemberRole:   "member",
		Content:      "As a career changer, I was intimidated by coding. But the beginner-friendly approach and patient mentors helped me build confidence. Now I'm contributing to open source projects!",
		Rating:       5,
		Category:     "skill-improvement",
		Date:         "2024-01-20",
	},
	{
		ID:           "6",
		MemberID:     "david-kim",
		MemberName:   "David Kim",
		MemberAvatar: "/avatars/david-kim.jpg",
		MemberRole:   "member",
		Content:      "The networking opportunities here are amazing. I've connected with developers from all over the world and even found my current job through a community connection!",
		Rating:       5,
		Category:     "community",
		Date:         "2024-02-05",
	},
}

var communityStats = CommunityStats{
	TotalMembers:    1247,
	ActiveMembers:   892,
	EventsHosted:    156,
	SuccessStories:  89,
	MentorshipHours: 2340,
	JobPlacements:   67,
}
