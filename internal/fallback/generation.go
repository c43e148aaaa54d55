package fallback

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jobscout/jobscout/internal/types"
)

func contextSkills(req types.GenerationRequest, defaults []string) []string {
	raw := req.Context["skills"]
	if raw == "" {
		return defaults
	}
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return defaults
	}
	return skills
}

// InterviewPrep returns the offline interview preparation package with the
// request parameters substituted into template strings.
func InterviewPrep(req types.GenerationRequest) types.InterviewPrep {
	jobTitle := req.SubjectTitle
	company := req.Context["company"]
	if company == "" {
		company = "the company"
	}
	skills := contextSkills(req, []string{"Communication", "Problem Solving", "Teamwork"})

	return types.InterviewPrep{
		CompanyResearch: types.CompanyResearch{
			KeyFacts: []string{
				fmt.Sprintf("Research %s's mission and values", company),
				"Look up recent company news",
				"Understand their products and services",
			},
			RecentNews: []string{
				fmt.Sprintf("Check %s's latest press releases", company),
				"Review their social media updates",
			},
			Culture: fmt.Sprintf("Research %s's work culture and employee reviews", company),
			Values:  []string{"Innovation", "Teamwork", "Excellence", "Customer Focus"},
		},
		TechnicalQuestions: []string{
			fmt.Sprintf("What experience do you have with %s responsibilities?", jobTitle),
			"Describe a challenging technical problem you solved recently",
			"How do you approach debugging and troubleshooting?",
			"What development methodologies are you familiar with?",
			"How do you ensure code quality in your projects?",
			"Describe your experience with version control systems",
			"How do you stay updated with industry trends?",
			"Walk me through your typical development workflow",
		},
		BehavioralQuestions: []string{
			"Tell me about yourself and your career journey",
			fmt.Sprintf("Why are you interested in this %s position?", jobTitle),
			"Describe a time when you had to work under pressure",
			"How do you handle conflicts with team members?",
			"Tell me about a time you had to learn something new quickly",
			"How do you prioritize tasks when you have multiple deadlines?",
			"Tell me about a mistake you made and how you handled it",
		},
		QuestionsToAsk: []string{
			"What does a typical day look like for this role?",
			"What are the biggest challenges facing the team right now?",
			"How do you measure success in this position?",
			"What opportunities are there for professional development?",
			"What are the next steps in the interview process?",
		},
		TechnicalTopics:   append(append([]string{}, skills...), "Problem Solving", "System Design", "Best Practices"),
		SkillsToHighlight: append(append([]string{}, skills...), "Leadership", "Communication", "Adaptability"),
		MockScenarios: []string{
			"Technical problem-solving session",
			"System design discussion",
			"Code review simulation",
			"Project presentation",
		},
		PreparationChecklist: []string{
			"Research the company thoroughly",
			"Review the job description and requirements",
			"Prepare specific examples using the STAR method",
			"Practice common interview questions out loud",
			"Prepare thoughtful questions to ask the interviewer",
			"Bring multiple copies of your resume",
		},
		RedFlags: []string{
			"Vague job descriptions or responsibilities",
			"High employee turnover rates",
			"Poor communication during the interview process",
			"Unrealistic expectations or timelines",
		},
		Timeline: types.PrepTimeline{
			Week1: "Company research and job description analysis",
			Week2: "Technical skills review and practice questions",
			Week3: "Mock interviews and behavioral question preparation",
			Final: "Final review, confidence building, and logistics planning",
		},
		STARExamples: []types.STARExample{
			{
				Situation: "Working on a critical project with a tight deadline",
				Task:      "Deliver a high-quality solution within the time constraint",
				Action:    "Organized team meetings, prioritized features, implemented efficient solutions",
				Result:    "Delivered project on time with high client satisfaction",
			},
			{
				Situation: "Disagreement with a team member about technical approach",
				Task:      "Resolve the conflict while maintaining team harmony",
				Action:    "Listened to their concerns, presented data-driven arguments, found compromise",
				Result:    "Improved team collaboration and delivered a better solution",
			},
		},
	}
}

// Roadmap returns the offline career roadmap template for the target title.
func Roadmap(req types.GenerationRequest) types.CareerRoadmap {
	jobTitle := req.SubjectTitle
	skills := contextSkills(req, nil)

	prerequisites := []string{
		"Comfort with a personal computer and installing software",
		"Willingness to practice consistently for several months",
	}
	if len(skills) > 0 {
		prerequisites = append(prerequisites,
			fmt.Sprintf("Build on your existing skills: %s", strings.Join(skills, ", ")))
	}

	return types.CareerRoadmap{
		Overview: fmt.Sprintf("A phased, self-paced plan for becoming a %s, covering foundations, applied practice, and specialization.", jobTitle),
		Prerequisites: prerequisites,
		Phases: []types.RoadmapPhase{
			{
				Name:     "Foundation",
				Duration: "0-3 months",
				Skills:   []string{fmt.Sprintf("Core concepts of the %s role", jobTitle), "Fundamental tooling", "Version control basics"},
				Resources: []string{
					fmt.Sprintf("Introductory courses on %s", jobTitle),
					"Official documentation and beginner tutorials",
				},
				Projects: []string{"A small end-to-end starter project published to a portfolio"},
			},
			{
				Name:     "Intermediate",
				Duration: "3-6 months",
				Skills:   []string{"Industry-standard frameworks and workflows", "Testing and debugging", "Collaboration practices"},
				Resources: []string{
					"Intermediate courses and books",
					"Open source projects in the field",
				},
				Projects: []string{"A medium-sized project that mirrors real job responsibilities"},
			},
			{
				Name:     "Advanced",
				Duration: "6-12 months",
				Skills:   []string{"System design for the role", "Performance and reliability", "Mentoring and code review"},
				Resources: []string{
					"Advanced references and conference talks",
					"Communities of practicing professionals",
				},
				Projects: []string{"A substantial capstone project demonstrating production-quality work"},
			},
			{
				Name:     "Specialization",
				Duration: "12+ months",
				Skills:   []string{fmt.Sprintf("A niche within the %s space", jobTitle), "Leadership and ownership"},
				Resources: []string{
					"Specialized certifications or advanced coursework",
				},
				Projects: []string{"Contributions to real products, open source, or freelance work"},
			},
		},
		CareerProgression: []string{
			fmt.Sprintf("Junior %s", jobTitle),
			jobTitle,
			fmt.Sprintf("Senior %s", jobTitle),
			"Lead / Staff level",
		},
		IndustryTrends: []string{
			"Growing demand for practitioners with demonstrable project work",
			"Increasing emphasis on automation and AI-assisted workflows",
		},
		Networking: []string{
			"Join professional communities and local meetups",
			"Engage with practitioners on professional networks",
			"Attend industry conferences or virtual events",
		},
		Portfolio: []string{
			"Three or more completed projects with source and write-ups",
			"A concise resume tailored to the target role",
			"Public profiles that showcase your work",
		},
	}
}

// SkillGap returns the offline skill-gap analysis. Matched skills are the
// candidate's own; gap entries are role-generic templates.
func SkillGap(req types.GenerationRequest) types.SkillGapAnalysis {
	jobTitle := req.SubjectTitle
	skills := contextSkills(req, nil)
	sorted := append([]string{}, skills...)
	sort.Strings(sorted)

	return types.SkillGapAnalysis{
		MatchedSkills: sorted,
		MissingSkills: []string{
			fmt.Sprintf("Core %s domain knowledge", jobTitle),
			"Industry-standard tooling for the role",
		},
		SkillsToImprove: []string{
			"Applying existing skills to production-scale problems",
			"Communicating technical decisions",
		},
		HighPriority: []string{
			fmt.Sprintf("Fundamentals required by most %s openings", jobTitle),
		},
		MediumPriority: []string{
			"Testing, debugging, and collaboration workflows",
		},
		LowPriority: []string{
			"Specialized or niche tooling mentioned in some postings",
		},
		LearningResources: []string{
			fmt.Sprintf("Free introductory courses on %s", jobTitle),
			"Official documentation and community tutorials",
			"Hands-on practice through personal projects",
		},
		TimelineEstimate: "6-12 months of consistent study and practice to become job-ready",
		Milestones: []string{
			"Complete a foundation course and first project",
			"Build a portfolio project that mirrors job responsibilities",
			"Start applying once two or more portfolio projects are complete",
		},
		PortfolioProjects: []string{
			fmt.Sprintf("A project demonstrating day-to-day %s work", jobTitle),
			"A write-up documenting your learning journey",
		},
	}
}
