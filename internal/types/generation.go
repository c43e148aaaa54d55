package types

// GenerationRequest is the input to an AI content generation step (roadmap,
// interview prep, skill gap, resume parse).
type GenerationRequest struct {
	// SubjectTitle is the job title the content is generated for.
	SubjectTitle string `json:"subjectTitle"`
	// Context carries free-form key/value inputs: "company", "skills",
	// "jobDescription", "resumeText", "experience" and similar.
	Context map[string]string `json:"context,omitempty"`
}

// CompanyResearch summarizes what a candidate should know about an employer.
type CompanyResearch struct {
	KeyFacts   []string `json:"keyFacts"`
	RecentNews []string `json:"recentNews"`
	Culture    string   `json:"culture"`
	Values     []string `json:"values"`
}

// PrepTimeline is a week-by-week interview preparation plan.
type PrepTimeline struct {
	Week1 string `json:"week1"`
	Week2 string `json:"week2"`
	Week3 string `json:"week3"`
	Final string `json:"final"`
}

// STARExample is a situation/task/action/result behavioral answer template.
type STARExample struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// InterviewPrep is the structured interview preparation package.
type InterviewPrep struct {
	CompanyResearch      CompanyResearch `json:"companyResearch"`
	TechnicalQuestions   []string        `json:"technicalQuestions"`
	BehavioralQuestions  []string        `json:"behavioralQuestions"`
	QuestionsToAsk       []string        `json:"questionsToAsk"`
	TechnicalTopics      []string        `json:"technicalTopics"`
	SkillsToHighlight    []string        `json:"skillsToHighlight"`
	MockScenarios        []string        `json:"mockScenarios"`
	PreparationChecklist []string        `json:"preparationChecklist"`
	RedFlags             []string        `json:"redFlags"`
	Timeline             PrepTimeline    `json:"timeline"`
	STARExamples         []STARExample   `json:"starExamples"`
}

// RoadmapPhase is one stage of a career roadmap.
type RoadmapPhase struct {
	Name      string   `json:"name"`
	Duration  string   `json:"duration"`
	Skills    []string `json:"skills"`
	Resources []string `json:"resources"`
	Projects  []string `json:"projects"`
}

// CareerRoadmap is a phased learning plan toward a target role.
type CareerRoadmap struct {
	Overview          string         `json:"overview"`
	Prerequisites     []string       `json:"prerequisites"`
	Phases            []RoadmapPhase `json:"phases"`
	CareerProgression []string       `json:"careerProgression"`
	IndustryTrends    []string       `json:"industryTrends"`
	Networking        []string       `json:"networking"`
	Portfolio         []string       `json:"portfolio"`
}

// SkillGapAnalysis compares current skills against a target role.
type SkillGapAnalysis struct {
	MatchedSkills     []string `json:"matchedSkills"`
	MissingSkills     []string `json:"missingSkills"`
	SkillsToImprove   []string `json:"skillsToImprove"`
	HighPriority      []string `json:"highPriority"`
	MediumPriority    []string `json:"mediumPriority"`
	LowPriority       []string `json:"lowPriority"`
	LearningResources []string `json:"learningResources"`
	TimelineEstimate  string   `json:"timelineEstimate"`
	Milestones        []string `json:"milestones"`
	PortfolioProjects []string `json:"portfolioProjects"`
}

// PersonalInfo holds resume contact fields.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// WorkExperience is one position from a parsed resume.
type WorkExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one degree from a parsed resume.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ParsedResume is the structured output of resume parsing.
type ParsedResume struct {
	PersonalInfo       PersonalInfo     `json:"personalInfo"`
	Skills             []string         `json:"skills"`
	WorkExperience     []WorkExperience `json:"workExperience"`
	Education          []Education      `json:"education"`
	ExperienceLevel    ExperienceLevel  `json:"experienceLevel"`
	SuggestedJobTitles []string         `json:"suggestedJobTitles"`
	Summary            string           `json:"summary"`
}
