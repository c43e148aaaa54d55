// Package types defines the shared data model for the job search pipelines.
package types

// ExperienceLevel classifies a candidate's seniority.
type ExperienceLevel string

// Experience levels, ordered from least to most senior.
const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceAssociate ExperienceLevel = "associate"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceDirector  ExperienceLevel = "director"
	ExperienceExecutive ExperienceLevel = "executive"
)

// ValidExperienceLevel reports whether level is a known seniority value.
func ValidExperienceLevel(level ExperienceLevel) bool {
	switch level {
	case ExperienceEntry, ExperienceAssociate, ExperienceMid,
		ExperienceSenior, ExperienceDirector, ExperienceExecutive:
		return true
	}
	return false
}

// Profile describes the candidate a pipeline run is executed for.
// It is built per request (from defaults, explicit parameters, or a parsed
// resume) and never persisted by the pipeline.
type Profile struct {
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Location        string          `json:"location"`
	RemoteAllowed   bool            `json:"remoteAllowed"`
	PreferredTitle  string          `json:"preferredTitle"`
}

// DefaultProfile returns the profile used when a request carries no
// candidate information.
func DefaultProfile() Profile {
	return Profile{
		Skills:          []string{"JavaScript", "React", "Node.js"},
		ExperienceLevel: ExperienceAssociate,
		Location:        "United States",
		PreferredTitle:  "software developer",
	}
}
