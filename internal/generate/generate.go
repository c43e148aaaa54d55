// Package generate runs the AI content generation operations: interview
// preparation, career roadmaps, skill gap analyses, and resume parsing. Each
// operation is a single provider call whose output is held to a strict
// schema; anything that fails validation after best-effort extraction is a
// malformed response, never a partial result.
package generate

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jobscout/jobscout/internal/llm"
	"github.com/jobscout/jobscout/internal/prompts"
	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/schemas"
	"github.com/jobscout/jobscout/internal/types"
)

// InterviewPrep generates a structured interview preparation package for the
// request's job title and company context.
func InterviewPrep(ctx context.Context, client llm.Client, req types.GenerationRequest) (*types.InterviewPrep, error) {
	if err := requireTitle(req); err != nil {
		return nil, err
	}

	template := prompts.MustGet("generation.json", "interview-prep")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":       req.SubjectTitle,
		"Company":        contextValue(req, "company", "the company"),
		"JobDescription": contextValue(req, "jobDescription", "not provided"),
		"Skills":         contextValue(req, "skills", "not provided"),
		"Experience":     contextValue(req, "experience", "not provided"),
		"Summary":        contextValue(req, "summary", "not provided"),
	})

	var prep types.InterviewPrep
	if err := generateValidated(ctx, client, prompt, llm.TierStandard, schemas.InterviewPrep, &prep); err != nil {
		return nil, err
	}
	return &prep, nil
}

// Roadmap generates a phased career roadmap toward the target role.
func Roadmap(ctx context.Context, client llm.Client, req types.GenerationRequest) (*types.CareerRoadmap, error) {
	if err := requireTitle(req); err != nil {
		return nil, err
	}

	template := prompts.MustGet("generation.json", "career-roadmap")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":        req.SubjectTitle,
		"ExperienceLevel": contextValue(req, "experience", "beginner"),
		"Skills":          contextValue(req, "skills", "none listed"),
	})

	var roadmap types.CareerRoadmap
	if err := generateValidated(ctx, client, prompt, llm.TierStandard, schemas.Roadmap, &roadmap); err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// SkillGap generates a gap analysis between the candidate's current skills
// and the target role.
func SkillGap(ctx context.Context, client llm.Client, req types.GenerationRequest) (*types.SkillGapAnalysis, error) {
	if err := requireTitle(req); err != nil {
		return nil, err
	}

	template := prompts.MustGet("generation.json", "skill-gap")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":   req.SubjectTitle,
		"Skills":     contextValue(req, "skills", "none listed"),
		"Experience": contextValue(req, "experience", "not provided"),
	})

	var analysis types.SkillGapAnalysis
	if err := generateValidated(ctx, client, prompt, llm.TierLite, schemas.SkillGap, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// ParseResume extracts a structured resume from raw text.
func ParseResume(ctx context.Context, client llm.Client, resumeText string) (*types.ParsedResume, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &provider.InvalidRequestError{Field: "resumeText", Message: "resume text is required"}
	}

	template := prompts.MustGet("parsing.json", "parse-resume")
	prompt := prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})

	var parsed types.ParsedResume
	if err := generateValidated(ctx, client, prompt, llm.TierStandard, schemas.ParsedResume, &parsed); err != nil {
		return nil, err
	}
	if !types.ValidExperienceLevel(parsed.ExperienceLevel) {
		parsed.ExperienceLevel = types.ExperienceAssociate
	}
	return &parsed, nil
}

// generateValidated runs one generation call and decodes the response into
// out, accepting it only if it validates against the named schema. One
// best-effort brace-region extraction is attempted before declaring the
// response malformed.
func generateValidated(ctx context.Context, client llm.Client, prompt string, tier llm.ModelTier, schema string, out any) error {
	raw, err := client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return err
	}

	content := llm.CleanJSONBlock(raw)
	if err := schemas.Validate(schema, content); err != nil {
		extracted, ok := llm.ExtractStructured(raw)
		if !ok {
			return &provider.MalformedResponseError{
				Kind:   provider.KindAIGenerate,
				Detail: err.Error(),
			}
		}
		if err := schemas.Validate(schema, extracted); err != nil {
			return &provider.MalformedResponseError{
				Kind:   provider.KindAIGenerate,
				Detail: err.Error(),
			}
		}
		content = extracted
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &provider.MalformedResponseError{
			Kind:   provider.KindAIGenerate,
			Detail: "decode: " + err.Error(),
		}
	}
	return nil
}

func requireTitle(req types.GenerationRequest) error {
	if strings.TrimSpace(req.SubjectTitle) == "" {
		return &provider.InvalidRequestError{Field: "subjectTitle", Message: "job title is required"}
	}
	return nil
}

func contextValue(req types.GenerationRequest, key, fallback string) string {
	if value, ok := req.Context[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
