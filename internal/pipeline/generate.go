package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jobscout/jobscout/internal/fallback"
	"github.com/jobscout/jobscout/internal/generate"
	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

// PrepResult is the outcome of the interview preparation pipeline.
type PrepResult struct {
	Prep         types.InterviewPrep `json:"prep"`
	Videos       []types.Video       `json:"videos"`
	FallbackUsed bool                `json:"fallbackUsed"`
}

// RoadmapResult is the outcome of the career roadmap pipeline.
type RoadmapResult struct {
	Roadmap      types.CareerRoadmap `json:"roadmap"`
	FallbackUsed bool                `json:"fallbackUsed"`
}

// SkillGapResult is the outcome of the skill gap pipeline.
type SkillGapResult struct {
	Analysis     types.SkillGapAnalysis `json:"analysis"`
	FallbackUsed bool                   `json:"fallbackUsed"`
}

// ResumeResult is the outcome of the resume parsing pipeline.
type ResumeResult struct {
	Resume       types.ParsedResume `json:"resume"`
	FallbackUsed bool               `json:"fallbackUsed"`
}

// InterviewPrep generates interview preparation materials plus supporting
// videos. Provider failures on either branch degrade to fallbacks; the run
// always produces a complete package.
func (p *Pipeline) InterviewPrep(ctx context.Context, req types.GenerationRequest) (*PrepResult, error) {
	if err := validateGeneration(req); err != nil {
		return nil, err
	}

	result := &PrepResult{}

	if p.aiReady() {
		prep, err := generate.InterviewPrep(ctx, p.ai, req)
		switch {
		case err == nil:
			result.Prep = *prep
		case provider.Recoverable(err):
			p.logger.Warn("interview prep generation failed, using fallback",
				zap.String("jobTitle", req.SubjectTitle),
				zap.Error(err))
			result.Prep = fallback.InterviewPrep(req)
			result.FallbackUsed = true
		default:
			return nil, err
		}
	} else {
		result.Prep = fallback.InterviewPrep(req)
		result.FallbackUsed = true
	}

	videos, videosFellBack := p.interviewVideos(ctx, req.SubjectTitle)
	result.Videos = videos
	result.FallbackUsed = result.FallbackUsed || videosFellBack
	return result, nil
}

// Roadmap generates a phased career roadmap for the target role.
func (p *Pipeline) Roadmap(ctx context.Context, req types.GenerationRequest) (*RoadmapResult, error) {
	if err := validateGeneration(req); err != nil {
		return nil, err
	}

	if p.aiReady() {
		roadmap, err := generate.Roadmap(ctx, p.ai, req)
		if err == nil {
			return &RoadmapResult{Roadmap: *roadmap}, nil
		}
		if !provider.Recoverable(err) {
			return nil, err
		}
		p.logger.Warn("roadmap generation failed, using fallback",
			zap.String("jobTitle", req.SubjectTitle),
			zap.Error(err))
	}
	return &RoadmapResult{Roadmap: fallback.Roadmap(req), FallbackUsed: true}, nil
}

// SkillGap generates a skill gap analysis for the target role.
func (p *Pipeline) SkillGap(ctx context.Context, req types.GenerationRequest) (*SkillGapResult, error) {
	if err := validateGeneration(req); err != nil {
		return nil, err
	}

	if p.aiReady() {
		analysis, err := generate.SkillGap(ctx, p.ai, req)
		if err == nil {
			return &SkillGapResult{Analysis: *analysis}, nil
		}
		if !provider.Recoverable(err) {
			return nil, err
		}
		p.logger.Warn("skill gap generation failed, using fallback",
			zap.String("jobTitle", req.SubjectTitle),
			zap.Error(err))
	}
	return &SkillGapResult{Analysis: fallback.SkillGap(req), FallbackUsed: true}, nil
}

// ParseResume extracts a structured resume from raw text, degrading to the
// offline keyword scanner when the AI path fails.
func (p *Pipeline) ParseResume(ctx context.Context, resumeText string) (*ResumeResult, error) {
	if p.aiReady() {
		parsed, err := generate.ParseResume(ctx, p.ai, resumeText)
		if err == nil {
			return &ResumeResult{Resume: *parsed}, nil
		}
		if !provider.Recoverable(err) {
			return nil, err
		}
		p.logger.Warn("resume parsing failed, using fallback", zap.Error(err))
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, &provider.InvalidRequestError{Field: "resumeText", Message: "resume text is required"}
	}
	return &ResumeResult{Resume: fallback.Resume(resumeText), FallbackUsed: true}, nil
}

func validateGeneration(req types.GenerationRequest) error {
	if req.SubjectTitle == "" {
		return &provider.InvalidRequestError{Field: "subjectTitle", Message: "job title is required"}
	}
	return nil
}
