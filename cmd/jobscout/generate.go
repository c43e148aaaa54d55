package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobscout/jobscout/internal/pipeline"
	"github.com/jobscout/jobscout/internal/types"
)

var (
	genCompany    string
	genSkills     string
	genExperience string
)

var prepCmd = &cobra.Command{
	Use:   "prep [job title]",
	Short: "Generate interview preparation materials",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGeneration(args, func(ctx context.Context, p *pipeline.Pipeline, req types.GenerationRequest) (any, error) {
			return p.InterviewPrep(ctx, req)
		})
	},
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap [job title]",
	Short: "Generate a career roadmap for a target role",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGeneration(args, func(ctx context.Context, p *pipeline.Pipeline, req types.GenerationRequest) (any, error) {
			return p.Roadmap(ctx, req)
		})
	},
}

var skillGapCmd = &cobra.Command{
	Use:   "skill-gap [job title]",
	Short: "Analyze the skill gap toward a target role",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGeneration(args, func(ctx context.Context, p *pipeline.Pipeline, req types.GenerationRequest) (any, error) {
			return p.SkillGap(ctx, req)
		})
	},
}

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume [file]",
	Short: "Extract a structured profile from a resume text file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseResume,
}

func init() {
	for _, cmd := range []*cobra.Command{prepCmd, roadmapCmd, skillGapCmd} {
		cmd.Flags().StringVar(&genCompany, "company", "", "Target company")
		cmd.Flags().StringVar(&genSkills, "skills", "", "Comma-separated current skills")
		cmd.Flags().StringVar(&genExperience, "experience", "", "Experience summary")
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(parseResumeCmd)
}

func runGeneration(args []string, run func(context.Context, *pipeline.Pipeline, types.GenerationRequest) (any, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}

	p, cleanup, err := buildPipeline(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	req := types.GenerationRequest{
		SubjectTitle: strings.Join(args, " "),
		Context: map[string]string{
			"company":    genCompany,
			"skills":     genSkills,
			"experience": genExperience,
		},
	}

	result, err := run(context.Background(), p, req)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runParseResume(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	p, cleanup, err := buildPipeline(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := p.ParseResume(context.Background(), string(text))
	if err != nil {
		return err
	}
	return printJSON(result)
}
