package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobscout/jobscout/internal/types"
)

var (
	searchLocation string
	searchRemote   bool
	searchLevel    string

	recommendSkills []string
	recommendTitles []string
)

var searchCmd = &cobra.Command{
	Use:   "search [job title]",
	Short: "Search job postings",
	Long:  "Search job postings for a title and location, ranked against the candidate profile.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get ranked job recommendations",
	Long:  "Fan out up to three title-variant searches, de-duplicate, and rank against the candidate profile.",
	RunE:  runRecommend,
}

func init() {
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "Target location")
	searchCmd.Flags().BoolVar(&searchRemote, "remote", false, "Include remote positions")
	searchCmd.Flags().StringVar(&searchLevel, "level", "", "Experience level (entry, associate, mid, senior, director, executive)")
	rootCmd.AddCommand(searchCmd)

	recommendCmd.Flags().StringSliceVar(&recommendSkills, "skills", nil, "Candidate skills")
	recommendCmd.Flags().StringSliceVar(&recommendTitles, "titles", nil, "Job titles to search (max 3 used)")
	recommendCmd.Flags().StringVar(&searchLocation, "location", "", "Target location")
	rootCmd.AddCommand(recommendCmd)
}

func cliProfile() (types.Profile, error) {
	profile := types.DefaultProfile()
	if searchLocation != "" {
		profile.Location = searchLocation
	}
	profile.RemoteAllowed = searchRemote
	if searchLevel != "" {
		level := types.ExperienceLevel(searchLevel)
		if !types.ValidExperienceLevel(level) {
			return types.Profile{}, fmt.Errorf("unknown experience level %q", searchLevel)
		}
		profile.ExperienceLevel = level
	}
	if len(recommendSkills) > 0 {
		profile.Skills = recommendSkills
	}
	return profile, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}

	profile, err := cliProfile()
	if err != nil {
		return err
	}
	profile.PreferredTitle = strings.Join(args, " ")

	p, cleanup, err := buildPipeline(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := p.Search(context.Background(), profile, types.Query{})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}

	profile, err := cliProfile()
	if err != nil {
		return err
	}

	p, cleanup, err := buildPipeline(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := p.Recommend(context.Background(), profile, recommendTitles)
	if err != nil {
		return err
	}
	return printJSON(result)
}
