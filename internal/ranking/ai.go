package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jobscout/jobscout/internal/llm"
	"github.com/jobscout/jobscout/internal/prompts"
	"github.com/jobscout/jobscout/internal/schemas"
	"github.com/jobscout/jobscout/internal/types"
)

// rankEntry is one element of the ranking list the model returns.
type rankEntry struct {
	ItemIndex int     `json:"itemIndex"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

// AIRank asks the AI adapter to rank items against the profile. Items absent
// from the model's ranking are appended at the end in original order,
// unscored. Any transport, parse, or shape failure is returned as an error;
// the caller falls back to the heuristic path.
func AIRank(ctx context.Context, client llm.Client, items []types.ResultItem, profile types.Profile) ([]types.ResultItem, error) {
	prompt := buildRankingPrompt(items, profile)

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	entries, err := parseRanking(raw)
	if err != nil {
		return nil, err
	}
	return applyRanking(items, entries), nil
}

// parseRanking validates the model output against the ranking schema,
// attempting one balanced-region extraction when the payload is embedded in
// prose.
func parseRanking(raw string) ([]rankEntry, error) {
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.Validate(schemas.Ranking, raw); err != nil {
		region, ok := llm.ExtractStructured(raw)
		if !ok {
			return nil, fmt.Errorf("ranking response has no structured region: %w", err)
		}
		raw = region
		if err := schemas.Validate(schemas.Ranking, raw); err != nil {
			return nil, fmt.Errorf("extracted ranking region is malformed: %w", err)
		}
	}

	var entries []rankEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode ranking list: %w", err)
	}
	return entries, nil
}

// applyRanking orders items by the model's scores (descending, stable) and
// appends unranked items in their original order.
func applyRanking(items []types.ResultItem, entries []rankEntry) []types.ResultItem {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	ranked := make([]types.ResultItem, 0, len(items))
	used := make(map[int]bool, len(entries))
	for _, entry := range entries {
		idx := entry.ItemIndex - 1 // the prompt numbers items from 1
		if idx < 0 || idx >= len(items) || used[idx] {
			continue
		}
		used[idx] = true

		item := items[idx]
		score := clampScore(entry.Score)
		item.Score = &score
		item.ScoreReason = entry.Reason
		ranked = append(ranked, item)
	}

	for i, item := range items {
		if !used[i] {
			ranked = append(ranked, item)
		}
	}
	return ranked
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func buildRankingPrompt(items []types.ResultItem, profile types.Profile) string {
	var list strings.Builder
	for i, item := range items {
		desc := item.Description
		if len(desc) > 200 {
			desc = desc[:200] + "..."
		}
		fmt.Fprintf(&list, "%d. %s at %s\n   Location: %s\n   Skills: %s\n   Description: %s\n",
			i+1, item.Title, item.Company, item.Location,
			strings.Join(item.RequiredSkills, ", "), desc)
	}

	template := prompts.MustGet("ranking.json", "rank-jobs")
	return prompts.Format(template, map[string]string{
		"JobCount":        strconv.Itoa(len(items)),
		"Skills":          strings.Join(profile.Skills, ", "),
		"ExperienceLevel": string(profile.ExperienceLevel),
		"PreferredTitle":  profile.PreferredTitle,
		"Location":        profile.Location,
		"RemoteAllowed":   strconv.FormatBool(profile.RemoteAllowed),
		"JobList":         list.String(),
	})
}
