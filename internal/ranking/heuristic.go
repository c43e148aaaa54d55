// Package ranking assigns relevance scores to job results against a
// candidate profile, via the AI adapter when it is available and a local
// heuristic otherwise.
package ranking

import (
	"sort"
	"strings"

	"github.com/jobscout/jobscout/internal/types"
)

// Heuristic scoring weights. Scores always land in [0,100]: the base floor
// guarantees no item is penalized below it, and the final value is clamped.
const (
	heuristicBase      = 70.0
	skillPoint         = 1.0
	skillPointCap      = 15.0
	locationBonus      = 8.0
	experienceBonus    = 5.0
	maxScore           = 100.0
)

// HeuristicReason is the fixed score explanation attached by the offline
// scorer.
const HeuristicReason = "Ranked by offline heuristic: skill, location, and seniority match"

// experienceKeywords maps each seniority level to title keywords that signal
// a match.
var experienceKeywords = map[types.ExperienceLevel][]string{
	types.ExperienceEntry:     {"intern", "entry", "graduate", "trainee"},
	types.ExperienceAssociate: {"associate", "junior"},
	types.ExperienceMid:       {"mid", "intermediate"},
	types.ExperienceSenior:    {"senior", "sr.", "sr "},
	types.ExperienceDirector:  {"director", "head of", "principal"},
	types.ExperienceExecutive: {"vp", "vice president", "chief", "executive"},
}

// HeuristicScore annotates every item with a deterministic local score and
// returns them sorted descending, ties keeping their original order. The
// input slice is not modified.
func HeuristicScore(items []types.ResultItem, profile types.Profile) []types.ResultItem {
	if len(items) == 0 {
		return []types.ResultItem{}
	}

	scored := make([]types.ResultItem, len(items))
	copy(scored, items)

	for i := range scored {
		score := heuristicItemScore(scored[i], profile)
		scored[i].Score = &score
		scored[i].ScoreReason = HeuristicReason
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].Score > *scored[j].Score
	})
	return scored
}

func heuristicItemScore(item types.ResultItem, profile types.Profile) float64 {
	score := heuristicBase
	title := strings.ToLower(item.Title)

	skillPoints := 0.0
	for _, skill := range profile.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" && strings.Contains(title, skill) {
			skillPoints += skillPoint
		}
	}
	if skillPoints > skillPointCap {
		skillPoints = skillPointCap
	}
	score += skillPoints

	if locationMatches(item, profile) {
		score += locationBonus
	}

	for _, keyword := range experienceKeywords[profile.ExperienceLevel] {
		if strings.Contains(title, keyword) {
			score += experienceBonus
			break
		}
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

func locationMatches(item types.ResultItem, profile types.Profile) bool {
	itemLocation := strings.ToLower(item.Location)
	if profile.RemoteAllowed && strings.Contains(itemLocation, "remote") {
		return true
	}
	want := strings.ToLower(strings.TrimSpace(profile.Location))
	return want != "" && strings.Contains(itemLocation, want)
}
