package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, tc := range []struct{ file, key string }{
		{"ranking.json", "rank-jobs"},
		{"generation.json", "interview-prep"},
		{"generation.json", "career-roadmap"},
		{"generation.json", "skill-gap"},
		{"parsing.json", "parse-resume"},
	} {
		prompt, err := Get(tc.file, tc.key)
		require.NoError(t, err, "%s/%s", tc.file, tc.key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("ranking.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "rank-jobs")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	out := Format("Hello {{.Name}}, apply for {{.Role}}", map[string]string{
		"Name": "Dana",
		"Role": "Go Developer",
	})
	assert.Equal(t, "Hello Dana, apply for Go Developer", out)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	out := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", out)
}

func TestRankJobsPrompt_MentionsItemIndex(t *testing.T) {
	prompt := MustGet("ranking.json", "rank-jobs")
	assert.True(t, strings.Contains(prompt, "itemIndex"))
}
