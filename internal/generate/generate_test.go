package generate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/llm"
	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) Available() bool { return true }
func (f *fakeClient) Close() error    { return nil }

const validSkillGap = `{
	"matchedSkills": ["Go"],
	"missingSkills": ["Kubernetes"],
	"highPriority": ["Kubernetes"],
	"timelineEstimate": "3-6 months"
}`

const validPrep = `{
	"companyResearch": {"keyFacts": ["Founded 2001"], "recentNews": [], "culture": "remote-first", "values": ["ownership"]},
	"technicalQuestions": ["Explain goroutines"],
	"behavioralQuestions": ["Tell me about a conflict"],
	"questionsToAsk": ["How is on-call run?"],
	"preparationChecklist": ["Review the job description"],
	"timeline": {"week1": "research", "week2": "practice", "week3": "mock interviews", "final": "rest"},
	"starExamples": [{"situation": "s", "task": "t", "action": "a", "result": "r"}]
}`

func TestSkillGap(t *testing.T) {
	client := &fakeClient{response: validSkillGap}

	analysis, err := SkillGap(context.Background(), client, types.GenerationRequest{
		SubjectTitle: "Platform Engineer",
		Context:      map[string]string{"skills": "Go, SQL"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, analysis.MatchedSkills)
	assert.Equal(t, "3-6 months", analysis.TimelineEstimate)
	assert.Equal(t, 1, client.calls)
}

func TestSkillGap_MissingTitleSkipsProvider(t *testing.T) {
	client := &fakeClient{response: validSkillGap}

	_, err := SkillGap(context.Background(), client, types.GenerationRequest{})

	var invalid *provider.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "subjectTitle", invalid.Field)
	assert.Equal(t, 0, client.calls)
}

func TestInterviewPrep_ExtractsFromProse(t *testing.T) {
	client := &fakeClient{response: "Sure! Here is your prep plan:\n" + validPrep + "\nGood luck!"}

	prep, err := InterviewPrep(context.Background(), client, types.GenerationRequest{
		SubjectTitle: "Go Developer",
		Context:      map[string]string{"company": "Acme"},
	})

	require.NoError(t, err)
	assert.Equal(t, "remote-first", prep.CompanyResearch.Culture)
	require.Len(t, prep.STARExamples, 1)
	assert.Equal(t, "s", prep.STARExamples[0].Situation)
}

func TestInterviewPrep_PartialObjectIsMalformed(t *testing.T) {
	// Valid JSON but missing required sections: rejected, not passed through.
	client := &fakeClient{response: `{"technicalQuestions": ["one"]}`}

	_, err := InterviewPrep(context.Background(), client, types.GenerationRequest{
		SubjectTitle: "Go Developer",
	})

	var malformed *provider.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, provider.KindAIGenerate, malformed.Kind)
	assert.True(t, provider.Recoverable(err))
}

func TestRoadmap_NonJSONIsMalformed(t *testing.T) {
	client := &fakeClient{response: "I am unable to help with that."}

	_, err := Roadmap(context.Background(), client, types.GenerationRequest{
		SubjectTitle: "Data Engineer",
	})

	var malformed *provider.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestParseResume(t *testing.T) {
	client := &fakeClient{response: `{
		"personalInfo": {"name": "Sam", "email": "", "phone": "", "location": ""},
		"skills": ["Python"],
		"workExperience": [],
		"education": [],
		"experienceLevel": "mid",
		"suggestedJobTitles": ["Data Analyst"],
		"summary": ""
	}`}

	parsed, err := ParseResume(context.Background(), client, "Sam. Python analyst.")

	require.NoError(t, err)
	assert.Equal(t, types.ExperienceMid, parsed.ExperienceLevel)
	assert.Equal(t, []string{"Python"}, parsed.Skills)
}

func TestParseResume_EmptyTextIsInvalid(t *testing.T) {
	client := &fakeClient{}

	_, err := ParseResume(context.Background(), client, "  \n ")

	var invalid *provider.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, client.calls)
}
