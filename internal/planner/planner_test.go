package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidharth-A-691/code-generator/internal/llm"
)

// fakeGenerator replays a canned completion and records the prompt it saw
type fakeGenerator struct {
	response string
	err      error
	lastReq  llm.TextGenerationRequest
}

func (f *fakeGenerator) GenerateText(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	f.lastReq = req

	if f.err != nil {
		return nil, f.err
	}

	return &llm.TextGenerationResponse{Text: f.response}, nil
}

func (f *fakeGenerator) Model() string { return "fake-model" }

const validPlanJSON = `{
	"high_level_design": "A Spring Boot REST API with a React client.",
	"low_level_design": "User entity, UserRepository, UserController with /register and /login.",
	"plan": [
		"Create a new Spring Boot project using the create_springboot_project tool with the artifact_id set to 'backend'.",
		"Write a new file named backend/src/main/java/com/example/backend/model/User.java. It should be a JPA Entity for a \"users\" table.",
		"Write a new file named backend/src/main/java/com/example/backend/repository/UserRepository.java. It should be a JpaRepository interface."
	]
}`

func TestCreatePlan(t *testing.T) {
	gen := &fakeGenerator{response: validPlanJSON}
	p := New(gen)

	plan, err := p.CreatePlan(context.Background(), Request{
		UserStories: "users can register and log in",
		ProjectType: "backend",
		Language:    "springboot",
	})
	require.NoError(t, err)

	assert.Equal(t, "A Spring Boot REST API with a React client.", plan.HighLevelDesign)
	assert.NotEmpty(t, plan.LowLevelDesign)
	require.Len(t, plan.Plan, 3)

	// the bootstrap tool leads, file steps follow in order
	assert.Contains(t, plan.Plan[0], "create_springboot_project")
	assert.Contains(t, plan.Plan[1], "backend/src/main/java")
	assert.Contains(t, plan.Plan[2], "UserRepository")
}

func TestCreatePlanPromptContents(t *testing.T) {
	gen := &fakeGenerator{response: validPlanJSON}
	p := New(gen)

	_, err := p.CreatePlan(context.Background(), Request{
		UserStories: "users can register and log in",
		ProjectType: "backend",
		Language:    "springboot",
	})
	require.NoError(t, err)

	require.Len(t, gen.lastReq.Messages, 1)
	prompt := gen.lastReq.Messages[0].Content

	assert.Contains(t, prompt, "users can register and log in")
	assert.Contains(t, prompt, "springboot")
	assert.Contains(t, prompt, "Do NOT include commands like mvn, npm, or git")
	assert.Contains(t, prompt, "FIRST step must use the create_springboot_project tool")
	assert.Contains(t, prompt, "FIRST step must use the create_react_vite_project tool")
	assert.Contains(t, prompt, `"high_level_design"`)
	assert.Contains(t, prompt, `"plan"`)
}

func TestCreatePlanAcceptsFencedResponse(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + validPlanJSON + "\n```"}
	p := New(gen)

	plan, err := p.CreatePlan(context.Background(), Request{
		UserStories: "todo list",
		ProjectType: "frontend",
		Language:    "react",
	})
	require.NoError(t, err)
	assert.Len(t, plan.Plan, 3)
}

func TestCreatePlanGatewayFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("api request failed with status 503")}
	p := New(gen)

	_, err := p.CreatePlan(context.Background(), Request{
		UserStories: "todo list",
		ProjectType: "frontend",
		Language:    "react",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan generation failed")
}

func TestCreatePlanParseFailure(t *testing.T) {
	gen := &fakeGenerator{response: "Sure! Here is your plan: first create a directory..."}
	p := New(gen)

	_, err := p.CreatePlan(context.Background(), Request{
		UserStories: "todo list",
		ProjectType: "frontend",
		Language:    "react",
	})
	require.Error(t, err)

	var parseErr *llm.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCreatePlanMissingFields(t *testing.T) {
	cases := []struct {
		name     string
		response string
		wantMsg  string
	}{
		{
			name:     "no designs",
			response: `{"plan": ["step one"]}`,
			wantMsg:  "missing high_level_design",
		},
		{
			name:     "no low level design",
			response: `{"high_level_design": "x", "plan": ["step one"]}`,
			wantMsg:  "missing low_level_design",
		},
		{
			name:     "empty plan",
			response: `{"high_level_design": "x", "low_level_design": "y", "plan": []}`,
			wantMsg:  "plan has no steps",
		},
		{
			name:     "blank step",
			response: `{"high_level_design": "x", "low_level_design": "y", "plan": ["do a thing", "  "]}`,
			wantMsg:  "plan step 2 is empty",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{response: tc.response}
			p := New(gen)

			_, err := p.CreatePlan(context.Background(), Request{
				UserStories: "todo list",
				ProjectType: "frontend",
				Language:    "react",
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
