package planner

import (
	"errors"
	"fmt"
	"strings"
)

// Request carries the inputs of one planning call.
type Request struct {
	UserStories string
	ProjectType string
	Language    string
}

// ScaffoldingPlan is the structured output of a planning call: two design
// documents plus the ordered build steps handed to the execution agent.
// Each step is a natural-language instruction; the agent maps it to a tool
// invocation at execution time.
type ScaffoldingPlan struct {
	HighLevelDesign string   `json:"high_level_design"`
	LowLevelDesign  string   `json:"low_level_design"`
	Plan            []string `json:"plan"`
}

// verifies the decoded plan carries every required field
func (p *ScaffoldingPlan) Validate() error {
	if strings.TrimSpace(p.HighLevelDesign) == "" {
		return errors.New("missing high_level_design")
	}

	if strings.TrimSpace(p.LowLevelDesign) == "" {
		return errors.New("missing low_level_design")
	}

	if len(p.Plan) == 0 {
		return errors.New("plan has no steps")
	}

	for i, step := range p.Plan {
		if strings.TrimSpace(step) == "" {
			return fmt.Errorf("plan step %d is empty", i+1)
		}
	}

	return nil
}
