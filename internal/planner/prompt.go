package planner

import "fmt"

// instruction template for the planning call, rendered with the user
// stories, project type, and language. The response-format block doubles as
// the JSON contract the structured completion is parsed against.
const planningTemplate = `You are a world-class Solution Architect. Your task is to analyze user stories and produce a file-based scaffolding plan for an AI agent. The agent starts inside the project output directory, which may be empty or already contain generated projects.

**Input Details:**
- User Stories: %s
- Project Type: %s
- Language/Framework: %s

### SCAFFOLDING PLAN ###
Your plan must be a series of steps for the agent to execute, in order. Do NOT include commands like mvn, npm, or git. The only allowed actions are the high-level bootstrap tools below plus creating directories and writing files. The agent is smart enough to generate complete, high-quality code from a description of each file's purpose.

**HIGH-LEVEL TOOLS (use these first):**
- For Spring Boot, your FIRST step must use the create_springboot_project tool. You can specify the artifact_id.
- For React, your FIRST step must use the create_react_vite_project tool. You must specify the project_name.

**LOW-LEVEL TOOLS (use these for modifications):**
- After creating the initial project, use write_file to add new code or modify existing files.
- Use create_directory for any new folders needed.
- All file paths must be relative to the project directory created in step 1.

**FRONTEND REQUIREMENTS (React projects only):**
- Decompose the UI into small components, one file per component under src/components.
- Keep styling consistent across components: shared CSS files and a single styling approach.
- Import statements must match the real file paths of the components they reference.
- Components must contain working state and event-handling code, never placeholders.

**Example for SCAFFOLDING PLAN (springboot):**
1. Create a new Spring Boot project using the create_springboot_project tool with the artifact_id set to 'backend'.
2. Write a new file named backend/src/main/java/com/example/backend/model/User.java. It should be a JPA Entity for a "users" table.
3. Write a new file named backend/src/main/java/com/example/backend/repository/UserRepository.java. It should be a JpaRepository interface for the User entity.

**Example for SCAFFOLDING PLAN (react):**
1. Create a new React project using the create_react_vite_project tool with the project_name set to 'frontend'.
2. Create a new directory named frontend/src/components.
3. Write a new file named frontend/src/components/LoginForm.jsx. It should be a React component with a login form.
4. Overwrite the existing file named frontend/src/App.jsx to import and render the LoginForm component.

### RESPONSE FORMAT ###
Respond with a single JSON object and nothing else. No markdown fences, no commentary. The object must have exactly these fields:
{
  "high_level_design": "architecture overview: the major parts of the application and how they interact",
  "low_level_design": "concrete design: files, classes or components, endpoints, and data shapes",
  "plan": ["step 1 ...", "step 2 ...", "step 3 ..."]
}`

func buildPlanningPrompt(req Request) string {
	return fmt.Sprintf(planningTemplate, req.UserStories, req.ProjectType, req.Language)
}
