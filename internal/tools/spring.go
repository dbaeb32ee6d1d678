package tools

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Sidharth-A-691/code-generator/internal/logger"
	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

const (
	defaultInitializrURL = "https://start.spring.io/starter.zip"

	springBootVersion      = "3.3.1"
	springBootDependencies = "web,data-jpa,lombok"
)

// SpringBootTool bootstraps a Maven Spring Boot project by fetching a
// starter archive from the Spring Initializr service and unpacking it into
// a directory named after the artifact id.
type SpringBootTool struct {
	BaseURL string
	Client  *http.Client
}

func NewSpringBootTool() *SpringBootTool {
	return &SpringBootTool{
		BaseURL: defaultInitializrURL,
		Client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

func (t *SpringBootTool) Name() string { return "create_springboot_project" }

func (t *SpringBootTool) Description() string {
	return "Creates a standard Maven Spring Boot project in a new directory named after the artifact_id. It uses start.spring.io to generate a zip file with a default project structure (including pom.xml and a main application class) and then unzips it. Use this as the first step for a Spring Boot backend."
}

func (t *SpringBootTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"group_id": map[string]any{
				"type":        "string",
				"description": "The Java package group ID for the project. Defaults to 'com.example'.",
			},
			"artifact_id": map[string]any{
				"type":        "string",
				"description": "The name and directory for the project. Defaults to 'backend'.",
			},
		},
		"required": []string{},
	}
}

func (t *SpringBootTool) Execute(ctx context.Context, root *workspace.Root, args map[string]any) (string, error) {
	groupID, err := stringArgDefault(args, "group_id", "com.example")
	if err != nil {
		return "", err
	}

	artifactID, err := stringArgDefault(args, "artifact_id", "backend")
	if err != nil {
		return "", err
	}

	// the artifact id becomes the project directory, so it must resolve
	// inside the output root before anything is downloaded
	if _, err := root.Resolve(artifactID); err != nil {
		return "", err
	}

	logger.Info("requesting spring boot starter", "artifact_id", artifactID, "group_id", groupID)

	archivePath, err := t.download(ctx, groupID, artifactID)
	if err != nil {
		return "", fmt.Errorf("creating Spring Boot project: %w", err)
	}
	defer os.Remove(archivePath)

	if err := extractArchive(root, archivePath); err != nil {
		return "", fmt.Errorf("creating Spring Boot project: %w", err)
	}

	logger.Info("spring boot starter unpacked", "artifact_id", artifactID)

	return fmt.Sprintf("Spring Boot project '%s' created successfully in the ./%s/ directory.", artifactID, artifactID), nil
}

// fetches the starter archive into a temp file and returns its path
func (t *SpringBootTool) download(ctx context.Context, groupID, artifactID string) (string, error) {
	params := url.Values{}
	params.Set("type", "maven-project")
	params.Set("language", "java")
	params.Set("bootVersion", springBootVersion)
	params.Set("baseDir", artifactID)
	params.Set("groupId", groupID)
	params.Set("artifactId", artifactID)
	params.Set("name", artifactID)
	params.Set("dependencies", springBootDependencies)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build initializr request: %w", err)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("initializr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return "", fmt.Errorf("initializr returned status %d: %s", resp.StatusCode, string(body))
	}

	tmp, err := os.CreateTemp("", artifactID+"-*.zip")
	if err != nil {
		return "", fmt.Errorf("failed to create archive file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return "", fmt.Errorf("failed to download starter archive: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return "", fmt.Errorf("failed to finalize starter archive: %w", err)
	}

	return tmp.Name(), nil
}

// unpacks the archive beneath the output root; every entry name resolves
// through the root first, so a crafted archive cannot escape it
func extractArchive(root *workspace.Root, archivePath string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open starter archive: %w", err)
	}
	defer reader.Close()

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			if err := root.Mkdir(entry.Name); err != nil {
				return fmt.Errorf("failed to unpack %q: %w", entry.Name, err)
			}

			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("failed to unpack %q: %w", entry.Name, err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()

		if err != nil {
			return fmt.Errorf("failed to unpack %q: %w", entry.Name, err)
		}

		if err := root.WriteFile(string(content), entry.Name); err != nil {
			return fmt.Errorf("failed to unpack %q: %w", entry.Name, err)
		}
	}

	return nil
}
