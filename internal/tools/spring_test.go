package tools

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidharth-A-691/code-generator/internal/workspace"
)

// builds a starter-style archive in memory: entries prefixed with the
// baseDir the way start.spring.io lays them out
func starterArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)

		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestSpringBootToolCreatesProject(t *testing.T) {
	root := newTestRoot(t)

	archive := starterArchive(t, map[string]string{
		"backend/pom.xml": "<project/>",
		"backend/src/main/java/com/example/backend/BackendApplication.java": "public class BackendApplication {}",
	})

	var gotQuery map[string]string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Write(archive)
	}))
	defer upstream.Close()

	tool := NewSpringBootTool()
	tool.BaseURL = upstream.URL

	result, err := tool.Execute(context.Background(), root, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Spring Boot project 'backend' created successfully in the ./backend/ directory.", result)

	assert.Equal(t, "maven-project", gotQuery["type"])
	assert.Equal(t, "java", gotQuery["language"])
	assert.Equal(t, "3.3.1", gotQuery["bootVersion"])
	assert.Equal(t, "backend", gotQuery["baseDir"])
	assert.Equal(t, "com.example", gotQuery["groupId"])
	assert.Equal(t, "web,data-jpa,lombok", gotQuery["dependencies"])

	pom, err := root.ReadFile("backend/pom.xml")
	require.NoError(t, err)
	assert.Equal(t, "<project/>", pom)

	app, err := root.ReadFile("backend/src/main/java/com/example/backend/BackendApplication.java")
	require.NoError(t, err)
	assert.Equal(t, "public class BackendApplication {}", app)
}

func TestSpringBootToolCustomIdentifiers(t *testing.T) {
	root := newTestRoot(t)

	archive := starterArchive(t, map[string]string{"api/pom.xml": "<project/>"})

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "api", r.URL.Query().Get("artifactId"))
		assert.Equal(t, "io.acme", r.URL.Query().Get("groupId"))
		w.Write(archive)
	}))
	defer upstream.Close()

	tool := NewSpringBootTool()
	tool.BaseURL = upstream.URL

	result, err := tool.Execute(context.Background(), root, map[string]any{
		"group_id":    "io.acme",
		"artifact_id": "api",
	})
	require.NoError(t, err)
	assert.Equal(t, "Spring Boot project 'api' created successfully in the ./api/ directory.", result)
}

func TestSpringBootToolUpstreamFailure(t *testing.T) {
	root := newTestRoot(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown dependency", http.StatusBadRequest)
	}))
	defer upstream.Close()

	tool := NewSpringBootTool()
	tool.BaseURL = upstream.URL

	_, err := tool.Execute(context.Background(), root, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")

	// nothing was unpacked
	entries, listErr := root.List(".")
	require.NoError(t, listErr)
	assert.Empty(t, entries)
}

func TestSpringBootToolRejectsZipSlip(t *testing.T) {
	root := newTestRoot(t)

	archive := starterArchive(t, map[string]string{
		"../evil.txt": "pwned",
	})

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer upstream.Close()

	tool := NewSpringBootTool()
	tool.BaseURL = upstream.URL

	_, err := tool.Execute(context.Background(), root, map[string]any{})
	require.Error(t, err)
	assert.ErrorIs(t, err, workspace.ErrPathEscape)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(root.Path()), "evil.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSpringBootToolRejectsEscapingArtifactID(t *testing.T) {
	root := newTestRoot(t)

	tool := NewSpringBootTool()
	tool.BaseURL = "http://127.0.0.1:1" // must never be contacted

	_, err := tool.Execute(context.Background(), root, map[string]any{
		"artifact_id": "../backend",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, workspace.ErrPathEscape)
}
