package workspace

import (
	"archive/zip"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) *Root {
	t.Helper()

	root, err := New(filepath.Join(t.TempDir(), "generated"))
	require.NoError(t, err)

	return root
}

func TestNewCreatesRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "generated")

	root, err := New(path)
	require.NoError(t, err)

	info, err := os.Stat(root.Path())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, filepath.IsAbs(root.Path()))
}

func TestResolveStaysInsideRoot(t *testing.T) {
	root := newTestRoot(t)

	abs, err := root.Resolve("demo", "src/main.go")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root.Path(), "demo", "src", "main.go"), abs)
}

func TestResolveRejectsEscapes(t *testing.T) {
	root := newTestRoot(t)

	cases := []struct {
		name  string
		parts []string
	}{
		{name: "parent traversal", parts: []string{"demo", "../../etc/passwd"}},
		{name: "bare traversal", parts: []string{".."}},
		{name: "sneaky traversal", parts: []string{"demo/../.."}},
		{name: "parent reference resolving inside root", parts: []string{"demo", "../other"}},
		{name: "absolute path", parts: []string{"/etc/passwd"}},
		{name: "absolute second segment", parts: []string{"demo", "/etc/passwd"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := root.Resolve(tc.parts...)
			assert.ErrorIs(t, err, ErrPathEscape)
		})
	}
}

func TestResolveEmptyReturnsRoot(t *testing.T) {
	root := newTestRoot(t)

	abs, err := root.Resolve()
	require.NoError(t, err)
	assert.Equal(t, root.Path(), abs)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	root := newTestRoot(t)

	content := "package main\n\nfunc main() {}\n"
	require.NoError(t, root.WriteFile(content, "demo", "src/main.go"))

	got, err := root.ReadFile("demo", "src/main.go")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// parents were created on the way
	info, err := os.Stat(filepath.Join(root.Path(), "demo", "src"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteFileOverwrites(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.WriteFile("first", "demo", "notes.txt"))
	require.NoError(t, root.WriteFile("second", "demo", "notes.txt"))

	got, err := root.ReadFile("demo", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestWriteFileRejectsTraversal(t *testing.T) {
	root := newTestRoot(t)

	err := root.WriteFile("nope", "demo", "../outside.txt")
	assert.ErrorIs(t, err, ErrPathEscape)

	// nothing was written next to the root
	_, statErr := os.Stat(filepath.Join(filepath.Dir(root.Path()), "outside.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestReadFileMissing(t *testing.T) {
	root := newTestRoot(t)

	_, err := root.ReadFile("demo", "missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMkdirIsIdempotent(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.Mkdir("demo", "src/components"))
	require.NoError(t, root.Mkdir("demo", "src/components"))

	info, err := os.Stat(filepath.Join(root.Path(), "demo", "src", "components"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestListMarksDirectories(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.Mkdir("demo", "src"))
	require.NoError(t, root.WriteFile("{}", "demo", "package.json"))

	names, err := root.List("demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json", "src/"}, names)
}

func TestListEmptyDirectory(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.Mkdir("demo"))

	names, err := root.List("demo")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestTreeNestedProject(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.WriteFile("export default function App() {}", "frontend", "src/App.jsx"))
	require.NoError(t, root.WriteFile("{}", "frontend", "package.json"))

	tree, err := root.Tree("frontend")
	require.NoError(t, err)

	assert.Equal(t, "frontend", tree.Name)
	assert.Equal(t, NodeTypeDirectory, tree.Type)
	require.Len(t, tree.Children, 2)

	// directories sort before files
	src := tree.Children[0]
	assert.Equal(t, "src", src.Name)
	assert.Equal(t, NodeTypeDirectory, src.Type)
	assert.Equal(t, "frontend/src", src.Path)
	require.Len(t, src.Children, 1)
	assert.Equal(t, "App.jsx", src.Children[0].Name)
	assert.Equal(t, "frontend/src/App.jsx", src.Children[0].Path)
	assert.Equal(t, NodeTypeFile, src.Children[0].Type)

	pkg := tree.Children[1]
	assert.Equal(t, "package.json", pkg.Name)
	assert.Equal(t, NodeTypeFile, pkg.Type)
	assert.Nil(t, pkg.Children)
}

func TestTreeMissingProject(t *testing.T) {
	root := newTestRoot(t)

	_, err := root.Tree("ghost")
	require.Error(t, err)
}

func TestTreeRejectsTraversal(t *testing.T) {
	root := newTestRoot(t)

	_, err := root.Tree("../secrets")
	assert.ErrorIs(t, err, ErrPathEscape)
}

func TestZipRoundTrip(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.WriteFile("console.log('hi')", "demo", "src/index.js"))
	require.NoError(t, root.WriteFile("# demo", "demo", "README.md"))
	require.NoError(t, root.Mkdir("demo", "public"))

	path, cleanup, err := root.Zip("demo")
	require.NoError(t, err)
	defer cleanup()

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()

	names := make(map[string]bool, len(reader.File))
	for _, f := range reader.File {
		names[f.Name] = true
	}

	assert.True(t, names["demo/src/index.js"])
	assert.True(t, names["demo/README.md"])
	assert.True(t, names["demo/public/"], "empty directories survive archiving")

	for _, f := range reader.File {
		if f.Name != "demo/README.md" {
			continue
		}

		rc, err := f.Open()
		require.NoError(t, err)

		buf := make([]byte, 16)
		n, _ := rc.Read(buf)
		rc.Close()

		assert.Equal(t, "# demo", string(buf[:n]))
	}
}

func TestZipCleanupRemovesArchive(t *testing.T) {
	root := newTestRoot(t)

	require.NoError(t, root.WriteFile("x", "demo", "a.txt"))

	path, cleanup, err := root.Zip("demo")
	require.NoError(t, err)

	cleanup()

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestZipMissingProject(t *testing.T) {
	root := newTestRoot(t)

	_, _, err := root.Zip("ghost")
	require.Error(t, err)
}
