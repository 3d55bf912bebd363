package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"helios/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "contracts", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want manifest in %q", path, root)
	}
}

func TestFindMissing(t *testing.T) {
	_, ok, err := project.Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Error("no manifest should be found in an empty tree")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "token"

[sources]
include = ["contracts"]
exclude = ["contracts/mocks"]

remappings = ["@oz/=lib/openzeppelin/"]

[diagnostics]
max = 50
no_warnings = true
`)

	m, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Package.Name != "token" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
	if m.Config.Diagnostics.Max != 50 || !m.Config.Diagnostics.NoWarnings {
		t.Errorf("diagnostics = %+v", m.Config.Diagnostics)
	}
	if m.Root != dir {
		t.Errorf("Root = %q, want %q", m.Root, dir)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"x\"\ntypo_key = 1\n")
	if _, err := project.Load(path); err == nil {
		t.Error("unknown keys should be an error")
	}
}

func TestLoadRejectsMalformedRemapping(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "remappings = [\"no-equals-sign\"]\n")
	if _, err := project.Load(path); err == nil {
		t.Error("remapping without '=' should be an error")
	}
}

func TestApplyRemappings(t *testing.T) {
	m := &project.Manifest{Config: project.Config{Remappings: []string{
		"@oz/=lib/openzeppelin/",
		"@oz/utils/=lib/oz-utils/",
	}}}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "basic prefix", in: "@oz/token/ERC20.sol", want: "lib/openzeppelin/token/ERC20.sol"},
		{name: "longest prefix wins", in: "@oz/utils/Strings.sol", want: "lib/oz-utils/Strings.sol"},
		{name: "no match unchanged", in: "./local.sol", want: "./local.sol"},
		{name: "exact prefix", in: "@oz/", want: "lib/openzeppelin/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ApplyRemappings(tt.in); got != tt.want {
				t.Errorf("ApplyRemappings(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSourceDirsDefault(t *testing.T) {
	m := &project.Manifest{Root: "/proj"}
	dirs := m.SourceDirs()
	if len(dirs) != 1 || dirs[0] != "/proj" {
		t.Errorf("SourceDirs = %v, want just the root", dirs)
	}
}

func TestExcluded(t *testing.T) {
	m := &project.Manifest{
		Root: "/proj",
		Config: project.Config{Sources: project.SourcesConfig{
			Exclude: []string{"mocks", "*.t.sol"},
		}},
	}
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "dir prefix", path: "/proj/mocks/Fake.sol", want: true},
		{name: "glob", path: "/proj/Token.t.sol", want: true},
		{name: "kept", path: "/proj/Token.sol", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Excluded(tt.path); got != tt.want {
				t.Errorf("Excluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCombineDeterministic(t *testing.T) {
	a := project.HashBytes([]byte("content"))
	d1 := project.HashBytes([]byte("dep1"))
	d2 := project.HashBytes([]byte("dep2"))

	if project.Combine(a, d1, d2) != project.Combine(a, d1, d2) {
		t.Error("Combine must be deterministic")
	}
	if project.Combine(a, d1, d2) == project.Combine(a, d2, d1) {
		t.Error("Combine must be order-sensitive")
	}
	if project.Combine(a) == a {
		t.Error("Combine must re-hash even without extras")
	}
}
