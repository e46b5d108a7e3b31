// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this directory before building. Go's
// //go:embed bakes it into the binary, so the generated README and the
// registry author attribution follow the fork without any runtime config.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	Tagline     string `yaml:"tagline"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	InstallDir  string `yaml:"install_dir"`
	Author      string `yaml:"author"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "skillhub",
			DisplayName: "CCW Skill Hub",
			Description: "Index and document the skills in a skill hub repository",
			Tagline:     "A collection of reusable Claude Code skills for enhanced development workflows.",
			EnvPrefix:   "SKILLHUB",
			GoModule:    "github.com/ccw-labs/skillhub",
			GitHubRepo:  "catlog22/skill-hub",
			InstallDir:  "~/.ccw/skills",
			Author:      "CCW Team",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "skillhub").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable hub title used as the README heading.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// Tagline returns the one-line summary printed under the README heading.
func Tagline() string { load(); return defaults.Tagline }

// EnvPrefix returns the environment variable prefix (e.g., "SKILLHUB").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string of the hub repository.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// RepoURL returns the clone URL of the hub repository.
func RepoURL() string { return "https://github.com/" + GitHubRepo() + ".git" }

// RepoName returns the last path segment of GitHubRepo (e.g., "skill-hub").
func RepoName() string {
	repo := GitHubRepo()
	if i := strings.LastIndex(repo, "/"); i >= 0 {
		return repo[i+1:]
	}
	return repo
}

// InstallDir returns the directory users copy skills into.
func InstallDir() string { load(); return defaults.InstallDir }

// Author returns the default author attributed to every catalog record.
func Author() string { load(); return defaults.Author }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("root") → "SKILLHUB_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
