package loader

import (
	"os"
	"strings"
)

// FailurePolicy controls how a loading session responds to a plugin
// whose metadata or registration fails hard. Conflicts between plugins
// are never failures; they resolve to outcomes.
type FailurePolicy string

const (
	// FailHalt stops the session at the first failed plugin.
	FailHalt FailurePolicy = "halt"
	// FailContinue records the failure and keeps loading the remaining
	// plugins.
	FailContinue FailurePolicy = "continue"
)

// Options configures a loading session.
type Options struct {
	// Parallel bounds how many plugins register concurrently. Values
	// below 2 select the sequential path, which follows discovery order
	// exactly.
	Parallel int
	// OnFailure selects the failure policy for the session.
	OnFailure FailurePolicy
}

// DefaultOptions returns environment-aware defaults: CI halts on the
// first failed plugin, interactive sessions keep going.
func DefaultOptions() Options {
	if isCIEnvironment() {
		return Options{OnFailure: FailHalt}
	}

	return Options{OnFailure: FailContinue}
}

func isCIEnvironment() bool {
	ciEnvVars := []string{
		"CI",
		"CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_HOME",
	}

	for _, key := range ciEnvVars {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" && strings.ToLower(value) != "false" && value != "0" {
			return true
		}
	}

	return false
}
