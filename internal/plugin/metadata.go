package plugin

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	namePattern   = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// Metadata describes plugin identity.
type Metadata struct {
	Name        string
	Version     string
	Description string
}

// Validate ensures metadata is well-formed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("plugin metadata requires a non-empty Name")
	}
	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("plugin name '%s' is invalid (lowercase letters, digits, '_' or '-', starting with a letter)", m.Name)
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("plugin '%s' metadata requires Version", m.Name)
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("plugin '%s' has invalid Version '%s' (expected format: X.Y.Z)", m.Name, m.Version)
	}
	return nil
}
