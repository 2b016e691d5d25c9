package manifest

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	extendyerrors "github.com/alexisbeaulieu97/extendy/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads a manifest file from disk, validates it, and returns the resulting model.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, extendyerrors.NewParseError(path, 0, err)
	}

	return ParseBytes(path, data)
}

// ParseBytes decodes and validates manifest content that is already in
// memory. The path is only used for error reporting.
func ParseBytes(path string, data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, extendyerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
