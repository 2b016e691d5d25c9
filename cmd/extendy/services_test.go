package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServicesCommand_TableOutput(t *testing.T) {
	stdout, err := executeCLI("services")
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "now")
	require.Contains(t, stdout, "repo-info")
	require.Contains(t, stdout, "host-info")
}

func TestServicesCommand_JSONOutput(t *testing.T) {
	stdout, err := executeCLI("services", "--json")
	require.NoError(t, err)

	var payload struct {
		Version string `json:"version"`
		Kind    string `json:"kind"`
		Count   int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "service", payload.Kind)
	require.Equal(t, 3, payload.Count)
}

func TestServicesCommand_EmptySession(t *testing.T) {
	path := writeSessionManifest(t, `version: "1.0"
name: empty session
`)

	stdout, err := executeCLI("--manifest", path, "services")
	require.NoError(t, err)
	require.Contains(t, stdout, "No services registered this session.")
}
