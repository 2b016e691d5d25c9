package sysinfoplugin

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/alexisbeaulieu97/extendy/internal/host"
	"github.com/alexisbeaulieu97/extendy/internal/plugin"
)

type sysInfoPlugin struct{}

// New creates the system facts plugin.
func New() plugin.Plugin {
	return &sysInfoPlugin{}
}

var _ plugin.Plugin = (*sysInfoPlugin)(nil)

func (p *sysInfoPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "sysinfo",
		Version:     "1.1.0",
		Description: "Reports facts about the machine running the host.",
	}
}

// Register contributes both a command and a service under the same name;
// the two live in separate kind namespaces and never conflict.
func (p *sysInfoPlugin) Register(r *plugin.Registrator) error {
	if _, err := r.RegisterCommand("host-info", host.CommandFunc(printHostInfo), plugin.WithVersion("1.1.0")); err != nil {
		return err
	}
	if _, err := r.RegisterService("host-info", host.ServiceFunc(hostInfo), plugin.WithVersion("1.1.0")); err != nil {
		return err
	}
	return nil
}

func collect() map[string]any {
	hostname, _ := os.Hostname()

	return map[string]any{
		"hostname":   hostname,
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"cpus":       runtime.NumCPU(),
		"go_version": runtime.Version(),
		"pid":        os.Getpid(),
	}
}

func printHostInfo(ctx context.Context, args []string) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	facts := collect()
	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(os.Stdout, "%-11s %v\n", k+":", facts[k])
	}

	return nil
}

func hostInfo(ctx context.Context, args map[string]string) (any, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return collect(), nil
}
