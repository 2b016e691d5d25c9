package clockplugin

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexisbeaulieu97/extendy/internal/host"
	"github.com/alexisbeaulieu97/extendy/internal/plugin"
)

type clockPlugin struct {
	now func() time.Time
}

// New creates the wall clock plugin.
func New() plugin.Plugin {
	return &clockPlugin{now: time.Now}
}

var _ plugin.Plugin = (*clockPlugin)(nil)

func (p *clockPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "clock",
		Version:     "1.0.0",
		Description: "Tells the current time in a handful of formats.",
	}
}

func (p *clockPlugin) Register(r *plugin.Registrator) error {
	if _, err := r.RegisterCommand("now", host.CommandFunc(p.printNow)); err != nil {
		return err
	}
	if _, err := r.RegisterService("now", host.ServiceFunc(p.currentTime)); err != nil {
		return err
	}
	return nil
}

func (p *clockPlugin) printNow(ctx context.Context, args []string) error {
	format := ""
	if len(args) > 0 {
		format = args[0]
	}

	rendered, err := p.render(format)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, rendered)
	return nil
}

func (p *clockPlugin) currentTime(ctx context.Context, args map[string]string) (any, error) {
	return p.render(args["format"])
}

func (p *clockPlugin) render(format string) (string, error) {
	now := p.now().UTC()

	switch format {
	case "", "rfc3339":
		return now.Format(time.RFC3339), nil
	case "unix":
		return fmt.Sprintf("%d", now.Unix()), nil
	case "kitchen":
		return now.Format(time.Kitchen), nil
	default:
		return "", fmt.Errorf("unknown time format %q (want rfc3339, unix, or kitchen)", format)
	}
}
