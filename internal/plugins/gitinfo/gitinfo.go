package gitinfoplugin

import (
	"context"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/extendy/internal/host"
	"github.com/alexisbeaulieu97/extendy/internal/plugin"
)

type gitInfoPlugin struct{}

// New creates the git inspection plugin.
func New() plugin.Plugin {
	return &gitInfoPlugin{}
}

var _ plugin.Plugin = (*gitInfoPlugin)(nil)

func (p *gitInfoPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "gitinfo",
		Version:     "1.0.0",
		Description: "Inspects the git repository around the working directory.",
	}
}

func (p *gitInfoPlugin) Register(r *plugin.Registrator) error {
	if _, err := r.RegisterCommand("repo-status", host.CommandFunc(repoStatus), plugin.WithVersion("1.0.0")); err != nil {
		return err
	}
	if _, err := r.RegisterService("repo-info", host.ServiceFunc(repoInfo), plugin.WithVersion("1.0.0")); err != nil {
		return err
	}
	return nil
}

// repoFacts is the inspection result shared by the command and service.
type repoFacts struct {
	Branch string
	Head   string
	Remote string
	Clean  bool
	Dirty  int
}

func repoStatus(ctx context.Context, args []string) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}

	facts, err := inspect(dir)
	if err != nil {
		return err
	}

	branch := facts.Branch
	if branch == "" {
		branch = "(no commits yet)"
	}

	fmt.Fprintf(os.Stdout, "branch:  %s\n", branch)
	if facts.Head != "" {
		fmt.Fprintf(os.Stdout, "head:    %s\n", facts.Head)
	}
	if facts.Remote != "" {
		fmt.Fprintf(os.Stdout, "remote:  %s\n", facts.Remote)
	}
	if facts.Clean {
		fmt.Fprintln(os.Stdout, "worktree: clean")
	} else {
		fmt.Fprintf(os.Stdout, "worktree: %d changed path(s)\n", facts.Dirty)
	}

	return nil
}

func repoInfo(ctx context.Context, args map[string]string) (any, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	dir := args["dir"]
	if dir == "" {
		dir = "."
	}

	facts, err := inspect(dir)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"branch": facts.Branch,
		"head":   facts.Head,
		"remote": facts.Remote,
		"clean":  facts.Clean,
		"dirty":  facts.Dirty,
	}, nil
}

func inspect(dir string) (*repoFacts, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("cannot open git repository at %s: %w", dir, err)
	}

	facts := &repoFacts{}

	// Head fails on a repository with no commits; that is not an error
	// for inspection purposes.
	if head, err := repo.Head(); err == nil {
		facts.Branch = head.Name().Short()
		facts.Head = head.Hash().String()
	}

	if remote, err := repo.Remote("origin"); err == nil && len(remote.Config().URLs) > 0 {
		facts.Remote = remote.Config().URLs[0]
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			facts.Clean = status.IsClean()
			facts.Dirty = len(status)
		}
	}

	return facts, nil
}
