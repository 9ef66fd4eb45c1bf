package cli

import (
	"testing"

	"github.com/matzehuels/babelgraph/pkg/buildinfo"
)

func TestSetVersion(t *testing.T) {
	v, c, d := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() { SetVersion(v, c, d) })

	SetVersion("1.0.0", "abc123", "2024-01-01")

	if buildinfo.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", buildinfo.Version, "1.0.0")
	}
	if buildinfo.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", buildinfo.Commit, "abc123")
	}
	if buildinfo.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", buildinfo.Date, "2024-01-01")
	}
	if got := buildinfo.Resolved(); got != "1.0.0" {
		t.Errorf("Resolved() = %q, want %q", got, "1.0.0")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(discard{}, LogInfo).RootCommand()

	for _, name := range []string{"generate", "layout", "relax", "analyze", "export", "info", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
