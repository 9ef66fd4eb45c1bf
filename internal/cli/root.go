package cli

import (
	"context"
	"os"

	"github.com/matzehuels/babelgraph/pkg/buildinfo"
)

// SetVersion overrides the build information shown by --version. It is an
// alternative to setting the buildinfo variables through ldflags.
func SetVersion(v, c, d string) {
	buildinfo.Version = v
	buildinfo.Commit = c
	buildinfo.Date = d
}

// Execute runs the babelgraph CLI with a logger on stderr at info level.
// --verbose raises the level to debug.
func Execute(ctx context.Context) error {
	return New(os.Stderr, LogInfo).RootCommand().ExecuteContext(ctx)
}
