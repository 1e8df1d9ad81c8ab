package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/viewkit/pkg/config"
	"github.com/dmitrymomot/viewkit/pkg/logger"
	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

const name = "uaparse"

var (
	// overridden during build with ldflags
	version = "dev"
)

// Option configures the root command, mainly for tests.
type Option func(*cli.Command)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(c *cli.Command) {
		c.Reader = in
		c.Writer = out
		c.ErrWriter = errOut
	}
}

// New returns the uaparse command tree.
func New(opts ...Option) *cli.Command {
	root := &cli.Command{
		Name:    name,
		Version: version,
		Usage:   "Classify HTTP User-Agent strings",
		Description: `uaparse turns User-Agent headers into a browser, rendering engine,
operating system and device category using a keyword table.

# Examples

Classify a header:
  uaparse parse "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/91.0"

Classify one header per line from a log extract, as YAML:
  cut -f7 access.tsv | uaparse parse --format yaml

Validate a custom keyword table before deploying it:
  uaparse keywords check ./keywords.txt`,
		Commands: []*cli.Command{
			parseCmd(),
			keywordsCmd(),
		},
	}
	for _, opt := range opts {
		opt(root)
	}
	return root
}

// keywordsFlag is built per command: flags keep parse state.
func keywordsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "keywords",
		Aliases: []string{"k"},
		Usage:   "Path to a keyword table replacing the packaged one",
		Sources: cli.EnvVars("UA_KEYWORDS_FILE"),
	}
}

// newLogger writes diagnostics to stderr so stdout stays machine-readable.
// An invalid LOG_LEVEL is reported as an error.
func newLogger(cmd *cli.Command) (*slog.Logger, error) {
	var app config.App
	if err := config.Load(&app); err != nil {
		app = config.App{Env: logger.EnvDevelopment}
	}
	errOut := cmd.Root().ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}
	opts := []logger.Option{
		logger.WithEnvironment(app.Env, name),
		logger.WithTextFormatter(),
		logger.WithOutput(errOut),
	}
	if strings.TrimSpace(app.LogLevel) != "" {
		level, err := logger.ParseLevel(app.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

// loadTable returns the table named by --keywords, or the packaged one.
func loadTable(cmd *cli.Command) (*useragent.Table, error) {
	path := cmd.String("keywords")
	if path == "" {
		return useragent.DefaultTable(), nil
	}
	return useragent.LoadTableFile(path)
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

// Run executes the command tree against os.Args.
func Run(ctx context.Context, args []string, opts ...Option) error {
	return New(opts...).Run(ctx, args)
}
