package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

// ErrMissingPath is returned when a command needs a file argument.
var ErrMissingPath = errors.New("missing keyword table path")

func keywordsCmd() *cli.Command {
	return &cli.Command{
		Name:  "keywords",
		Usage: "Inspect keyword tables",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Validate a keyword table file",
				ArgsUsage: "FILE",
				Description: `Loads FILE with the same rules the parser uses and reports the first
defect with its line number. Exits non-zero when the table is invalid.`,
				Action: func(_ context.Context, cmd *cli.Command) error {
					path := cmd.Args().First()
					if path == "" {
						return ErrMissingPath
					}
					table, err := useragent.LoadTableFile(path)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(stdout(cmd), "%s: %d rules ok\n", path, table.Len())
					return err
				},
			},
			{
				Name:  "dump",
				Usage: "Print a keyword table in canonical form",
				Description: `Writes one rule per line with tokens sorted. The output loads back into
an identical table, which makes it suitable for diffing edits.`,
				Flags: []cli.Flag{keywordsFlag()},
				Action: func(_ context.Context, cmd *cli.Command) error {
					table, err := loadTable(cmd)
					if err != nil {
						return err
					}
					_, err = table.WriteTo(stdout(cmd))
					return err
				},
			},
		},
	}
}
