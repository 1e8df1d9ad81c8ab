package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/viewkit/pkg/logger"
	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// maxLineLength bounds a single stdin line.
const maxLineLength = 1 << 20

type record struct {
	UserAgent string              `json:"user_agent" yaml:"user_agent"`
	Result    useragent.UserAgent `json:"result" yaml:"result"`
	Tokens    []tokenRecord       `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

type tokenRecord struct {
	Name  string `json:"name" yaml:"name"`
	Next  string `json:"next" yaml:"next"`
	Major string `json:"major,omitempty" yaml:"major,omitempty"`
	Minor string `json:"minor,omitempty" yaml:"minor,omitempty"`
}

type encoder interface {
	Encode(v any) error
}

func newEncoder(format string, w io.Writer) (encoder, error) {
	switch strings.ToLower(format) {
	case "json":
		return json.NewEncoder(w), nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Classify User-Agent strings given as arguments or on stdin",
		ArgsUsage: "[UA...]",
		Description: `Each argument is classified separately. Without arguments every non-blank
stdin line is one User-Agent string. Results are written one per document.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "json",
				Usage:   "Output format: json or yaml",
			},
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "Include the tokenizer output for each input",
			},
			keywordsFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := stdout(cmd)
			enc, err := newEncoder(cmd.String("format"), out)
			if err != nil {
				return err
			}
			if c, ok := enc.(io.Closer); ok {
				defer c.Close()
			}

			table, err := loadTable(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			p := useragent.New(table, useragent.WithLogger(log))
			withTokens := cmd.Bool("tokens")

			emit := func(ua string) error {
				rec := record{UserAgent: ua, Result: p.Parse(ua)}
				if withTokens {
					rec.Tokens = collectTokens(ua)
				}
				return enc.Encode(rec)
			}

			if args := cmd.Args().Slice(); len(args) > 0 {
				for _, ua := range args {
					if err := emit(ua); err != nil {
						return err
					}
				}
				return nil
			}

			sc := bufio.NewScanner(stdin(cmd))
			sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
			n := 0
			for sc.Scan() {
				if err := ctx.Err(); err != nil {
					return err
				}
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if err := emit(line); err != nil {
					return err
				}
				n++
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			log.DebugContext(ctx, "classified input", logger.Source("stdin"), logger.Component("parse"), slog.Int("lines", n))
			return nil
		},
	}
}

func collectTokens(ua string) []tokenRecord {
	var out []tokenRecord
	for tok := range useragent.Tokens(ua) {
		out = append(out, tokenRecord{
			Name:  tok.Name,
			Next:  string(tok.Next),
			Major: tok.Major,
			Minor: tok.Minor,
		})
	}
	return out
}
