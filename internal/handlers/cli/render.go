package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/gabapcia/aethersight/internal/explorer"
	"github.com/gabapcia/aethersight/internal/txlinks"

	"github.com/urfave/cli/v3"
)

// ErrSelectionRequired is returned when neither a block nor a full range is
// given.
var ErrSelectionRequired = errors.New("either --number or both --start and --end are required")

// selectionFlags select a block or a range.
func selectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:  "number",
			Usage: "Block number",
		},
		&cli.Uint64Flag{
			Name:  "start",
			Usage: "First block of the range",
		},
		&cli.Uint64Flag{
			Name:  "end",
			Usage: "Last block of the range",
		},
	}
}

// showSelection loads the block or range chosen by the selection flags.
func showSelection(ctx context.Context, c *cli.Command, session *explorer.Session) error {
	switch {
	case c.IsSet("number"):
		return session.ShowBlock(ctx, c.Uint64("number"))
	case c.IsSet("start") && c.IsSet("end"):
		return session.ShowRange(ctx, c.Uint64("start"), c.Uint64("end"))
	default:
		return ErrSelectionRequired
	}
}

// renderCommand returns a CLI command that lays out a block or range without
// animation and writes the settled scene.
//
// Usage example:
//
//	aethersight render --number 24041818 --format svg --output block.svg
//	aethersight render --start 100 --end 102 --format yaml
func renderCommand(links txlinks.Service, sceneOptions []explorer.Option) *cli.Command {
	flags := append(selectionFlags(),
		&cli.StringFlag{
			Name:  "format",
			Usage: "Scene format: svg, json or yaml",
			Value: string(explorer.FormatSVG),
		},
		&cli.IntFlag{
			Name:  "max-ticks",
			Usage: "Upper bound on layout ticks",
			Value: 1000,
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "File to write instead of stdout",
		},
	)

	return &cli.Command{
		Name:        "render",
		Description: "Lay out the transfer graph of a block or range and write the settled scene.",
		Usage:       "Renders --number N, or --start A --end B, as svg, json or yaml.",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			format, err := explorer.ParseFormat(c.String("format"))
			if err != nil {
				return err
			}

			session := explorer.NewSession(links, sceneOptions...)
			if err := showSelection(ctx, c, session); err != nil {
				return err
			}

			session.Settle(c.Int("max-ticks"))

			var w io.Writer = c.Root().Writer
			if path := c.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return explorer.Write(w, session.Scene(), format)
		},
	}
}
