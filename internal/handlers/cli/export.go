package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// exportCommand returns a CLI command that publishes the edges of a block
// range to the configured stream.
//
// Usage example:
//
//	aethersight export --start 100 --end 102
func exportCommand(exporter ExporterFunc) *cli.Command {
	return &cli.Command{
		Name:        "export",
		Description: "Publish the transfer edges of an inclusive block range to Kafka.",
		Usage:       "Exports one message per edge. Must provide both start and end.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "start",
				Usage:    "First block of the range",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "end",
				Usage:    "Last block of the range",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if exporter == nil {
				return ErrExportUnavailable
			}

			svc, closeFn, err := exporter(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := svc.Export(ctx, c.Uint64("start"), c.Uint64("end"))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "exported %d edges\n", n)
			return nil
		},
	}
}
