package cli

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/aethersight/internal/txlinks"

	"github.com/urfave/cli/v3"
)

func printEdges(c *cli.Command, list txlinks.EdgeList) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// blockCommand returns a CLI command that prints the edge list of a block.
//
// Usage example:
//
//	aethersight block --number 24041818
//	aethersight block --number 24041818 --legacy
func blockCommand(links txlinks.Service) *cli.Command {
	return &cli.Command{
		Name:        "block",
		Description: "Print the transfer edges of a single block as JSON.",
		Usage:       "Prints {from, to, hash} edges, or {from: to} pairs with --legacy.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "number",
				Usage:    "Block number",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "legacy",
				Usage: "Print the legacy {from: to} shape without hashes",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			n := c.Uint64("number")

			var (
				list txlinks.EdgeList
				err  error
			)
			if c.Bool("legacy") {
				list, err = links.Block(ctx, n)
			} else {
				list, err = links.Range(ctx, n, n)
			}
			if err != nil {
				return err
			}

			return printEdges(c, list)
		},
	}
}

// rangeCommand returns a CLI command that prints the edge list of a block
// range.
//
// Usage example:
//
//	aethersight range --start 100 --end 102
func rangeCommand(links txlinks.Service) *cli.Command {
	return &cli.Command{
		Name:        "range",
		Description: "Print the transfer edges of an inclusive block range as JSON.",
		Usage:       "Prints {from, to, hash} edges in block order. Must provide both start and end.",
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
			list, err := links.Range(ctx, c.Uint64("start"), c.Uint64("end"))
			if err != nil {
				return err
			}

			return printEdges(c, list)
		},
	}
}
