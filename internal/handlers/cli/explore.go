package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gabapcia/aethersight/internal/explorer"
	"github.com/gabapcia/aethersight/internal/infra/aethersight"
	"github.com/gabapcia/aethersight/internal/layout"
	transporthttp "github.com/gabapcia/aethersight/internal/pkg/transport/http"
	"github.com/gabapcia/aethersight/internal/pkg/x/chflow"
	"github.com/gabapcia/aethersight/internal/txlinks"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const exploreHelp = `commands:
  block N | range A B | next | prev
  zoom F [X Y] | pan DX DY
  hover X Y | click X Y | select ADDRESS | clear
  drag X1 Y1 X2 Y2 | settle | show | help | quit`

// exploreCommand returns a CLI command that runs an interactive explorer
// session. Commands are read line by line from stdin; the layout animates in
// the background between them.
//
// Usage example:
//
//	aethersight explore
//	aethersight explore --api http://localhost:8080 --number 100
func exploreCommand(links txlinks.Service, sceneOptions []explorer.Option) *cli.Command {
	return &cli.Command{
		Name:        "explore",
		Description: "Interactively navigate block transfer graphs from the terminal.",
		Usage:       "Reads explorer commands from stdin. Type 'help' for the command list.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api",
				Usage: "Read edges from a running aethersight API instead of the local cache",
			},
			&cli.Uint64Flag{
				Name:  "number",
				Usage: "Initial block",
				Value: explorer.DefaultBlock,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Format used by 'show': svg, json or yaml",
				Value: string(explorer.FormatJSON),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			format, err := explorer.ParseFormat(c.String("format"))
			if err != nil {
				return err
			}

			var source explorer.Source = links
			if api := c.String("api"); api != "" {
				source = aethersight.NewClient(api, transporthttp.NewClient())
			}

			out, errOut := c.Root().Writer, c.Root().ErrWriter
			opts := append([]explorer.Option{
				explorer.WithInitialBlock(c.Uint64("number")),
				explorer.WithAlerter(explorer.AlerterFunc(func(message string) {
					fmt.Fprintf(errOut, "alert: %s\n", message)
				})),
			}, sceneOptions...)

			session := explorer.NewSession(source, opts...)

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return session.Animate(gctx)
			})
			g.Go(func() error {
				defer cancel()

				_ = session.Open(gctx)
				printStatus(out, session.Scene())

				return explore(gctx, session, c.Root().Reader, out, format)
			})

			return g.Wait()
		},
	}
}

// explore runs the command loop until quit, end of input or ctx is done.
func explore(ctx context.Context, session *explorer.Session, in io.Reader, out io.Writer, format explorer.Format) error {
	scanner := bufio.NewScanner(in)
	lines := chflow.Lines(ctx, func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	})

	for {
		line, ok := chflow.Receive(ctx, lines)
		if !ok {
			if ctx.Err() != nil {
				return nil
			}
			return scanner.Err()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		quit, err := exploreStep(ctx, session, out, format, fields)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		}
		if quit {
			return nil
		}
	}
}

func exploreStep(ctx context.Context, session *explorer.Session, out io.Writer, format explorer.Format, fields []string) (bool, error) {
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil

	case "help":
		fmt.Fprintln(out, exploreHelp)

	case "block":
		n, err := uints(args, 1)
		if err != nil {
			return false, err
		}
		_ = session.ShowBlock(ctx, n[0])
		printStatus(out, session.Scene())

	case "range":
		n, err := uints(args, 2)
		if err != nil {
			return false, err
		}
		_ = session.ShowRange(ctx, n[0], n[1])
		printStatus(out, session.Scene())

	case "next":
		_ = session.Next(ctx)
		printStatus(out, session.Scene())

	case "prev":
		_ = session.Previous(ctx)
		printStatus(out, session.Scene())

	case "zoom":
		v, err := floats(args, 1, 3)
		if err != nil {
			return false, err
		}
		anchor := layout.Point{}
		if len(v) == 3 {
			anchor = layout.Point{X: v[1], Y: v[2]}
		}
		session.Zoom(v[0], anchor)
		fmt.Fprintln(out, session.Viewport())

	case "pan":
		v, err := floats(args, 2, 2)
		if err != nil {
			return false, err
		}
		session.Pan(v[0], v[1])
		fmt.Fprintln(out, session.Viewport())

	case "hover":
		p, err := point(args)
		if err != nil {
			return false, err
		}
		if session.Hover(p) {
			fmt.Fprintln(out, session.Scene().Tooltip.Text)
		} else {
			fmt.Fprintln(out, "no node")
		}

	case "click":
		p, err := point(args)
		if err != nil {
			return false, err
		}
		if _, ok := session.Click(p); !ok {
			fmt.Fprintln(out, "no node")
			return false, nil
		}
		printPanel(out, session.Scene().Panel)

	case "select":
		if len(args) != 1 {
			return false, fmt.Errorf("select takes an address")
		}
		session.Select(txlinks.Address(args[0]))
		printPanel(out, session.Scene().Panel)

	case "clear":
		session.ClearSelection()

	case "drag":
		v, err := floats(args, 4, 4)
		if err != nil {
			return false, err
		}
		id, ok := session.DragStart(layout.Point{X: v[0], Y: v[1]})
		if !ok {
			fmt.Fprintln(out, "no node")
			return false, nil
		}
		session.DragMove(layout.Point{X: v[2], Y: v[3]})
		session.DragEnd()
		fmt.Fprintf(out, "moved %s\n", id)

	case "settle":
		session.Settle(1000)
		printStatus(out, session.Scene())

	case "show":
		return false, explorer.Write(out, session.Scene(), format)

	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", cmd)
	}

	return false, nil
}

func printStatus(out io.Writer, scene explorer.Scene) {
	if scene.Message != nil {
		fmt.Fprintf(out, "%s | %s\n", scene.Label, scene.Message.Text)
		return
	}

	fmt.Fprintf(out, "%s | %d nodes, %d links\n", scene.Label, len(scene.Nodes), len(scene.Links))
}

func printPanel(out io.Writer, panel *explorer.Panel) {
	if panel == nil {
		return
	}

	fmt.Fprintf(out, "%s (%s)\n", panel.Address, panel.Href)
	fmt.Fprintf(out, "  outgoing (%d):\n", len(panel.Outgoing))
	for _, e := range panel.Outgoing {
		fmt.Fprintf(out, "    %s -> %s %s\n", e.Short, e.Counterparty, e.Href)
	}
	fmt.Fprintf(out, "  incoming (%d):\n", len(panel.Incoming))
	for _, e := range panel.Incoming {
		fmt.Fprintf(out, "    %s <- %s %s\n", e.Short, e.Counterparty, e.Href)
	}
}

func uints(args []string, n int) ([]uint64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d block numbers", n)
	}

	values := make([]uint64, n)
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid block number %q", a)
		}
		values[i] = v
	}

	return values, nil
}

func floats(args []string, minArgs, maxArgs int) ([]float64, error) {
	if len(args) < minArgs || len(args) > maxArgs {
		return nil, fmt.Errorf("expected %d to %d numbers", minArgs, maxArgs)
	}

	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		values[i] = v
	}

	return values, nil
}

func point(args []string) (layout.Point, error) {
	v, err := floats(args, 2, 2)
	if err != nil {
		return layout.Point{}, err
	}

	return layout.Point{X: v[0], Y: v[1]}, nil
}
