package cli

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gabapcia/aethersight/internal/edgeexport"
	"github.com/gabapcia/aethersight/internal/explorer"
	"github.com/gabapcia/aethersight/internal/txlinks"

	"github.com/urfave/cli/v3"
)

// ErrExportUnavailable is returned by the export command when no exporter
// was configured.
var ErrExportUnavailable = errors.New("edge export is not configured")

// ExporterFunc connects the edge exporter. The returned close function
// releases its connections.
type ExporterFunc func(ctx context.Context) (edgeexport.Service, func() error, error)

type config struct {
	addr         string
	exporter     ExporterFunc
	sceneOptions []explorer.Option
}

// Option configures the CLI application.
type Option func(*config)

// WithAddr sets the address the serve command listens on.
//
// Default: ":8080".
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithExporter enables the export command.
func WithExporter(f ExporterFunc) Option {
	return func(c *config) {
		c.exporter = f
	}
}

// WithSceneOptions sets the explorer options used by render and explore.
func WithSceneOptions(opts ...explorer.Option) Option {
	return func(c *config) {
		c.sceneOptions = append(c.sceneOptions, opts...)
	}
}

// newApp builds the command tree.
func newApp(links txlinks.Service, handler http.Handler, opts ...Option) *cli.Command {
	cfg := config{
		addr: ":8080",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "aethersight",
		Description:           "Explore the transfer graph of Ethereum blocks.",
		Usage:                 "aethersight [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(cfg.addr, handler),
			blockCommand(links),
			rangeCommand(links),
			renderCommand(links, cfg.sceneOptions),
			exploreCommand(links, cfg.sceneOptions),
			exportCommand(cfg.exporter),
		},
	}
}

// Run initializes and executes the aethersight CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Serves the HTTP API until interrupted.
//   - `block`: Prints the edge list of one block.
//   - `range`: Prints the edge list of a block range.
//   - `render`: Lays out a block or range and writes the settled scene.
//   - `explore`: Runs an interactive explorer session driven by stdin.
//   - `export`: Publishes the edges of a block range to Kafka.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - links: The txlinks service used by the data commands.
//   - handler: The HTTP API served by `serve`.
func Run(ctx context.Context, links txlinks.Service, handler http.Handler, opts ...Option) error {
	return newApp(links, handler, opts...).Run(ctx, os.Args)
}
