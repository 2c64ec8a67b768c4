// Package explorer is the interactive graph view: it loads edge lists for a
// block or a range, builds the graph, drives its layout and keeps the
// viewport, hover, drag and selection state. Every change is pushed to a
// Renderer as a complete Scene.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gabapcia/aethersight/internal/layout"
	"github.com/gabapcia/aethersight/internal/pkg/logger"
	"github.com/gabapcia/aethersight/internal/txgraph"
	"github.com/gabapcia/aethersight/internal/txlinks"
)

// DefaultBlock is the block shown when a session opens.
const DefaultBlock uint64 = 24041818

var (
	// ErrInvalidRange is returned by ShowRange when start > end.
	ErrInvalidRange = errors.New("invalid block range")

	// ErrNoPreviousBlock is returned by Previous on block 0.
	ErrNoPreviousBlock = errors.New("no block before genesis")
)

// Source loads edge lists.
type Source interface {
	Block(ctx context.Context, n uint64) (txlinks.EdgeList, error)
	Range(ctx context.Context, start, end uint64) (txlinks.EdgeList, error)
}

// Renderer draws scenes. Render is called with the session lock held and
// must not call back into the session.
type Renderer interface {
	Render(scene Scene)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(scene Scene)

func (f RendererFunc) Render(scene Scene) { f(scene) }

// Alerter raises out-of-band notifications, such as load failures.
type Alerter interface {
	Alert(message string)
}

// AlerterFunc adapts a function to Alerter.
type AlerterFunc func(message string)

func (f AlerterFunc) Alert(message string) { f(message) }

type nopRenderer struct{}

func (nopRenderer) Render(Scene) {}

// logAlerter reports alerts through the application logger.
type logAlerter struct{}

func (logAlerter) Alert(message string) {
	logger.Warn(context.Background(), "explorer alert", "message", message)
}

// Session is one interactive view. It is safe for concurrent use; the layout
// is advanced by Animate on a single goroutine.
type Session struct {
	mu sync.Mutex

	source   Source
	renderer Renderer
	alerter  Alerter

	width, height float64
	explorerURL   string
	tickInterval  time.Duration

	blockNumber uint64
	label       string
	message     *Message

	graph    *txgraph.Graph
	edges    []txlinks.Edge
	sim      *layout.Simulation
	viewport layout.Viewport

	selected txlinks.Address
	tooltip  *Tooltip
	dragging int

	changed chan struct{}
}

// Open shows the session's initial block.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	n := s.blockNumber
	s.mu.Unlock()

	return s.ShowBlock(ctx, n)
}

// ShowBlock loads and displays block n.
func (s *Session) ShowBlock(ctx context.Context, n uint64) error {
	s.mu.Lock()
	s.blockNumber = n
	s.label = fmt.Sprintf("Block Number: %d", n)
	s.showMessage(loadingMessage(fmt.Sprintf("Loading block %d...", n)))
	s.mu.Unlock()

	list, err := s.source.Block(ctx, n)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.showError(fmt.Sprintf("block %d", n), err)
		return err
	}

	s.load(list)
	return nil
}

// ShowRange loads and displays blocks [start, end].
func (s *Session) ShowRange(ctx context.Context, start, end uint64) error {
	if start > end {
		s.alerter.Alert("From block must be less than or equal to To block.")
		return ErrInvalidRange
	}

	s.mu.Lock()
	s.blockNumber = start
	s.label = fmt.Sprintf("Block Range: %d - %d", start, end)
	s.showMessage(loadingMessage(fmt.Sprintf("Loading blocks %d - %d...", start, end)))
	s.mu.Unlock()

	list, err := s.source.Range(ctx, start, end)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.showError(fmt.Sprintf("blocks %d-%d", start, end), err)
		return err
	}

	s.load(list)
	return nil
}

// Next shows the block after the current one.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	n := s.blockNumber
	s.mu.Unlock()

	if n == math.MaxUint64 {
		return ErrInvalidRange
	}

	return s.ShowBlock(ctx, n+1)
}

// Previous shows the block before the current one.
func (s *Session) Previous(ctx context.Context) error {
	s.mu.Lock()
	n := s.blockNumber
	s.mu.Unlock()

	if n == 0 {
		s.alerter.Alert("Block number must be a non-negative integer.")
		return ErrNoPreviousBlock
	}

	return s.ShowBlock(ctx, n-1)
}

// BlockNumber returns the current block (the first block for a range).
func (s *Session) BlockNumber() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.blockNumber
}

// showMessage replaces the canvas with a message. Must hold s.mu.
func (s *Session) showMessage(m *Message) {
	s.replaceGraph(nil, nil)
	s.message = m
	s.render()
}

// showError replaces the canvas with the failure and raises an alert.
// Must hold s.mu.
func (s *Session) showError(target string, err error) {
	s.showMessage(errorMessage(fmt.Sprintf("Error: %s", err.Error())))
	s.alerter.Alert(fmt.Sprintf("Error loading %s: %s", target, err.Error()))
}

// load discards the previous layout and starts a new one for list.
// Must hold s.mu.
func (s *Session) load(list txlinks.EdgeList) {
	g, err := txgraph.Build(list.Edges)
	if err != nil {
		s.showMessage(emptyMessage("No transactions found for selection."))
		return
	}

	s.message = nil
	s.viewport = layout.Identity
	s.replaceGraph(&g, list.Edges)
	s.render()
}

// replaceGraph swaps the displayed graph and wakes Animate. Must hold s.mu.
func (s *Session) replaceGraph(g *txgraph.Graph, edges []txlinks.Edge) {
	if s.graph == nil && g == nil {
		return
	}

	s.graph = g
	s.edges = edges
	s.sim = nil
	s.dragging = -1
	s.tooltip = nil
	if g != nil {
		s.sim = layout.New(*g, s.width, s.height)
	}

	close(s.changed)
	s.changed = make(chan struct{})
}

// Animate drives the layout of the current graph until ctx is done,
// switching to each new graph as it is loaded.
func (s *Session) Animate(ctx context.Context) error {
	for {
		s.mu.Lock()
		sim, changed := s.sim, s.changed
		s.mu.Unlock()

		if sim == nil {
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
				continue
			}
		}

		runCtx, cancel := context.WithCancel(ctx)
		go func() {
			select {
			case <-changed:
				cancel()
			case <-runCtx.Done():
			}
		}()

		err := layout.NewDriver(sim, s.tickInterval).Run(runCtx, func([]layout.Point) {
			s.mu.Lock()
			defer s.mu.Unlock()

			if s.sim == sim {
				s.render()
			}
		})
		cancel()

		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Settle runs the current layout to rest (at most maxTicks) without
// animation and renders the result.
func (s *Session) Settle(maxTicks int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sim == nil {
		return
	}

	s.sim.Settle(maxTicks)
	s.render()
}

// Scene returns the current scene.
func (s *Session) Scene() Scene {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scene()
}

func (s *Session) render() {
	s.renderer.Render(s.scene())
}

// scene snapshots the session state. Must hold s.mu.
func (s *Session) scene() Scene {
	scene := Scene{
		Width:    s.width,
		Height:   s.height,
		Label:    s.label,
		Message:  s.message,
		Viewport: s.viewport,
		Nodes:    make([]SceneNode, 0),
		Links:    make([]SceneLink, 0),
		Selected: s.selected,
		Tooltip:  s.tooltip,
	}

	if s.selected != "" {
		panel := BuildPanel(s.edges, s.selected, s.explorerURL)
		scene.Panel = &panel
	}

	if s.graph != nil && s.sim != nil {
		scene.Nodes, scene.Links = buildScene(*s.graph, s.sim.Positions())
		scene.Alpha = s.sim.Alpha()
	}

	return scene
}

// config holds optional session settings.
type config struct {
	renderer     Renderer
	alerter      Alerter
	width        float64
	height       float64
	explorerURL  string
	tickInterval time.Duration
	initialBlock uint64
}

// Option configures a Session.
type Option func(*config)

// WithRenderer sets where scenes are drawn. Default: discarded.
func WithRenderer(r Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// WithAlerter sets where alerts go. Default: the application logger.
func WithAlerter(a Alerter) Option {
	return func(c *config) {
		c.alerter = a
	}
}

// WithSize sets the canvas size. Default: 1200 x 800.
func WithSize(width, height float64) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithExplorerURL sets the block explorer used for panel links.
// Default: https://etherscan.io.
func WithExplorerURL(url string) Option {
	return func(c *config) {
		c.explorerURL = url
	}
}

// WithTickInterval sets the animation cadence. Default: 60 ticks per second.
func WithTickInterval(d time.Duration) Option {
	return func(c *config) {
		c.tickInterval = d
	}
}

// WithInitialBlock sets the block Open shows. Default: DefaultBlock.
func WithInitialBlock(n uint64) Option {
	return func(c *config) {
		c.initialBlock = n
	}
}

// NewSession returns a session reading edge lists from source.
func NewSession(source Source, opts ...Option) *Session {
	cfg := config{
		renderer:     nopRenderer{},
		alerter:      logAlerter{},
		width:        1200,
		height:       800,
		explorerURL:  "https://etherscan.io",
		tickInterval: time.Second / 60,
		initialBlock: DefaultBlock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		source:       source,
		renderer:     cfg.renderer,
		alerter:      cfg.alerter,
		width:        cfg.width,
		height:       cfg.height,
		explorerURL:  cfg.explorerURL,
		tickInterval: cfg.tickInterval,
		blockNumber:  cfg.initialBlock,
		label:        "Block Number: N/A",
		viewport:     layout.Identity,
		dragging:     -1,
		changed:      make(chan struct{}),
	}
}
