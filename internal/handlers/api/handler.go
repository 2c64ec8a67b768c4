// Package api serves the transfer edge lists over HTTP.
//
// Routes:
//
//	GET  /api/block/{blockNumber}        edge list of one block, legacy shape, as a JSON string
//	GET  /api/block/{blockNumber}/graph  node/link graph of one block
//	POST /api/blocks                     edge list of a block range, structured shape
//	GET  /health                         liveness
//
// Failures reply {"status":"error","detail":<message>} with a status derived
// from the failure kind.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/pkg/validator"
	"github.com/gabapcia/aethersight/internal/txgraph"
	"github.com/gabapcia/aethersight/internal/txlinks"

	"github.com/gorilla/mux"
)

const (
	msgInvalidBlockNumber = "Invalid block number."
	msgInvalidJSONBody    = "Invalid JSON body."
	msgInvalidRange       = "start_block and end_block must be non-negative integers"
)

type blockResponse struct {
	Status string `json:"status"`
	Links  string `json:"links"`
}

type rangeResponse struct {
	Status string           `json:"status"`
	Links  txlinks.EdgeList `json:"links"`
}

type graphResponse struct {
	Status string         `json:"status"`
	Nodes  []txgraph.Node `json:"nodes"`
	Links  []txgraph.Link `json:"links"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

// rangeRequest is the POST /api/blocks body.
type rangeRequest struct {
	StartBlock *uint64 `json:"start_block" validate:"required"`
	EndBlock   *uint64 `json:"end_block" validate:"required"`
}

type handler struct {
	links   txlinks.Service
	service string
	started time.Time
	now     func() time.Time
}

func (h *handler) block(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseUint(mux.Vars(r)["blockNumber"], 10, 64)
	if err != nil {
		writeError(w, r, blockcache.NewError(blockcache.ErrMalformedInput, msgInvalidBlockNumber, err))
		return
	}

	list, err := h.links.Block(r.Context(), n)
	if err != nil {
		writeError(w, r, err)
		return
	}

	encoded, err := json.Marshal(list)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, blockResponse{Status: statusSuccess, Links: string(encoded)})
}

func (h *handler) blockGraph(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseUint(mux.Vars(r)["blockNumber"], 10, 64)
	if err != nil {
		writeError(w, r, blockcache.NewError(blockcache.ErrMalformedInput, msgInvalidBlockNumber, err))
		return
	}

	list, err := h.links.Range(r.Context(), n, n)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res := graphResponse{Status: statusSuccess, Nodes: []txgraph.Node{}, Links: []txgraph.Link{}}

	g, err := txgraph.Build(list.Edges)
	switch {
	case errors.Is(err, txgraph.ErrEmptyGraph):
	case err != nil:
		writeError(w, r, err)
		return
	default:
		res.Nodes, res.Links = g.Nodes, g.Links
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *handler) blockRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			writeError(w, r, blockcache.NewError(blockcache.ErrMalformedInput, msgInvalidRange, err))
			return
		}

		writeError(w, r, blockcache.NewError(blockcache.ErrMalformedInput, msgInvalidJSONBody, err))
		return
	}

	if err := validator.Validate(req); err != nil {
		writeError(w, r, blockcache.NewError(blockcache.ErrMalformedInput, msgInvalidRange, err))
		return
	}

	list, err := h.links.Range(r.Context(), *req.StartBlock, *req.EndBlock)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, rangeResponse{Status: statusSuccess, Links: list})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	writeJSON(w, r, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   h.service,
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(h.started).String(),
	})
}

type config struct {
	allowedOrigin string
	serviceName   string
}

// Option configures the router.
type Option func(*config)

// WithAllowedOrigin sets the Access-Control-Allow-Origin value.
//
// Default: "*".
func WithAllowedOrigin(origin string) Option {
	return func(c *config) {
		c.allowedOrigin = origin
	}
}

// WithServiceName sets the name reported by /health.
//
// Default: "aethersight".
func WithServiceName(name string) Option {
	return func(c *config) {
		c.serviceName = name
	}
}

// NewRouter returns the API router backed by links.
func NewRouter(links txlinks.Service, opts ...Option) *mux.Router {
	cfg := config{
		allowedOrigin: "*",
		serviceName:   "aethersight",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &handler{
		links:   links,
		service: cfg.serviceName,
		started: time.Now(),
		now:     time.Now,
	}

	router := mux.NewRouter()
	router.Use(requestLogging, cors(cfg.allowedOrigin))

	router.HandleFunc("/api/block/{blockNumber}", h.block).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/block/{blockNumber}/graph", h.blockGraph).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/blocks", h.blockRange).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/health", h.health).Methods(http.MethodGet)

	return router
}
