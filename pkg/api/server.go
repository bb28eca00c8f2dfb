// Package api exposes a read-only HTTP surface over the analysis
// pipeline: network documents, rank vectors and shortest paths as JSON.
//
// The server owns no state of its own; every request is answered through
// a [pipeline.Runner], whose cache keeps repeated requests cheap.
package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/matzehuels/transitrank/pkg/errors"
	"github.com/matzehuels/transitrank/pkg/network"
	"github.com/matzehuels/transitrank/pkg/pipeline"
	"github.com/matzehuels/transitrank/pkg/transit"
	"github.com/matzehuels/transitrank/pkg/transit/traverse"
)

// Server answers read-only queries about one configured network.
type Server struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server that answers queries by running the pipeline
// with the given options. The report stage is never triggered by HTTP
// requests, whatever opts says.
func NewServer(runner *pipeline.Runner, opts pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	opts.ReportPath = ""
	opts.Logger = logger

	s := &Server{runner: runner, opts: opts, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Get("/network", s.handleNetwork)
	r.Get("/rank", s.handleRank)
	r.Get("/path", s.handlePath)
	s.router = r

	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleNetwork returns the analyzed network document, collapsed when the
// server is configured to collapse.
func (s *Server) handleNetwork(w http.ResponseWriter, r *http.Request) {
	result, err := s.runner.Execute(r.Context(), s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"network_hash": result.NetworkHash,
		"network":      network.FromGraph(result.Graph),
	})
}

// rankEntry is one row of the rank response, mirroring the text report.
type rankEntry struct {
	Node   int      `json:"node"`
	StopID string   `json:"stop_id"`
	Name   string   `json:"name,omitempty"`
	Routes []string `json:"routes,omitempty"`
	Rank   float64  `json:"rank"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	result, err := s.runner.Execute(r.Context(), s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	entries := make([]rankEntry, len(result.Ranks))
	for i, rank := range result.Ranks {
		stop := result.Graph.Stop(i)
		entries[i] = rankEntry{
			Node:   i,
			StopID: stop.ID,
			Name:   stop.Name,
			Routes: stop.Routes,
			Rank:   rank,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":       result.RunID,
		"network_hash": result.NetworkHash,
		"cached":       result.CacheInfo.RankHit,
		"ranks":        entries,
	})
}

// pathResponse describes a shortest path between two stops.
type pathResponse struct {
	From      int                  `json:"from"`
	To        int                  `json:"to"`
	Reachable bool                 `json:"reachable"`
	Length    float64              `json:"length,omitempty"`
	Stops     []string             `json:"stops,omitempty"`
	Edges     []network.LinkRecord `json:"edges,omitempty"`
}

// handlePath answers /path?from=&to=. Endpoints may be given as node
// indices or stop IDs.
func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	result, err := s.runner.Execute(r.Context(), s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g := result.Graph

	from, err := resolveStop(g, r.URL.Query().Get("from"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	to, err := resolveStop(g, r.URL.Query().Get("to"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := traverse.NewRecorder()
	dist := traverse.ShortestPath(g, from, to, rec, s.logger)

	resp := pathResponse{From: from, To: to}
	if !math.IsInf(dist[to], 1) {
		resp.Reachable = true
		resp.Length = dist[to]
		resp.Stops = append(resp.Stops, g.Stop(from).ID)
		for _, e := range rec.Visited {
			resp.Edges = append(resp.Edges, network.LinkRecord{
				From:   e.From,
				To:     e.To,
				Type:   e.Type.String(),
				Weight: e.Weight,
			})
			resp.Stops = append(resp.Stops, g.Stop(e.To).ID)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// resolveStop maps a query parameter to a node index. Stop IDs take
// precedence over numeric indices so that purely numeric IDs still work.
func resolveStop(g *transit.Graph, raw string) (int, error) {
	if raw == "" {
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "missing stop parameter")
	}
	for i := 0; i < g.NumNodes(); i++ {
		if g.Stop(i).ID == raw {
			return i, nil
		}
	}
	if idx, err := strconv.Atoi(raw); err == nil {
		if idx < 0 || idx >= g.NumNodes() {
			return 0, apperrors.New(apperrors.ErrCodeStopNotFound, "node %d outside [0, %d)", idx, g.NumNodes())
		}
		return idx, nil
	}
	return 0, apperrors.New(apperrors.ErrCodeStopNotFound, "no stop with id %q", raw)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidNetwork,
		apperrors.ErrCodeInvalidFeed, apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeStopNotFound,
		apperrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]any{
		"error": apperrors.UserMessage(err),
		"code":  apperrors.GetCode(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
