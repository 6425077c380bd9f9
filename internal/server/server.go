package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/harmonica-tools/jianpu/internal/logging"
	"github.com/harmonica-tools/jianpu/internal/pitch"
	"github.com/harmonica-tools/jianpu/pkg/config"
	"github.com/harmonica-tools/jianpu/pkg/jianpu"
)

type Options struct {
	Logger logr.Logger

	// Requests per second accepted across all clients, and the burst allowed above it.
	QPS   float64
	Burst int

	MaxBytes      int64
	DefaultSource string
	DefaultTarget string
	StrictKeys    bool
	KeyAliases    config.KeyAliases

	// Gatherer backs /metrics. The default registry is used when nil.
	Gatherer prometheus.Gatherer
}

type Server struct {
	opts    Options
	limiter *rate.Limiter
	events  *logging.Logger
}

func New(opts Options) *Server {
	if opts.DefaultSource == "" {
		opts.DefaultSource = jianpu.DefaultSourceKey
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 1 << 20
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	limit := rate.Limit(opts.QPS)
	if opts.QPS <= 0 {
		limit = rate.Inf
	}
	return &Server{
		opts:    opts,
		limiter: rate.NewLimiter(limit, opts.Burst),
		events:  logging.NewLogger(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/transpose", s.handleTranspose)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	return mux
}

type transposeRequest struct {
	Text               string `json:"text"`
	Source             string `json:"source"`
	Target             string `json:"target"`
	ReportUnrecognized bool   `json:"reportUnrecognized"`
}

type warning struct {
	Char      string `json:"char"`
	CodePoint string `json:"codePoint"`
	Pos       int    `json:"pos"`
}

type transposeResponse struct {
	Result    string    `json:"result"`
	Warnings  []warning `json:"warnings"`
	RequestID string    `json:"requestID"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestID"`
}

func (s *Server) handleTranspose(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := uuid.NewString()
	logger := s.opts.Logger.WithValues("requestID", id)
	ctx := logr.NewContext(r.Context(), logger)
	w.Header().Set("X-Request-ID", id)

	status := http.StatusOK
	defer func() {
		requestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
		requestLatency.Observe(time.Since(start).Seconds())
	}()

	fail := func(code int, err error) {
		status = code
		logger.V(1).Info("rejected transpose request", "status", code, "error", err.Error())
		writeJSON(w, code, errorResponse{Error: err.Error(), RequestID: id})
	}

	if r.Method != http.MethodPost {
		fail(http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	if !s.limiter.Allow() {
		fail(http.StatusTooManyRequests, errors.New("rate limit exceeded"))
		return
	}

	req := transposeRequest{}
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(http.StatusRequestEntityTooLarge, err)
			return
		}
		fail(http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	source, err := s.resolveKey(logger, req.Source, s.opts.DefaultSource)
	if err != nil {
		fail(http.StatusBadRequest, err)
		return
	}
	target, err := s.resolveKey(logger, req.Target, s.opts.DefaultTarget)
	if err != nil {
		fail(http.StatusBadRequest, err)
		return
	}

	var opts []jianpu.Option
	if req.ReportUnrecognized {
		opts = append(opts, jianpu.WithUnrecognized())
	}
	result, warnings := jianpu.TransposeSheet(req.Text, target, source, opts...)

	resp := transposeResponse{Result: result, Warnings: []warning{}, RequestID: id}
	for _, wn := range warnings {
		resp.Warnings = append(resp.Warnings, warning{
			Char:      string(wn.Char),
			CodePoint: fmt.Sprintf("U+%04X", wn.Char),
			Pos:       wn.Pos,
		})
	}
	writeJSON(w, status, resp)

	s.events.LogTransposition(ctx, logging.Transposition{
		Source:     source,
		Target:     target,
		InputRunes: utf8.RuneCountInString(req.Text),
		Warnings:   len(warnings),
		Duration:   time.Since(start),
	})
}

// resolveKey applies aliases and returns the key table name used for the transposition.
// Unknown keys are rejected in strict mode and become C otherwise.
func (s *Server) resolveKey(logger logr.Logger, spec, fallback string) (string, error) {
	if spec == "" {
		spec = fallback
	}
	name, err := pitch.CanonicalName(s.opts.KeyAliases.Resolve(spec))
	if err == nil {
		return name, nil
	}
	if s.opts.StrictKeys {
		return "", fmt.Errorf("invalid key %q: %w", spec, err)
	}
	logger.V(1).Info("unrecognized key treated as C", "key", spec)
	return jianpu.DefaultSourceKey, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
