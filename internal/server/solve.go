package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/katalvlaran/matchain/chain"
	"github.com/katalvlaran/matchain/mcm"
)

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Dims [][]int `json:"dims"`
}

// SolveResponse is the report returned for a valid chain.
type SolveResponse struct {
	ID             string  `json:"id"`
	Chain          string  `json:"chain"`
	NaiveCost      int     `json:"naive_cost"`
	SequentialCost int     `json:"sequential_cost"`
	OptimalCost    int     `json:"optimal_cost"`
	OracleCost     *int    `json:"oracle_cost,omitempty"` // absent when the oracle was skipped
	Savings        int     `json:"savings"`
	NaiveExpr      string  `json:"naive_expr,omitempty"` // absent above the render limit
	OptimalExpr    string  `json:"optimal_expr"`
	Costs          [][]int `json:"costs"`
	Splits         [][]int `json:"splits"`
}

// ErrorResponse is returned for every non-2xx answer.
type ErrorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Error kinds.
const (
	KindBadRequest     = "bad_request"
	KindEmptyChain     = "empty_chain"
	KindNonConformable = "non_conformable"
	KindZeroDimension  = "zero_dimension"
	KindChainTooLong   = "chain_too_long"
	KindInternal       = "internal"
)

// Health answers the liveness check.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Solve evaluates the chain in the request body.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	logger := h.logger.With("id", id)

	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.Warn("bad request body", "err", err)
		h.writeError(w, id, http.StatusBadRequest, KindBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if len(req.Dims) > h.maxChain {
		err := fmt.Errorf("chain of %d matrices exceeds the limit of %d", len(req.Dims), h.maxChain)
		logger.Info("chain rejected", "kind", KindChainTooLong, "n", len(req.Dims))
		h.writeError(w, id, http.StatusUnprocessableEntity, KindChainTooLong, err)
		return
	}
	pairs, err := toPairs(req.Dims)
	if err != nil {
		h.writeError(w, id, http.StatusBadRequest, KindBadRequest, err)
		return
	}

	report, err := evaluate(pairs, h.opts)
	if err != nil {
		status, kind := classify(err)
		logger.Info("chain rejected", "kind", kind, "err", err)
		h.writeError(w, id, status, kind, err)
		return
	}

	logger.Info("solved", "n", report.Chain.Len(), "optimal", report.OptimalCost, "oracle_run", report.OracleRun)
	h.writeJSON(w, http.StatusOK, newSolveResponse(id, report))
}

func evaluate(pairs [][2]int, opts mcm.Options) (mcm.Report, error) {
	c, err := chain.FromPairs(pairs)
	if err != nil {
		return mcm.Report{}, err
	}

	return mcm.Evaluate(c, opts)
}

func toPairs(dims [][]int) ([][2]int, error) {
	pairs := make([][2]int, len(dims))
	for i, d := range dims {
		if len(d) != 2 {
			return nil, fmt.Errorf("dims[%d]: want [rows, cols], got %d values", i, len(d))
		}
		pairs[i] = [2]int{d[0], d[1]}
	}

	return pairs, nil
}

// classify maps an evaluation error onto an HTTP status and error kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, chain.ErrEmptyChain):
		return http.StatusUnprocessableEntity, KindEmptyChain
	case errors.Is(err, chain.ErrNonConformable):
		return http.StatusUnprocessableEntity, KindNonConformable
	case errors.Is(err, chain.ErrZeroDimension):
		return http.StatusUnprocessableEntity, KindZeroDimension
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

func newSolveResponse(id string, r mcm.Report) SolveResponse {
	resp := SolveResponse{
		ID:             id,
		Chain:          r.Chain.String(),
		NaiveCost:      r.NaiveCost,
		SequentialCost: r.SequentialCost,
		OptimalCost:    r.OptimalCost,
		Savings:        r.Savings(),
		NaiveExpr:      r.NaiveExpr,
		OptimalExpr:    r.OptimalExpr,
		Costs:          r.Costs.Clone(),
		Splits:         r.Splits.Clone(),
	}
	if r.OracleRun {
		oracle := r.OracleCost
		resp.OracleCost = &oracle
	}

	return resp
}

func (h *Handler) writeError(w http.ResponseWriter, id string, status int, kind string, err error) {
	h.writeJSON(w, status, ErrorResponse{ID: id, Error: err.Error(), Kind: kind})
}

// writeJSON sends v with status. The header is already out when encoding
// fails, so the failure is only logged.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Debug("encode response", "status", status, "err", err)
	}
}
