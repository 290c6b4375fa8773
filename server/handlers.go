package server

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CodyTVWeber/inversemod/inverse"
)

const usage = `To use this, make the URL match something like:
host:port/inverse-mod?x=<<positive integer>>&y=<<positive integer>>

Optional: &mode=heuristic to disable the extended Euclidean fallback.
`

var positiveInteger = regexp.MustCompile(`^[1-9]\d*$`)

// solveResponse is the JSON shape of /inverse-mod-z.
type solveResponse struct {
	Success bool   `json:"success"`
	Inverse uint64 `json:"inverse,omitempty"`
	Method  string `json:"method,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Gcd     uint64 `json:"gcd,omitempty"`

	Base    uint64 `json:"base"`
	Modulus uint64 `json:"modulus"`

	Multipliers   []uint64 `json:"multipliers,omitempty"`
	Remainders    []uint64 `json:"remainders,omitempty"`
	ExploredNodes int      `json:"exploredNodes"`
}

// parseInputs reads and validates the x, y and mode query parameters.
// On failure it has already written the error response.
func (s *Server) parseInputs(c *gin.Context) (base, modulus uint64, mode inverse.Mode, ok bool) {
	x := c.Query("x")
	y := c.Query("y")
	if x == "" || y == "" {
		c.String(http.StatusBadRequest, usage+"\n"+inverse.Explanation())
		return 0, 0, 0, false
	}

	if !positiveInteger.MatchString(x) || !positiveInteger.MatchString(y) {
		c.String(http.StatusBadRequest, "Error: x and/or y is not a positive integer.\n\n"+usage)
		return 0, 0, 0, false
	}

	base, errX := strconv.ParseUint(x, 10, 64)
	modulus, errY := strconv.ParseUint(y, 10, 64)
	if errX != nil || errY != nil {
		c.String(http.StatusBadRequest, "Error: x and/or y is out of range.\n\n"+usage)
		return 0, 0, 0, false
	}

	mode = inverse.ModeGuaranteed
	switch c.Query("mode") {
	case "", "guaranteed":
	case "heuristic":
		mode = inverse.ModeHeuristicOnly
	default:
		c.String(http.StatusBadRequest, "Error: mode must be heuristic or guaranteed.\n")
		return 0, 0, 0, false
	}

	return base, modulus, mode, true
}

// handleSteps narrates the full multiplier-remainder trace as text.
func (s *Server) handleSteps(c *gin.Context) {
	base, modulus, mode, ok := s.parseInputs(c)
	if !ok {
		return
	}

	out := s.solve(base, modulus, mode)
	c.String(statusFor(out), out.Steps())
}

// handleResult returns just the solve outcome as JSON.
func (s *Server) handleResult(c *gin.Context) {
	base, modulus, mode, ok := s.parseInputs(c)
	if !ok {
		return
	}

	out := s.solve(base, modulus, mode)
	resp := solveResponse{
		Success: out.OK,
		Inverse: out.Inverse,
		Reason:  out.Reason.String(),
		Base:    out.Base,
		Modulus: out.Modulus,

		Multipliers:   out.Multipliers,
		Remainders:    out.Remainders,
		ExploredNodes: out.ExploredNodes,
	}
	if out.OK {
		resp.Method = out.Method.String()
	}
	if out.Reason == inverse.ReasonNotCoprime {
		resp.Gcd = out.Gcd
	}
	if out.Reason == inverse.ReasonNone {
		resp.Reason = ""
	}

	c.JSON(statusFor(out), resp)
}

// handleExplanation describes the algorithm.
func (s *Server) handleExplanation(c *gin.Context) {
	c.String(http.StatusOK, inverse.Explanation()+"\n")
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// solve runs the solver and records metrics.
func (s *Server) solve(base, modulus uint64, mode inverse.Mode) inverse.Outcome {
	start := time.Now()
	out := s.solver.Solve(base, modulus, mode)
	observeSolve(out, time.Since(start))

	if out.Reason == inverse.ReasonInternalInconsistency {
		s.logger.Error("multiplier sequence failed post-condition validation",
			zap.Uint64("base", base),
			zap.Uint64("modulus", modulus),
			zap.Uint64s("multipliers", out.Multipliers),
		)
	}

	return out
}

// statusFor maps outcomes to HTTP statuses.
// Failed searches and non-coprime inputs are domain results, not errors.
func statusFor(out inverse.Outcome) int {
	if out.Reason == inverse.ReasonInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusOK
}
