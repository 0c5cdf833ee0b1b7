package puzzle

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

/*

JSON wrappers over the solver, so a web service can be built on
boards without knowing their representation.

*/

// A BoardText is a board in a solve request: either one string or an
// array of row strings, in the textual form Parse accepts.
type BoardText string

// UnmarshalJSON accepts "..53..7.." as well as ["53..7....", ...].
func (b *BoardText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = BoardText(s)
		return nil
	}
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	*b = BoardText(strings.Join(rows, "\n"))
	return nil
}

// A SolveRequest asks for the completions of a board.  MaxSolutions
// caps the enumeration; zero or negative asks for everything the
// service will give (the service applies its own ceiling).
type SolveRequest struct {
	Board        BoardText `json:"board"`
	MaxSolutions int       `json:"maxSolutions"`
}

// A SolveResponse lists the completions found, as 81-character
// row-major strings, in enumeration order.  Capped is set when the
// service ceiling truncated an unbounded request.
type SolveResponse struct {
	Count     int      `json:"count"`
	Capped    bool     `json:"capped,omitempty"`
	Solutions []string `json:"solutions"`
}

// A SolutionCache remembers solution lists keyed by the flat
// 81-character board.  Both the cached list and the lookups are for
// boards solved under the service ceiling, so a cached list can serve
// any smaller request as a prefix (the enumeration order is
// deterministic).
type SolutionCache interface {
	Get(board string) ([]string, bool)
	Put(board string, solutions []string)
}

// SolverService serves solve requests over HTTP.  MaxSolutions is
// the ceiling applied to every request so that a wide-open board
// cannot wedge the server; Cache is optional and is only consulted
// when a ceiling is set, because cached lists are meaningful only
// relative to the ceiling they were solved under.
type SolverService struct {
	MaxSolutions int
	Cache        SolutionCache
}

// SolveHandler is a POST handler that decodes a SolveRequest, solves
// the board, and writes back a SolveResponse.  Malformed JSON or an
// invalid board gets a 400 with a JSON error body.  The error
// returned to the Go caller mirrors what was sent to the client.
func (svc *SolverService) SolveHandler(w http.ResponseWriter, r *http.Request) error {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
	}
	g, err := Parse(string(req.Board))
	if err != nil {
		return writeError(w, http.StatusBadRequest, err.Error())
	}

	max, capped := req.MaxSolutions, false
	if svc.MaxSolutions > 0 && (max <= 0 || max > svc.MaxSolutions) {
		max, capped = svc.MaxSolutions, max <= 0
	}

	// Without a ceiling a truncated list would poison later, larger
	// requests, so the cache is bypassed entirely.
	cache := svc.Cache
	if svc.MaxSolutions <= 0 {
		cache = nil
	}

	lines, ok := cached(cache, g.Line(), max)
	if !ok {
		var solutions []Grid
		if cache != nil {
			// Solve once at the ceiling so the cache entry can serve
			// every smaller request as a prefix.
			solutions = g.SolveContext(r.Context(), svc.MaxSolutions)
		} else {
			solutions = g.SolveContext(r.Context(), max)
		}
		lines = make([]string, len(solutions))
		for i := range solutions {
			lines[i] = solutions[i].Line()
		}
		if cache != nil {
			cache.Put(g.Line(), lines)
		}
		if max > 0 && len(lines) > max {
			lines = lines[:max]
		}
	}
	return writeJSON(w, http.StatusOK, SolveResponse{
		Count:     len(lines),
		Capped:    capped && svc.MaxSolutions > 0 && len(lines) == svc.MaxSolutions,
		Solutions: lines,
	})
}

// cached serves a request from the cache, truncating the stored list
// to the requested cap.
func cached(cache SolutionCache, board string, max int) ([]string, bool) {
	if cache == nil {
		return nil, false
	}
	lines, ok := cache.Get(board)
	if !ok {
		return nil, false
	}
	if max > 0 && len(lines) > max {
		lines = lines[:max]
	}
	return lines, true
}

// errorBody is the JSON error envelope all handlers use.
type errorBody struct {
	Error string `json:"error"`
}

// writeError sends a JSON error response and returns the same
// message as an error for the handler's caller.
func writeError(w http.ResponseWriter, status int, msg string) error {
	writeJSON(w, status, errorBody{Error: msg})
	return errors.New(msg)
}

// writeJSON encodes and sends a response.  Encoding failures can
// only come from the response writer itself at this point, since the
// payload types above always marshal.
func writeJSON(w http.ResponseWriter, status int, obj interface{}) error {
	bytes, err := json.Marshal(obj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(bytes)
	return err
}
