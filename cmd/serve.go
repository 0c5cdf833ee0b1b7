package cmd

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sjanel/sudoku-solver/puzzle"
	"github.com/sjanel/sudoku-solver/storage"
)

var (
	serveAddr      string
	serveMax       int
	serveNoStorage bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the solver as an HTTP service",
	Long: `Serve starts an HTTP server with a JSON solve endpoint:

    POST /api/solve    {"board": "...", "maxSolutions": 1}
    GET  /api/puzzles  list the stored puzzles

With storage connected (REDIS_URL and DATABASE_URL), solved boards
are cached and persisted, and the built-in boards are saved at
startup.  --no-storage runs the solver alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := &puzzle.SolverService{MaxSolutions: serveMax}

		withStorage := !serveNoStorage
		if withStorage {
			cacheURL, dbURL, err := storage.Connect()
			if err != nil {
				return err
			}
			defer storage.Close()
			logrus.WithFields(logrus.Fields{
				"cache":    cacheURL,
				"database": dbURL,
			}).Info("storage connected")
			svc.Cache = storage.Cache{}
			seedBuiltins()
		}

		mux := http.NewServeMux()
		mux.HandleFunc("/api/solve", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.Header().Set("Allow", http.MethodPost)
				http.Error(w, "solve requests must be POSTs", http.StatusMethodNotAllowed)
				return
			}
			if err := svc.SolveHandler(w, r); err != nil {
				logrus.WithError(err).Warn("solve request failed")
			}
		})
		mux.HandleFunc("/api/puzzles", func(w http.ResponseWriter, r *http.Request) {
			listPuzzlesHandler(w, r, withStorage)
		})

		addr := serveAddr
		if port := os.Getenv("PORT"); port != "" && addr == defaultAddr {
			addr = ":" + port
		}
		logrus.WithField("addr", addr).Info("listening")
		return http.ListenAndServe(addr, logRequests(mux))
	},
}

// listPuzzlesHandler serves the stored puzzle list.
func listPuzzlesHandler(w http.ResponseWriter, r *http.Request, withStorage bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "puzzle listings must be GETs", http.StatusMethodNotAllowed)
		return
	}
	if !withStorage {
		http.Error(w, "no storage configured", http.StatusServiceUnavailable)
		return
	}
	infos, err := storage.ListPuzzles()
	if err != nil {
		logrus.WithError(err).Error("puzzle listing failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		logrus.WithError(err).Warn("puzzle listing write failed")
	}
}

// seedBuiltins saves the built-in boards, so a fresh deployment has
// puzzles to list.  Failures are logged, not fatal.
func seedBuiltins() {
	for _, name := range builtinNames() {
		g, err := puzzle.Parse(builtinBoards[name])
		if err == nil {
			_, err = storage.SavePuzzle(name, &g)
		}
		if err != nil {
			logrus.WithError(err).WithField("name", name).Warn("couldn't seed built-in board")
		}
	}
}

// logRequests logs one line per request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"remote": r.RemoteAddr,
		}).Info("request")
		next.ServeHTTP(w, r)
	})
}

const defaultAddr = ":8080"

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", defaultAddr,
		"address to listen on (the PORT environment variable overrides the default)")
	serveCmd.Flags().IntVar(&serveMax, "max-solutions", 100,
		"ceiling on solutions enumerated per request")
	serveCmd.Flags().BoolVar(&serveNoStorage, "no-storage", false,
		"run without Redis and Postgres")
	rootCmd.AddCommand(serveCmd)
}
