package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/jsb/config"
	"github.com/jsphweid/jsb/degree"
	"github.com/jsphweid/jsb/model"
	"github.com/jsphweid/jsb/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves scale, degree and chord lookups over http",
	Long: `Serves scale, degree and chord lookups as JSON:

  GET /scales
  GET /scales/{name}?degree=n
  GET /degrees/{code}
  GET /chords/{quality}?root=n`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cfg.Addr)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("could not encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func handleScales(w http.ResponseWriter, r *http.Request) {
	var res []model.ScaleReport
	for _, name := range scale.Names() {
		p, _ := scale.Lookup(name)
		report, _ := scaleReport(p, 0)
		res = append(res, report)
	}
	writeJSON(w, http.StatusOK, res)
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	p, err := lookupScale(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var n int
	if q := r.URL.Query().Get("degree"); q != "" {
		n, err = strconv.Atoi(q)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("degree %q is not a positive number", q))
			return
		}
	}

	report, err := scaleReport(p, n)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func handleDegree(w http.ResponseWriter, r *http.Request) {
	c, err := degree.Parse(mux.Vars(r)["code"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, degreeReport(c))
}

func handleChord(w http.ResponseWriter, r *http.Request) {
	q, err := lookupQuality(mux.Vars(r)["quality"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	flag := -1
	if s := r.URL.Query().Get("root"); s != "" {
		flag, err = strconv.Atoi(s)
		if err != nil || flag < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("root %q is not a midi note", s))
			return
		}
	}
	root, err := resolveRoot(flag)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := chordReport(q, root)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// LoadConfig loads the config the handlers read, for callers that use
// NewRouter without going through the command line.
func LoadConfig(path string) error {
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scales", handleScales).Methods("GET")
	router.HandleFunc("/scales/{name}", handleScale).Methods("GET")
	router.HandleFunc("/degrees/{code}", handleDegree).Methods("GET")
	router.HandleFunc("/chords/{quality}", handleChord).Methods("GET")
	return cors.Default().Handler(router)
}

func serve(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	slog.Info("listening", "addr", addr)
	return srv.ListenAndServe()
}
