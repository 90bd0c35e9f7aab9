package stats

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pterm/pterm"

	"github.com/stepsquad/stepsquad/internal/timeutil"
	"github.com/stepsquad/stepsquad/store"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	defaultRangeDays  = -6
)

// TemplateData is passed to the stats page template.
type TemplateData struct {
	Stats     *Stats
	StartTime string
	EndTime   string
	JSON      template.JS
}

//go:embed web/*
var web embed.FS

var tpl = template.Must(
	template.New("index.html").ParseFS(web, "web/index.html"),
)

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err != nil {
		slog.Error("stats request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type server struct {
	db  store.DB
	now func() time.Time
}

// rangeFromQuery reads start and end dates from the request, defaulting to
// the last seven days.
func (s *server) rangeFromQuery(r *http.Request) (start, end time.Time) {
	query := r.URL.Query()

	now := s.now()

	start, err := timeutil.FromStr(query.Get("start"), now)
	if query.Get("start") == "" || err != nil {
		start = now.AddDate(0, 0, defaultRangeDays)
	}

	end, err = timeutil.FromStr(query.Get("end"), now)
	if query.Get("end") == "" || err != nil {
		end = now
	}

	return timeutil.RoundToStart(start), timeutil.RoundToEnd(end)
}

func (s *server) compute(r *http.Request) (*Stats, error) {
	start, end := s.rangeFromQuery(r)

	days, err := s.db.GetDays(start, end)
	if err != nil {
		return nil, err
	}

	return Compute(days, start, end), nil
}

func (s *server) index(w http.ResponseWriter, r *http.Request) error {
	st, err := s.compute(r)
	if err != nil {
		return err
	}

	b, err := st.ToJSON()
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = tpl.Execute(&buf, &TemplateData{
		Stats:     st,
		StartTime: st.StartTime.Format(reportLayout),
		EndTime:   st.EndTime.Format(reportLayout),
		JSON:      template.JS(b), //nolint:gosec // marshalled by encoding/json
	})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err = w.Write(buf.Bytes())

	return err
}

func (s *server) statsJSON(w http.ResponseWriter, r *http.Request) error {
	st, err := s.compute(r)
	if err != nil {
		return err
	}

	b, err := st.ToJSON()
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(b)

	return err
}

// NewRouter returns the HTTP routes of the stats server.
func NewRouter(db store.DB, now func() time.Time) *mux.Router {
	if now == nil {
		now = time.Now
	}

	s := &server{db: db, now: now}

	r := mux.NewRouter()
	r.Handle("/", errorHandler(s.index)).Methods(http.MethodGet)
	r.Handle("/api/stats", errorHandler(s.statsJSON)).Methods(http.MethodGet)

	return r
}

// Serve runs the stats server on port until ctx is cancelled.
func Serve(ctx context.Context, db store.DB, port uint) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewRouter(db, time.Now),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			shutdownTimeout,
		)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	pterm.Info.Printfln("starting stats server on http://localhost:%d", port)

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
