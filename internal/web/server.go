package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/jask/quizboard/internal/board"
	"github.com/jask/quizboard/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// Backend is what the web front end needs from the quiz API.
type Backend interface {
	board.Lister
	board.Creator
}

// Server renders the quiz board as server-side HTML. It holds no per-user
// state: the active panel comes from the query string and every list render
// refetches.
type Server struct {
	backend Backend
	apiURL  string
	actions board.Actions
}

var templates = template.Must(template.New("quizboard").Funcs(template.FuncMap{
	"loadingText":    func() string { return board.LoadingText },
	"emptyText":      func() string { return board.EmptyText },
	"loadFailedText": func() string { return board.LoadFailedText },
	"backendHint":    board.BackendHint,
	"errorLine":      board.ErrorLine,
}).ParseFS(templateFS, "templates/*.html"))

func New(backend Backend, apiURL string, actions board.Actions) *Server {
	if actions == nil {
		actions = board.ComingSoon{}
	}
	return &Server{backend: backend, apiURL: apiURL, actions: actions}
}

// WriteList renders the list container markup for state. Quiz text is
// HTML-escaped.
func WriteList(w io.Writer, state board.ListState) error {
	return templates.ExecuteTemplate(w, "list", state)
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.page)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/fragments/quizzes", s.listFragment)
	r.Post("/quizzes", s.createQuiz)
	r.Get("/quizzes/{id}", s.quizAction(s.actions.ViewQuiz))
	r.Get("/quizzes/{id}/start", s.quizAction(s.actions.StartQuiz))
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logrus.WithField("addr", addr).Info("web front end listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type navItem struct {
	Name   string
	Title  string
	Active bool
}

type formValues struct {
	Title       string
	Description string
}

type pageData struct {
	Nav           []navItem
	Active        string
	List          *board.ListState
	Form          formValues
	Submission    board.Submission
	RedirectAfter string
}

func (s *Server) newPage(nav board.Nav) pageData {
	items := make([]navItem, 0, len(board.Views))
	for _, v := range board.Views {
		items = append(items, navItem{Name: v.String(), Title: v.Title(), Active: nav.IsActive(v)})
	}
	return pageData{Nav: items, Active: nav.Active().String()}
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("view")
	if name == "" {
		name = board.ViewList.String()
	}
	view, err := board.ParseView(name)
	if err != nil {
		logging.WithContext(r.Context()).WithError(err).Warn("unknown view requested")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var nav board.Nav
	refresh := nav.Activate(view)
	data := s.newPage(nav)
	if refresh {
		list := board.Load(r.Context(), s.backend, s.apiURL)
		data.List = &list
	}
	s.render(w, r, http.StatusOK, "page", data)
}

func (s *Server) listFragment(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "list", board.Load(r.Context(), s.backend, s.apiURL))
}

func (s *Server) createQuiz(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logging.WithContext(r.Context()).WithError(err).Warn("bad create form")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := formValues{Title: r.PostFormValue("title"), Description: r.PostFormValue("description")}

	var nav board.Nav
	nav.Activate(board.ViewCreate)
	data := s.newPage(nav)

	data.Submission = board.Submit(r.Context(), s.backend, form.Title, form.Description)
	if data.Submission.Phase == board.SubmitSucceeded {
		delay := strconv.FormatFloat(board.RedirectDelay.Seconds(), 'f', -1, 64)
		data.RedirectAfter = delay
		w.Header().Set("Refresh", delay+"; url=/?view=list")
	} else {
		data.Form = form
	}
	s.render(w, r, http.StatusOK, "page", data)
}

func (s *Server) quizAction(action func(id int) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid quiz id", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(action(id)))
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logging.WithContext(r.Context()).WithError(err).Errorf("render %s", name)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))
		logging.WithContext(ctx).WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  ww.Status(),
			"bytes":   ww.BytesWritten(),
			"elapsed": time.Since(start),
		}).Info("request")
	})
}
