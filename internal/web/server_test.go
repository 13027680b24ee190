package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jask/quizboard/internal/board"
	"github.com/jask/quizboard/internal/quizapi"
)

type fakeBackend struct {
	quizzes   []quizapi.Quiz
	listErr   error
	listCalls int
	createErr error
	created   []quizapi.CreateRequest
}

func (f *fakeBackend) ListQuizzes(context.Context) ([]quizapi.Quiz, error) {
	f.listCalls++
	return f.quizzes, f.listErr
}

func (f *fakeBackend) CreateQuiz(_ context.Context, req quizapi.CreateRequest) (quizapi.CreateResponse, error) {
	f.created = append(f.created, req)
	return quizapi.CreateResponse{}, f.createErr
}

const testAPIURL = "http://backend.test/api"

func newTestServer(t *testing.T, backend *fakeBackend) http.Handler {
	t.Helper()
	logrus.SetOutput(io.Discard)
	return New(backend, testAPIURL, nil).Routes()
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPageListEscapesCards(t *testing.T) {
	backend := &fakeBackend{quizzes: []quizapi.Quiz{{ID: 1, Title: "<b>X</b>"}}}
	h := newTestServer(t, backend)

	rec := get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<h3>&lt;b&gt;X&lt;/b&gt;</h3>")
	require.NotContains(t, body, "<b>X</b>")
	require.Contains(t, body, "No description provided")
	require.Contains(t, body, "Created: Unknown")
	require.Equal(t, 1, backend.listCalls)
}

func TestPageMarksExactlyOneActive(t *testing.T) {
	h := newTestServer(t, &fakeBackend{})

	for _, view := range []string{"list", "create"} {
		body := get(h, "/?view="+view).Body.String()
		require.Equal(t, 1, strings.Count(body, `class="view active"`), view)
		require.Equal(t, 1, strings.Count(body, `class="nav-btn active"`), view)
		require.Contains(t, body, `id="`+view+`-view" class="view active"`)
		require.Contains(t, body, `id="`+view+`-btn" class="nav-btn active"`)
	}
}

func TestCreateViewDoesNotFetch(t *testing.T) {
	backend := &fakeBackend{}
	h := newTestServer(t, backend)

	body := get(h, "/?view=create").Body.String()
	require.Zero(t, backend.listCalls)
	require.Contains(t, body, `<div id="quiz-list"></div>`)
	require.NotContains(t, body, board.LoadingText)
	get(h, "/?view=list")
	get(h, "/?view=list")
	require.Equal(t, 2, backend.listCalls)
}

func TestUnknownViewIsNotFound(t *testing.T) {
	rec := get(newTestServer(t, &fakeBackend{}), "/?view=stats")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFragmentStates(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		body := get(newTestServer(t, &fakeBackend{}), "/fragments/quizzes").Body.String()
		require.Contains(t, body, `<p class="empty-state">No quizzes yet. Create your first one!</p>`)
		require.NotContains(t, body, "quiz-card")
	})

	t.Run("error", func(t *testing.T) {
		backend := &fakeBackend{listErr: &quizapi.HTTPError{Status: 500}}
		rec := get(newTestServer(t, backend), "/fragments/quizzes")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, "Failed to load quizzes")
		require.Contains(t, body, "Make sure backend is running at "+testAPIURL)
		require.Contains(t, body, "Error: http error: status 500")
	})

	t.Run("cards keep order", func(t *testing.T) {
		created := "2024-03-05T10:00:00Z"
		backend := &fakeBackend{quizzes: []quizapi.Quiz{{ID: 2, Title: "B", CreatedAt: &created}, {ID: 1, Title: "A"}}}
		body := get(newTestServer(t, backend), "/fragments/quizzes").Body.String()
		require.Less(t, strings.Index(body, "<h3>B</h3>"), strings.Index(body, "<h3>A</h3>"))
		require.Contains(t, body, "Created: Mar 5, 2024")
		require.Contains(t, body, `href="/quizzes/2/start"`)
	})
}

func postForm(h http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateSuccessRedirectsToList(t *testing.T) {
	backend := &fakeBackend{}
	h := newTestServer(t, backend)

	rec := postForm(h, url.Values{"title": {" My Quiz "}, "description": {"desc"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "1.5; url=/?view=list", rec.Header().Get("Refresh"))

	body := rec.Body.String()
	require.Contains(t, body, "Quiz created successfully!")
	require.Contains(t, body, `<input id="title" name="title" value="">`)
	require.Contains(t, body, `>Create Quiz</button>`)
	require.NotContains(t, body, "disabled")
	require.Equal(t, []quizapi.CreateRequest{{Title: "My Quiz", Description: "desc"}}, backend.created)
	require.Zero(t, backend.listCalls)
}

func TestCreateFailureKeepsForm(t *testing.T) {
	backend := &fakeBackend{createErr: errors.New("http error: status 400")}
	h := newTestServer(t, backend)

	rec := postForm(h, url.Values{"title": {"My Quiz"}, "description": {"desc"}})
	require.Empty(t, rec.Header().Get("Refresh"))

	body := rec.Body.String()
	require.Contains(t, body, "Failed to create quiz: http error: status 400")
	require.Contains(t, body, `value="My Quiz"`)
	require.Contains(t, body, ">desc</textarea>")
	require.NotContains(t, body, "http-equiv")
}

func TestQuizActionStubs(t *testing.T) {
	h := newTestServer(t, &fakeBackend{})

	require.Equal(t, "Quiz 4 details - Feature coming soon!", get(h, "/quizzes/4").Body.String())
	require.Equal(t, "Starting quiz 4 - Feature coming soon!", get(h, "/quizzes/4/start").Body.String())
	require.Equal(t, http.StatusBadRequest, get(h, "/quizzes/abc").Code)
}

func TestHealthz(t *testing.T) {
	rec := get(newTestServer(t, &fakeBackend{}), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestWriteListEscapes(t *testing.T) {
	var buf strings.Builder
	err := WriteList(&buf, board.ListState{
		Phase: board.ListLoaded,
		Cards: []board.Card{{ID: 1, Title: "<b>X</b>", Description: "a & b", Created: "Unknown"}},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "&lt;b&gt;X&lt;/b&gt;")
	require.Contains(t, buf.String(), "a &amp; b")
}
