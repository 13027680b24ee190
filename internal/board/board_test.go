package board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/quizboard/internal/quizapi"
)

type fakeBackend struct {
	quizzes []quizapi.Quiz
	err     error
	created []quizapi.CreateRequest
}

func (f *fakeBackend) ListQuizzes(context.Context) ([]quizapi.Quiz, error) {
	return f.quizzes, f.err
}

func (f *fakeBackend) CreateQuiz(_ context.Context, req quizapi.CreateRequest) (quizapi.CreateResponse, error) {
	f.created = append(f.created, req)
	return quizapi.CreateResponse{}, f.err
}

func strPtr(s string) *string { return &s }

func TestNavKeepsExactlyOneActive(t *testing.T) {
	var n Nav
	require.True(t, n.IsActive(ViewList))

	require.False(t, n.Activate(ViewCreate))
	require.False(t, n.Activate(ViewCreate))
	for _, v := range Views {
		require.Equal(t, v == ViewCreate, n.IsActive(v))
	}

	require.True(t, n.Activate(ViewList))
	require.True(t, n.Activate(ViewList))
	require.Equal(t, ViewList, n.Active())
	require.Equal(t, ViewCreate, n.Next())
}

func TestNavPanicsOnUnknownView(t *testing.T) {
	var n Nav
	require.Panics(t, func() { n.Activate(View(42)) })
}

func TestParseView(t *testing.T) {
	v, err := ParseView("create")
	require.NoError(t, err)
	require.Equal(t, ViewCreate, v)

	_, err = ParseView("stats")
	require.ErrorIs(t, err, ErrUnknownView)
}

func TestLoadEmpty(t *testing.T) {
	state := Load(context.Background(), &fakeBackend{quizzes: []quizapi.Quiz{}}, "http://x/api")
	require.Equal(t, ListEmpty, state.Phase)
	require.Empty(t, state.Cards)
}

func TestLoadCardsFallbacks(t *testing.T) {
	backend := &fakeBackend{quizzes: []quizapi.Quiz{
		{ID: 1, Title: "<b>X</b>"},
		{ID: 2, Title: "Go", Description: strPtr("basics"), CreatedAt: strPtr("2024-03-05T10:00:00Z")},
	}}
	state := Load(context.Background(), backend, "http://x/api")
	require.Equal(t, ListLoaded, state.Phase)
	require.Equal(t, []Card{
		{ID: 1, Title: "<b>X</b>", Description: NoDescriptionText, Created: UnknownDateText},
		{ID: 2, Title: "Go", Description: "basics", Created: "Mar 5, 2024"},
	}, state.Cards)
}

func TestLoadFailureCarriesURL(t *testing.T) {
	state := Load(context.Background(), &fakeBackend{err: &quizapi.HTTPError{Status: 500}}, "http://x/api")
	require.Equal(t, ListFailed, state.Phase)
	require.Equal(t, "http://x/api", state.APIURL)
	require.EqualError(t, state.Err, "http error: status 500")
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2024-03-05T10:00:00Z":          "Mar 5, 2024",
		"2024-12-25T23:30:00.123+02:00": "Dec 25, 2024",
		"2024-01-09T08:00:00.123456":    "Jan 9, 2024",
		"2024-01-09 08:00:00":           "Jan 9, 2024",
		"Tue, 05 Mar 2024 10:00:00 GMT": "Mar 5, 2024",
		"2023-07-14":                    "Jul 14, 2023",
		"yesterday":                     UnknownDateText,
		"":                              UnknownDateText,
	}
	for in, want := range cases {
		require.Equal(t, want, FormatDate(strPtr(in)), in)
	}
	require.Equal(t, UnknownDateText, FormatDate(nil))
}

func TestSubmitTrimsAndSucceeds(t *testing.T) {
	backend := &fakeBackend{}
	got := Submit(context.Background(), backend, "  My Quiz ", "desc\n")
	require.Equal(t, Submission{Phase: SubmitSucceeded, Message: CreatedText}, got)
	require.Equal(t, []quizapi.CreateRequest{{Title: "My Quiz", Description: "desc"}}, backend.created)
	require.False(t, got.ButtonDisabled())
	require.Equal(t, SubmitLabel, got.ButtonLabel())
}

func TestSubmitSendsEmptyTitle(t *testing.T) {
	backend := &fakeBackend{}
	Submit(context.Background(), backend, "   ", "")
	require.Equal(t, "", backend.created[0].Title)
}

func TestSubmitFailure(t *testing.T) {
	got := Submit(context.Background(), &fakeBackend{err: errors.New("boom")}, "t", "d")
	require.Equal(t, SubmitFailed, got.Phase)
	require.Equal(t, "Failed to create quiz: boom", got.Message)
}

func TestSubmissionBegin(t *testing.T) {
	s := Submission{Phase: SubmitFailed, Message: "old"}
	require.True(t, s.Begin())
	require.Equal(t, Submission{Phase: Submitting}, s)
	require.True(t, s.ButtonDisabled())
	require.Equal(t, SubmittingLabel, s.ButtonLabel())
	require.False(t, s.Begin())
}

func TestGeneration(t *testing.T) {
	var g Generation
	first := g.Next()
	require.True(t, g.Current(first))
	second := g.Next()
	require.False(t, g.Current(first))
	require.True(t, g.Current(second))
	g.Cancel()
	require.False(t, g.Current(second))
	require.False(t, g.Current(""))
}

func TestComingSoon(t *testing.T) {
	var a Actions = ComingSoon{}
	require.Equal(t, "Quiz 3 details - Feature coming soon!", a.ViewQuiz(3))
	require.Equal(t, "Starting quiz 3 - Feature coming soon!", a.StartQuiz(3))
}
