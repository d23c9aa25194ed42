package smoketest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI imita la API de usuarios/login que se quiere probar.
func fakeAPI(t *testing.T, users string) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/api/users", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(users))
	})
	r.Get("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "5" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"user_id":5,"user_name":"Ann"}`))
	})
	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var c Credentials
		_ = json.NewDecoder(r.Body).Decode(&c)
		if c.Username != "ann" || c.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Incorrect username/password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"message":"Login successful","token":"t"}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newRunner(creds Credentials) *Runner {
	return NewRunner(Options{Timeout: 2 * time.Second, Credentials: creds})
}

func TestRun_AllStepsPass(t *testing.T) {
	srv := fakeAPI(t, `[{"user_id":5,"user_name":"Ann"},{"user_id":6,"user_name":"Bob"}]`)

	rep := newRunner(Credentials{Username: "ann", Password: "secret"}).Run(context.Background(), srv.URL+"/api/")

	assert.True(t, rep.Message, rep.Error)
	assert.Empty(t, rep.Error)
	assert.Equal(t, srv.URL+"/api", rep.BaseURL)
	assert.NotEmpty(t, rep.RunID)

	require.Len(t, rep.Steps, 4)
	names := []string{}
	for _, s := range rep.Steps {
		names = append(names, s.Name)
		assert.True(t, s.Passed, s.Name)
	}
	assert.Equal(t, []string{StepUserList, StepSingleUser, StepLogin, StepLoginError}, names)
	assert.Equal(t, srv.URL+"/api/users/5", rep.Steps[1].URL)
	assert.Equal(t, http.StatusUnauthorized, rep.Steps[3].StatusCode)

	assert.JSONEq(t, `{"user_id":5,"user_name":"Ann"}`, string(rep.Results[StepSingleUser]))
	assert.JSONEq(t, `{"message":"Incorrect username/password"}`, string(rep.Results[StepLoginError]))
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	srv := fakeAPI(t, `[{"user_id":5,"user_name":"Ann"}]`)

	rep := newRunner(Credentials{Username: "ann", Password: "wrong"}).Run(context.Background(), srv.URL+"/api")

	assert.False(t, rep.Message)
	require.Len(t, rep.Steps, 3)
	assert.False(t, rep.Steps[2].Passed)
	assert.Equal(t, StepLogin, rep.Steps[2].Name)
	assert.Contains(t, rep.Error, StepLogin)
	assert.NotContains(t, rep.Results, StepLoginError)
}

func TestRun_EmptyUserList(t *testing.T) {
	srv := fakeAPI(t, `[]`)

	rep := newRunner(Credentials{}).Run(context.Background(), srv.URL+"/api")

	assert.False(t, rep.Message)
	require.Len(t, rep.Steps, 1)
	assert.Equal(t, "testUserList: user list is empty", rep.Error)
}

func TestRun_RejectsNonHTTPBaseURL(t *testing.T) {
	rep := newRunner(Credentials{}).Run(context.Background(), "file:///etc/passwd")

	assert.False(t, rep.Message)
	assert.Empty(t, rep.Steps)
	assert.NotEmpty(t, rep.Error)
}

func TestHandler_UnescapesURLAndAlwaysReturns200(t *testing.T) {
	srv := fakeAPI(t, `[{"user_id":5,"user_name":"Ann"}]`)

	r := chi.NewRouter()
	RegisterRoutes(r, newRunner(Credentials{Username: "ann", Password: "secret"}))

	cases := map[string]bool{
		url.PathEscape(srv.URL + "/api"):     true,
		url.PathEscape(srv.URL + "/missing"): false,
	}
	for escaped, want := range cases {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test-api/"+escaped, nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var rep Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
		assert.Equal(t, want, rep.Message, escaped)
	}
}
