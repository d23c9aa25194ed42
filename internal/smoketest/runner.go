// Package smoketest corre una secuencia fija de requests contra otra instancia de la API
// (usuarios + login) y devuelve el resultado como JSON.
package smoketest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cats-api/internal/platform/httpclient"
	"cats-api/internal/platform/logger"

	"github.com/google/uuid"
)

// Nombres de los pasos; también son las claves de Report.Results.
const (
	StepUserList   = "testUserList"
	StepSingleUser = "testSingleUser"
	StepLogin      = "testLogin"
	StepLoginError = "testLoginError"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Options struct {
	Timeout     time.Duration
	Credentials Credentials

	// Transport es opcional (tests).
	Transport http.RoundTripper
	Log       logger.Logger
}

type Runner struct {
	timeout   time.Duration
	creds     Credentials
	transport http.RoundTripper
	log       logger.Logger
}

func NewRunner(opts Options) *Runner {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	return &Runner{
		timeout:   opts.Timeout,
		creds:     opts.Credentials,
		transport: opts.Transport,
		log:       opts.Log,
	}
}

type StepResult struct {
	Name       string `json:"name"`
	Method     string `json:"method"`
	URL        string `json:"url"`
	StatusCode int    `json:"status_code,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	Passed     bool   `json:"passed"`
	Error      string `json:"error,omitempty"`
}

// Report siempre se responde con 200; Message indica si pasaron todos los pasos.
type Report struct {
	RunID   string                     `json:"run_id"`
	BaseURL string                     `json:"base_url"`
	Message bool                       `json:"message"`
	Steps   []StepResult               `json:"steps"`
	Results map[string]json.RawMessage `json:"results"`
	Error   string                     `json:"error,omitempty"`
}

type remoteUser struct {
	UserID int64 `json:"user_id"`
}

// Run ejecuta los pasos en orden y corta en el primero que falla.
func (r *Runner) Run(ctx context.Context, rawBaseURL string) Report {
	rep := Report{
		RunID:   uuid.NewString(),
		BaseURL: rawBaseURL,
		Steps:   make([]StepResult, 0, 4),
		Results: make(map[string]json.RawMessage, 4),
	}
	log := r.log.With(map[string]any{"run_id": rep.RunID})

	base, err := httpclient.ParseBaseURL(rawBaseURL)
	if err != nil {
		rep.Error = err.Error()
		log.Warn("smoke test rejected", map[string]any{"base_url": rawBaseURL, "error": err})
		return rep
	}
	rep.BaseURL = base

	client := httpclient.NewWithTransport(r.timeout, r.transport)
	client.BaseURL = base

	s := &session{ctx: ctx, client: client, report: &rep}

	var users []remoteUser
	ok := s.step(StepUserList, http.MethodGet, "/users", nil, func(resp *httpclient.Response) error {
		if !resp.OK() {
			return unexpectedStatus(resp.StatusCode)
		}
		if err := resp.Decode(&users); err != nil {
			return err
		}
		if len(users) == 0 {
			return errors.New("user list is empty")
		}
		return nil
	})

	ok = ok && s.step(StepSingleUser, http.MethodGet, "/users/"+strconv.FormatInt(usersFirstID(users), 10), nil, expect2xx)

	ok = ok && s.step(StepLogin, http.MethodPost, "/auth/login", r.creds, expect2xx)

	invalid := Credentials{Username: "smoke-" + rep.RunID, Password: uuid.NewString()}
	ok = ok && s.step(StepLoginError, http.MethodPost, "/auth/login", invalid, func(resp *httpclient.Response) error {
		if resp.StatusCode < 400 || resp.StatusCode >= 500 {
			return fmt.Errorf("expected 4xx for invalid credentials, got %d", resp.StatusCode)
		}
		return nil
	})

	rep.Message = ok
	log.Info("smoke test finished", map[string]any{
		"base_url": base,
		"passed":   ok,
		"steps":    len(rep.Steps),
	})
	return rep
}

type session struct {
	ctx    context.Context
	client *httpclient.Client
	report *Report
}

func (s *session) step(name, method, path string, body any, check func(*httpclient.Response) error) bool {
	res := StepResult{Name: name, Method: method, URL: s.client.BaseURL + path}

	resp, err := s.client.Do(s.ctx, method, path, nil, body)
	if err == nil {
		res.StatusCode = resp.StatusCode
		res.DurationMS = resp.Duration.Milliseconds()
		s.report.Results[name] = rawResult(resp.Body)
		err = check(resp)
	}

	if err != nil {
		res.Error = err.Error()
		s.report.Error = fmt.Sprintf("%s: %s", name, err)
	}
	res.Passed = err == nil
	s.report.Steps = append(s.report.Steps, res)
	return res.Passed
}

func expect2xx(resp *httpclient.Response) error {
	if !resp.OK() {
		return unexpectedStatus(resp.StatusCode)
	}
	return nil
}

func unexpectedStatus(code int) error {
	return fmt.Errorf("unexpected status %d", code)
}

func usersFirstID(users []remoteUser) int64 {
	if len(users) == 0 {
		return 0
	}
	return users[0].UserID
}

// rawResult devuelve el body tal cual si es JSON; si no, como string JSON.
func rawResult(body []byte) json.RawMessage {
	if len(body) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	b, _ := json.Marshal(string(body))
	return b
}
