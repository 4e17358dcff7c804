package ollama_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	llmcheck "github.com/mutablelogic/go-llmcheck"
	ollama "github.com/mutablelogic/go-llmcheck/pkg/ollama"
	format "github.com/ollama/ollama/format"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// newServer returns a test server which responds to a single path with a
// fixed status, content type and body, and records the request body
func newServer(t *testing.T, path string, status int, contentType, body string, request *[]byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if request != nil {
			data, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			*request = data
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, url string) *ollama.Client {
	t.Helper()
	c, err := ollama.New(url+"/api", client.OptTimeout(10*time.Second))
	require.NoError(t, err)
	return c
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	// An empty endpoint uses the default
	assert := assert.New(t)
	c, err := ollama.New("")
	assert.NoError(err)
	assert.NotNil(c)
}

func Test_generate_001(t *testing.T) {
	// Success returns the response text, and the request is not streamed
	assert := assert.New(t)
	var request []byte
	srv := newServer(t, "/api/generate", http.StatusOK, "application/json", `{"model":"deepseek-r1","response":"hi","done":true}`, &request)

	response, err := newClient(t, srv.URL).Generate(context.Background(), "deepseek-r1", "Say hello in exactly one sentence.")
	assert.NoError(err)
	assert.Equal("hi", response)
	assert.JSONEq(`{"model":"deepseek-r1","prompt":"Say hello in exactly one sentence.","stream":false}`, string(request))
}

func Test_generate_002(t *testing.T) {
	// A missing response field is an empty response
	assert := assert.New(t)
	srv := newServer(t, "/api/generate", http.StatusOK, "application/json", `{"done":true}`, nil)

	response, err := newClient(t, srv.URL).Generate(context.Background(), "deepseek-r1", "hello")
	assert.NoError(err)
	assert.Equal("", response)
}

func Test_generate_003(t *testing.T) {
	// An error status carries the code and the body
	assert := assert.New(t)
	srv := newServer(t, "/api/generate", http.StatusInternalServerError, "text/plain", "boom", nil)

	_, err := newClient(t, srv.URL).Generate(context.Background(), "deepseek-r1", "hello")
	assert.ErrorIs(err, llmcheck.ErrUnexpectedStatus)
	assert.EqualError(err, "API error: 500 - boom")
}

func Test_generate_008(t *testing.T) {
	// Error bodies are reported without the status line
	tests := []struct {
		status      int
		contentType string
		body        string
		expect      string
	}{
		{http.StatusNotFound, "application/json", `{"error":"model 'mistral' not found"}`, `API error: 404 - {"error":"model 'mistral' not found"}`},
		{http.StatusBadGateway, "text/plain", "", "API error: 502 - Bad Gateway"},
		{http.StatusNotFound, "text/plain", "Not Found", "API error: 404 - Not Found"},
		{http.StatusServiceUnavailable, "application/json", `{"code":503,"reason":"model is loading"}`, "API error: 503 - model is loading"},
	}
	for _, test := range tests {
		t.Run(test.expect, func(t *testing.T) {
			srv := newServer(t, "/api/generate", test.status, test.contentType, test.body, nil)
			_, err := newClient(t, srv.URL).Generate(context.Background(), "mistral", "hello")
			assert.ErrorIs(t, err, llmcheck.ErrUnexpectedStatus)
			assert.EqualError(t, err, test.expect)
		})
	}
}

func Test_timeout_001(t *testing.T) {
	// Requests have no timeout unless one is set
	assert := assert.New(t)
	c, err := ollama.New("")
	require.NoError(t, err)
	assert.Zero(c.Timeout)

	c, err = ollama.New("", client.OptTimeout(time.Minute))
	require.NoError(t, err)
	assert.Equal(time.Minute, c.Timeout)
}

func Test_timeout_002(t *testing.T) {
	// A configured timeout is applied to generate requests
	assert := assert.New(t)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"response":"late"}`)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c, err := ollama.New(srv.URL+"/api", client.OptTimeout(50*time.Millisecond))
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), "deepseek-r1", "hello")
	assert.Error(err)
	assert.NotErrorIs(err, llmcheck.ErrUnexpectedStatus)
}

func Test_timeout_003(t *testing.T) {
	// Without a timeout a slow response is waited for
	assert := assert.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"response":"slow"}`)
	}))
	t.Cleanup(srv.Close)

	c, err := ollama.New(srv.URL + "/api")
	require.NoError(t, err)
	response, err := c.Generate(context.Background(), "deepseek-r1", "hello")
	assert.NoError(err)
	assert.Equal("slow", response)
}

func Test_generate_004(t *testing.T) {
	// A refused connection is reported as unreachable
	assert := assert.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newClient(t, url).Generate(context.Background(), "deepseek-r1", "hello")
	assert.ErrorIs(err, llmcheck.ErrUnreachable)
}

func Test_generate_005(t *testing.T) {
	// System prompt and model options are sent
	assert := assert.New(t)
	var request []byte
	srv := newServer(t, "/api/generate", http.StatusOK, "application/json", `{"response":"Hello."}`, &request)

	response, err := newClient(t, srv.URL).Generate(context.Background(), "deepseek-r1", "Where does hello world come from?",
		ollama.WithSystemPrompt("Be concise, reply with one sentence."),
		ollama.WithTemperature(0.7),
		ollama.WithSeed(42),
		ollama.WithKeepAlive(time.Minute),
	)
	assert.NoError(err)
	assert.Equal("Hello.", response)

	var body map[string]any
	require.NoError(t, json.Unmarshal(request, &body))
	assert.Equal("Be concise, reply with one sentence.", body["system"])
	assert.Equal(false, body["stream"])
	assert.Equal("1m0s", body["keep_alive"])
	assert.Equal(map[string]any{"temperature": 0.7, "seed": float64(42)}, body["options"])
}

func Test_generate_006(t *testing.T) {
	// Bad parameters are rejected before a request is made
	assert := assert.New(t)
	c := newClient(t, "http://localhost:1")

	_, err := c.Generate(context.Background(), "", "hello")
	assert.ErrorIs(err, llmcheck.ErrBadParameter)

	_, err = c.Generate(context.Background(), "deepseek-r1", "hello", ollama.WithTemperature(3))
	assert.ErrorIs(err, llmcheck.ErrBadParameter)

	_, err = c.Generate(context.Background(), "deepseek-r1", "hello", ollama.WithKeepAlive(-time.Second))
	assert.ErrorIs(err, llmcheck.ErrBadParameter)
}

func Test_generate_007(t *testing.T) {
	// The full response carries metrics
	assert := assert.New(t)
	srv := newServer(t, "/api/generate", http.StatusOK, "application/json", `{"model":"deepseek-r1","response":"hi","done":true,"total_duration":1500000000,"eval_count":12}`, nil)

	response, err := newClient(t, srv.URL).GenerateResponse(context.Background(), "deepseek-r1", "hello")
	assert.NoError(err)
	if assert.NotNil(response) {
		assert.Equal("deepseek-r1", response.Model)
		assert.True(response.Done)
		assert.Equal(1500*time.Millisecond, response.TotalDuration)
		assert.Equal(12, response.EvalCount)
	}
}

func Test_models_001(t *testing.T) {
	assert := assert.New(t)
	srv := newServer(t, "/api/tags", http.StatusOK, "application/json", `{"models":[
		{"name":"deepseek-r1:latest","model":"deepseek-r1:latest","size":4683075271,"digest":"0a8c266910232fd3291e71e5ba1e058cc5af9d411192cf88b6d30e92b6e73163"},
		{"name":"tiny:latest","size":512,"digest":"abc"}
	]}`, nil)

	models, err := newClient(t, srv.URL).ListModels(context.Background())
	assert.NoError(err)
	if assert.Len(models, 2) {
		assert.Equal("deepseek-r1:latest", models[0].Name)
		assert.Equal("0a8c26691023", models[0].ID)
		assert.Equal(format.HumanBytes(4683075271), models[0].Size)
		assert.Equal("abc", models[1].ID)
		assert.Equal(format.HumanBytes(512), models[1].Size)
	}
}

func Test_models_002(t *testing.T) {
	assert := assert.New(t)
	srv := newServer(t, "/api/tags", http.StatusOK, "application/json", `{"models":[]}`, nil)

	models, err := newClient(t, srv.URL).ListModels(context.Background())
	assert.NoError(err)
	assert.Empty(models)
}

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	srv := newServer(t, "/api/version", http.StatusOK, "application/json", `{"version":"0.15.6"}`, nil)

	version, err := newClient(t, srv.URL).Version(context.Background())
	assert.NoError(err)
	assert.Equal("0.15.6", version)
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	srv := newServer(t, "/api/version", http.StatusNotFound, "text/plain", "404 page not found", nil)

	_, err := newClient(t, srv.URL).Version(context.Background())
	assert.ErrorIs(err, llmcheck.ErrUnexpectedStatus)
	assert.ErrorContains(err, "404")
}

///////////////////////////////////////////////////////////////////////////////
// INTEGRATION

func Test_integration_001(t *testing.T) {
	endpoint := os.Getenv("OLLAMA_URL")
	if endpoint == "" {
		t.Skip("OLLAMA_URL not set, skipping")
	}
	assert := assert.New(t)
	c, err := ollama.New(endpoint, client.OptTimeout(5*time.Minute))
	require.NoError(t, err)

	version, err := c.Version(context.Background())
	assert.NoError(err)
	assert.NotEmpty(version)

	models, err := c.ListModels(context.Background())
	assert.NoError(err)
	t.Log(models)
}
