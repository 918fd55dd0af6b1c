package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DIMO-Network/business-autoresponder/tests"
)

type telegramCall struct {
	Method string
	Body   map[string]any
	At     time.Time
}

type mockTelegramServer struct {
	server  *httptest.Server
	calls   []telegramCall
	failing map[string]bool
	mu      sync.RWMutex
}

func setupTelegramServer(t *testing.T) *mockTelegramServer {
	m := &mockTelegramServer{
		failing: make(map[string]bool),
	}

	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		prefix := "/bot" + tests.TestBotToken + "/"
		if !strings.HasPrefix(r.URL.Path, prefix) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
			return
		}
		method := strings.TrimPrefix(r.URL.Path, prefix)

		body := make(map[string]any)
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		m.mu.Lock()
		m.calls = append(m.calls, telegramCall{Method: method, Body: body, At: time.Now()})
		failing := m.failing[method]
		m.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if failing {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request"}`)
			return
		}
		if method == "sendMessage" {
			_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":10,"date":1700000000,"chat":{"id":42,"type":"private"}}}`)
			return
		}
		_, _ = io.WriteString(w, `{"ok":true,"result":true}`)
	}))
	t.Cleanup(m.server.Close)
	return m
}

// Fail makes every call to method answer with a Bot API error.
func (m *mockTelegramServer) Fail(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[method] = true
}

// Calls returns the recorded calls, optionally filtered by method.
func (m *mockTelegramServer) Calls(methods ...string) []telegramCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]telegramCall, 0, len(m.calls))
	for _, call := range m.calls {
		if len(methods) == 0 || slices.Contains(methods, call.Method) {
			out = append(out, call)
		}
	}
	return out
}

func (m *mockTelegramServer) URL() string {
	return m.server.URL
}
