package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/shared/server/middleware"
)

func testConfig(env string) config.Config {
	return config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             env,
		DefaultProvider: "google",
		FreeTierLimit:   config.DefaultFreeTierLimit,
	}
}

func TestHealthRoute(t *testing.T) {
	r := NewRouter(testConfig("dev"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get(middleware.SessionHeader) == "" {
		t.Error("session header not issued")
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("request id header not issued")
	}
}

func TestUsageRoute(t *testing.T) {
	r := NewRouter(testConfig("dev"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/usage", nil)
	req.Header.Set(middleware.SessionHeader, "sess-router-test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
}

func TestDevRoutesGatedByEnv(t *testing.T) {
	for env, want := range map[string]int{
		"dev":  http.StatusOK,
		"prod": http.StatusNotFound,
	} {
		r := NewRouter(testConfig(env))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/usage/reset", nil)
		req.Header.Set(middleware.SessionHeader, "sess-router-test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Errorf("env %s: status = %d, want %d", env, w.Code, want)
		}
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":9000": ":9000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
