package lifecycle_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/arkline/lifecycle"
)

func TestRouter_InjectsForWrappedRoute(t *testing.T) {
	reg := newDeprecatedUsersRegistry(t)

	rt := lifecycle.NewRouter(chi.NewRouter(), reg)
	rt.Get("/deprecated-endpoint", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"users":[]}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/deprecated-endpoint", http.NoBody)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	checkDeprecatedUsersHeaders(t, rec.Header())
}

func TestRouter_UnconfiguredRouteGetsNoHeaders(t *testing.T) {
	reg := newDeprecatedUsersRegistry(t)

	rt := lifecycle.NewRouter(chi.NewRouter(), reg)
	rt.Get("/current-endpoint", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/current-endpoint", http.NoBody)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	if got := rec.Header().Get("Deprecation"); got != "" {
		t.Fatalf("expected no Deprecation header, got %q", got)
	}
}

func TestRouter_NestedRouteComposesPattern(t *testing.T) {
	reg := lifecycle.NewRegistry()
	if err := reg.Versioned(http.MethodGet, "/api/v1/users", lifecycle.Config{Version: "1.0"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rt := lifecycle.NewRouter(chi.NewRouter(), reg)
	rt.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", http.NoBody)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-API-Version"); got != "1.0" {
		t.Fatalf("expected X-API-Version header, got %q", got)
	}
}

func TestRouter_AllVerbsWrap(t *testing.T) {
	reg := lifecycle.NewRegistry()
	noop := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	methods := []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodHead, http.MethodOptions,
	}
	for _, method := range methods {
		if err := reg.Versioned(method, "/thing", lifecycle.Config{Version: "1.0"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	rt := lifecycle.NewRouter(chi.NewRouter(), reg)
	rt.Get("/thing", noop)
	rt.Post("/thing", noop)
	rt.Put("/thing", noop)
	rt.Patch("/thing", noop)
	rt.Delete("/thing", noop)
	rt.Head("/thing", noop)
	rt.Options("/thing", noop)

	for _, method := range methods {
		req := httptest.NewRequest(method, "/thing", http.NoBody)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-API-Version"); got != "1.0" {
			t.Fatalf("%s: expected X-API-Version header, got %q", method, got)
		}
	}
}
