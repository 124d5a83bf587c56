package auth

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestMethodOverrideFormField(t *testing.T) {
	router, _ := newTestRouter(t)
	cookies := jar{}
	registerAnn(t, router)
	loginAnn(t, router, cookies)

	handler := MethodOverride(router)
	rec := doRequest(handler, http.MethodPost, "/logout", url.Values{
		"_method": {"DELETE"},
	}, cookies)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("form override logout: got %d -> %q, want 302 -> /login", rec.Code, rec.Header().Get("Location"))
	}
	cookies.update(rec)

	rec = doRequest(router, http.MethodGet, "/", nil, cookies)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("home after override logout: got %d -> %q, want 302 -> /login", rec.Code, rec.Header().Get("Location"))
	}
}

func TestMethodOverrideQueryParam(t *testing.T) {
	router, _ := newTestRouter(t)
	handler := MethodOverride(router)

	rec := doRequest(handler, http.MethodPost, "/logout?_method=DELETE", nil, nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("query override logout: got %d -> %q, want 302 -> /login", rec.Code, rec.Header().Get("Location"))
	}
}

func TestMethodOverrideIgnoresUnsafeValues(t *testing.T) {
	var seen string
	handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	for _, value := range []string{"GET", "CONNECT", "", "bogus"} {
		req, err := http.NewRequest(http.MethodPost, "/logout?_method="+value, strings.NewReader(""))
		if err != nil {
			t.Fatalf("NewRequest returned error: %v", err)
		}
		handler.ServeHTTP(nil, req)
		if seen != http.MethodPost {
			t.Fatalf("_method=%q rewrote method to %q", value, seen)
		}
	}
}

func TestMethodOverrideOnlyAppliesToPost(t *testing.T) {
	var seen string
	handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	req, err := http.NewRequest(http.MethodGet, "/logout?_method=DELETE", nil)
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	handler.ServeHTTP(nil, req)
	if seen != http.MethodGet {
		t.Fatalf("GET request rewritten to %q", seen)
	}
}
