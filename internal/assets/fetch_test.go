package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		if r.URL.Path == "/broken.glb" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("glTF"))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "cache")
	path, err := Fetch(context.Background(), srv.Client(), srv.URL+"/duck.glb", dir, "duck.glb")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if path != filepath.Join(dir, "duck.glb") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "glTF" {
		t.Fatalf("saved data = %q, %v", data, err)
	}

	if _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/broken.glb", dir, "broken.glb"); err == nil {
		t.Fatal("expected an error for HTTP 500")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("cache holds %d entries, want only duck.glb", len(entries))
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"duck.glb", "duck.glb"},
		{"../../etc/passwd", "passwd"},
		{"space ship.glb", "space_ship.glb"},
		{"", "model.glb"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
