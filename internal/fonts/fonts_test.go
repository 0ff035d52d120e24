package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("font"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf", "readme.txt")

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	want := []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ScanDir = %v, want %v", got, want)
	}

	missing, err := ScanDir(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Fatalf("missing dir: %v %v", missing, err)
	}
}

func TestFind(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFiles(t, first, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf")
	writeFiles(t, second, "Google_Sans/GoogleSans-Medium.ttf")

	tests := []struct {
		name string
		want string
		err  error
	}{
		{"inter", filepath.Join(first, "Inter", "Inter-Regular.ttf"), nil},
		{"Inter Bold", filepath.Join(first, "Inter", "Inter-Bold.ttf"), nil},
		{"google sans", filepath.Join(second, "Google_Sans", "GoogleSans-Medium.ttf"), nil},
		{"Comic", "", ErrNotFound},
		{"  ", "", ErrNotFound},
	}
	for _, tt := range tests {
		got, err := Find([]string{first, second}, tt.name)
		if !errors.Is(err, tt.err) {
			t.Errorf("Find(%q) err = %v, want %v", tt.name, err, tt.err)
		}
		if got != tt.want {
			t.Errorf("Find(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
