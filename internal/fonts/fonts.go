package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned by Find when no font file matches.
var ErrNotFound = errors.New("fonts: no matching font")

// Exts are the file types considered font files.
var Exts = []string{".ttf", ".otf"}

// DefaultDirs returns candidate font directories relative to the working directory,
// so fonts are found whether the viewer runs from the repo root or from cmd/viewer.
func DefaultDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the paths of all font files under dir relative to dir, with forward slashes, sorted.
// A missing dir yields no fonts and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and removes spaces, dashes and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find searches dirs in order for a font whose relative path contains name, ignoring case,
// spaces, dashes and underscores ("Inter", "google sans", "Inter-Bold"). Among matches in the
// first directory that has any, a "Regular" face is preferred. Returns the full path.
func Find(dirs []string, name string) (string, error) {
	want := normalize(name)
	if want == "" {
		return "", ErrNotFound
	}
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			continue
		}
		var matches []string
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, rel)
			}
		}
		if len(matches) == 0 {
			continue
		}
		best := matches[0]
		for _, rel := range matches {
			if strings.Contains(strings.ToLower(rel), "regular") {
				best = rel
				break
			}
		}
		return filepath.Join(dir, filepath.FromSlash(best)), nil
	}
	return "", ErrNotFound
}
