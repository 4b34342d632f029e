// Package files expands target paths and applies the class rewriter to them.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/MrSnakeDoc/tailwhip/internal/logger"
)

// Find expands paths into a deduplicated list of absolute file paths, in
// first-seen order:
//   - an existing directory is searched with every glob in globs;
//   - an existing file is taken as is;
//   - anything else is a glob pattern evaluated from the working directory.
//
// Symlinks are resolved, so a file reached through several links is listed
// once, under its real path, and writes never replace the link itself.
func Find(paths []string, globs []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	add := func(p string) error {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		if _, dup := seen[abs]; dup {
			return nil
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
		return nil
	}

	for _, entry := range paths {
		info, err := os.Stat(entry)
		switch {
		case err == nil && info.IsDir():
			for _, g := range globs {
				matches, err := doublestar.Glob(os.DirFS(entry), g, doublestar.WithFilesOnly())
				if err != nil {
					return nil, fmt.Errorf("invalid glob %q: %w", g, err)
				}
				for _, m := range matches {
					if err := add(filepath.Join(entry, filepath.FromSlash(m))); err != nil {
						return nil, err
					}
				}
			}

		case err == nil:
			if err := add(entry); err != nil {
				return nil, err
			}

		default:
			matches, err := globPattern(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid glob %q: %w", entry, err)
			}
			if len(matches) == 0 {
				logger.Debug("no match for %q", entry)
			}
			for _, m := range matches {
				if err := add(m); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// globPattern matches a relative pattern at any depth below the working
// directory ("*.html" finds ./a.html and ./src/b.html); absolute patterns
// and patterns leaving it ("../x/*.html") match as written.
func globPattern(pattern string) ([]string, error) {
	rel := filepath.ToSlash(filepath.Clean(pattern))
	if filepath.IsAbs(pattern) || rel == ".." || strings.HasPrefix(rel, "../") {
		return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	}

	if !strings.HasPrefix(rel, "**/") {
		rel = "**/" + rel
	}

	matches, err := doublestar.Glob(os.DirFS("."), rel, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.FromSlash(m)
	}
	return matches, nil
}
