package service

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/onec-tools/bslbridge/internal/logging"
)

// ReportLocatorImpl implements the ReportLocator interface
type ReportLocatorImpl struct {
	log *zap.SugaredLogger
}

// NewReportLocator creates a new report locator
func NewReportLocator() *ReportLocatorImpl {
	return &ReportLocatorImpl{log: logging.L()}
}

// Locate expands the configured report paths and glob patterns into an
// ordered, deduplicated list of report files. Literal paths that do not
// exist are logged and dropped; a malformed glob pattern is an error.
func (l *ReportLocatorImpl) Locate(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		if !hasGlobMeta(pattern) {
			info, err := os.Stat(pattern)
			if err != nil {
				l.log.Warnf("Report file not found, skipping: %s", pattern)
				continue
			}
			if info.IsDir() {
				l.log.Warnf("Report path is a directory, skipping: %s", pattern)
				continue
			}
			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid report pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			l.log.Warnf("Report pattern matched no files: %s", pattern)
		}
		for _, match := range matches {
			add(match)
		}
	}

	return files, nil
}

// hasGlobMeta reports whether the pattern contains glob metacharacters
func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
