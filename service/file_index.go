package service

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/onec-tools/bslbridge/domain"
)

// FileIndexImpl is the tracked source file set, built once per run by
// walking the configured source roots. Lookup is exact absolute-path
// equality combined with a language filter.
type FileIndexImpl struct {
	files map[string]domain.SourceFile
}

// BuildFileIndex walks the given roots and indexes files whose extension
// matches one of the tracked BSL extensions. Entries matched by a root's
// .gitignore are excluded, as are .git directories.
func BuildFileIndex(roots []string, extensions []string) (*FileIndexImpl, error) {
	index := &FileIndexImpl{files: make(map[string]domain.SourceFile)}

	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, domain.NewFileError("can't resolve source root "+root, err)
		}
		if _, err := os.Stat(absRoot); err != nil {
			return nil, domain.NewFileError("can't read source root "+root, err)
		}

		var matcher *ignore.GitIgnore
		if compiled, err := ignore.CompileIgnoreFile(filepath.Join(absRoot, ".gitignore")); err == nil {
			matcher = compiled
		}

		walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(absRoot, path)
			if relErr != nil {
				return relErr
			}
			if d.IsDir() {
				if d.Name() == ".git" {
					return filepath.SkipDir
				}
				if matcher != nil && rel != "." && matcher.MatchesPath(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if matcher != nil && matcher.MatchesPath(rel) {
				return nil
			}
			if !hasTrackedExtension(path, extensions) {
				return nil
			}
			index.files[filepath.Clean(path)] = domain.SourceFile{
				Path:     filepath.Clean(path),
				Language: domain.LanguageKey,
			}
			return nil
		})
		if walkErr != nil {
			return nil, domain.NewFileError("can't walk source root "+root, walkErr)
		}
	}

	return index, nil
}

// Lookup resolves a reported absolute path to the tracked source file of
// the given language. Returns false when no tracked file matches.
func (ix *FileIndexImpl) Lookup(absPath string, language string) (domain.SourceFile, bool) {
	file, ok := ix.files[filepath.Clean(absPath)]
	if !ok || file.Language != language {
		return domain.SourceFile{}, false
	}
	return file, true
}

// Len returns the number of tracked files
func (ix *FileIndexImpl) Len() int {
	return len(ix.files)
}

func hasTrackedExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, tracked := range extensions {
		if strings.EqualFold(ext, tracked) {
			return true
		}
	}
	return false
}
