package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/gocube_stickering/internal/logger"
)

// ErrDuplicateName is returned when two definitions share a name.
var ErrDuplicateName = errors.New("content: duplicate stickering name")

// DefaultExtensions are the page extensions scanned when none are configured.
var DefaultExtensions = []string{".md", ".mdx"}

// PageError is a page, or one stickering on it, left out of a scan.
type PageError struct {
	Source string
	Err    error
}

func (e *PageError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// ScanResult holds the stickerings found by Scan and the pages it skipped.
type ScanResult struct {
	Definitions []Definition
	Skipped     []*PageError
}

// Scan walks dir and returns every stickering defined in the frontmatter of
// pages with one of the extensions, ordered by source path then position.
// Hidden directories and node_modules are skipped.
//
// A page with malformed frontmatter is skipped, as is a stickering whose
// name was already taken by an earlier page; both are reported in
// Skipped. Only walk and read failures end the scan.
func Scan(dir string, exts []string) (*ScanResult, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	log := logger.Named("content")

	res := &ScanResult{}
	seen := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExtension(path, exts) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		doc, err := ParseDocument(data)
		if err != nil {
			log.Warnw("Skipping page", logger.FieldFile, rel, logger.FieldError, err)
			res.Skipped = append(res.Skipped, &PageError{Source: rel, Err: err})
			return nil
		}

		for _, def := range doc.Stickerings {
			if prev, ok := seen[def.Name]; ok {
				err := errors.WithHintf(errors.Wrapf(ErrDuplicateName, "%q", def.Name),
					"first defined in %s", prev)
				log.Warnw("Skipping stickering", logger.FieldPreset, def.Name, logger.FieldFile, rel, logger.FieldError, err)
				res.Skipped = append(res.Skipped, &PageError{Source: rel, Err: err})
				continue
			}
			seen[def.Name] = rel
			def.Source = rel
			res.Definitions = append(res.Definitions, def)
		}
		if len(doc.Stickerings) > 0 {
			log.Debugw("Scanned page", logger.FieldFile, rel, logger.FieldCount, len(doc.Stickerings))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(exts, ext)
}
