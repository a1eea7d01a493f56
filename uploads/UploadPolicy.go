package uploads

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Policy is the per-entity-kind upload configuration. Each controller
// builds its policy once at startup and passes it explicitly; there is
// no shared upload state.
type Policy struct {
	Dir      string   // destination directory, also the path prefix stored on the entity
	MaxFiles int      // maximum number of files per request
	MaxSize  int64    // per-file size limit in bytes
	Exts     []string // allowed extensions, lowercase with dot
	Mimes    []string // allowed content types; nil skips the MIME check
	Required bool     // reject the request when no file is attached
}

// Check validates files against the policy without writing anything.
// A non-nil error is a client validation failure.
func (p Policy) Check(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		if p.Required {
			return errors.New("Please upload a file")
		}
		return nil
	}
	if len(files) > p.MaxFiles {
		return fmt.Errorf("too many files: at most %d allowed", p.MaxFiles)
	}
	for _, file := range files {
		if file.Size > p.MaxSize {
			return fmt.Errorf("file %s exceeds the %dMB size limit", file.Filename, p.MaxSize/1000000)
		}
		if !p.allowedExt(file.Filename) {
			return fmt.Errorf("file %s has an invalid type", file.Filename)
		}
		if !p.allowedMime(file.Header.Get("Content-Type")) {
			return fmt.Errorf("file %s has an invalid type", file.Filename)
		}
	}
	return nil
}

func (p Policy) allowedMime(contentType string) bool {
	if p.Mimes == nil {
		return true
	}
	for _, allowed := range p.Mimes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

func (p Policy) allowedExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range p.Exts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Stage writes every file to disk and returns the stored paths. The
// caller must Release the returned paths if the entity the files
// belong to is never persisted. On a mid-batch write failure Stage
// releases what it already wrote and returns the error.
func (p Policy) Stage(files []*multipart.FileHeader) ([]string, error) {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return nil, err
	}

	var paths []string
	for _, file := range files {
		path := filepath.Join(p.Dir, storedName(file.Filename))
		if err := saveFile(file, path); err != nil {
			Release(paths)
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Release deletes staged or owned blobs. A blob that is already gone
// is logged and skipped; release never fails the surrounding
// operation.
func Release(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to delete upload")
		}
	}
}

func storedName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

func saveFile(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
