package uploads

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFile struct {
	name    string
	content []byte
}

func fileHeaders(t *testing.T, files []testFile) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(64 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}

func typedFileHeaders(t *testing.T, name, contentType string, content []byte) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(64 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}

func imagePolicy(dir string, maxFiles int) Policy {
	return Policy{
		Dir:      dir,
		MaxFiles: maxFiles,
		MaxSize:  5000000,
		Exts:     []string{".jpeg", ".jpg", ".png", ".gif"},
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCheckAcceptsValidImages(t *testing.T) {
	policy := imagePolicy(t.TempDir(), 5)
	files := fileHeaders(t, []testFile{
		{name: "a.jpg", content: []byte("jpg bytes")},
		{name: "b.PNG", content: []byte("png bytes")},
	})

	assert.NoError(t, policy.Check(files))
}

func TestCheckRejectsTooManyFiles(t *testing.T) {
	policy := imagePolicy(t.TempDir(), 5)
	var files []testFile
	for i := 0; i < 6; i++ {
		files = append(files, testFile{name: "img.jpg", content: []byte("x")})
	}

	err := policy.Check(fileHeaders(t, files))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 5")
}

func TestCheckRejectsOversizeFile(t *testing.T) {
	policy := imagePolicy(t.TempDir(), 1)
	policy.MaxSize = 10
	files := fileHeaders(t, []testFile{{name: "big.png", content: bytes.Repeat([]byte("a"), 11)}})

	err := policy.Check(files)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit")
}

func TestCheckRejectsInvalidExtension(t *testing.T) {
	policy := imagePolicy(t.TempDir(), 1)
	files := fileHeaders(t, []testFile{{name: "notes.exe", content: []byte("x")}})

	err := policy.Check(files)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid type")
}

func TestCheckRejectsMismatchedContentType(t *testing.T) {
	policy := imagePolicy(t.TempDir(), 1)
	policy.Mimes = []string{"image/jpeg", "image/png", "image/gif"}

	// extension passes, declared content type does not
	files := typedFileHeaders(t, "page.jpg", "text/html", []byte("<html>"))

	err := policy.Check(files)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid type")
}

func TestCheckAcceptsMatchingContentType(t *testing.T) {
	policy := imagePolicy(t.TempDir(), 1)
	policy.Mimes = []string{"image/jpeg", "image/png", "image/gif"}
	files := typedFileHeaders(t, "photo.jpg", "image/jpeg", []byte("jpg bytes"))

	assert.NoError(t, policy.Check(files))
}

func TestCheckRequiredFileMissing(t *testing.T) {
	policy := Policy{Dir: t.TempDir(), MaxFiles: 1, MaxSize: 25000000, Exts: []string{".pdf"}, Required: true}

	err := policy.Check(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload a file")
}

func TestCheckOptionalFileMissing(t *testing.T) {
	policy := imagePolicy(t.TempDir(), 1)

	assert.NoError(t, policy.Check(nil))
}

func TestStageWritesBlobsAndKeepsExtension(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "events")
	policy := imagePolicy(dir, 5)
	files := fileHeaders(t, []testFile{
		{name: "poster.jpg", content: []byte("poster bytes")},
		{name: "banner.gif", content: []byte("banner bytes")},
	})

	paths, err := policy.Stage(files)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, path := range paths {
		assert.True(t, strings.HasPrefix(path, dir))
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	}
	assert.True(t, strings.HasSuffix(paths[0], ".jpg"))
	assert.True(t, strings.HasSuffix(paths[1], ".gif"))

	content, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("poster bytes"), content)
}

func TestReleaseDeletesStagedBlobs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "marketplace")
	policy := imagePolicy(dir, 5)
	files := fileHeaders(t, []testFile{
		{name: "a.jpg", content: []byte("a")},
		{name: "b.jpg", content: []byte("b")},
	})

	paths, err := policy.Stage(files)
	require.NoError(t, err)
	require.Len(t, listDir(t, dir), 2)

	// rollback after a failed create must leave zero blobs behind
	Release(paths)

	assert.Empty(t, listDir(t, dir))
}

func TestReleaseToleratesMissingBlob(t *testing.T) {
	assert.NotPanics(t, func() {
		Release([]string{filepath.Join(t.TempDir(), "already-gone.pdf")})
	})
}
