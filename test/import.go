package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// LoadTestFile wraps a file from the testdata directory in a multipart
// form body. It returns the body and the headers the request needs to
// carry for the form to parse.
func LoadTestFile(t *testing.T, name string) (*bytes.Buffer, map[string]string) {
	t.Helper()

	file, err := os.Open(filepath.Join("../../../testdata", name))
	require.NoError(t, err)
	defer file.Close()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)

	_, err = io.Copy(part, file)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
