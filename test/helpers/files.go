package helpers

import (
	"bytes"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// Минимальные файлы, которые mimetype распознает по сигнатуре
var (
	PNGBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)
	PDFBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
)

// FileUpload - файл для multipart-запроса
type FileUpload struct {
	Filename string
	Content  []byte
}

// FileHeader собирает *multipart.FileHeader так же, как его получает gin из запроса
func FileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := MultipartBody(t, nil, map[string]FileUpload{
		field: {Filename: filename, Content: content},
	})

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	require.NotEmpty(t, form.File[field])
	return form.File[field][0]
}

// MultipartBody кодирует поля и файлы в multipart/form-data
func MultipartBody(t *testing.T, fields map[string]string, files map[string]FileUpload) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for field, file := range files {
		part, err := writer.CreateFormFile(field, file.Filename)
		require.NoError(t, err)
		_, err = part.Write(file.Content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
