package storage_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct {
	storage.Storage
}

func (failingStorage) Save(ctx context.Context, path string, r io.Reader, contentType string) error {
	return errors.New("disk full")
}

func newAttachments(t *testing.T) (*storage.Attachments, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir})
	require.NoError(t, err)
	return storage.NewAttachments(store), dir
}

func storedFile(dir string, path *string) string {
	return filepath.Join(dir, filepath.FromSlash(*path))
}

func TestAttachment_ReplaceAndCommit(t *testing.T) {
	attachments, dir := newAttachments(t)
	ctx := context.Background()
	policy := storage.ThumbnailPolicy(1024 * 1024)

	first := attachments.Attach(policy, nil)
	require.NoError(t, first.Replace(ctx, helpers.FileHeader(t, "thumbnail", "logo.png", helpers.PNGBytes)))
	first.Commit(ctx)

	oldPath := first.Path()
	require.NotNil(t, oldPath)
	assert.FileExists(t, storedFile(dir, oldPath))

	// Замена: старый файл живет до Commit
	second := attachments.Attach(policy, oldPath)
	require.NoError(t, second.Replace(ctx, helpers.FileHeader(t, "thumbnail", "new.PNG", helpers.PNGBytes)))
	newPath := second.Path()
	require.NotNil(t, newPath)
	assert.NotEqual(t, *oldPath, *newPath)
	assert.FileExists(t, storedFile(dir, oldPath))

	second.Commit(ctx)
	assert.NoFileExists(t, storedFile(dir, oldPath))
	assert.FileExists(t, storedFile(dir, newPath))
}

func TestAttachment_Rollback(t *testing.T) {
	attachments, dir := newAttachments(t)
	ctx := context.Background()
	policy := storage.ThumbnailPolicy(1024 * 1024)

	existing := attachments.Attach(policy, nil)
	require.NoError(t, existing.Replace(ctx, helpers.FileHeader(t, "thumbnail", "a.png", helpers.PNGBytes)))
	existing.Commit(ctx)
	oldPath := existing.Path()

	a := attachments.Attach(policy, oldPath)
	require.NoError(t, a.Replace(ctx, helpers.FileHeader(t, "thumbnail", "b.png", helpers.PNGBytes)))
	staged := a.Path()

	a.Rollback(ctx)
	assert.NoFileExists(t, storedFile(dir, staged), "staged-файл удален")
	assert.FileExists(t, storedFile(dir, oldPath), "прежний файл сохранен")
}

func TestAttachment_Remove(t *testing.T) {
	attachments, dir := newAttachments(t)
	ctx := context.Background()
	policy := storage.DocumentPolicy(1024 * 1024)

	a := attachments.Attach(policy, nil)
	require.NoError(t, a.Replace(ctx, helpers.FileHeader(t, "document", "cv.pdf", helpers.PDFBytes)))
	a.Commit(ctx)
	path := a.Path()

	b := attachments.Attach(policy, path)
	b.Remove()
	assert.Nil(t, b.Path())
	assert.FileExists(t, storedFile(dir, path), "удаление только после Commit")

	b.Commit(ctx)
	assert.NoFileExists(t, storedFile(dir, path))

	// Remove без файла - no-op
	empty := attachments.Attach(policy, nil)
	empty.Remove()
	empty.Commit(ctx)
	assert.Nil(t, empty.Path())
}

func TestAttachment_Validation(t *testing.T) {
	attachments, dir := newAttachments(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		policy   storage.AttachmentPolicy
		filename string
		content  []byte
	}{
		{"неверное расширение", storage.ThumbnailPolicy(1 << 20), "logo.txt", helpers.PNGBytes},
		{"содержимое не совпадает", storage.ThumbnailPolicy(1 << 20), "logo.png", helpers.PDFBytes},
		{"слишком большой", storage.ThumbnailPolicy(16), "logo.png", helpers.PNGBytes},
		{"документ-картинка", storage.DocumentPolicy(1 << 20), "cv.pdf", helpers.PNGBytes},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := attachments.Attach(tc.policy, nil)
			err := a.Replace(ctx, helpers.FileHeader(t, tc.policy.Field, tc.filename, tc.content))
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 422, appErr.HTTPCode)
			assert.Contains(t, appErr.Details, tc.policy.Field)
			assert.Nil(t, a.Path())
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "невалидные файлы не сохраняются")
}

func TestAttachment_StorageFailure(t *testing.T) {
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	attachments := storage.NewAttachments(failingStorage{Storage: store})

	a := attachments.Attach(storage.DocumentPolicy(1<<20), nil)
	err = a.Replace(context.Background(), helpers.FileHeader(t, "document", "cv.pdf", helpers.PDFBytes))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeStorageFailed, appErr.Code)
	assert.Equal(t, 422, appErr.HTTPCode)
	assert.Equal(t, map[string]string{"document": "The document failed to upload."}, appErr.Details)
}
