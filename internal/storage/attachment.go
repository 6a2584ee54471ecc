package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// AttachmentPolicy - правила для файла, привязанного к полю сущности
type AttachmentPolicy struct {
	Field        string   // имя поля формы, используется в ошибках
	Dir          string   // каталог в хранилище
	MaxSize      int64    // байты
	Extensions   []string // разрешенные расширения (с точкой)
	ContentTypes []string // разрешенные MIME-типы (проверяются по содержимому)
}

// ThumbnailPolicy - изображение вакансии
func ThumbnailPolicy(maxSize int64) AttachmentPolicy {
	return AttachmentPolicy{
		Field:      "thumbnail",
		Dir:        "thumbnails",
		MaxSize:    maxSize,
		Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"},
		ContentTypes: []string{
			"image/jpeg", "image/png", "image/gif", "image/bmp", "image/svg+xml", "image/webp",
		},
	}
}

// DocumentPolicy - документ кандидатуры (pdf, doc, docx)
func DocumentPolicy(maxSize int64) AttachmentPolicy {
	return AttachmentPolicy{
		Field:      "document",
		Dir:        "documents",
		MaxSize:    maxSize,
		Extensions: []string{".pdf", ".doc", ".docx"},
		ContentTypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/x-ole-storage",
			"application/zip",
		},
	}
}

// Attachments создает Attachment-объекты поверх хранилища
type Attachments struct {
	store Storage
}

func NewAttachments(store Storage) *Attachments {
	return &Attachments{store: store}
}

// Attach возвращает файл сущности с текущим путем current (может быть nil)
func (m *Attachments) Attach(policy AttachmentPolicy, current *string) *Attachment {
	a := &Attachment{store: m.store, policy: policy}
	if current != nil && *current != "" {
		path := *current
		a.current = &path
	}
	return a
}

// Attachment - файл, жизненный цикл которого привязан к строке БД.
//
// Новый файл сохраняется сразу (staged), старый удаляется только в Commit,
// после успешной записи строки. Rollback удаляет staged-файл.
type Attachment struct {
	store   Storage
	policy  AttachmentPolicy
	current *string
	staged  string
	stale   []string
}

// Path - значение для колонки БД
func (a *Attachment) Path() *string {
	if a.current == nil {
		return nil
	}
	path := *a.current
	return &path
}

// Validate проверяет размер, расширение и реальный MIME-тип файла без записи в хранилище
func (a *Attachment) Validate(fh *multipart.FileHeader) error {
	_, err := a.inspect(fh)
	return err
}

func (a *Attachment) inspect(fh *multipart.FileHeader) (string, error) {
	field := a.policy.Field

	if fh.Size <= 0 {
		return "", apperrors.FieldError(field, fmt.Sprintf("The %s must be a file.", field))
	}
	if a.policy.MaxSize > 0 && fh.Size > a.policy.MaxSize {
		return "", apperrors.FieldError(field,
			fmt.Sprintf("The %s must not be greater than %d kilobytes.", field, a.policy.MaxSize/1024))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !contains(a.policy.Extensions, ext) {
		return "", apperrors.FieldError(field, fmt.Sprintf("The %s must be a file of type: %s.",
			field, strings.Join(trimDots(a.policy.Extensions), ", ")))
	}

	f, err := fh.Open()
	if err != nil {
		return "", apperrors.ErrStorage(err, field)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", apperrors.ErrStorage(err, field)
	}
	if !a.allowedType(mtype) {
		return "", apperrors.FieldError(field, fmt.Sprintf("The %s has an unsupported content type (%s).", field, mtype.String()))
	}
	return mtype.String(), nil
}

// allowedType проходит вверх по иерархии mimetype (docx -> zip)
func (a *Attachment) allowedType(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if mimetype.EqualsAny(m.String(), a.policy.ContentTypes...) {
			return true
		}
	}
	return false
}

// Replace проверяет и сохраняет новый файл; прежний будет удален при Commit
func (a *Attachment) Replace(ctx context.Context, fh *multipart.FileHeader) error {
	contentType, err := a.inspect(fh)
	if err != nil {
		return err
	}

	f, err := fh.Open()
	if err != nil {
		return apperrors.ErrStorage(err, a.policy.Field)
	}
	defer f.Close()

	path := fmt.Sprintf("%s/%s%s", a.policy.Dir, uuid.NewString(), strings.ToLower(filepath.Ext(fh.Filename)))
	if err := a.store.Save(ctx, path, f, contentType); err != nil {
		return apperrors.ErrStorage(err, a.policy.Field)
	}

	// Повторный Replace до Commit: предыдущий staged-файл больше не нужен
	if a.staged != "" {
		a.discard(ctx, a.staged)
	} else if a.current != nil {
		a.stale = append(a.stale, *a.current)
	}

	a.staged = path
	a.current = &path
	return nil
}

// Remove отвязывает текущий файл; физическое удаление при Commit
func (a *Attachment) Remove() {
	if a.current == nil {
		return
	}
	if a.staged != "" && *a.current == a.staged {
		// staged-файл еще не зафиксирован, его удалит Rollback/Commit
		a.stale = append(a.stale, a.staged)
		a.staged = ""
	} else {
		a.stale = append(a.stale, *a.current)
	}
	a.current = nil
}

// Commit удаляет замененные файлы. Вызывается после коммита транзакции.
func (a *Attachment) Commit(ctx context.Context) {
	for _, path := range a.stale {
		a.discard(ctx, path)
	}
	a.stale = nil
	a.staged = ""
}

// Rollback удаляет только что сохраненный файл, если строку записать не удалось
func (a *Attachment) Rollback(ctx context.Context) {
	if a.staged != "" {
		a.discard(ctx, a.staged)
		a.staged = ""
	}
	a.stale = nil
}

func (a *Attachment) discard(ctx context.Context, path string) {
	if err := a.store.Delete(ctx, path); err != nil {
		logger.CtxWarn(ctx, "failed to delete stored file", "path", path, "field", a.policy.Field, "error", err.Error())
	}
}

// DeleteFiles удаляет файлы, оставшиеся от удаленных строк (каскады)
func (m *Attachments) DeleteFiles(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := m.store.Delete(ctx, path); err != nil {
			logger.CtxWarn(ctx, "failed to delete stored file", "path", path, "error", err.Error())
		}
	}
}

// Open открывает сохраненный файл для отдачи клиенту
func (m *Attachments) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return m.store.Get(ctx, path)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func trimDots(exts []string) []string {
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = strings.TrimPrefix(e, ".")
	}
	return out
}
