package profile

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/validation"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// MaxAvatarSize is the largest accepted avatar, 2 MiB.
const MaxAvatarSize int64 = 2 << 20

// AvatarFile describes a picked file. Size and ContentType are checked
// before Open is called.
type AvatarFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// LoadAvatarFile describes the file at path. The content type is sniffed
// from the file header; the body is not read.
func LoadAvatarFile(path string) (AvatarFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return AvatarFile{}, err
	}
	if info.IsDir() {
		return AvatarFile{}, fmt.Errorf("%s is a directory", path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return AvatarFile{}, fmt.Errorf("detect content type: %w", err)
	}

	return AvatarFile{
		Name:        filepath.Base(path),
		ContentType: mt.String(),
		Size:        info.Size(),
		Open:        func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

func checkAvatar(f AvatarFile) error {
	mediaType, _, _ := strings.Cut(f.ContentType, ";")
	if !strings.HasPrefix(strings.TrimSpace(mediaType), "image/") {
		return validation.Field("avatar", "must be an image file")
	}
	if f.Size > MaxAvatarSize {
		return validation.Field("avatar", fmt.Sprintf("must not exceed %s (got %s)",
			humanize.IBytes(uint64(MaxAvatarSize)), humanize.IBytes(uint64(f.Size))))
	}
	return nil
}

// DataURI encodes body as a data: URI of the given type.
func DataURI(contentType string, body []byte) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return "data:" + strings.TrimSpace(mediaType) + ";base64," + base64.StdEncoding.EncodeToString(body)
}

// UploadAvatar checks f, sends it as a data URI and stores the answer as the
// session. Rejected files are never opened and make no request. Upload runs
// regardless of the view/edit state.
func (e *Editor) UploadAvatar(ctx context.Context, f AvatarFile) (models.User, error) {
	if err := checkAvatar(f); err != nil {
		return models.User{}, err
	}
	if err := e.acquire(); err != nil {
		return models.User{}, err
	}
	defer e.busy.Store(false)

	r, err := f.Open()
	if err != nil {
		return models.User{}, fmt.Errorf("open avatar: %w", err)
	}
	defer r.Close()

	body, err := io.ReadAll(io.LimitReader(r, MaxAvatarSize+1))
	if err != nil {
		return models.User{}, fmt.Errorf("read avatar: %w", err)
	}
	if int64(len(body)) > MaxAvatarSize {
		return models.User{}, checkAvatar(AvatarFile{ContentType: f.ContentType, Size: int64(len(body))})
	}

	uri := DataURI(f.ContentType, body)
	updated, err := e.gw.UpdateUser(ctx, e.user.ID, models.UserPatch{Avatar: &uri})
	if err != nil {
		e.log.Warn(ctx, "avatar upload failed", "user", e.user.ID, "error", err)
		return models.User{}, fmt.Errorf("upload avatar: %w", err)
	}
	if err := e.sessions.Save(ctx, updated); err != nil {
		return models.User{}, fmt.Errorf("upload avatar: %w", err)
	}

	e.user = updated
	e.log.Info(ctx, "avatar updated", "user", updated.ID, "bytes", len(body))
	return updated, nil
}
