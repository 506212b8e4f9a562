package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskdesk/internal/client/profile"
)

// EditProfile switches the profile to edit mode and prompts for the editable
// fields, prefilled with the displayed values. If the save fails the profile
// stays in edit mode; 'cancel' leaves it.
func (a *App) EditProfile(ctx context.Context) error {
	if a.profile == nil {
		return notice("Open your profile first.")
	}
	editor := a.profile.Editor
	f := editor.Begin()

	var err error
	if f.FullName, err = GetWithDefault(a.reader, "Full name", f.FullName, a.out); err != nil {
		return err
	}
	if f.Phone, err = GetWithDefault(a.reader, "Phone", f.Phone, a.out); err != nil {
		return err
	}
	if f.Department, err = GetWithDefault(a.reader, "Department", f.Department, a.out); err != nil {
		return err
	}

	if _, err := editor.Save(ctx, f); err != nil {
		return err
	}
	a.user = ptr(editor.User())
	fmt.Fprintln(a.out, "Profile updated.")
	return a.refresh(ctx)
}

// CancelEdit discards the profile form.
func (a *App) CancelEdit(ctx context.Context) error {
	if a.profile == nil || a.profile.Editor.State() != profile.Edit {
		return notice("Nothing to cancel.")
	}
	a.profile.Editor.Cancel()
	return a.refresh(ctx)
}

// UploadAvatar sends the image at path as the profile picture.
func (a *App) UploadAvatar(ctx context.Context, path string) error {
	if a.profile == nil {
		return notice("Open your profile first.")
	}
	f, err := profile.LoadAvatarFile(path)
	if err != nil {
		return err
	}
	user, err := a.profile.Editor.UploadAvatar(ctx, f)
	if err != nil {
		return err
	}
	a.user = &user
	fmt.Fprintln(a.out, "Avatar updated.")
	return a.refresh(ctx)
}

func ptr[T any](v T) *T { return &v }
