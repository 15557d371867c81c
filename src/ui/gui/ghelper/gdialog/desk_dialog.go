package gdialog

import (
	"errors"

	"github.com/sqweek/dialog"
)

var ErrCancelled = dialog.ErrCancelled

// OpenImage asks for a picture file. It returns ErrCancelled when the user
// closes the picker.
func OpenImage(title string) (string, error) {
	path, err := dialog.File().
		Filter("Images", "png", "jpg", "jpeg", "gif", "bmp", "webp").
		Filter("All files", "*").
		Title(title).
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", err
	}
	return path, nil
}

func ShowError(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}
