package location

import (
	"github.com/pkg/errors"
	"github.com/skratchdot/open-golang/open"
)

// Open shows path in the desktop file manager.
func Open(path string) error {
	if err := open.Start(path); err != nil {
		return errors.Wrap(err, "Failed to open "+path)
	}
	return nil
}
