package location

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/diamondburned/gtkpathbar/internal/humanize"
	"github.com/diamondburned/gtkpathbar/pathbrowser/gtkutils"
	"github.com/diamondburned/gtkpathbar/pathbrowser/semaphore"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// Info describes the directory behind a segment.
type Info struct {
	Path    string
	ModTime time.Time

	// Dirs lists the visible subdirectories, sorted.
	Dirs  []string
	Files int
	Size  uint64
}

// Stat reads the directory at path.
func Stat(path string) (*Info, error) {
	s, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to stat")
	}

	info := &Info{
		Path:    path,
		ModTime: s.ModTime(),
	}

	if !s.IsDir() {
		info.Files = 1
		info.Size = uint64(s.Size())
		return info, nil
	}

	entries, err := ioutil.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read directory")
	}

	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}

		if e.IsDir() {
			info.Dirs = append(info.Dirs, e.Name())
		} else {
			info.Files++
			info.Size += uint64(e.Size())
		}
	}

	sort.Strings(info.Dirs)

	return info, nil
}

// Summary returns a one-line description of the contents.
func (i *Info) Summary() string {
	var parts []string
	if len(i.Dirs) > 0 {
		parts = append(parts, humanize.Plural(len(i.Dirs), "folder"))
	}
	if i.Files > 0 {
		parts = append(parts, humanize.Plural(i.Files, "file"))
	}
	if len(parts) == 0 {
		return "Empty"
	}

	return fmt.Sprintf("%s, %s", humanize.Strings(parts), humanize.Size(i.Size))
}

// Tooltip returns Pango markup for a breadcrumb tooltip.
func (i *Info) Tooltip() string {
	return fmt.Sprintf(
		"%s\nModified %s\n%s",
		gtkutils.Bold(i.Path), gtkutils.Escape(humanize.TimeAgo(i.ModTime)), gtkutils.Escape(i.Summary()),
	)
}

// Loader reads directories in the background. Concurrent loads of the same
// path share one read.
type Loader struct {
	ctx   context.Context
	group singleflight.Group
}

func NewLoader(ctx context.Context) *Loader {
	return &Loader{ctx: ctx}
}

// Stat is Stat, deduplicated.
func (l *Loader) Stat(path string) (*Info, error) {
	path = filepath.Clean(path)

	v, err, _ := l.group.Do(path, func() (interface{}, error) {
		return Stat(path)
	})
	if err != nil {
		return nil, err
	}

	return v.(*Info), nil
}

// Load reads path in the background and calls done on the main loop.
func (l *Loader) Load(path string, done func(*Info, error)) {
	semaphore.GoIdle(l.ctx, func() func() {
		info, err := l.Stat(path)
		return func() { done(info, err) }
	})
}
