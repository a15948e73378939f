package location

import (
	"path/filepath"
	"strings"
)

// Segment is one breadcrumb of a path.
type Segment struct {
	Name string
	Path string
}

// Split cuts a path into the segments leading to it, starting with the
// root for absolute paths.
func Split(path string) []Segment {
	if path == "" {
		return nil
	}

	path = filepath.Clean(path)

	var segments []Segment
	var current string

	if vol := filepath.VolumeName(path); vol != "" {
		current = vol
		path = path[len(vol):]
	}

	if strings.HasPrefix(path, string(filepath.Separator)) {
		current += string(filepath.Separator)
		segments = append(segments, Segment{Name: current, Path: current})
	}

	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part == "" {
			continue
		}

		current = filepath.Join(current, part)
		segments = append(segments, Segment{Name: part, Path: current})
	}

	return segments
}

// CommonPrefix returns how many leading segments a and b share.
func CommonPrefix(a, b []Segment) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
