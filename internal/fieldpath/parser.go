// internal/fieldpath/parser.go
package fieldpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches a single segment, e.g. `name`, `name[1]` or `[1]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]*)(?:\[(\d+)\])?$`)

// Parse builds a Path from its canonical string form. The empty string is
// the root path.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Root(), nil
	}

	var p Path
	for _, segmentStr := range strings.Split(raw, ".") {
		if segmentStr == "" {
			return Path{}, fmt.Errorf("field path contains empty segment")
		}

		matches := segmentRegex.FindStringSubmatch(segmentStr)
		if matches == nil {
			return Path{}, fmt.Errorf("invalid path segment format: %q", segmentStr)
		}

		name := matches[1]
		if name == "-" {
			return Path{}, fmt.Errorf("invalid segment name: %q", name)
		}
		if name == "" && matches[2] == "" {
			return Path{}, fmt.Errorf("field path contains empty segment")
		}
		if name == "" && len(p.Segments) > 0 {
			return Path{}, fmt.Errorf("index segment %q must follow a name", segmentStr)
		}

		segment := NewSegment(name)
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				// Unreachable due to regex `\d+`
				return Path{}, fmt.Errorf("internal error parsing index: %w", err)
			}
			segment.Index = index
		}
		p.Segments = append(p.Segments, segment)
	}

	return p, nil
}
