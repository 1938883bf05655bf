// internal/fieldpath/path.go
package fieldpath

import (
	"fmt"
	"slices"
	"strings"
)

// String serializes the path into its canonical form.
func (p Path) String() string {
	var sb strings.Builder
	for i, segment := range p.Segments {
		if i > 0 && segment.Name != "" {
			sb.WriteRune('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasIndex() {
			sb.WriteString(fmt.Sprintf("[%d]", segment.Index))
		}
	}
	return sb.String()
}

// Equal checks two paths segment by segment.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.Segments, other.Segments)
}
