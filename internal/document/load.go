package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/espgen/internal/ctxlog"
	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/fsutil"
	"github.com/specialistvlad/espgen/internal/model"
)

// Extensions lists the file extensions recognised when loading directories.
var Extensions = []string{".yaml", ".yml", ".hcl"}

// Document is the merged content of one or more source files.
type Document struct {
	// Root maps component names to their raw configuration.
	Root model.Value
	// Files holds the sources by file name, for diagnostic snippets.
	Files map[string]*hcl.File
}

// Load reads every path, a file or a directory, and merges the top-level
// mappings in file order. Configuring the same component in two files is an
// error.
func Load(ctx context.Context, paths ...string) (*Document, error) {
	logger := ctxlog.FromContext(ctx)
	doc := &Document{Root: model.Map(), Files: make(map[string]*hcl.File)}

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, Extensions...)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered document files.", "count", len(files))

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		doc.Files[file] = &hcl.File{Bytes: src}

		v, err := Parse(file, src)
		if err != nil {
			return doc, err
		}
		if err := doc.merge(v); err != nil {
			return doc, err
		}
		logger.Debug("Document file loaded.", "file", file, "components", v.Len())
	}
	return doc, nil
}

// Parse decodes src according to the extension of filename.
func Parse(filename string, src []byte) (model.Value, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return LoadYAML(filename, src)
	case ".hcl":
		return LoadHCL(filename, src)
	}
	return model.Value{}, fmt.Errorf("unsupported document format %q", filepath.Ext(filename))
}

func (d *Document) merge(v model.Value) error {
	if v.IsNull() {
		return nil
	}
	if v.Kind() != model.KindMap {
		return diag.NewShape(fieldpath.Root(), v.Pos(), nil, "expected a mapping of components, got %s", v.Kind())
	}
	for _, e := range v.Entries() {
		if prev, dup := d.Root.Get(e.Key); dup {
			err := diag.NewField(fieldpath.Root(), e.Value.Pos(), "component already configured at %s", prev.Pos())
			return diag.WithComponent(err, e.Key)
		}
		d.Root = d.Root.Set(e.Key, e.Value)
	}
	return nil
}
