package document

import (
	"fmt"

	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
	"gopkg.in/yaml.v3"
)

// LoadYAML parses a YAML document. An empty document yields a null value.
func LoadYAML(filename string, src []byte) (model.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return model.Value{}, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return model.Null(), nil
	}
	c := &yamlConverter{filename: filename, lines: lineOffsets(src), expanding: make(map[*yaml.Node]bool)}
	return c.convert(root.Content[0], fieldpath.Root())
}

// maxYAMLNodes bounds the size of a document after alias expansion.
const maxYAMLNodes = 100_000

type yamlConverter struct {
	filename string
	lines    []int
	// expanding holds the anchored nodes whose aliases are being expanded.
	expanding map[*yaml.Node]bool
	nodes     int
}

func (c *yamlConverter) pos(n *yaml.Node) model.Pos {
	p := model.Pos{File: c.filename, Line: n.Line, Column: n.Column}
	if n.Line > 0 && n.Line <= len(c.lines) {
		p.Byte = c.lines[n.Line-1] + n.Column - 1
	}
	return p
}

func (c *yamlConverter) convert(n *yaml.Node, path fieldpath.Path) (model.Value, error) {
	c.nodes++
	if c.nodes > maxYAMLNodes {
		return model.Value{}, diag.NewShape(path, c.pos(n), nil, "document expands to more than %d nodes", maxYAMLNodes)
	}
	switch n.Kind {
	case yaml.AliasNode:
		if c.expanding[n.Alias] {
			return model.Value{}, diag.NewShape(path, c.pos(n), nil, "recursive alias")
		}
		c.expanding[n.Alias] = true
		v, err := c.convert(n.Alias, path)
		delete(c.expanding, n.Alias)
		if err != nil {
			return model.Value{}, err
		}
		return v.WithPos(c.pos(n)), nil
	case yaml.ScalarNode:
		return c.scalar(n, path)
	case yaml.SequenceNode:
		items := make([]model.Value, 0, len(n.Content))
		for i, child := range n.Content {
			v, err := c.convert(child, path.Index(i))
			if err != nil {
				return model.Value{}, err
			}
			items = append(items, v)
		}
		return model.List(items...).WithPos(c.pos(n)), nil
	case yaml.MappingNode:
		return c.mapping(n, path)
	}
	return model.Value{}, diag.NewShape(path, c.pos(n), nil, "unsupported YAML node")
}

func (c *yamlConverter) scalar(n *yaml.Node, path fieldpath.Path) (model.Value, error) {
	var v model.Value
	switch n.ShortTag() {
	case "!!null":
		v = model.Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return model.Value{}, diag.NewField(path, c.pos(n), "%s", err)
		}
		v = model.Bool(b)
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return model.Value{}, diag.NewField(path, c.pos(n), "%s", err)
		}
		v = model.Int(i)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return model.Value{}, diag.NewField(path, c.pos(n), "%s", err)
		}
		v = model.Float(f)
	case "!!str", "!!timestamp", "!!binary":
		v = model.String(n.Value)
	default:
		return model.Value{}, diag.NewField(path, c.pos(n), "unsupported YAML tag %s", n.Tag)
	}
	return v.WithPos(c.pos(n)), nil
}

func (c *yamlConverter) mapping(n *yaml.Node, path fieldpath.Path) (model.Value, error) {
	out := model.Map().WithPos(c.pos(n))
	seen := make(map[string]*yaml.Node)
	var merged []model.Entry

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return model.Value{}, diag.NewShape(path, c.pos(keyNode), nil, "mapping keys must be scalars")
		}
		if keyNode.ShortTag() == "!!merge" {
			entries, err := c.mergeSources(valueNode, path)
			if err != nil {
				return model.Value{}, err
			}
			merged = append(merged, entries...)
			continue
		}
		key := keyNode.Value
		if prev, dup := seen[key]; dup {
			return model.Value{}, diag.NewField(path.Field(key), c.pos(keyNode),
				"duplicate key, first defined at line %d", prev.Line)
		}
		seen[key] = keyNode
		v, err := c.convert(valueNode, path.Field(key))
		if err != nil {
			return model.Value{}, err
		}
		out = out.Set(key, v)
	}

	// Explicit keys win over merged ones.
	for _, e := range merged {
		if !out.Has(e.Key) {
			out = out.Set(e.Key, e.Value)
		}
	}
	return out, nil
}

// mergeSources resolves the value of a `<<` key: a mapping or a list of
// mappings, earlier ones taking precedence.
func (c *yamlConverter) mergeSources(n *yaml.Node, path fieldpath.Path) ([]model.Entry, error) {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	var entries []model.Entry
	seen := make(map[string]struct{})
	for _, src := range sources {
		v, err := c.convert(src, path)
		if err != nil {
			return nil, err
		}
		if v.Kind() != model.KindMap {
			return nil, diag.NewShape(path, c.pos(src), nil, "merge source must be a mapping, got %s", v.Kind())
		}
		for _, e := range v.Entries() {
			if _, dup := seen[e.Key]; dup {
				continue
			}
			seen[e.Key] = struct{}{}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// lineOffsets returns the byte offset at which each line starts.
func lineOffsets(src []byte) []int {
	offsets := []int{0}
	for i, b := range src {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
