package document

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// LoadHCL parses an HCL document. Attributes and blocks become mapping keys
// in source order; a block type repeated several times becomes a list, so
//
//	wifi {
//	  networks { ssid = "a" }
//	  networks { ssid = "b" }
//	}
//
// is the same as `networks = [{ ssid = "a" }, { ssid = "b" }]`. Expressions
// are evaluated without variables or functions.
func LoadHCL(filename string, src []byte) (model.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return model.Value{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return model.Value{}, fmt.Errorf("failed to parse HCL file %s: unexpected body type %T", filename, file.Body)
	}
	return convertBody(body, fieldpath.Root())
}

type bodyItem struct {
	key    string
	start  hcl.Pos
	attr   *hclsyntax.Attribute
	blocks []*hclsyntax.Block
}

func convertBody(body *hclsyntax.Body, path fieldpath.Path) (model.Value, error) {
	items := make(map[string]*bodyItem)
	for name, attr := range body.Attributes {
		items[name] = &bodyItem{key: name, start: attr.SrcRange.Start, attr: attr}
	}
	for _, block := range body.Blocks {
		if len(block.Labels) > 0 {
			return model.Value{}, diag.NewShape(path.Field(block.Type), toPos(block.LabelRanges[0].Start, block.LabelRanges[0].Filename), nil,
				"block labels are not supported")
		}
		item, ok := items[block.Type]
		switch {
		case !ok:
			items[block.Type] = &bodyItem{key: block.Type, start: block.TypeRange.Start, blocks: []*hclsyntax.Block{block}}
		case item.attr != nil:
			return model.Value{}, diag.NewField(path.Field(block.Type), toPos(block.TypeRange.Start, block.TypeRange.Filename),
				"%q is set both as an attribute and as a block", block.Type)
		default:
			item.blocks = append(item.blocks, block)
		}
	}

	ordered := make([]*bodyItem, 0, len(items))
	for _, item := range items {
		ordered = append(ordered, item)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].start.Byte < ordered[j].start.Byte })

	out := model.Map().WithPos(toPos(body.SrcRange.Start, body.SrcRange.Filename))
	for _, item := range ordered {
		fieldPath := path.Field(item.key)
		var (
			v   model.Value
			err error
		)
		if item.attr != nil {
			v, err = convertExpr(item.attr.Expr, fieldPath)
		} else {
			v, err = convertBlocks(item.blocks, fieldPath)
		}
		if err != nil {
			return model.Value{}, err
		}
		out = out.Set(item.key, v)
	}
	return out, nil
}

func convertBlocks(blocks []*hclsyntax.Block, path fieldpath.Path) (model.Value, error) {
	if len(blocks) == 1 {
		v, err := convertBody(blocks[0].Body, path)
		if err != nil {
			return model.Value{}, err
		}
		return v.WithPos(toPos(blocks[0].TypeRange.Start, blocks[0].TypeRange.Filename)), nil
	}
	list := make([]model.Value, 0, len(blocks))
	for i, block := range blocks {
		v, err := convertBody(block.Body, path.Index(i))
		if err != nil {
			return model.Value{}, err
		}
		list = append(list, v.WithPos(toPos(block.TypeRange.Start, block.TypeRange.Filename)))
	}
	return model.List(list...).WithPos(toPos(blocks[0].TypeRange.Start, blocks[0].TypeRange.Filename)), nil
}

// convertExpr keeps the source order of object and tuple constructors,
// which a cty object would lose.
func convertExpr(e hclsyntax.Expression, path fieldpath.Path) (model.Value, error) {
	rng := e.Range()
	pos := toPos(rng.Start, rng.Filename)

	switch e := e.(type) {
	case *hclsyntax.ObjectConsExpr:
		out := model.Map().WithPos(pos)
		for _, item := range e.Items {
			key, err := objectKey(item.KeyExpr, path)
			if err != nil {
				return model.Value{}, err
			}
			if out.Has(key) {
				return model.Value{}, diag.NewField(path.Field(key), toPos(item.KeyExpr.Range().Start, rng.Filename), "duplicate key")
			}
			v, err := convertExpr(item.ValueExpr, path.Field(key))
			if err != nil {
				return model.Value{}, err
			}
			out = out.Set(key, v)
		}
		return out, nil
	case *hclsyntax.TupleConsExpr:
		items := make([]model.Value, 0, len(e.Exprs))
		for i, item := range e.Exprs {
			v, err := convertExpr(item, path.Index(i))
			if err != nil {
				return model.Value{}, err
			}
			items = append(items, v)
		}
		return model.List(items...).WithPos(pos), nil
	}

	val, diags := e.Value(nil)
	if diags.HasErrors() {
		return model.Value{}, diag.NewField(path, pos, "%s", diags.Error())
	}
	return fromCty(val, path, pos)
}

func objectKey(e hclsyntax.Expression, path fieldpath.Path) (string, error) {
	if kw := hcl.ExprAsKeyword(e); kw != "" {
		return kw, nil
	}
	val, diags := e.Value(nil)
	pos := toPos(e.Range().Start, e.Range().Filename)
	if diags.HasErrors() {
		return "", diag.NewField(path, pos, "%s", diags.Error())
	}
	if val.IsNull() || val.Type() != cty.String {
		return "", diag.NewField(path, pos, "object keys must be strings")
	}
	return val.AsString(), nil
}

func fromCty(val cty.Value, path fieldpath.Path, pos model.Pos) (model.Value, error) {
	if val.IsNull() {
		return model.Null().WithPos(pos), nil
	}
	if !val.IsKnown() {
		return model.Value{}, diag.NewField(path, pos, "value is not known")
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return model.String(val.AsString()).WithPos(pos), nil
	case ty == cty.Bool:
		return model.Bool(val.True()).WithPos(pos), nil
	case ty == cty.Number:
		if val.AsBigFloat().IsInt() {
			var i int64
			if err := gocty.FromCtyValue(val, &i); err != nil {
				return model.Value{}, diag.NewField(path, pos, "%s", err)
			}
			return model.Int(i).WithPos(pos), nil
		}
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return model.Value{}, diag.NewField(path, pos, "%s", err)
		}
		return model.Float(f).WithPos(pos), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		var items []model.Value
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			v, err := fromCty(elem, path.Index(len(items)), pos)
			if err != nil {
				return model.Value{}, err
			}
			items = append(items, v)
		}
		return model.List(items...).WithPos(pos), nil
	case ty.IsMapType() || ty.IsObjectType():
		out := model.Map().WithPos(pos)
		// cty iterates keys in lexical order.
		for it := val.ElementIterator(); it.Next(); {
			k, elem := it.Element()
			key := k.AsString()
			v, err := fromCty(elem, path.Field(key), pos)
			if err != nil {
				return model.Value{}, err
			}
			out = out.Set(key, v)
		}
		return out, nil
	}
	return model.Value{}, diag.NewField(path, pos, "unsupported value of type %s", ty.FriendlyName())
}

func toPos(p hcl.Pos, filename string) model.Pos {
	return model.Pos{File: filename, Line: p.Line, Column: p.Column, Byte: p.Byte}
}
