package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/specialistvlad/espgen/internal/compiler"
	"github.com/specialistvlad/espgen/internal/cppgen"
	"gopkg.in/yaml.v3"
)

// programRecord is the serialized form of a compiled program.
type programRecord struct {
	Platform    string             `json:"platform,omitempty" yaml:"platform,omitempty"`
	LibDeps     []string           `json:"lib_deps" yaml:"lib_deps"`
	Identifiers []identifierRecord `json:"identifiers" yaml:"identifiers"`
	Statements  []statementRecord  `json:"statements" yaml:"statements"`
}

type identifierRecord struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Site string `json:"site" yaml:"site"`
}

type statementRecord struct {
	Component  string   `json:"component" yaml:"component"`
	Kind       string   `json:"kind" yaml:"kind"`
	Identifier string   `json:"identifier" yaml:"identifier"`
	Type       string   `json:"type" yaml:"type"`
	References []string `json:"references,omitempty" yaml:"references,omitempty"`
	Code       string   `json:"code" yaml:"code"`
}

func newProgramRecord(platform string, res *compiler.Result) programRecord {
	rec := programRecord{
		Platform:    platform,
		LibDeps:     append([]string{}, res.LibDeps...),
		Identifiers: []identifierRecord{},
		Statements:  []statementRecord{},
	}
	for _, id := range res.Identifiers {
		rec.Identifiers = append(rec.Identifiers, identifierRecord{Name: id.Name, Type: id.Type.String(), Site: id.Site})
	}
	for _, s := range res.Program.Statements() {
		rec.Statements = append(rec.Statements, statementRecord{
			Component:  s.Component,
			Kind:       s.Kind.String(),
			Identifier: s.Identifier.Name,
			Type:       s.Identifier.Type.String(),
			References: s.References(),
			Code:       cppgen.Statement(s),
		})
	}
	return rec
}

func encodeResult(w io.Writer, output, platform string, res *compiler.Result) error {
	var data []byte
	var err error
	switch output {
	case "cpp":
		data = []byte(cppgen.Render(res.Program))
	case "json":
		data, err = json.MarshalIndent(newProgramRecord(platform, res), "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(newProgramRecord(platform, res))
	case "table":
		data = encodeResultAsTable(res)
	default:
		err = fmt.Errorf("unknown output format: %q", output)
	}
	if err != nil {
		return fmt.Errorf("encoding program as %q failed: %w", output, err)
	}
	_, err = w.Write(data)
	return err
}

func encodeResultAsTable(res *compiler.Result) []byte {
	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"#", "Component", "Kind", "Identifier", "Statement"})
	for i, s := range res.Program.Statements() {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), s.Component, s.Kind.String(), s.Identifier.Name, s.Expression.String()})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, AutoMerge: true},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return buf.Bytes()
}
