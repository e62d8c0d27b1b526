package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
	"unicode"

	"github.com/olekukonko/tablewriter"
)

const tmpl = `// Code generated by protogen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import (
	"io"

	"github.com/gstoney/mcproto/codec"
	"github.com/gstoney/mcproto/protocol"
{{- if .UsesTypes}}
	"github.com/gstoney/mcproto/types"
{{- end}}
)

// Packet is any record of {{.Name}}.
type Packet interface {
	protocol.Packet
	isPacket()
}

// Protocol dispatches the records of {{.Name}} (protocol {{.Version}}).
var Protocol = protocol.Must(build().Build())

func build() *protocol.Builder[Packet] {
	return protocol.NewBuilder[Packet]({{printf "%q" .Name}}, {{.Version}}).
{{- range $i, $p := .Packets}}
		Register(protocol.{{stateConst $p.State}}, protocol.{{directionConst $p.Direction}}, func() Packet { return &{{$p.Name}}{} }){{if not (last $i $.Packets)}}.{{end}}
{{- end}}
}
{{range .Packets}}
{{$p := .}}
// {{.Name}} is {{.Direction}} packet {{hex .ID}} in the {{.State}} state.
{{- if .Doc}}
//
{{comment .Doc}}
{{- end}}
type {{.Name}} struct {
{{- range .Fields}}
{{- if .Doc}}
{{comment .Doc}}
{{- end}}
	{{.Name}} {{.Type}}
{{- end}}
}

var {{layoutVar .Name}} = protocol.Layout[{{.Name}}]{
{{- range .Fields}}
{{- if .When}}
	{
		Name: {{printf "%q" .Name}},
		Ref:  func(p *{{$p.Name}}) codec.Codec { return &p.{{.Name}} },
		When: func(p *{{$p.Name}}) bool { return bool({{.When}}) },
	},
{{- else}}
	{Name: {{printf "%q" .Name}}, Ref: func(p *{{$p.Name}}) codec.Codec { return &p.{{.Name}} }},
{{- end}}
{{- end}}
}

func ({{.Name}}) ID() int32 { return {{hex .ID}} }
func ({{.Name}}) isPacket() {}
func (p *{{.Name}}) Decode(r codec.Reader) error { return {{layoutVar .Name}}.Decode(p, r) }
func (p *{{.Name}}) Encode(w io.Writer) error { return {{layoutVar .Name}}.Encode(p, w) }
{{end}}`

var codeTemplate = template.Must(template.New("code").Funcs(template.FuncMap{
	"hex":            hex,
	"layoutVar":      layoutVar,
	"comment":        comment,
	"stateConst":     stateConst,
	"directionConst": directionConst,
	"last": func(i int, packets []Packet) bool {
		return i == len(packets)-1
	},
}).Parse(tmpl))

// Generate renders s as a gofmt'ed Go file. source names the grammar in
// the generated header.
func Generate(s *Schema, source string) ([]byte, error) {
	if len(s.Packets) == 0 {
		return nil, &GrammarError{Reason: "grammar declares no packets"}
	}

	data := struct {
		*Schema
		Source    string
		UsesTypes bool
	}{
		Schema: s,
		Source: source,
	}
	for _, p := range s.Packets {
		for _, f := range p.Fields {
			if usesTypes(f.Type) {
				data.UsesTypes = true
			}
		}
	}

	var buf bytes.Buffer
	if err := codeTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", s.Package, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", s.Package, err)
	}
	return src, nil
}

// List writes a table of the packets in s.
func List(w io.Writer, s *Schema) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"State", "Direction", "ID", "Packet", "Fields"})
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)

	for _, p := range s.Packets {
		var fields []string
		for _, f := range p.Fields {
			if f.When != "" {
				fields = append(fields, f.Name+"?")
				continue
			}
			fields = append(fields, f.Name)
		}

		tw.Append([]string{
			p.State.String(),
			p.Direction.String(),
			hex(p.ID),
			p.Name,
			strings.Join(fields, ", "),
		})
	}

	tw.Render()
}

func hex(id int32) string {
	return fmt.Sprintf("0x%02X", id)
}

func layoutVar(name string) string {
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r) + "Layout"
}

func comment(doc string) string {
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(l), " ")
	}
	return strings.Join(lines, "\n")
}

func stateConst(s fmt.Stringer) string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func directionConst(d fmt.Stringer) string {
	switch d.String() {
	case "serverbound":
		return "ServerBound"
	default:
		return "ClientBound"
	}
}
