// Package output renders decoded reports for people and other programs.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/barnybug/rfxcmd/rfx"
)

const keyWidth = 24

// Formatter writes one report.
type Formatter func(w io.Writer, r *rfx.Report) error

// Lookup returns the formatter called name: text, xml or json.
func Lookup(name string) (Formatter, bool) {
	switch name {
	case "text", "":
		return Text, true
	case "xml":
		return XML, true
	case "json":
		return JSON, true
	}
	return nil, false
}

// Text writes one "Key = value unit" line per field, nested fields indented.
func Text(w io.Writer, r *rfx.Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s = %s\n", keyWidth, "Received", r.Raw)
	writeFields(&sb, r.Fields, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeFields(sb *strings.Builder, fields []rfx.Field, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, f := range fields {
		key := indent + f.Key
		if list, ok := f.Value.(rfx.List); ok {
			fmt.Fprintf(sb, "%-*s =\n", keyWidth, key)
			writeFields(sb, list, depth+1)
			continue
		}
		line := fmt.Sprintf("%-*s = %s", keyWidth, key, f.Value)
		if f.Unit != "" {
			line += " " + f.Unit
		}
		sb.WriteString(line + "\n")
	}
}

type xmlField struct {
	Key    string     `xml:"key,attr"`
	Value  string     `xml:"value,attr,omitempty"`
	Unit   string     `xml:"unit,attr,omitempty"`
	Fields []xmlField `xml:"field"`
}

type xmlReport struct {
	XMLName xml.Name   `xml:"rfx"`
	Raw     string     `xml:"raw,attr"`
	Fields  []xmlField `xml:"field"`
}

func toXMLFields(fields []rfx.Field) []xmlField {
	xs := make([]xmlField, len(fields))
	for i, f := range fields {
		xs[i] = xmlField{Key: f.Key, Unit: f.Unit}
		if list, ok := f.Value.(rfx.List); ok {
			xs[i].Fields = toXMLFields(list)
		} else {
			xs[i].Value = f.Value.String()
		}
	}
	return xs
}

// XML writes the report as an <rfx> element with a <field> per field.
func XML(w io.Writer, r *rfx.Report) error {
	data, err := xml.MarshalIndent(xmlReport{Raw: r.Raw, Fields: toXMLFields(r.Fields)}, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

type jsonField struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
	Unit  string      `json:"unit,omitempty"`
}

type jsonReport struct {
	Raw       string                 `json:"raw"`
	Supported bool                   `json:"supported"`
	Fields    []jsonField            `json:"fields"`
	Extras    map[string]interface{} `json:"extras"`
}

func toJSONFields(fields []rfx.Field) []jsonField {
	js := make([]jsonField, len(fields))
	for i, f := range fields {
		js[i] = jsonField{Key: f.Key, Unit: f.Unit}
		if list, ok := f.Value.(rfx.List); ok {
			js[i].Value = toJSONFields(list)
		} else {
			js[i].Value = rfx.Native(f.Value)
		}
	}
	return js
}

// Document is the JSON form of a report, as written by JSON.
func Document(r *rfx.Report) interface{} {
	return jsonReport{
		Raw:       r.Raw,
		Supported: r.Supported(),
		Fields:    toJSONFields(r.Fields),
		Extras:    r.Extras.Map(),
	}
}

// JSON writes the report as one line of JSON: the fields in order and the
// extras keyed by name.
func JSON(w io.Writer, r *rfx.Report) error {
	return json.NewEncoder(w).Encode(Document(r))
}

// Unsupported writes the entry for a frame that could not be decoded.
func Unsupported(w io.Writer, raw string, err error) error {
	_, werr := fmt.Fprintf(w, "%-*s = %s\n%-*s = %s\n", keyWidth, "Invalid frame", raw, keyWidth, "Error", err)
	return werr
}
