package explorer

import (
	"bufio"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for scene formats other than svg, json and yaml.
var ErrUnknownFormat = errors.New("unknown scene format")

// Format is a scene encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatSVG, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write encodes scene to w in format f.
func Write(w io.Writer, scene Scene, f Format) error {
	switch f {
	case FormatSVG:
		return WriteSVG(w, scene)
	case FormatJSON:
		return WriteJSON(w, scene)
	case FormatYAML:
		return WriteYAML(w, scene)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WriteJSON writes scene as indented JSON.
func WriteJSON(w io.Writer, scene Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scene)
}

// WriteYAML writes scene as YAML.
func WriteYAML(w io.Writer, scene Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(scene); err != nil {
		return err
	}

	return enc.Close()
}

// WriteSVG draws scene as a standalone SVG document: the label, then either
// the centred message or the graph inside the viewport transform, then the
// tooltip.
func WriteSVG(w io.Writer, scene Scene) error {
	bw := bufio.NewWriter(w)
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">`+"\n", num(scene.Width), num(scene.Height))
	fmt.Fprintf(bw, `  <text x="10" y="20" font-size="14">%s</text>`+"\n", escape(scene.Label))

	if m := scene.Message; m != nil {
		fmt.Fprintf(bw, `  <text x="%s" y="%s" text-anchor="middle" fill="%s" font-size="%dpx">%s</text>`+"\n",
			num(scene.Width/2), num(scene.Height/2), m.Color, m.FontSize, escape(m.Text))
	} else {
		fmt.Fprintf(bw, `  <g transform="%s">`+"\n", scene.Viewport)
		fmt.Fprintf(bw, `    <g stroke="%s" stroke-opacity="%s">`+"\n", LinkStroke, num(LinkOpacity))
		for _, l := range scene.Links {
			fmt.Fprintf(bw, `      <line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="%d"/>`+"\n",
				num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), LinkWidth)
		}
		fmt.Fprintln(bw, `    </g>`)
		fmt.Fprintf(bw, `    <g stroke="#fff" stroke-width="%s">`+"\n", num(NodeStrokeWidth))
		for _, n := range scene.Nodes {
			fmt.Fprintf(bw, `      <circle cx="%s" cy="%s" r="%s" fill="%s"><title>%s</title></circle>`+"\n",
				num(n.X), num(n.Y), num(n.Radius), n.Fill, escape(string(n.ID)))
		}
		fmt.Fprintln(bw, `    </g>`)
		fmt.Fprintln(bw, `  </g>`)
	}

	if t := scene.Tooltip; t != nil {
		fmt.Fprintf(bw, `  <text x="%s" y="%s" font-size="12">%s</text>`+"\n", num(t.X), num(t.Y), escape(t.Text))
	}

	fmt.Fprintln(bw, `</svg>`)
	return bw.Flush()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
