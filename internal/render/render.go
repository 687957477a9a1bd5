// Package render writes houses and their documentation for people to read.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/housebuilder/internal/foundation"
	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/house"
)

// Format selects the output representation.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var formatNormalizer = foundation.NewNormalizer("format", map[string]Format{
	"text":     FormatText,
	"txt":      FormatText,
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
	"html":     FormatHTML,
}, FormatText)

// ParseFormat converts a format name (case-insensitive, short aliases allowed) to a Format.
func ParseFormat(name string) (Format, error) {
	return formatNormalizer.NormalizeWithError(name)
}

// FormatOrDefault is ParseFormat that falls back to FormatText.
func FormatOrDefault(name string) Format {
	return formatNormalizer.Normalize(name)
}

// Result is one finished build as handed over by a builder.
type Result struct {
	Variant       string
	Profile       string
	House         *house.House
	Documentation *house.Documentation
}

// Write renders r to w in format f.
func Write(w io.Writer, f Format, r Result) error {
	switch f {
	case FormatText:
		return writeErr(Text(w, r))
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return writeErr(err)
	case FormatHTML:
		return HTML(w, r)
	default:
		return errors.ValidationError("unsupported format " + string(f)).Build()
	}
}

// Text writes the console listing:
//
//	House parts: <part> <part> ...
//	Documentation pages: <page> <page> ...
//
// Every item is followed by a single space.
func Text(w io.Writer, r Result) error {
	if err := ListParts(w, r.House); err != nil {
		return err
	}
	return ListPages(w, r.Documentation)
}

// ListParts writes the "House parts:" line.
func ListParts(w io.Writer, h *house.House) error {
	return listLine(w, "House parts: ", h.Parts)
}

// ListPages writes the "Documentation pages:" line.
func ListPages(w io.Writer, d *house.Documentation) error {
	return listLine(w, "Documentation pages: ", d.Pages)
}

func listLine(w io.Writer, label string, items []string) error {
	var sb strings.Builder
	sb.WriteString(label)
	for _, item := range items {
		sb.WriteString(item)
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// Title returns the human title of a build, e.g. "Brick house (full)".
func Title(r Result) string {
	name := cases.Title(language.English).String(r.Variant)
	if r.Profile == "" {
		return name + " house"
	}
	return fmt.Sprintf("%s house (%s)", name, r.Profile)
}

// Markdown renders r as a Markdown document with a parts list and a
// documentation list.
func Markdown(r Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n## Parts\n\n", Title(r))
	writeList(&sb, r.House.Parts)
	sb.WriteString("\n## Documentation\n\n")
	writeList(&sb, r.Documentation.Pages)
	return sb.String()
}

func writeList(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("_None._\n")
		return
	}
	for i, item := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, item)
	}
}

// HTML converts the Markdown rendering of r to HTML.
func HTML(w io.Writer, r Result) error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(r)), &buf); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "convert documentation to HTML").Build()
	}
	_, err := buf.WriteTo(w)
	return writeErr(err)
}

func writeErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.WrapError(err, errors.CategoryRender, "write output").Build()
}
