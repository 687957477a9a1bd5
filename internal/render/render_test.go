package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/housebuilder/internal/house"
)

func brickResult() Result {
	return Result{
		Variant:       "brick",
		Profile:       "full",
		House:         &house.House{Parts: []string{"Brick Walls", "Concrete Floor", "Brick Roof"}},
		Documentation: &house.Documentation{Pages: []string{"Brick Walls Description", "Concrete Floor Description", "Brick Roof Description"}},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, brickResult()))
	require.Equal(t,
		"House parts: Brick Walls Concrete Floor Brick Roof \n"+
			"Documentation pages: Brick Walls Description Concrete Floor Description Brick Roof Description \n",
		buf.String())
}

func TestText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, Result{House: &house.House{}, Documentation: &house.Documentation{}}))
	require.Equal(t, "House parts: \nDocumentation pages: \n", buf.String())
}

func TestMarkdown(t *testing.T) {
	md := Markdown(brickResult())
	require.Equal(t, "# Brick house (full)\n\n"+
		"## Parts\n\n1. Brick Walls\n2. Concrete Floor\n3. Brick Roof\n\n"+
		"## Documentation\n\n1. Brick Walls Description\n2. Concrete Floor Description\n3. Brick Roof Description\n", md)

	empty := Markdown(Result{Variant: "wood", House: &house.House{}, Documentation: &house.Documentation{}})
	require.Contains(t, empty, "# Wood house\n")
	require.Contains(t, empty, "_None._")
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatHTML, brickResult()))
	out := buf.String()
	require.Contains(t, out, "<h1>Brick house (full)</h1>")
	require.Contains(t, out, "<li>Concrete Floor</li>")
	require.Contains(t, out, "<ol>")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"text": FormatText, "MD": FormatMarkdown, " html ": FormatHTML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseFormat("pdf")
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestFormatOrDefault(t *testing.T) {
	require.Equal(t, FormatMarkdown, FormatOrDefault("md"))
	require.Equal(t, FormatHTML, FormatOrDefault("HTML"))
	require.Equal(t, FormatText, FormatOrDefault(""))
	require.Equal(t, FormatText, FormatOrDefault("pdf"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_PropagatesWriterErrors(t *testing.T) {
	for _, f := range []Format{FormatText, FormatMarkdown, FormatHTML} {
		err := Write(failingWriter{}, f, brickResult())
		require.Error(t, err, f)
		require.True(t, ferrors.HasCategory(err, ferrors.CategoryRender), f)
	}
	require.True(t, ferrors.HasCategory(Write(&bytes.Buffer{}, Format("pdf"), brickResult()), ferrors.CategoryValidation))
}
