package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-companion/internal/types"
)

func sampleItinerary() types.ItineraryResponse {
	return types.ItineraryResponse{
		Destination: "Kyoto, Japan",
		Days: []types.DayPlan{
			{Day: 1, Title: "Temples", Activities: []types.Activity{
				{TimeOfDay: types.TimeOfDayMorning, Description: "Fushimi Inari at sunrise"},
				{Description: "Tea break in Gion"},
			}},
			{Day: 2, Activities: []types.Activity{
				{TimeOfDay: types.TimeOfDayEvening, Description: "Pontocho alley dinner"},
			}},
		},
		RawText:   "raw model text",
		CreatedAt: time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatMarkdown},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"MD", FormatMarkdown},
		{"pdf", FormatPDF},
		{" PDF ", FormatPDF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Kyoto,_Japan_itinerary.md", FormatMarkdown.Filename("Kyoto, Japan"))
	assert.Equal(t, "Kyoto,_Japan_itinerary.pdf", FormatPDF.Filename("Kyoto, Japan"))
	assert.Equal(t, "Travel_itinerary.md", FormatMarkdown.Filename("  "))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/markdown", FormatMarkdown.ContentType())
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render(sampleItinerary(), FormatMarkdown)
	require.NoError(t, err)
	md := string(out)

	assert.True(t, strings.HasPrefix(md, "# Travel Itinerary: Kyoto, Japan\n"))
	assert.Contains(t, md, "*Generated on March 20, 2026*")
	assert.Contains(t, md, "## Day 1: Temples")
	assert.Contains(t, md, "- **Morning:** Fushimi Inari at sunrise")
	assert.Contains(t, md, "- Tea break in Gion")
	assert.Contains(t, md, "## Day 2\n")
	assert.Contains(t, md, "- **Evening:** Pontocho alley dinner")
	assert.Contains(t, md, "This itinerary is AI-generated.")
}

func TestRenderMarkdown_NoDaysFallsBackToRawText(t *testing.T) {
	itin := sampleItinerary()
	itin.Days = nil

	out, err := Render(itin, FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(out), "raw model text")
}

func TestRenderPDF(t *testing.T) {
	out, err := Render(sampleItinerary(), FormatPDF)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "output should start with the PDF magic bytes")
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(sampleItinerary(), Format("docx"))
	assert.ErrorIs(t, err, types.ErrValidation)
}
