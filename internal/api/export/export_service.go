package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"travel-companion/internal/types"
)

// Format selects the export renderer.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// ParseFormat accepts the query-string spellings of a format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", types.ErrValidation, s)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/markdown"
}

// Filename derives the download name from the destination.
func (f Format) Filename(destination string) string {
	base := strings.ReplaceAll(strings.TrimSpace(destination), " ", "_")
	if base == "" {
		base = "Travel"
	}
	if f == FormatPDF {
		return base + "_itinerary.pdf"
	}
	return base + "_itinerary.md"
}

// Render turns a parsed itinerary into the requested byte stream.
func Render(itin types.ItineraryResponse, format Format) ([]byte, error) {
	switch format {
	case FormatPDF:
		return renderPDF(itin)
	case FormatMarkdown:
		return []byte(renderMarkdown(itin)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", types.ErrValidation, format)
	}
}

func renderMarkdown(itin types.ItineraryResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Travel Itinerary: %s\n\n", itin.Destination)
	if !itin.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "*Generated on %s*\n\n", itin.CreatedAt.Format("January 2, 2006"))
	}

	if len(itin.Days) == 0 {
		// Unstructured responses still export as-is.
		b.WriteString(itin.RawText)
		b.WriteString("\n")
		return b.String()
	}

	for _, day := range itin.Days {
		if day.Title != "" {
			fmt.Fprintf(&b, "## Day %d: %s\n\n", day.Day, day.Title)
		} else {
			fmt.Fprintf(&b, "## Day %d\n\n", day.Day)
		}
		for _, activity := range day.Activities {
			if activity.TimeOfDay != "" {
				fmt.Fprintf(&b, "- **%s:** %s\n", titleCase(string(activity.TimeOfDay)), activity.Description)
			} else {
				fmt.Fprintf(&b, "- %s\n", activity.Description)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*This itinerary is AI-generated. Always verify opening hours, prices, and availability before your trip.*\n")
	return b.String()
}

func renderPDF(itin types.ItineraryResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Travel Itinerary: %s", itin.Destination), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 10, fmt.Sprintf("Travel Itinerary: %s", itin.Destination), "", "L", false)

	if !itin.CreatedAt.IsZero() {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Generated on "+itin.CreatedAt.Format("January 2, 2006"), "", "L", false)
	}
	pdf.Ln(4)

	if len(itin.Days) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, itin.RawText, "", "L", false)
	} else {
		for _, day := range itin.Days {
			pdf.SetFont("Helvetica", "B", 14)
			heading := fmt.Sprintf("Day %d", day.Day)
			if day.Title != "" {
				heading += ": " + day.Title
			}
			pdf.MultiCell(0, 8, heading, "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
			for _, activity := range day.Activities {
				line := "- " + activity.Description
				if activity.TimeOfDay != "" {
					line = fmt.Sprintf("- %s: %s", titleCase(string(activity.TimeOfDay)), activity.Description)
				}
				pdf.MultiCell(0, 5, line, "", "L", false)
			}
			pdf.Ln(3)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "This itinerary is AI-generated. Always verify opening hours, prices, and availability before your trip.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
