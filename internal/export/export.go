// Package export renders a task list as JSON, CSV, Markdown or PDF.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/dohr-michael/todo/internal/tasks"
)

// Supported formats.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

// Formats lists the accepted format names.
var Formats = []string{FormatJSON, FormatCSV, FormatMarkdown, FormatPDF}

// Write renders list in the given format to w. title heads the Markdown and PDF output.
func Write(w io.Writer, format, title string, list []tasks.Task) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		return writeJSON(w, list)
	case FormatCSV:
		return writeCSV(w, list)
	case FormatMarkdown, "md":
		return writeMarkdown(w, title, list)
	case FormatPDF:
		return writePDF(w, title, list)
	default:
		return fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func writeJSON(w io.Writer, list []tasks.Task) error {
	if list == nil {
		list = []tasks.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func writeCSV(w io.Writer, list []tasks.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "text", "completed"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range list {
		if err := cw.Write([]string{strconv.FormatInt(t.ID, 10), t.Text, strconv.FormatBool(t.Completed)}); err != nil {
			return fmt.Errorf("write csv row %d: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeMarkdown(w io.Writer, title string, list []tasks.Task) error {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	if len(list) == 0 {
		b.WriteString("_Nothing to do._\n")
	}
	for _, t := range list {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, t.Text)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writePDF(w io.Writer, title string, list []tasks.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	if len(list) == 0 {
		pdf.SetTextColor(120, 120, 120)
		pdf.Cell(0, 7, "Nothing to do.")
	}
	for _, t := range list {
		box := "[  ]"
		if t.Completed {
			box = "[x]"
			pdf.SetTextColor(120, 120, 120)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.CellFormat(12, 7, box, "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 7, tr(t.Text), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}
