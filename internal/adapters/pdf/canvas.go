// Package pdf implements canvas.Canvas on go-pdf/fpdf.
package pdf

import (
	"io"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/journeyexplore/trip-planner-api/internal/ports/out/canvas"
)

const family = "Helvetica"

// Core fonts only cover cp1252, so symbols outside it are spelled out.
var replacer = strings.NewReplacer("₹", "Rs. ")

// Canvas draws onto an A4 portrait document in millimetres.
type Canvas struct {
	doc       *fpdf.Fpdf
	translate func(string) string
}

var _ canvas.Canvas = (*Canvas)(nil)

// New returns a canvas with its first page already added.
func New() *Canvas {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont(family, "", 12)
	doc.AddPage()
	return &Canvas{doc: doc, translate: doc.UnicodeTranslatorFromDescriptor("")}
}

// NewCanvas adapts New to the exporter's factory signature.
func NewCanvas() canvas.Canvas { return New() }

func (c *Canvas) PageSize() (float64, float64) {
	w, h := c.doc.GetPageSize()
	return w, h
}

func (c *Canvas) AddPage()        { c.doc.AddPage() }
func (c *Canvas) PageNumber() int { return c.doc.PageNo() }

func (c *Canvas) SetFont(style canvas.FontStyle, size float64) {
	c.doc.SetFont(family, string(style), size)
}

func (c *Canvas) SetTextColor(rgb canvas.RGB) { c.doc.SetTextColor(rgb.R, rgb.G, rgb.B) }
func (c *Canvas) SetFillColor(rgb canvas.RGB) { c.doc.SetFillColor(rgb.R, rgb.G, rgb.B) }

func (c *Canvas) FillRect(x, y, w, h float64) { c.doc.Rect(x, y, w, h, "F") }

func (c *Canvas) Text(x, y float64, s string) { c.doc.Text(x, y, c.encode(s)) }

// SplitText wraps on spaces, measuring each candidate line as it will be
// drawn. A single word wider than width is split by rune.
func (c *Canvas) SplitText(s string, width float64) []string {
	words := strings.FieldsFunc(s, unicode.IsSpace)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if c.width(candidate) <= width {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		for c.width(word) > width {
			head, tail := c.cut(word, width)
			lines = append(lines, head)
			word = tail
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Output writes the document, surfacing any error fpdf recorded while drawing.
func (c *Canvas) Output(w io.Writer) error {
	return c.doc.Output(w)
}

func (c *Canvas) encode(s string) string { return c.translate(replacer.Replace(s)) }

func (c *Canvas) width(s string) float64 { return c.doc.GetStringWidth(c.encode(s)) }

// cut returns the longest prefix of word that fits in width, at least one rune.
func (c *Canvas) cut(word string, width float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && c.width(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
