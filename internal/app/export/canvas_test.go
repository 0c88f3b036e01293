package export_test

import (
	"errors"
	"io"
	"strings"

	"github.com/journeyexplore/trip-planner-api/internal/ports/out/canvas"
)

type drawnText struct {
	page int
	x, y float64
	text string
	size float64
	bold bool
}

// recordingCanvas is an A4 canvas that remembers what was drawn. It wraps text
// every maxRunes runes so tests control line counts.
type recordingCanvas struct {
	pages    int
	size     float64
	style    canvas.FontStyle
	texts    []drawnText
	fills    int
	maxRunes int
	failWith error
	written  bool
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{pages: 1, maxRunes: 90}
}

func (r *recordingCanvas) PageSize() (float64, float64) { return 210, 297 }
func (r *recordingCanvas) AddPage()                     { r.pages++ }
func (r *recordingCanvas) PageNumber() int              { return r.pages }

func (r *recordingCanvas) SetFont(style canvas.FontStyle, size float64) {
	r.style, r.size = style, size
}
func (r *recordingCanvas) SetTextColor(canvas.RGB) {}
func (r *recordingCanvas) SetFillColor(canvas.RGB) {}
func (r *recordingCanvas) FillRect(float64, float64, float64, float64) {
	r.fills++
}

func (r *recordingCanvas) SplitText(s string, _ float64) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	for len(runes) > r.maxRunes {
		lines = append(lines, string(runes[:r.maxRunes]))
		runes = runes[r.maxRunes:]
	}
	return append(lines, string(runes))
}

func (r *recordingCanvas) Text(x, y float64, s string) {
	r.texts = append(r.texts, drawnText{page: r.pages, x: x, y: y, text: s, size: r.size, bold: r.style == canvas.Bold})
}

func (r *recordingCanvas) Output(w io.Writer) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.written = true
	_, err := io.WriteString(w, "%PDF-fake")
	return err
}

func (r *recordingCanvas) find(prefix string) (drawnText, bool) {
	for _, t := range r.texts {
		if strings.HasPrefix(t.text, prefix) {
			return t, true
		}
	}
	return drawnText{}, false
}

func (r *recordingCanvas) has(exact string) bool {
	for _, t := range r.texts {
		if t.text == exact {
			return true
		}
	}
	return false
}

func (r *recordingCanvas) count(prefix string) int {
	n := 0
	for _, t := range r.texts {
		if strings.HasPrefix(t.text, prefix) {
			n++
		}
	}
	return n
}

var errCanvas = errors.New("font missing")
