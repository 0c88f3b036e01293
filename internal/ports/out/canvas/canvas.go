package canvas

import "io"

// FontStyle selects the weight of subsequent text.
type FontStyle string

const (
	Normal FontStyle = ""
	Bold   FontStyle = "B"
)

// RGB is a colour with 0-255 components.
type RGB struct{ R, G, B int }

// Canvas is a paginated drawing surface measured in millimetres with the origin
// at the top left of the current page. Text baselines are at y.
type Canvas interface {
	PageSize() (width, height float64)
	AddPage()
	PageNumber() int

	SetFont(style FontStyle, size float64)
	SetTextColor(c RGB)
	SetFillColor(c RGB)
	FillRect(x, y, w, h float64)

	// SplitText wraps s into lines no wider than width at the current font.
	SplitText(s string, width float64) []string
	Text(x, y float64, s string)

	// Output writes the finished document. Drawing errors recorded earlier are
	// returned here.
	Output(w io.Writer) error
}
