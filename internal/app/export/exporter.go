// Package export lays a generated trip out as a paginated document.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/journeyexplore/trip-planner-api/internal/app/costs"
	"github.com/journeyexplore/trip-planner-api/internal/domain"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/canvas"
	"github.com/journeyexplore/trip-planner-api/internal/ports/out/clock"
)

const (
	AppName    = "Journey_Explore"
	AppTagline = "AI-Powered Travel Planner"
	FooterText = "Generated by Journey_Explore - Your AI-Powered Travel Companion"

	topMargin    = 20.0
	bottomMargin = 20.0 // no line starts below height-bottomMargin
	lineFactor   = 0.35
	bodySize     = 12.0
	sectionSize  = 16.0
)

var (
	brandGreen = canvas.RGB{R: 34, G: 197, B: 94}
	white      = canvas.RGB{R: 255, G: 255, B: 255}
	black      = canvas.RGB{}
	footerGray = canvas.RGB{R: 128, G: 128, B: 128}
)

// Exporter renders trips onto canvases produced by newCanvas.
type Exporter struct {
	newCanvas func() canvas.Canvas
	clock     clock.Clock
	lang      language.Tag
}

func NewExporter(newCanvas func() canvas.Canvas, clk clock.Clock) *Exporter {
	return &Exporter{
		newCanvas: newCanvas,
		clock:     clk,
		lang:      language.AmericanEnglish,
	}
}

// Export lays trip out on a fresh canvas and writes the document to w.
func (e *Exporter) Export(trip domain.GeneratedTrip, plannedBy string, w io.Writer) error {
	c := e.newCanvas()
	if c == nil {
		return fmt.Errorf("export %s: no canvas", trip.Destination)
	}
	e.Layout(trip, plannedBy, c)
	if err := c.Output(w); err != nil {
		return fmt.Errorf("export %s: %w", trip.Destination, err)
	}
	return nil
}

// Layout draws trip on c, which must already have a first page.
func (e *Exporter) Layout(trip domain.GeneratedTrip, plannedBy string, c canvas.Canvas) {
	// Printers and casers keep state, so each layout gets its own.
	title := cases.Title(e.lang)
	l := &layout{c: c, money: moneyFormatter(message.NewPrinter(e.lang), trip.Currency)}
	l.width, l.height = c.PageSize()

	l.header()

	l.y = 55
	c.SetTextColor(black)
	l.font(canvas.Bold, 20)
	l.text("Trip to "+trip.Destination, 20, l.width-40, 20)

	l.y += 10
	l.font(canvas.Normal, bodySize)
	l.text("Planned by: "+plannedBy, 20, l.width-40, bodySize)
	l.text(fmt.Sprintf("Duration: %d days", trip.Days), 20, l.width-40, bodySize)
	l.text(fmt.Sprintf("Budget: %s (%s)", trip.Budget, l.money(trip.TotalCost)), 20, l.width-40, bodySize)
	l.text("Travel Type: "+string(trip.TravelType), 20, l.width-40, bodySize)
	l.text("Generated on: "+e.clock.Now().Format("1/2/2006"), 20, l.width-40, bodySize)

	l.y += 15
	l.section("Recommended Hotels")
	l.y += 5
	for _, h := range trip.Hotels {
		l.breakIfBelow(40)
		l.font(canvas.Bold, bodySize)
		l.text(h.Name, 25, l.width-50, bodySize)
		l.font(canvas.Normal, bodySize)
		l.text(fmt.Sprintf("Rating: %s/5 | %s/night", strconv.FormatFloat(h.Rating, 'f', -1, 64), l.money(h.PricePerNight)), 25, l.width-50, bodySize)
		l.text("Location: "+h.Location, 25, l.width-50, bodySize)
		l.text("Amenities: "+strings.Join(h.Amenities, ", "), 25, l.width-50, bodySize)
		l.y += 8
	}

	l.y += 10
	l.section("Day-by-Day Itinerary")
	for _, d := range trip.Itinerary {
		l.breakIfBelow(60)
		l.y += 10
		l.font(canvas.Bold, 14)
		l.text(fmt.Sprintf("Day %d", d.Day), 20, l.width-40, 14)

		for _, a := range d.Activities {
			l.breakIfBelow(40)
			l.font(canvas.Bold, bodySize)
			l.text(a.Name, 25, l.width-50, bodySize)
			l.font(canvas.Normal, bodySize)
			l.text(a.Description, 25, l.width-50, bodySize)
			l.text(fmt.Sprintf("Duration: %s | Cost: %s | Location: %s", a.Duration, l.money(a.Cost), a.Location), 25, l.width-50, bodySize)
			l.y += 5
		}

		if len(d.Meals) > 0 {
			l.breakIfBelow(40)
			l.font(canvas.Bold, bodySize)
			l.text("Recommended Meals:", 25, l.width-50, bodySize)
			l.font(canvas.Normal, bodySize)
			for _, m := range d.Meals {
				l.breakIfBelow(25)
				l.text(fmt.Sprintf("%s: %s (%s)", title.String(string(m.Type)), m.Name, l.money(m.Cost)), 30, l.width-60, bodySize)
			}
			l.y += 5
		}
	}

	l.breakIfBelow(80)
	b := CostBreakdown(trip)
	l.y += 15
	l.section("Cost Breakdown")
	l.font(canvas.Normal, bodySize)
	l.text("Accommodation: "+l.money(b.Accommodation), 25, l.width-50, bodySize)
	l.text("Activities: "+l.money(b.Activities), 25, l.width-50, bodySize)
	l.text("Meals: "+l.money(b.Meals), 25, l.width-50, bodySize)
	l.y += 5
	l.font(canvas.Bold, bodySize)
	l.text("Total Estimated Cost: "+l.money(b.Total), 25, l.width-50, bodySize)

	l.footer()
}

// moneyFormatter prefixes the currency symbol and groups thousands.
func moneyFormatter(p *message.Printer, c domain.Currency) func(float64) string {
	symbol := costs.Symbol(c)
	return func(v float64) string {
		return symbol + p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
	}
}

type layout struct {
	c             canvas.Canvas
	width, height float64
	y             float64
	money         func(float64) string

	// Current body font, restored after a page break.
	style canvas.FontStyle
	size  float64
}

func (l *layout) font(style canvas.FontStyle, size float64) {
	l.style, l.size = style, size
	l.c.SetFont(style, size)
}

func (l *layout) header() {
	l.c.SetFillColor(brandGreen)
	l.c.FillRect(0, 0, l.width, 40)
	l.c.SetTextColor(white)
	l.c.SetFont(canvas.Bold, 24)
	l.c.Text(20, 25, AppName)
	l.c.SetFont(canvas.Normal, 14)
	l.c.Text(20, 32, AppTagline)
}

func (l *layout) section(title string) {
	l.font(canvas.Bold, sectionSize)
	l.text(title, 20, l.width-40, sectionSize)
	l.font(canvas.Normal, bodySize)
}

// text wraps s to maxWidth and draws it at x line by line, advancing y. A
// block that runs past the bottom margin continues on a new page.
func (l *layout) text(s string, x, maxWidth, size float64) {
	lineHeight := size * lineFactor
	for _, line := range l.c.SplitText(s, maxWidth) {
		if l.y > l.height-bottomMargin {
			l.newPage()
		}
		l.c.Text(x, l.y, line)
		l.y += lineHeight
	}
}

// breakIfBelow starts a new page once y is within margin of the page bottom
// and reports whether it did.
func (l *layout) breakIfBelow(margin float64) bool {
	if l.y <= l.height-margin {
		return false
	}
	l.newPage()
	return true
}

// newPage closes the current page with its footer and continues at the top of
// the next one in the current font.
func (l *layout) newPage() {
	l.footer()
	l.c.AddPage()
	l.c.SetTextColor(black)
	l.c.SetFont(l.style, l.size)
	l.y = topMargin
}

func (l *layout) footer() {
	l.c.SetFont(canvas.Normal, 10)
	l.c.SetTextColor(footerGray)
	y := l.height - 15
	l.c.Text(20, y, FooterText)
	l.c.Text(l.width-30, y, fmt.Sprintf("Page %d", l.c.PageNumber()))
	l.c.SetTextColor(black)
}
