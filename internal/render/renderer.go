// Package render draws the year-by-month temperature matrix as an image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
)

// Matrix geometry. Years run left to right as columns, months top to bottom
// as rows, with the gradient legend on the right edge.
const (
	cellW = 90
	cellH = 64

	marginLeft   = 86
	marginTop    = 56
	marginBottom = 34
	marginRight  = 64

	legendGap = 28
	legendW   = 22

	cellPad = 4
)

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	emptyCell  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	labelInk   = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	footerInk  = color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}

	maxLineInk = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	minLineInk = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
)

// Renderer draws a Dataset into an image. It is stateless apart from its
// parsed font faces and safe to reuse across renders.
type Renderer struct {
	titleFace font.Face
	labelFace font.Face
	smallFace font.Face
}

// NewRenderer parses the embedded font and builds the renderer.
func NewRenderer() (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Renderer{
		titleFace: truetype.NewFace(f, &truetype.Options{Size: 18}),
		labelFace: truetype.NewFace(f, &truetype.Options{Size: 13}),
		smallFace: truetype.NewFace(f, &truetype.Options{Size: 10}),
	}, nil
}

// Render draws the matrix for the given display mode. Cells without a
// summary stay neutral; an empty dataset produces labels and legend only.
func (r *Renderer) Render(ds domain.Dataset, mode domain.DisplayMode) (image.Image, error) {
	cols := len(ds.Years)
	gridW := cols * cellW
	gridH := 12 * cellH

	width := marginLeft + gridW + legendGap + legendW + marginRight
	height := marginTop + gridH + marginBottom

	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()

	r.drawTitle(dc, mode)
	r.drawGrid(dc, ds, mode, cols)
	r.drawAxes(dc, ds.Years)
	r.drawLegend(dc, ds.Scale, marginLeft+gridW+legendGap, marginTop, gridH)
	r.drawFooter(dc, width, height)

	return dc.Image(), nil
}

func (r *Renderer) drawTitle(dc *gg.Context, mode domain.DisplayMode) {
	dc.SetFontFace(r.titleFace)
	dc.SetColor(labelInk)
	title := "Monthly temperatures (average daily maxima)"
	if mode == domain.ShowMin {
		title = "Monthly temperatures (average daily minima)"
	}
	dc.DrawStringAnchored(title, marginLeft, float64(marginTop)/2, 0, 0.35)
}

func (r *Renderer) drawGrid(dc *gg.Context, ds domain.Dataset, mode domain.DisplayMode, cols int) {
	// Neutral backdrop so months without data read as gaps, not holes.
	if cols > 0 {
		dc.SetColor(emptyCell)
		dc.DrawRectangle(marginLeft, marginTop, float64(cols*cellW), float64(12*cellH))
		dc.Fill()
	}

	colOf := make(map[int]int, len(ds.Years))
	for i, y := range ds.Years {
		colOf[y] = i
	}

	for _, s := range ds.Summaries {
		col, ok := colOf[s.Year]
		if !ok {
			continue
		}
		x := float64(marginLeft + col*cellW)
		y := float64(marginTop + s.Month*cellH)

		dc.SetColor(ds.Scale.At(mode.Value(s)))
		dc.DrawRectangle(x, y, cellW-1, cellH-1)
		dc.Fill()

		r.drawMiniChart(dc, s, ds.Scale, x, y)
	}
}

// drawMiniChart overlays the month's daily max and min series as polylines
// scaled to the color scale's temperature domain. Months with fewer than
// two records get no overlay.
func (r *Renderer) drawMiniChart(dc *gg.Context, s domain.MonthlySummary, scale domain.ColorScale, x, y float64) {
	if len(s.DailyRecords) < 2 {
		return
	}

	innerW := float64(cellW - 2*cellPad - 1)
	innerH := float64(cellH - 2*cellPad - 1)

	px := func(day int) float64 {
		return x + cellPad + float64(day-1)/30.0*innerW
	}
	py := func(temp float64) float64 {
		t := (temp - scale.Min()) / (scale.Max() - scale.Min())
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		return y + cellPad + (1-t)*innerH
	}

	drawSeries := func(ink color.RGBA, width float64, value func(domain.DailyRecord) float64) {
		dc.SetColor(ink)
		dc.SetLineWidth(width)
		for i, rec := range s.DailyRecords {
			if i == 0 {
				dc.MoveTo(px(rec.Day), py(value(rec)))
				continue
			}
			dc.LineTo(px(rec.Day), py(value(rec)))
		}
		dc.Stroke()
	}

	drawSeries(maxLineInk, 1.4, func(rec domain.DailyRecord) float64 { return rec.MaxTemp })
	drawSeries(minLineInk, 1.0, func(rec domain.DailyRecord) float64 { return rec.MinTemp })
}

func (r *Renderer) drawAxes(dc *gg.Context, years []int) {
	dc.SetFontFace(r.labelFace)
	dc.SetColor(labelInk)

	for i, year := range years {
		cx := float64(marginLeft+i*cellW) + cellW/2
		dc.DrawStringAnchored(fmt.Sprintf("%d", year), cx, marginTop-12, 0.5, 0.5)
	}

	for month := 0; month < 12; month++ {
		cy := float64(marginTop+month*cellH) + cellH/2
		label := time.Month(month + 1).String()[:3]
		dc.DrawStringAnchored(label, marginLeft-14, cy, 1, 0.5)
	}
}

// drawLegend paints the vertical gradient bar, hot end up, with tick labels
// at the domain bounds and midpoint.
func (r *Renderer) drawLegend(dc *gg.Context, scale domain.ColorScale, x, y, h int) {
	span := scale.Max() - scale.Min()
	for i := 0; i < h; i++ {
		v := scale.Max() - span*float64(i)/float64(h-1)
		dc.SetColor(scale.At(v))
		dc.DrawRectangle(float64(x), float64(y+i), legendW, 1)
		dc.Fill()
	}

	dc.SetFontFace(r.smallFace)
	dc.SetColor(labelInk)
	ticks := []struct {
		value float64
		fy    float64
	}{
		{scale.Max(), float64(y)},
		{scale.Min() + span/2, float64(y) + float64(h)/2},
		{scale.Min(), float64(y + h)},
	}
	for _, tick := range ticks {
		dc.DrawStringAnchored(fmt.Sprintf("%.0f°C", tick.value), float64(x+legendW)+6, tick.fy, 0, 0.5)
	}
}

func (r *Renderer) drawFooter(dc *gg.Context, width, height int) {
	dc.SetFontFace(r.smallFace)
	dc.SetColor(footerInk)
	stamp := clock.Now().UTC().Format(time.RFC3339)
	dc.DrawStringAnchored("rendered "+stamp, float64(width)-marginRight, float64(height)-12, 1, 0.5)
}
