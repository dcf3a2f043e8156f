package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

const (
	chartWidth   = 1000
	chartHeight  = 650
	chartMarginX = 80
	chartMarginY = 60
	chartYSteps  = 5
	chartXLabels = 6
)

// ChartRenderer draws close-price line charts into the uploads directory.
// Each ticker has one stable file name; the image is written to a temp file
// and renamed into place so readers never observe a partial write.
type ChartRenderer struct {
	uploadDir string
	hostURL   string
}

func NewChartRenderer(uploadDir, hostURL string) (*ChartRenderer, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}
	return &ChartRenderer{uploadDir: uploadDir, hostURL: hostURL}, nil
}

// Render plots the series for code and returns the public image URL.
func (r *ChartRenderer) Render(code string, points []PricePoint) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("no points to plot for %s", code)
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	minClose, maxClose := points[0].Close, points[0].Close
	for _, p := range points {
		if p.Close < minClose {
			minClose = p.Close
		}
		if p.Close > maxClose {
			maxClose = p.Close
		}
	}
	// Keep a flat series visible instead of dividing by zero
	if maxClose == minClose {
		maxClose = minClose + 1
	}

	plotW := float64(chartWidth - 2*chartMarginX)
	plotH := float64(chartHeight - 2*chartMarginY)

	toX := func(i int) float64 {
		if len(points) == 1 {
			return chartMarginX + plotW/2
		}
		return chartMarginX + plotW*float64(i)/float64(len(points)-1)
	}
	toY := func(close float64) float64 {
		return float64(chartHeight-chartMarginY) - plotH*(close-minClose)/(maxClose-minClose)
	}

	// Horizontal gridlines with price labels
	dc.SetRGB255(220, 220, 220)
	dc.SetLineWidth(1)
	for step := 0; step <= chartYSteps; step++ {
		value := minClose + (maxClose-minClose)*float64(step)/chartYSteps
		y := toY(value)
		dc.MoveTo(chartMarginX, y)
		dc.LineTo(float64(chartWidth-chartMarginX), y)
		dc.Stroke()

		dc.SetRGB255(90, 90, 90)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", value), chartMarginX-8, y, 1, 0.5)
		dc.SetRGB255(220, 220, 220)
	}

	// Sparse date labels along the x axis
	dc.SetRGB255(90, 90, 90)
	labelEvery := len(points) / chartXLabels
	if labelEvery == 0 {
		labelEvery = 1
	}
	for i := 0; i < len(points); i += labelEvery {
		dc.DrawStringAnchored(points[i].Date.Format("01-02"), toX(i), float64(chartHeight-chartMarginY)+16, 0.5, 0.5)
	}

	// Axes
	dc.SetRGB255(60, 60, 60)
	dc.SetLineWidth(1.5)
	dc.MoveTo(chartMarginX, chartMarginY)
	dc.LineTo(chartMarginX, float64(chartHeight-chartMarginY))
	dc.LineTo(float64(chartWidth-chartMarginX), float64(chartHeight-chartMarginY))
	dc.Stroke()

	// Close-price line
	dc.SetRGB255(30, 80, 200)
	dc.SetLineWidth(2)
	dc.MoveTo(toX(0), toY(points[0].Close))
	for i := 1; i < len(points); i++ {
		dc.LineTo(toX(i), toY(points[i].Close))
	}
	dc.Stroke()

	dc.SetRGB255(20, 20, 20)
	dc.DrawStringAnchored(fmt.Sprintf("%s Close Prices (Last 6 Months)", code), chartWidth/2, chartMarginY/2, 0.5, 0.5)

	fileName := fmt.Sprintf("%s_close_price.png", code)
	if err := r.writeAtomic(fileName, dc); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s", r.hostURL, fileName), nil
}

func (r *ChartRenderer) writeAtomic(fileName string, dc *gg.Context) error {
	tmp, err := os.CreateTemp(r.uploadDir, fileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp chart file: %v", err)
	}

	if err := dc.EncodePNG(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode chart: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp chart file: %v", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(r.uploadDir, fileName)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to publish chart: %v", err)
	}

	return nil
}
