package http

import (
	"sync/atomic"

	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/domain"
	"github.com/PeterChiang0101/CSCE679-Assignment1/internal/observability"
)

// ModeController owns the process-wide display-mode flag. The aggregation
// pipeline never sees it; handlers read the current mode and pass it to the
// renderer explicitly.
type ModeController struct {
	showingMax atomic.Bool
	metrics    *observability.Metrics
}

// NewModeController starts in ShowMax, matching the chart's initial view.
func NewModeController(metrics *observability.Metrics) *ModeController {
	c := &ModeController{metrics: metrics}
	c.showingMax.Store(true)
	metrics.DisplayMode.Set(1)
	return c
}

// Mode returns the current display mode.
func (c *ModeController) Mode() domain.DisplayMode {
	if c.showingMax.Load() {
		return domain.ShowMax
	}
	return domain.ShowMin
}

// Toggle flips the display mode and returns the new value.
func (c *ModeController) Toggle() domain.DisplayMode {
	next := c.Mode().Other()
	c.showingMax.Store(next == domain.ShowMax)
	if next == domain.ShowMax {
		c.metrics.DisplayMode.Set(1)
	} else {
		c.metrics.DisplayMode.Set(0)
	}
	return next
}
