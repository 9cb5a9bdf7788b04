// Package ui draws the status readout on top of the window display.
package ui

import "fmt"

// StatusSource reports the figures shown by the HUD.
type StatusSource interface {
	Generation() int
	Population() int
}

// StatusLine formats the HUD text for src.
func StatusLine(src StatusSource) string {
	return fmt.Sprintf("gen %d  pop %d", src.Generation(), src.Population())
}
