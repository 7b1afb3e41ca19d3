package engine

// PixelsPerMeter is the fixed conversion factor between physical and screen
// lengths, derived from a 96 DPI surface (96 / 0.0254).
const PixelsPerMeter = 3779.52755906

// ToMeters converts a pixel length to meters.
func ToMeters(px float64) float64 {
	return px / PixelsPerMeter
}

// ToPixels converts a length in meters to pixels.
func ToPixels(m float64) float64 {
	return m * PixelsPerMeter
}
