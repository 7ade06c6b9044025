package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// uiFontSize returns the text size for a tile size, never below 12 points
func uiFontSize(tileSize int) float64 {
	return max(float64(tileSize)*0.6, 12)
}

// getMonoFontFace returns a cached monospace font face of the given size
func (e *EbitenRenderer) getMonoFontFace(size float64) *text.GoTextFace {
	if e.cachedMonoFace == nil || e.cachedMonoFontSize != size {
		e.cachedMonoFontSize = size
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoFace
}
