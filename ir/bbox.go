package ir

import (
	"encoding/json"
	"fmt"
)

// BBox01 is an immutable rectangle in viewport-normalized coordinates:
// (0,0) is the top-left of the viewport, (1,1) the bottom-right. W and H
// may be zero (a zero-area affordance). Values outside [0,1] are not
// rejected, neither by the type itself nor by the validator.
type BBox01 struct {
	X, Y, W, H float64
}

// MarshalJSON renders the box as the 4-element array the wire format uses:
// [x, y, w, h].
func (b BBox01) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.X, b.Y, b.W, b.H})
}

// UnmarshalJSON accepts the 4-element array form only.
func (b *BBox01) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("bbox: %w", err)
	}
	if len(arr) != 4 {
		return fmt.Errorf("bbox: expected 4 elements, got %d", len(arr))
	}
	b.X, b.Y, b.W, b.H = arr[0], arr[1], arr[2], arr[3]
	return nil
}
