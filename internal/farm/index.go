package farm

import "math"

// Index addresses an expansion or a slot inside one. It is carried as a JSON
// number so fractional and negative values survive decoding and can be
// rejected as non-existent slots.
type Index float64

// Int returns the index as a slice or map key. ok is false for negative,
// fractional or non-finite values.
func (i Index) Int() (int, bool) {
	f := float64(i)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
