// Package security provides helpers for handling buffers that hold secrets.
package security

import (
	"crypto/subtle"
)

// Wipe zeroes a buffer and nils out the slice.
// This should be called via defer on buffers that held TOTP secrets.
func Wipe(data *[]byte) {
	if data == nil || *data == nil {
		return
	}
	for i := range *data {
		(*data)[i] = 0
	}
	// Double-check using subtle to prevent compiler optimization
	if len(*data) > 0 {
		subtle.ConstantTimeCopy(1, *data, make([]byte, len(*data)))
	}
	*data = nil
}
