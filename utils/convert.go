// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample in [-1,1] to 16-bit PCM.
// Values outside the range are clamped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 on both sides so the conversion stays symmetric
	// and cannot overflow at +1.0.
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32
// in [-1,1).
func Int16ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}
