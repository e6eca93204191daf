// SPDX-License-Identifier: EPL-2.0

// Package utils holds small pure helpers shared by the audio and
// format packages: sample value conversion between float32 and 16-bit
// PCM, and the Catmull-Rom interpolation kernel used for resampling.
package utils
