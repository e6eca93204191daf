// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnknownFormat is returned by the registry when no decoder is
	// registered for a format key.
	ErrUnknownFormat = errors.New("no decoder registered for format")
	// ErrEmptyBuffer is returned by operations that need at least one
	// frame of input.
	ErrEmptyBuffer = errors.New("buffer holds no samples")
)
