// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Decoder decodes a complete input stream into a Buffer.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Registry maps format keys (lowercase file extensions without the dot,
// e.g. "wav", "mp3", "ogg", "aiff") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Decode looks up the decoder for format and runs it over r.
func (r *Registry) Decode(format string, src io.Reader) (*Buffer, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, ErrUnknownFormat
	}
	return d.Decode(src)
}

// Formats returns the registered format keys, in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	return keys
}
