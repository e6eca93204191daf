// SPDX-License-Identifier: EPL-2.0

package diasplit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/diasplit/audio"
	"github.com/ik5/diasplit/formats/aiff"
	"github.com/ik5/diasplit/formats/mp3"
	"github.com/ik5/diasplit/formats/vorbis"
	"github.com/ik5/diasplit/formats/wav"
	"github.com/ik5/diasplit/segment"
	"github.com/ik5/diasplit/track"
)

// DefaultRegistry returns a decoder registry with all built-in formats
// registered under their usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// DecodeFile decodes the audio file at path, picking the decoder from
// the file extension.
func DecodeFile(path string) (*audio.Buffer, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	buf, err := DefaultRegistry().Decode(ext, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return buf, nil
}

// TrackPath returns the output path for one speaker: the source file's
// base name, a dash and the speaker label, with a .wav extension,
// inside outDir.
func TrackPath(outDir, sourcePath, speaker string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return filepath.Join(outDir, base+"-"+speaker+".wav")
}

// WriteTrackFile encodes buf as WAV at path. The data goes to a
// temporary file in the same directory first and is renamed into place
// once complete, so a failed write leaves nothing behind.
func WriteTrackFile(buf *audio.Buffer, path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()

	if err := wav.Encode(tmp, buf); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp output: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}

	return nil
}

// Split builds one track per speaker and writes each to outDir, named
// after sourcePath and the speaker label. It returns the paths written.
//
// Encode failures are independent per speaker: a failed track is not
// produced, the remaining tracks are still written, and the combined
// error reports every failure.
func Split(src *audio.Buffer, set segment.Set, sourcePath, outDir string, opts ...track.Option) ([]string, error) {
	tracks := track.NewBuilder(opts...).Build(src, set)

	var (
		paths []string
		errs  []error
	)

	for _, tr := range tracks {
		path := TrackPath(outDir, sourcePath, tr.Speaker)
		if err := WriteTrackFile(tr.Buffer, path); err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}

	return paths, errors.Join(errs...)
}
