package player

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupported is returned for audio the player cannot decode.
var ErrUnsupported = errors.New("unsupported audio format")

// Codec is the container/codec of a track, detected from its content.
type Codec int

const (
	CodecUnknown Codec = iota
	CodecMP3
	CodecFLAC
	CodecVorbis
	CodecWAV
)

// String returns the codec name shown in the player bar.
func (c Codec) String() string {
	switch c {
	case CodecMP3:
		return "MP3"
	case CodecFLAC:
		return "FLAC"
	case CodecVorbis:
		return "Vorbis"
	case CodecWAV:
		return "WAV"
	default:
		return ""
	}
}

// decode detects the codec of f and returns its decoder. The server does not
// always keep file extensions, so the content decides.
func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, Codec, error) {
	codec, err := sniff(f)
	if err != nil {
		return nil, beep.Format{}, CodecUnknown, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch codec {
	case CodecMP3:
		streamer, format, err = mp3.Decode(f)
	case CodecFLAC:
		streamer, format, err = flac.Decode(f)
	case CodecVorbis:
		streamer, format, err = vorbis.Decode(f)
	case CodecWAV:
		streamer, format, err = wav.Decode(f)
	default:
		err = ErrUnsupported
	}
	if err != nil {
		return nil, beep.Format{}, codec, err
	}
	return streamer, format, codec, nil
}

// sniff reads the magic bytes after any ID3v2 tag and leaves r positioned
// at the start of the audio stream.
func sniff(r io.ReadSeeker) (Codec, error) {
	if err := skipID3v2(r); err != nil {
		return CodecUnknown, err
	}
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return CodecUnknown, err
	}

	header := make([]byte, 12)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return CodecUnknown, ErrUnsupported
	}
	header = header[:n]

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return CodecUnknown, err
	}

	switch {
	case bytes.HasPrefix(header, []byte("fLaC")):
		return CodecFLAC, nil
	case bytes.HasPrefix(header, []byte("OggS")):
		return CodecVorbis, nil
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return CodecWAV, nil
	case len(header) >= 2 && header[0] == 0xff && header[1]&0xe0 == 0xe0:
		return CodecMP3, nil
	case start > 0:
		// ID3-tagged stream with junk before the first frame
		return CodecMP3, nil
	}
	return CodecUnknown, ErrUnsupported
}

// skipID3v2 skips an ID3v2 tag at the beginning of r, if present.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// syncsafe size: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
