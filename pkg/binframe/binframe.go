// Package binframe serializes rendered frames into a compact binary layout for
// transfer off constrained devices. Encoding writes into caller-provided buffers
// and never allocates.
//
// Layout (little endian):
//
//	magic  [4]byte  "RTF1"
//	width  uint16
//	height uint16
//	pixels [width*height][3]uint8  RGB, row-major, top row first, gamma 2
package binframe

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/df07/go-portable-raytracer/pkg/renderer"
)

// HeaderSize is the number of bytes before the pixel data
const HeaderSize = 8

// Magic identifies an encoded frame
var Magic = [4]byte{'R', 'T', 'F', '1'}

var (
	// ErrBufferTooSmall is returned when the destination cannot hold the whole frame
	ErrBufferTooSmall = errors.New("buffer too small for frame")
	// ErrFrameTooLarge is returned when a dimension does not fit the header
	ErrFrameTooLarge = errors.New("frame dimensions exceed format limits")
	// ErrInvalidFrame is returned when decoding malformed data
	ErrInvalidFrame = errors.New("invalid frame data")
)

// Header describes an encoded frame
type Header struct {
	Width  int
	Height int
}

// EncodedSize returns the number of bytes needed to encode a width x height frame
func EncodedSize(width, height int) int {
	return HeaderSize + 3*width*height
}

// Encode writes f into dst and returns the number of bytes written. When dst is too
// small nothing is written.
func Encode(dst []byte, f *renderer.Frame) (int, error) {
	w, h := f.Width(), f.Height()
	if w > 0xFFFF || h > 0xFFFF {
		return 0, fmt.Errorf("%w: %dx%d", ErrFrameTooLarge, w, h)
	}
	size := EncodedSize(w, h)
	if len(dst) < size {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, size, len(dst))
	}

	copy(dst, Magic[:])
	binary.LittleEndian.PutUint16(dst[4:], uint16(w))
	binary.LittleEndian.PutUint16(dst[6:], uint16(h))

	off := HeaderSize
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst[off], dst[off+1], dst[off+2] = f.RGB8(x, y)
			off += 3
		}
	}
	return off, nil
}

// DecodeHeader parses the header at the start of src
func DecodeHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidFrame, len(src))
	}
	if [4]byte(src[:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", ErrInvalidFrame, src[:4])
	}
	return Header{
		Width:  int(binary.LittleEndian.Uint16(src[4:])),
		Height: int(binary.LittleEndian.Uint16(src[6:])),
	}, nil
}

// Decode parses an encoded frame into an image. Used on the host side.
func Decode(src []byte) (*image.RGBA, error) {
	hdr, err := DecodeHeader(src)
	if err != nil {
		return nil, err
	}
	if need := EncodedSize(hdr.Width, hdr.Height); len(src) < need {
		return nil, fmt.Errorf("%w: %dx%d frame needs %d bytes, have %d", ErrInvalidFrame, hdr.Width, hdr.Height, need, len(src))
	}

	img := image.NewRGBA(image.Rect(0, 0, hdr.Width, hdr.Height))
	off := HeaderSize
	for y := 0; y < hdr.Height; y++ {
		for x := 0; x < hdr.Width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: src[off], G: src[off+1], B: src[off+2], A: 255})
			off += 3
		}
	}
	return img, nil
}

// Writer encodes frames into one fixed buffer and hands them to an output such as
// a serial link. A frame that does not fit fails on its own; later frames still go out.
type Writer struct {
	out io.Writer
	buf []byte
}

// NewWriter creates a writer that encodes into buf
func NewWriter(out io.Writer, buf []byte) *Writer {
	return &Writer{out: out, buf: buf}
}

// WriteFrame encodes f and writes it to the output
func (w *Writer) WriteFrame(f *renderer.Frame) (int, error) {
	n, err := Encode(w.buf, f)
	if err != nil {
		return 0, err
	}
	return w.out.Write(w.buf[:n])
}
