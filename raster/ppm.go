package raster

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrFormat - input is not a P6 raster with maxval 255
var ErrFormat = errors.New("raster: not a P6 pixmap")

// MaxDecodePixels - largest width*height DecodePPM will allocate
const MaxDecodePixels = 1 << 28

func header(r *Raster) string {
	return fmt.Sprintf("P6 %d %d 255 ", r.Width, r.Height)
}

// EncodePPM serializes r as "P6 {width} {height} 255 " followed by the raw
// RGB samples.
func EncodePPM(r *Raster) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	h := header(r)
	out := make([]byte, 0, len(h)+len(r.Pix))
	out = append(out, h...)
	out = append(out, r.Pix...)
	return out, nil
}

// WritePPM is EncodePPM straight to a writer
func WritePPM(w io.Writer, r *Raster) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, header(r)); err != nil {
		return err
	}
	_, err := w.Write(r.Pix)
	return err
}

// DecodePPM reads a binary P6 pixmap with a maxval of 255. Header fields may
// be separated by any whitespace and '#' comments.
func DecodePPM(in io.Reader) (*Raster, error) {
	br := bufio.NewReader(in)
	magic, err := token(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("magic %q: %w", magic, ErrFormat)
	}
	var fields [3]int
	for i := range fields {
		t, err := token(br)
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(t)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("header field %q: %w", t, ErrFormat)
		}
		fields[i] = v
	}
	if fields[2] != 255 {
		return nil, fmt.Errorf("maxval %d: %w", fields[2], ErrFormat)
	}
	w, h := fields[0], fields[1]
	if w > 0 && h > MaxDecodePixels/w {
		return nil, fmt.Errorf("size %dx%d: %w", w, h, ErrFormat)
	}
	r := New(w, h)
	if _, err := io.ReadFull(br, r.Pix); err != nil {
		return nil, fmt.Errorf("pixel data: %w", err)
	}
	return r, nil
}

// token reads one whitespace terminated header field, consuming exactly one
// trailing whitespace byte.
func token(br *bufio.Reader) (string, error) {
	var buf bytes.Buffer
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("header: %w", err)
		}
		if c == '#' && buf.Len() == 0 {
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("header comment: %w", err)
			}
			continue
		}
		if isSpace(c) {
			if buf.Len() == 0 {
				continue
			}
			return buf.String(), nil
		}
		buf.WriteByte(c)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
