// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Big-endian byte-reader primitives. SCSI log pages are big-endian and almost
// never naturally aligned, so everything here works on plain byte slices.

package logpage

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a read would run past the end of the slice.
var ErrShortBuffer = errors.New("logpage: buffer too short")

// beUint16 reads a big-endian uint16 at off. The caller must have checked the
// bounds; decoders that cannot do so use the checked At variants.
func beUint16(b []byte, off int) uint16 {
	return uint16(b[off])<<8 | uint16(b[off+1])
}

func beUint24(b []byte, off int) uint32 {
	return uint32(b[off])<<16 | uint32(b[off+1])<<8 | uint32(b[off+2])
}

func beUint32(b []byte, off int) uint32 {
	return uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
}

func beUint48(b []byte, off int) uint64 {
	return uint64(beUint16(b, off))<<32 | uint64(beUint32(b, off+2))
}

func beUint64(b []byte, off int) uint64 {
	return uint64(beUint32(b, off))<<32 | uint64(beUint32(b, off+4))
}

// beUint16At is the range-checked variant of beUint16.
func beUint16At(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, fmt.Errorf("%w: need 2 bytes at offset %d, have %d", ErrShortBuffer, off, len(b))
	}
	return beUint16(b, off), nil
}

func beUint32At(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, fmt.Errorf("%w: need 4 bytes at offset %d, have %d", ErrShortBuffer, off, len(b))
	}
	return beUint32(b, off), nil
}

func beUint64At(b []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(b) {
		return 0, fmt.Errorf("%w: need 8 bytes at offset %d, have %d", ErrShortBuffer, off, len(b))
	}
	return beUint64(b, off), nil
}

// beVariable reads a 1..8 byte big-endian value. SSC counters declare their
// width via the parameter length, so the width is data-driven. Widths outside
// 1..8 (or past the end of b) return an error rather than a silent wrap.
func beVariable(b []byte, off, width int) (uint64, error) {
	if width < 1 || width > 8 {
		return 0, fmt.Errorf("logpage: unsupported field width %d", width)
	}
	if off < 0 || off+width > len(b) {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, width, off, len(b))
	}

	var v uint64
	for _, c := range b[off : off+width] {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// allFFs reports whether every byte in b is 0xff. An empty slice counts as
// all-ones; callers check the length first.
func allFFs(b []byte) bool {
	for _, c := range b {
		if c != 0xff {
			return false
		}
	}
	return true
}

// allZeros reports whether every byte in b is zero. Empty slices count.
func allZeros(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// asciiField interprets b as text, stopping at the first NUL, and trims
// trailing space padding. No copy unless trimming requires one.
func asciiField(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(bytes.TrimRight(b, " "))
}
