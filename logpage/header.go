// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import (
	"errors"
	"fmt"
)

// ErrShortHeader reports an input shorter than the 4-byte log page header.
var ErrShortHeader = errors.New("logpage: response shorter than 4 byte header")

// PageHeader is the parsed 4-byte log page header plus the length bookkeeping
// the walker needs.
type PageHeader struct {
	DidNotSave    bool // DS bit
	SubpageFormat bool // SPF bit
	Page          uint8
	Subpage       uint8

	// DeclaredLen is the page length from bytes 2..3, excluding the header.
	DeclaredLen int
	// EffectiveLen is min(DeclaredLen+4, len(buf)); the walker never reads
	// past it.
	EffectiveLen int
	// Truncated is set when the declared length overruns the buffer.
	Truncated bool
	// SubpageQuirk notes that the subpage code was read despite a clear SPF
	// bit (HGST/Hitachi vendor pages >= 0x30 do not set SPF).
	SubpageQuirk bool
}

// ParseHeader validates and extracts the page header. The Hitachi quirk: on
// their vendor pages >= 0x30 the SPF bit stays clear even though byte 1
// carries a subpage code, so byte 1 is honoured for those when the caller's
// vendor selector says Hitachi.
func ParseHeader(buf []byte, vendor Vendor) (PageHeader, error) {
	var h PageHeader

	if len(buf) < 4 {
		return h, fmt.Errorf("%w (have %d bytes)", ErrShortHeader, len(buf))
	}

	h.DidNotSave = buf[0]&0x80 != 0
	h.SubpageFormat = buf[0]&0x40 != 0
	h.Page = buf[0] & 0x3f

	if h.SubpageFormat {
		h.Subpage = buf[1]
	} else if vendor == VendorHitachi && h.Page >= 0x30 {
		h.Subpage = buf[1]
		if h.Subpage != 0 {
			h.SubpageQuirk = true
		}
	}

	h.DeclaredLen = int(beUint16(buf, 2))
	h.EffectiveLen = h.DeclaredLen + 4
	if h.EffectiveLen > len(buf) {
		h.EffectiveLen = len(buf)
		h.Truncated = true
	}

	return h, nil
}
