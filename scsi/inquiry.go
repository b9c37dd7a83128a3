// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package scsi

import (
	"bytes"
	"fmt"
)

// InquiryResponse is the parsed standard INQUIRY data this package cares
// about: the device class plus the T10 identification strings.
type InquiryResponse struct {
	PDT      uint8 // peripheral device type
	Vendor   string
	Product  string
	Revision string
}

func (r InquiryResponse) String() string {
	return fmt.Sprintf("%s %s %s [pdt %#x]", r.Vendor, r.Product, r.Revision, r.PDT)
}

func parseInquiry(buf []byte) (InquiryResponse, error) {
	if len(buf) < INQ_REPLY_LEN {
		return InquiryResponse{}, fmt.Errorf("scsi: inquiry response too short (%d bytes)", len(buf))
	}

	return InquiryResponse{
		PDT:      buf[0] & 0x1f,
		Vendor:   asciiString(buf[8:16]),
		Product:  asciiString(buf[16:32]),
		Revision: asciiString(buf[32:36]),
	}, nil
}

// asciiString trims an INQUIRY identification field: NUL terminates, trailing
// spaces are padding.
func asciiString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(bytes.TrimRight(b, " "))
}
