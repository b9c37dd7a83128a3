// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package sglogs fetches and decodes SCSI log pages.
//
package sglogs

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/dswarbrick/sglogs/logpage"
	"github.com/dswarbrick/sglogs/scsi"
	"github.com/dswarbrick/sglogs/vendordb"
)

// DefaultAllocLen is the LOG SENSE allocation length used when the caller
// does not override it. Just under the 16-bit maximum, leaving headroom for
// HBAs that round up transfers.
const DefaultAllocLen = 0xfffc

// ScanDevices lists device nodes worth pointing this library at: SCSI disks,
// generic nodes and no-rewind tape drives.
func ScanDevices() []string {
	var devices []string

	for _, pattern := range []string{"/dev/sd*[^0-9]", "/dev/sg*", "/dev/nst*[0-9]"} {
		files, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		devices = append(devices, files...)
	}

	return devices
}

// Session couples an open device with the decode context deduced from its
// INQUIRY data. The context may be further adjusted by the caller before
// decoding.
type Session struct {
	dev     *scsi.Device
	Inquiry scsi.InquiryResponse
	Ctx     *logpage.DecodeContext
}

// OpenDevice opens the device, issues INQUIRY, and fills the decode context's
// device type and vendor selector where the caller left them at their
// defaults. vdbPath may be empty to use the builtin vendor table.
func OpenDevice(name string, ctx *logpage.DecodeContext, vdbPath string) (*Session, error) {
	if ctx == nil {
		ctx = logpage.NewDecodeContext()
	}

	dev, err := scsi.Open(name)
	if err != nil {
		return nil, err
	}

	inq, err := dev.Inquiry()
	if err != nil {
		dev.Close()
		return nil, err
	}
	log.Debug().Str("device", name).Stringer("inquiry", inq).Msg("device identified")

	if ctx.PDT == logpage.PDTAny {
		ctx.PDT = int(inq.PDT)
	}
	if ctx.Vendor == logpage.VendorStd {
		vdb := vendordb.Builtin()
		if vdbPath != "" {
			if vdb, err = vendordb.Open(vdbPath); err != nil {
				dev.Close()
				return nil, err
			}
		}
		ctx.Vendor = vdb.Lookup(inq.Vendor, inq.Product)
		if ctx.Vendor != logpage.VendorStd {
			log.Debug().Stringer("vendor", ctx.Vendor).Msg("vendor selector deduced from inquiry")
		}
	}

	return &Session{dev: dev, Inquiry: inq, Ctx: ctx}, nil
}

func (s *Session) Close() error {
	return s.dev.Close()
}

// Dev exposes the underlying device for callers that need a non-default
// LOG SENSE CDB.
func (s *Session) Dev() *scsi.Device {
	return s.dev
}

// FetchPage issues LOG SENSE for one (page, subpage) pair and returns the raw
// response. allocLen <= 0 selects DefaultAllocLen.
func (s *Session) FetchPage(page, subpage uint8, allocLen int) ([]byte, error) {
	if allocLen <= 0 {
		allocLen = DefaultAllocLen
	}

	buf, resid, err := s.dev.LogSense(page, subpage, scsi.LOG_PC_CUMULATIVE, 0, allocLen)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Uint8("page", page).Uint8("subpage", subpage).
		Int("len", len(buf)).Int("resid", resid).
		Msg("log sense complete")

	return buf, nil
}

// FetchSupported fetches the supported pages listing and, when the device
// accepts subpage addressing, the supported subpages listing. A device that
// rejects (0x00, 0xff) simply yields a nil second buffer.
func (s *Session) FetchSupported(allocLen int) (pages, subpages []byte, err error) {
	pages, err = s.FetchPage(0x00, 0x00, allocLen)
	if err != nil {
		return nil, nil, err
	}

	subpages, err = s.FetchPage(0x00, 0xff, allocLen)
	if err != nil {
		log.Debug().Err(err).Msg("device does not support the subpages listing")
		subpages = nil
	}

	return pages, subpages, nil
}
