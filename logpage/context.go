// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import "strings"

// Vendor identifies which vendor-specific registry entries are eligible for a
// decode. It is usually deduced from the INQUIRY vendor/product strings.
type Vendor int

const (
	VendorStd Vendor = iota // no vendor extensions
	VendorSeagate
	VendorHitachi // HGST / WDC enterprise lineage
	VendorToshiba
	VendorLTO5
	VendorLTO6
)

var vendorNames = map[Vendor]string{
	VendorStd:     "standard",
	VendorSeagate: "seagate",
	VendorHitachi: "hitachi",
	VendorToshiba: "toshiba",
	VendorLTO5:    "lto-5",
	VendorLTO6:    "lto-6",
}

func (v Vendor) String() string {
	if s, ok := vendorNames[v]; ok {
		return s
	}
	return "standard"
}

// ParseVendor maps a user-supplied selector string to a Vendor. Unrecognised
// strings map to VendorStd with ok=false so the caller can complain.
func ParseVendor(s string) (Vendor, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "std", "standard", "none":
		return VendorStd, true
	case "sea", "seagate":
		return VendorSeagate, true
	case "hit", "hitachi", "hgst", "wdc":
		return VendorHitachi, true
	case "tos", "toshiba":
		return VendorToshiba, true
	case "lto5", "lto-5":
		return VendorLTO5, true
	case "lto6", "lto-6":
		return VendorLTO6, true
	}
	return VendorStd, false
}

// VendorMask is a bit set of vendors a registry entry applies to.
type VendorMask uint16

const (
	MaskStd VendorMask = 1 << iota
	MaskSeagate
	MaskHitachi
	MaskToshiba
	MaskLTO5
	MaskLTO6

	MaskAnyVendor = MaskSeagate | MaskHitachi | MaskToshiba | MaskLTO5 | MaskLTO6
)

func (v Vendor) mask() VendorMask {
	switch v {
	case VendorSeagate:
		return MaskSeagate
	case VendorHitachi:
		return MaskHitachi
	case VendorToshiba:
		return MaskToshiba
	case VendorLTO5:
		return MaskLTO5
	case VendorLTO6:
		return MaskLTO6
	}
	return 0
}

// Peripheral device types from SPC-5 table 155. Only the handful the registry
// filters on get names; everything else matters only as a raw value.
const (
	PDTDisk      = 0x00 // direct access block device
	PDTTape      = 0x01 // sequential access device
	PDTPrinter   = 0x02
	PDTProcessor = 0x03
	PDTWriteOnce = 0x04
	PDTMMC       = 0x05
	PDTChanger   = 0x08 // medium changer
	PDTSES       = 0x0d
	PDTRBC       = 0x0e // reduced block commands
	PDTOSD       = 0x11
	PDTADC       = 0x12 // automation/drive interface
	PDTZBC       = 0x14 // host managed zoned block
	PDTAny       = -1   // caller does not know / match everything
)

// decayPDT folds device type variants onto the class the registry filters on:
// block-device lookalikes decay to disk, sequential lookalikes to tape.
func decayPDT(pdt int) int {
	switch pdt {
	case PDTDisk, PDTWriteOnce, PDTMMC, PDTRBC, PDTZBC:
		return PDTDisk
	case PDTTape, PDTPrinter:
		return PDTTape
	case PDTChanger:
		return PDTChanger
	}
	return pdt
}

// DecodeContext carries the per-invocation knobs every decoder consults. It
// is built once from the CLI and treated as immutable for the whole decode.
type DecodeContext struct {
	// FilterParamCode restricts the walker to a single parameter code.
	// Negative means no filter.
	FilterParamCode int

	// EmitControlBytes adds the DU/DS/TSD/ETC/TMC/format+linking fields of
	// each parameter control byte to the output.
	EmitControlBytes bool

	// Brief progressively suppresses human-sink decoration: level 1 drops
	// the page title line, level 2 drops notes, level 3 drops the
	// parameter code and control byte echoes. The tree is unaffected.
	Brief   int
	Verbose int
	HexOnly int // >0: dump parameters as hex; >1: dump whole page

	// Structured enables the tree sink; the human sink is always driven.
	Structured bool

	// ExcludeVendor skips parameter codes in the vendor range (>= 0x8000)
	// with one aggregated note per page.
	ExcludeVendor bool

	PDT    int // peripheral device type, PDTAny when unknown
	Vendor Vendor

	// NameMode renders parameter codes with their field name prefix
	// (parameter_code=0xNN) instead of the bare hex form.
	NameMode bool

	// RawOutput short-circuits the walker after the first descriptor so the
	// caller can dump bytes verbatim.
	RawOutput bool
}

// NewDecodeContext returns a context with the defaults a plain CLI run uses:
// no filter, structured output on, unknown device type.
func NewDecodeContext() *DecodeContext {
	return &DecodeContext{
		FilterParamCode: -1,
		Structured:      true,
		PDT:             PDTAny,
		Vendor:          VendorStd,
	}
}
