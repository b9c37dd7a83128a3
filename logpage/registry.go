// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// The page registry: one static, read-only table mapping (page, subpage,
// device type, vendor) to a decoder. Entries are kept in ascending
// (page, subpage) order, and for a shared (page, subpage) key the entries
// with narrower pdt or vendor filters come first; lookup is first match
// wins, so the order is load-bearing.

package logpage

import "sort"

// PDTFilter is the device class constraint of a registry entry.
type PDTFilter int

const (
	FilterAny PDTFilter = iota
	FilterDisk
	FilterTape
	FilterChanger
	FilterADC
)

// matches applies the pdt decay rules before comparing.
func (f PDTFilter) matches(pdt int) bool {
	if f == FilterAny || pdt == PDTAny {
		return true
	}
	switch f {
	case FilterDisk:
		return decayPDT(pdt) == PDTDisk
	case FilterTape:
		return decayPDT(pdt) == PDTTape
	case FilterChanger:
		return decayPDT(pdt) == PDTChanger
	case FilterADC:
		return pdt == PDTADC
	}
	return false
}

// DecodeFunc renders one page into the printer. buf is the whole response
// including the 4-byte header.
type DecodeFunc func(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext)

// RegistryEntry describes one known page or subpage range.
type RegistryEntry struct {
	Page    uint8
	SubLow  uint8
	SubHigh uint8
	PDT     PDTFilter
	Vendors VendorMask
	Acronym string
	Name    string
	Decode  DecodeFunc
}

// VendorOnly reports whether the entry has no standard applicability.
func (e *RegistryEntry) VendorOnly() bool { return e.Vendors&MaskStd == 0 }

func (e *RegistryEntry) matches(page, subpage uint8, pdt int, vendor Vendor) bool {
	if e.Page != page {
		return false
	}
	if subpage < e.SubLow || subpage > e.SubHigh {
		return false
	}
	if !e.PDT.matches(pdt) {
		return false
	}
	return e.Vendors&MaskStd != 0 || e.Vendors&vendor.mask() != 0
}

// registry is filled in by init and treated as a read-only constant table
// afterwards; it may be consulted concurrently by independent decodes. The
// table cannot be a plain composite literal: the listing decoders resolve
// page names through Lookup, which reads the table back.
var registry []RegistryEntry

func init() {
	registry = []RegistryEntry{
		{0x00, 0x00, 0x00, FilterAny, MaskStd, "sp", "Supported log pages", decodeSupportedPages},
		{0x00, 0xff, 0xff, FilterAny, MaskStd, "ssp", "Supported log pages and subpages", decodeSupportedSubpages},
		{0x01, 0x00, 0x00, FilterAny, MaskStd, "bou", "Buffer over-run/under-run", decodeBufferOverrun},
		{0x02, 0x00, 0x00, FilterAny, MaskStd, "we", "Write error counters", decodeErrorCounters},
		{0x03, 0x00, 0x00, FilterAny, MaskStd, "re", "Read error counters", decodeErrorCounters},
		{0x04, 0x00, 0x00, FilterAny, MaskStd, "rre", "Read reverse error counters", decodeErrorCounters},
		{0x05, 0x00, 0x00, FilterAny, MaskStd, "ve", "Verify error counters", decodeErrorCounters},
		{0x06, 0x00, 0x00, FilterAny, MaskStd, "nme", "Non-medium errors", decodeNonMediumError},
		{0x07, 0x00, 0x00, FilterAny, MaskStd, "lne", "Last n error events", decodeLastNEvents},
		{0x08, 0x00, 0x00, FilterDisk, MaskStd, "fs", "Format status", decodeFormatStatus},
		{0x0b, 0x00, 0x00, FilterAny, MaskStd, "lnd", "Last n deferred errors or asynchronous events", decodeLastNEvents},
		{0x0c, 0x00, 0x00, FilterDisk, MaskStd, "lbp", "Logical block provisioning", decodeLBProvisioning},
		{0x0c, 0x00, 0x00, FilterTape, MaskStd, "sad", "Sequential access device", decodeSequentialAccess},
		{0x0d, 0x00, 0x00, FilterAny, MaskStd, "temp", "Temperature", decodeTemperature},
		{0x0d, 0x01, 0x01, FilterAny, MaskStd, "enr", "Environmental reporting", decodeEnvReporting},
		{0x0d, 0x02, 0x02, FilterAny, MaskStd, "enl", "Environmental limits", decodeEnvLimits},
		{0x0e, 0x00, 0x00, FilterAny, MaskStd, "sscc", "Start-stop cycle counter", decodeStartStop},
		{0x0e, 0x01, 0x01, FilterDisk, MaskStd, "utl", "Utilization", decodeUtilization},
		{0x0f, 0x00, 0x00, FilterAny, MaskStd, "ac", "Application client", decodeAppClient},
		{0x10, 0x00, 0x00, FilterAny, MaskStd, "str", "Self-test results", decodeSelfTest},
		{0x11, 0x00, 0x00, FilterDisk, MaskStd, "ssm", "Solid state media", decodeSolidState},
		{0x11, 0x00, 0x00, FilterTape, MaskStd, "dtds", "DT device status", decodeDTDeviceStatus},
		{0x11, 0x00, 0x00, FilterADC, MaskStd, "dtds", "DT device status", decodeDTDeviceStatus},
		{0x12, 0x00, 0x00, FilterTape, MaskStd, "tar", "TapeAlert response", decodeTapeAlertResponse},
		{0x12, 0x00, 0x00, FilterADC, MaskStd, "tar", "TapeAlert response", decodeTapeAlertResponse},
		{0x13, 0x00, 0x00, FilterTape, MaskStd, "rr", "Requested recovery", decodeRequestedRecovery},
		{0x14, 0x00, 0x00, FilterChanger, MaskStd, "mcs", "Media changer statistics", decodeChangerStats},
		{0x14, 0x00, 0x00, FilterTape, MaskStd, "dst", "Device statistics", decodeDeviceStats},
		{0x14, 0x00, 0x00, FilterADC, MaskStd, "dst", "Device statistics", decodeDeviceStats},
		{0x15, 0x00, 0x00, FilterDisk, MaskStd, "bsr", "Background scan results", decodeBackgroundScan},
		{0x15, 0x00, 0x00, FilterChanger, MaskStd, "est", "Element statistics", decodeElementStats},
		{0x15, 0x01, 0x01, FilterDisk, MaskStd, "pd", "Pending defects", decodePendingDefects},
		{0x15, 0x02, 0x02, FilterDisk, MaskStd, "bop", "Background operation", decodeBackgroundOp},
		{0x16, 0x00, 0x00, FilterDisk, MaskStd, "aptr", "ATA pass-through results", decodeATAResults},
		{0x16, 0x00, 0x00, FilterTape, MaskStd, "tdd", "Tape diagnostic data", decodeTapeDiagnostic},
		{0x17, 0x00, 0x00, FilterDisk, MaskStd, "nvc", "Non-volatile cache", decodeNonVolatileCache},
		{0x17, 0x00, 0x0f, FilterTape, MaskStd, "vs", "Volume statistics", decodeVolumeStats},
		{0x18, 0x00, 0x00, FilterAny, MaskStd, "psp", "Protocol specific port", decodeProtocolPort},
		{0x19, 0x00, 0x00, FilterAny, MaskStd, "gsp", "General statistics and performance", decodeStatsPerf},
		{0x19, 0x01, 0x1f, FilterAny, MaskStd, "grsp", "Group statistics and performance", decodeStatsPerf},
		{0x19, 0x20, 0x20, FilterDisk, MaskStd, "cms", "Cache memory statistics", decodeCacheMemStats},
		{0x19, 0x21, 0x21, FilterDisk, MaskStd, "cdl", "Command duration limits statistics", decodeCmdDurationLimits},
		{0x1a, 0x00, 0x00, FilterAny, MaskStd, "pct", "Power condition transitions", decodePowerTransitions},
		{0x1b, 0x00, 0x00, FilterTape, MaskStd, "dc", "Data compression", decodeDataCompression},
		{0x2e, 0x00, 0x00, FilterTape, MaskStd, "ta", "TapeAlert", decodeTapeAlert},
		{0x2f, 0x00, 0x00, FilterAny, MaskStd, "ie", "Informational exceptions", decodeInfoExceptions},
		{0x30, 0x00, 0x00, FilterTape, MaskLTO5 | MaskLTO6, "tu", "Tape usage", decodeTapeUsage},
		{0x30, 0x00, 0xff, FilterDisk, MaskHitachi, "hvp0", "HGST/WDC vendor page 0x30", decodeHGSTVendor},
		{0x31, 0x00, 0x00, FilterTape, MaskLTO5 | MaskLTO6, "tc", "Tape capacity", decodeTapeCapacity},
		{0x31, 0x00, 0xff, FilterDisk, MaskHitachi, "hvp1", "HGST/WDC vendor page 0x31", decodeHGSTVendor},
		{0x32, 0x00, 0x00, FilterTape, MaskLTO5, "dcv", "Data compression (LTO-5 vendor)", decodeDataCompression},
		{0x32, 0x00, 0xff, FilterDisk, MaskHitachi, "hvp2", "HGST/WDC vendor page 0x32", decodeHGSTVendor},
		{0x33, 0x00, 0x00, FilterTape, MaskLTO5, "wep", "Write errors (LTO-5 vendor)", decodeLTOErrorCounters},
		{0x33, 0x00, 0xff, FilterDisk, MaskHitachi, "hvp3", "HGST/WDC vendor page 0x33", decodeHGSTVendor},
		{0x34, 0x00, 0x00, FilterTape, MaskLTO5, "rfep", "Read forward errors (LTO-5 vendor)", decodeLTOErrorCounters},
		{0x34, 0x00, 0xff, FilterDisk, MaskHitachi, "hvp4", "HGST/WDC vendor page 0x34", decodeHGSTVendor},
		{0x35, 0x00, 0xff, FilterDisk, MaskHitachi, "hvp5", "HGST/WDC vendor page 0x35", decodeHGSTVendor},
		{0x36, 0x00, 0xff, FilterDisk, MaskHitachi, "hvp6", "HGST/WDC vendor page 0x36", decodeHGSTVendor},
		{0x37, 0x00, 0x00, FilterDisk, MaskSeagate, "scs", "Seagate cache statistics", decodeSeagateCache},
		{0x37, 0x00, 0x00, FilterTape, MaskLTO6, "pc", "Performance characteristics", decodeTapeDiagnostic},
		{0x37, 0x00, 0xff, FilterDisk, MaskHitachi, "hvp7", "HGST/WDC vendor page 0x37", decodeHGSTVendor},
		{0x3e, 0x00, 0x00, FilterDisk, MaskSeagate, "sfs", "Seagate factory statistics", decodeSeagateFactory},
		{0x3e, 0x00, 0x00, FilterDisk, MaskHitachi, "hfs", "HGST/WDC factory", decodeHGSTVendor},
	}
}

// unknownPageEntry is the fallback for responses no registry entry claims.
var unknownPageEntry = RegistryEntry{
	PDT: FilterAny, Vendors: MaskStd | MaskAnyVendor,
	Acronym: "unknown", Name: "Unknown page",
	Decode: decodeUnknownPage,
}

// Lookup resolves the registry entry for (page, subpage, pdt, vendor), or
// nil when none matches. Two successive calls with the same arguments always
// return the same entry: the table is static and first match wins.
func Lookup(page, subpage uint8, pdt int, vendor Vendor) *RegistryEntry {
	for i := range registry {
		if registry[i].matches(page, subpage, pdt, vendor) {
			return &registry[i]
		}
	}
	return nil
}

// FindAcronym returns the entry with an exactly matching acronym (case
// sensitive), or nil.
func FindAcronym(acronym string) *RegistryEntry {
	for i := range registry {
		if registry[i].Acronym == acronym {
			return &registry[i]
		}
	}
	return nil
}

// Entries returns the registry in numeric (page, subpage) order, optionally
// suppressing vendor-only entries.
func Entries(includeVendor bool) []*RegistryEntry {
	var out []*RegistryEntry
	for i := range registry {
		if !includeVendor && registry[i].VendorOnly() {
			continue
		}
		out = append(out, &registry[i])
	}
	return out
}

// EntriesByAcronym returns the registry sorted by acronym (stable, so the
// numeric order breaks ties between duplicate acronyms).
func EntriesByAcronym(includeVendor bool) []*RegistryEntry {
	out := Entries(includeVendor)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Acronym < out[j].Acronym })
	return out
}
