// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Decoders for direct access (SBC) pages.

package logpage

import "fmt"

// decodeFormatStatus renders page 0x08. Parameter 0 is the format data out
// buffer, 1..4 are counters; all-ones means the device has not been
// formatted or the value is unavailable.
func decodeFormatStatus(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		if skipVendorParam(p, ctx, prm.Code) {
			continue
		}

		p.BeginParam(prm.Code, prm.Control)
		switch {
		case prm.Code == 0:
			if len(prm.Payload) == 0 || allFFs(prm.Payload) {
				p.Sentinel("format_data_out", ffValue(len(prm.Payload)), "not available (or device not formatted)")
			} else {
				p.Bytes("format_data_out", prm.Payload)
			}
		default:
			if nm, known := formatStatusParamNames[prm.Code]; known {
				emitSentinelCounter(p, nm.key, nm.label, prm.Payload)
			} else {
				emitUnknownParam(p, prm)
			}
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeLBProvisioning renders page 0x0c (disk). The resource count
// parameters also carry a scope field in byte 4 of the payload.
func decodeLBProvisioning(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	scopeNames := [4]string{
		"not reported", "dedicated to lun", "not dedicated to lun", "reserved [0x3]",
	}

	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		if skipVendorParam(p, ctx, prm.Code) {
			continue
		}

		p.BeginParam(prm.Code, prm.Control)
		nm, known := lbProvisioningParamNames[prm.Code]
		if !known {
			emitUnknownParam(p, prm)
			p.EndParam()
			continue
		}
		if len(prm.Payload) < 4 {
			emitMalformed(p, prm, "resource count shorter than 4 bytes")
			p.EndParam()
			continue
		}

		p.IntL(nm.key, nm.label, uint64(beUint32(prm.Payload, 0)))
		if len(prm.Payload) >= 5 {
			scope := uint64(prm.Payload[4] >> 6)
			p.Enum("scope", scope, scopeNames[scope])
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeBackgroundScan renders page 0x15 (disk). Parameter 0 is the scan
// status block; other codes up to 0x800 are 24-byte medium scan records.
func decodeBackgroundScan(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		if skipVendorParam(p, ctx, prm.Code) {
			continue
		}

		p.BeginParam(prm.Code, prm.Control)
		switch {
		case prm.Code == 0:
			decodeBgScanStatus(p, prm)
		case prm.Code <= 0x800:
			decodeBgScanRecord(p, prm)
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

func decodeBgScanStatus(p *Printer, prm Param) {
	if len(prm.Payload) < 12 {
		emitMalformed(p, prm, "background scan status shorter than 12 bytes")
		return
	}

	p.IntUnit("accumulated_power_on_minutes", uint64(beUint32(prm.Payload, 0)), "minutes")
	st := uint64(prm.Payload[5])
	p.EnumL("background_scan_status", "Background scan status", st, lookupName(bgScanStatusNames, st, 0))
	p.IntL("background_scans_performed", "Number of background scans performed", uint64(beUint16(prm.Payload, 6)))

	// Progress is a fraction of 65536, rendered as a percentage.
	progress := beUint16(prm.Payload, 8)
	p.IntNote("background_scan_progress", uint64(progress),
		percentOf65536(progress))
	p.IntL("background_medium_scans_performed", "Number of background medium scans performed", uint64(beUint16(prm.Payload, 10)))
}

// percentOf65536 renders value/65536*100 with two decimals.
func percentOf65536(v uint16) string {
	whole := uint64(v) * 10000 / 65536
	return formatHundredths(whole) + " %"
}

// formatHundredths renders a value scaled by 100 as a fixed two-decimal
// string without going through floating point.
func formatHundredths(v uint64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}

func decodeBgScanRecord(p *Printer, prm Param) {
	if len(prm.Payload) < 20 {
		emitMalformed(p, prm, "medium scan record shorter than 20 bytes")
		return
	}

	p.IntUnit("accumulated_power_on_minutes", uint64(beUint32(prm.Payload, 0)), "minutes")
	rs := uint64(prm.Payload[4] >> 4)
	p.EnumL("reassign_status", "Reassign status", rs, lookupName(reassignStatusNames, rs, 0))
	sk := uint64(prm.Payload[4] & 0xf)
	p.EnumL("sense_key", "Sense key", sk, senseKeyNames[sk])
	p.IntHex("additional_sense_code", uint64(prm.Payload[5]))
	p.IntHex("additional_sense_code_qualifier", uint64(prm.Payload[6]))
	p.Bytes("vendor_bytes", prm.Payload[7:12])
	p.IntHex("lba", beUint64(prm.Payload, 12))
}

// decodePendingDefects renders page 0x15,0x01: parameter 0 is the defect
// count, the rest carry power-on hours and the LBA of each pending defect.
func decodePendingDefects(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		switch {
		case prm.Code == 0:
			if len(prm.Payload) < 4 {
				emitMalformed(p, prm, "pending defect count shorter than 4 bytes")
				break
			}
			p.IntL("pending_defect_count", "Pending defect count", uint64(beUint32(prm.Payload, 0)))
		case prm.Code <= 0xf10:
			if len(prm.Payload) < 12 {
				emitMalformed(p, prm, "pending defect shorter than 12 bytes")
				break
			}
			p.IntUnit("accumulated_power_on_hours", uint64(beUint32(prm.Payload, 0)), "hours")
			p.IntHex("lba", beUint64(prm.Payload, 4))
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeBackgroundOp renders page 0x15,0x02.
func decodeBackgroundOp(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	boStatusNames := map[uint64]string{
		0x0: "no indication",
		0x1: "host initiated advanced background operations active",
		0x2: "device initiated advanced background operations active",
	}

	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		if prm.Code == 0 && len(prm.Payload) >= 1 {
			st := uint64(prm.Payload[0])
			p.EnumL("background_operation_status", "Background operation status", st, lookupName(boStatusNames, st, 0))
		} else {
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeATAResults renders page 0x16 (disk): each parameter holds the ATA
// register image returned by a pass-through command.
func decodeATAResults(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		if len(prm.Payload) < 14 {
			emitMalformed(p, prm, "ATA pass-through result shorter than 14 bytes")
			p.EndParam()
			continue
		}

		ext := prm.Payload[2]&0x01 != 0
		p.Bool("extend", ext)
		p.IntHex("error", uint64(prm.Payload[3]))
		if ext {
			p.IntHex("count", uint64(beUint16(prm.Payload, 4)))
			lba := uint64(prm.Payload[10])<<40 | uint64(prm.Payload[8])<<32 | uint64(prm.Payload[6])<<24 |
				uint64(prm.Payload[11])<<16 | uint64(prm.Payload[9])<<8 | uint64(prm.Payload[7])
			p.IntHex("lba", lba)
		} else {
			p.IntHex("count", uint64(prm.Payload[5]))
			lba := uint64(prm.Payload[11])<<16 | uint64(prm.Payload[9])<<8 | uint64(prm.Payload[7])
			p.IntHex("lba", lba)
		}
		p.IntHex("device", uint64(prm.Payload[12]))
		p.IntHex("status", uint64(prm.Payload[13]))
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeNonVolatileCache renders page 0x17 (disk): remaining and maximum
// non-volatile retention times. 0xffffff means indefinite, 0 means volatile.
func decodeNonVolatileCache(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)

		key, label := "", ""
		switch prm.Code {
		case 0:
			key, label = "remaining_nonvolatile_time", "Remaining non-volatile time"
		case 1:
			key, label = "maximum_nonvolatile_time", "Maximum non-volatile time"
		}
		if key == "" {
			emitUnknownParam(p, prm)
			p.EndParam()
			continue
		}
		if len(prm.Payload) < 3 {
			emitMalformed(p, prm, "non-volatile time shorter than 3 bytes")
			p.EndParam()
			continue
		}

		v := uint64(beUint24(prm.Payload, 0))
		switch v {
		case 0:
			p.SentinelL(key, label, v, "volatile (no power saved)")
		case 0xffffff:
			p.SentinelL(key, label, v, "indefinite")
		default:
			p.IntUnitL(key, label, v, "minutes")
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeCacheMemStats renders page 0x19,0x20.
func decodeCacheMemStats(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")
	walkNamedCounters(p, buf, h, ctx, cacheMemStatsParamNames, false)
	p.EndParams()
	p.EndPage()
}

// decodeCmdDurationLimits renders page 0x19,0x21: per-limit achievable
// latency targets and miss counters.
func decodeCmdDurationLimits(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		switch {
		case prm.Code == 0x0001:
			emitCounter(p, "achievable_latency_target", "Achievable latency target", prm.Payload)
		case prm.Code >= 0x0021 && prm.Code <= 0x002d:
			// T2A/T2B descriptor miss counters; the low nibble selects the
			// limit descriptor.
			key := fmt.Sprintf("cdl_misses_descriptor_0x%x", prm.Code)
			label := fmt.Sprintf("Command duration limit misses, descriptor [0x%x]", prm.Code)
			emitCounter(p, key, label, prm.Payload)
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}
