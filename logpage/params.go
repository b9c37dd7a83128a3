// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Helpers for the recurring parameter shapes: plain counters, sentinel
// counters, named counter tables, and the hex fallback for anything
// malformed or unknown.

package logpage

import "fmt"

// bigValueThreshold: counters above this get a byte-quantity annotation on
// the human sink.
const bigValueThreshold = 1 << 30

// formatBytes formats a uint64 byte quantity using human-readable units.
func formatBytes(v uint64) string {
	var i int

	suffixes := [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	d := uint64(1)

	for i = 0; i < len(suffixes)-1; i++ {
		if v >= d*1000 {
			d *= 1000
		} else {
			break
		}
	}

	if i == 0 {
		return fmt.Sprintf("%d %s", v, suffixes[i])
	}
	// 3 significant digits
	return fmt.Sprintf("%.3g %s", float64(v)/float64(d), suffixes[i])
}

// paramCounter reads the whole payload as one big-endian counter. A zero
// width payload is malformed for counter shapes.
func paramCounter(payload []byte) (uint64, error) {
	return beVariable(payload, 0, len(payload))
}

// emitCounter renders one counter-shaped parameter, annotating very large
// values with a byte-quantity hint.
func emitCounter(p *Printer, key, label string, payload []byte) {
	v, err := paramCounter(payload)
	if err != nil {
		p.Note("%s: malformed counter (%d byte payload), raw bytes follow", label, len(payload))
		p.Bytes(key, payload)
		return
	}
	if v > bigValueThreshold {
		p.IntNote(key, v, formatBytes(v))
		return
	}
	p.IntL(key, label, v)
}

// emitSentinelCounter renders a counter where all-ones means "not available"
// and, for SSC devices, a trailing 0xfe after leading 0xff bytes means
// "unknown but nonzero".
func emitSentinelCounter(p *Printer, key, label string, payload []byte) {
	if len(payload) == 0 {
		p.Note("%s: zero length counter", label)
		return
	}
	if allFFs(payload) {
		p.NotAvailableL(key, label, ffValue(len(payload)))
		return
	}
	if len(payload) > 1 && payload[len(payload)-1] == 0xfe && allFFs(payload[:len(payload)-1]) {
		raw, _ := paramCounter(payload)
		p.SentinelL(key, label, raw, "unknown but nonzero")
		return
	}
	emitCounter(p, key, label, payload)
}

// ffValue returns the all-ones value of the given byte width, saturating at
// 64 bits.
func ffValue(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return 1<<(uint(width)*8) - 1
}

// unknownParamKey renders an out-of-table parameter code: reserved below the
// vendor range, vendor specific within it.
func unknownParamKey(pc uint16) (key, label string) {
	if pc >= 0x8000 {
		return fmt.Sprintf("vendor_specific_0x%x", pc), fmt.Sprintf("Vendor specific [0x%x]", pc)
	}
	return fmt.Sprintf("reserved_0x%x", pc), fmt.Sprintf("Reserved [0x%x]", pc)
}

// emitUnknownParam attaches an unknown parameter's payload as hex.
func emitUnknownParam(p *Printer, prm Param) {
	key, label := unknownParamKey(prm.Code)
	p.Line("%s:", label)
	p.Bytes(key, prm.Payload)
}

// emitMalformed reports a malformed descriptor and dumps its available bytes.
func emitMalformed(p *Printer, prm Param, reason string) {
	p.Note("parameter_code=0x%x malformed: %s", prm.Code, reason)
	p.Bytes("raw", prm.Payload)
}

// skipVendorParam applies the exclude-vendor policy; returns true when the
// parameter was suppressed.
func skipVendorParam(p *Printer, ctx *DecodeContext, pc uint16) bool {
	if ctx.ExcludeVendor && pc >= 0x8000 {
		p.SkipVendor()
		return true
	}
	return false
}

// walkNamedCounters is the workhorse for pages that are a flat list of
// counter parameters named by a fixed table: error counter pages, tape
// usage, changer statistics and friends. Unknown codes fall back to hex.
func walkNamedCounters(p *Printer, buf []byte, h PageHeader, ctx *DecodeContext,
	names map[uint16]struct{ key, label string }, sentinel bool) {

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
		if prm.Truncated {
			emitMalformed(p, prm, "declared length exceeds page boundary")
			p.EndParam()
			continue
		}

		if nm, known := names[prm.Code]; known {
			if sentinel {
				emitSentinelCounter(p, nm.key, nm.label, prm.Payload)
			} else {
				emitCounter(p, nm.key, nm.label, prm.Payload)
			}
		} else {
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}
}
