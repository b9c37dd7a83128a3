// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Decoders for the statistics and performance family (0x19) and power
// condition transitions (0x1a).

package logpage

import "fmt"

// decodeStatsPerf renders page 0x19 subpages 0x00..0x1f. Subpage 0 is the
// whole-device statistics, subpages 1..0x1f the per-group variant with a
// shorter counter cluster; both share the parameter vocabulary.
func decodeStatsPerf(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	if h.Subpage != 0 {
		p.Line("Group number %d", h.Subpage)
	}
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		switch prm.Code {
		case 0x0001:
			// A cluster of 8-byte counters; the group variant carries six,
			// the device variant eight.
			n := len(prm.Payload) / 8
			if n > len(statsPerfCounterKeys) {
				n = len(statsPerfCounterKeys)
			}
			if n == 0 {
				emitMalformed(p, prm, "counter cluster shorter than 8 bytes")
				break
			}
			for i := 0; i < n; i++ {
				k := statsPerfCounterKeys[i]
				p.IntL(k.key, k.label, beUint64(prm.Payload, i*8))
			}
		case 0x0002:
			emitCounter(p, "idle_time_intervals", "Idle time intervals", prm.Payload)
		case 0x0003, 0x0006:
			key := "time_interval"
			if prm.Code == 0x0006 {
				key = "time_interval_cached"
			}
			if len(prm.Payload) < 8 {
				emitMalformed(p, prm, "time interval shorter than 8 bytes")
				break
			}
			exp := beUint32(prm.Payload, 0)
			integer := beUint32(prm.Payload, 4)
			p.Str(key, fmtTimeInterval(integer, exp))
		case 0x0004:
			fuaKeys := [4]struct{ key, label string }{
				{"read_fua_commands", "Number of read FUA commands"},
				{"write_fua_commands", "Number of write FUA commands"},
				{"read_fua_nv_commands", "Number of read FUA_NV commands"},
				{"write_fua_nv_commands", "Number of write FUA_NV commands"},
			}
			n := len(prm.Payload) / 8
			if n > len(fuaKeys) {
				n = len(fuaKeys)
			}
			if n == 0 {
				emitMalformed(p, prm, "FUA statistics shorter than 8 bytes")
				break
			}
			for i := 0; i < n; i++ {
				p.IntL(fuaKeys[i].key, fuaKeys[i].label, beUint64(prm.Payload, i*8))
			}
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// fmtTimeInterval renders a time interval descriptor: integer * 10^exponent
// seconds, where the exponent is a two's complement negative power.
func fmtTimeInterval(integer, exponent uint32) string {
	// The exponent field holds a negative power of ten as two's complement.
	exp := int32(exponent)
	if exp >= 0 {
		return fmtScaled(uint64(integer), 0) + " s"
	}
	return fmtScaled(uint64(integer), int(-exp)) + " s"
}

// fmtScaled renders v * 10^-digits without going through floating point.
func fmtScaled(v uint64, digits int) string {
	if digits == 0 {
		return fmt.Sprintf("%d", v)
	}
	div := uint64(1)
	for i := 0; i < digits; i++ {
		div *= 10
	}
	return fmt.Sprintf("%d.%0*d", v/div, digits, v%div)
}

// decodePowerTransitions renders page 0x1a: counters of transitions into
// each power condition.
func decodePowerTransitions(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")
	walkNamedCounters(p, buf, h, ctx, powerTransitionParamNames, false)
	p.EndParams()
	p.EndPage()
}
