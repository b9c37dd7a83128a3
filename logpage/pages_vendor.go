// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Decoders for vendor specific pages (Seagate, HGST/Hitachi).

package logpage

import "fmt"

// decodeSeagateCache renders the Seagate cache statistics page (0x37).
func decodeSeagateCache(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")
	walkNamedCounters(p, buf, h, ctx, seagateCacheParamNames, false)
	p.EndParams()
	p.EndPage()
}

// decodeSeagateFactory renders the Seagate factory page (0x3e). Parameter 0
// carries minutes powered up, displayed as hours; parameter 8 the minutes
// until the next internal SMART test.
func decodeSeagateFactory(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		switch prm.Code {
		case 0x0000:
			v, err := paramCounter(prm.Payload)
			if err != nil {
				emitMalformed(p, prm, "malformed power-on counter")
				break
			}
			// The counter is in minutes.
			p.Line("Number of hours powered up = %d.%02d", v/60, (v%60)*100/60)
			hrs := p.top().put("number_of_hours_powered_up", newObject())
			hrs.put("value_minutes", &Node{Kind: KindInt, intVal: v})
			hrs.put("hours", &Node{Kind: KindString, strVal: fmt.Sprintf("%d.%02d", v/60, (v%60)*100/60)})
		case 0x0008:
			emitCounter(p, "minutes_until_next_internal_smart_test", "Minutes until next internal SMART test", prm.Payload)
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeHGSTVendor renders the HGST/Hitachi vendor pages (0x30..0x37, 0x3e).
// Layouts are model specific, so parameters render as counters where they
// look like counters and hex otherwise.
func decodeHGSTVendor(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	if h.SubpageQuirk {
		p.Note("subpage code taken from byte 1 without SPF set")
	}
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		if prm.Truncated {
			p.Note("descriptor truncated at page boundary")
		}
		if len(prm.Payload) >= 1 && len(prm.Payload) <= 8 {
			key := fmt.Sprintf("counter_0x%x", prm.Code)
			label := fmt.Sprintf("Counter [0x%x]", prm.Code)
			emitCounter(p, key, label, prm.Payload)
		} else {
			p.Bytes(fmt.Sprintf("data_0x%x", prm.Code), prm.Payload)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}
