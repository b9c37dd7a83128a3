// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Decoders for the SPC pages every device class may report.

package logpage

import "fmt"

// decodeSupportedPages renders page 0x00: the payload is a sequence of
// single-byte page codes, each resolved against the registry for its name.
func decodeSupportedPages(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("supported_pages_list")

	for _, pc := range buf[4:h.EffectiveLen] {
		emitSupportedEntry(p, pc&0x3f, 0, false, ctx)
	}

	p.EndParams()
	p.EndPage()
}

// decodeSupportedSubpages renders page 0x00,0xff and the "supported subpages
// of page N" form (subpage 0xff on a non-zero page): 2-byte entries.
func decodeSupportedSubpages(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("supported_pages_list")

	body := buf[4:h.EffectiveLen]
	for i := 0; i+1 < len(body); i += 2 {
		emitSupportedEntry(p, body[i]&0x3f, body[i+1], true, ctx)
	}
	if len(body)%2 != 0 {
		p.Note("trailing odd byte 0x%02x ignored", body[len(body)-1])
	}

	p.EndParams()
	p.EndPage()
}

func emitSupportedEntry(p *Printer, page, subpage uint8, withSubpage bool, ctx *DecodeContext) {
	name, acronym := "Unknown page", "unknown"
	if ent := Lookup(page, subpage, ctx.PDT, ctx.Vendor); ent != nil {
		name, acronym = ent.Name, ent.Acronym
	}

	var tag string
	if withSubpage && subpage != 0 {
		tag = fmt.Sprintf("0x%02x,0x%02x", page, subpage)
	} else {
		tag = fmt.Sprintf("0x%02x", page)
	}
	p.Line("%-12s%s [%s]", tag, name, acronym)

	obj := newObject()
	obj.put("page_code", &Node{Kind: KindAnnotatedInt, intVal: uint64(page), hexed: true})
	if withSubpage {
		obj.put("subpage_code", &Node{Kind: KindAnnotatedInt, intVal: uint64(subpage), hexed: true})
	}
	obj.put("name", &Node{Kind: KindString, strVal: name})
	obj.put("acronym", &Node{Kind: KindString, strVal: acronym})
	p.attach("supported_page", obj)
}

// decodeBufferOverrun renders page 0x01. The parameter code itself encodes
// the count basis, the cause and the over/under-run direction.
func decodeBufferOverrun(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	countBasisNames := [8]string{
		"undefined", "per command", "per failed command", "per unit of time",
		"reserved [0x4]", "reserved [0x5]", "reserved [0x6]", "reserved [0x7]",
	}
	causeNames := map[uint64]string{
		0x0: "undefined",
		0x1: "bus busy",
		0x2: "transfer rate too slow",
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
		basis := uint64(prm.Code >> 5 & 0x7)
		cause := uint64(prm.Code >> 1 & 0xf)
		p.Enum("count_basis", basis, countBasisNames[basis])
		p.Enum("cause", cause, lookupName(causeNames, cause, 0))
		if prm.Code&1 != 0 {
			p.Enum("type", 1, "over-run")
		} else {
			p.Enum("type", 0, "under-run")
		}
		emitCounter(p, "count", "Count", prm.Payload)
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeErrorCounters handles pages 0x02..0x05; the fixed parameter names
// are shared, only the page title differs.
func decodeErrorCounters(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")
	walkNamedCounters(p, buf, h, ctx, errorCounterParamNames, false)
	p.EndParams()
	p.EndPage()
}

// decodeNonMediumError renders page 0x06: a single counter at parameter
// code 0; everything below 0x8000 is reserved, the rest vendor specific.
func decodeNonMediumError(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
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
		if prm.Code == 0 {
			emitCounter(p, "non_medium_error_count", "Non-medium error count", prm.Payload)
		} else {
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeLastNEvents renders pages 0x07 and 0x0b: each parameter is an event
// record, ASCII when the format bits say so, otherwise hex.
func decodeLastNEvents(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("events")

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
		// format_and_linking 01b is an ASCII format list
		if prm.FormatLinking() == 1 {
			p.Str("event", asciiField(prm.Payload))
		} else {
			p.Bytes("event", prm.Payload)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeTemperature renders page 0x0d: parameter 0 is the current
// temperature, parameter 1 the reference temperature. 0xff means the sensor
// or value is not available; a current temperature of zero means 0 C or
// colder.
func decodeTemperature(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
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
		if len(prm.Payload) < 2 {
			emitMalformed(p, prm, "temperature parameter shorter than 2 bytes")
			p.EndParam()
			continue
		}

		t := uint64(prm.Payload[1])
		switch prm.Code {
		case 0:
			if t == 0xff {
				p.NotAvailable("current_temperature", t)
			} else if t == 0 {
				p.IntNote("current_temperature", 0, "0 C or less")
			} else {
				p.IntUnit("current_temperature", t, "C")
			}
		case 1:
			if t == 0xff {
				p.NotAvailable("reference_temperature", t)
			} else {
				p.IntUnit("reference_temperature", t, "C")
			}
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// emitEnvReport renders one environmental reporting descriptor; temperature
// parameters sit at codes 0x0..0xff, relative humidity at 0x100..0x1ff.
func emitEnvReport(p *Printer, prm Param, humidity bool) {
	kind, unit := "temperature", "C"
	if humidity {
		kind, unit = "relative_humidity", "%"
	}

	fields := []struct {
		key string
		off int
	}{
		{kind, 2},
		{"lifetime_maximum_" + kind, 3},
		{"lifetime_minimum_" + kind, 4},
		{"maximum_" + kind + "_since_power_on", 5},
		{"minimum_" + kind + "_since_power_on", 6},
	}

	p.Bool("other_valid", len(prm.Payload) > 0 && prm.Payload[0]&0x01 != 0)
	for _, f := range fields {
		if f.off >= len(prm.Payload) {
			break
		}
		v := uint64(prm.Payload[f.off])
		if v == 0xff {
			p.NotAvailable(f.key, v)
		} else {
			p.IntUnit(f.key, v, unit)
		}
	}
}

// decodeEnvReporting renders page 0x0d,0x01.
func decodeEnvReporting(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
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
		case len(prm.Payload) < 7:
			emitMalformed(p, prm, "environmental report shorter than 7 bytes")
		case prm.Code <= 0xff:
			emitEnvReport(p, prm, false)
		case prm.Code <= 0x1ff:
			emitEnvReport(p, prm, true)
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeEnvLimits renders page 0x0d,0x02: high/low operating and critical
// limits for temperature (codes 0x0..0xff) and humidity (0x100..0x1ff).
func decodeEnvLimits(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)

		if len(prm.Payload) < 6 {
			emitMalformed(p, prm, "environmental limits shorter than 6 bytes")
			p.EndParam()
			continue
		}

		kind, unit := "temperature", "C"
		if prm.Code > 0xff && prm.Code <= 0x1ff {
			kind, unit = "relative_humidity", "%"
		} else if prm.Code > 0x1ff {
			emitUnknownParam(p, prm)
			p.EndParam()
			continue
		}

		limits := []struct {
			key string
			off int
		}{
			{"high_critical_" + kind + "_limit", 2},
			{"low_critical_" + kind + "_limit", 3},
			{"high_operating_" + kind + "_limit", 4},
			{"low_operating_" + kind + "_limit", 5},
		}
		for _, l := range limits {
			v := uint64(prm.Payload[l.off])
			if v == 0xff {
				p.NotAvailable(l.key, v)
			} else {
				p.IntUnit(l.key, v, unit)
			}
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeStartStop renders page 0x0e. Parameters 1 and 2 carry ASCII
// year/week dates, 3..6 are 32-bit cycle counters.
func decodeStartStop(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
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
		switch prm.Code {
		case 1, 2:
			key := "date_of_manufacture"
			if prm.Code == 2 {
				key = "accounting_date"
			}
			if len(prm.Payload) < 6 {
				emitMalformed(p, prm, "date parameter shorter than 6 bytes")
				break
			}
			year := asciiField(prm.Payload[0:4])
			week := asciiField(prm.Payload[4:6])
			p.Str(key, fmt.Sprintf("year %s, week %s", year, week))
		case 3:
			emitCounter(p, "specified_cycle_count_over_device_lifetime", "Specified cycle count over device lifetime", prm.Payload)
		case 4:
			emitCounter(p, "accumulated_start_stop_cycles", "Accumulated start-stop cycles", prm.Payload)
		case 5:
			emitCounter(p, "specified_load_unload_count_over_device_lifetime", "Specified load-unload count over device lifetime", prm.Payload)
		case 6:
			emitCounter(p, "accumulated_load_unload_cycles", "Accumulated load-unload cycles", prm.Payload)
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeUtilization renders page 0x0e,0x01: workload utilization in
// hundredths of a percent, and a date-and-time based usage rate.
func decodeUtilization(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
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
		case 0:
			if len(prm.Payload) < 2 {
				emitMalformed(p, prm, "workload utilization shorter than 2 bytes")
				break
			}
			p.IntUnit("workload_utilization", uint64(beUint16(prm.Payload, 0)), "hundredths of %")
		case 1:
			if len(prm.Payload) < 1 {
				emitMalformed(p, prm, "empty utilization usage rate")
				break
			}
			p.IntUnit("utilization_usage_rate_based_on_date_and_time", uint64(prm.Payload[0]), "%")
		default:
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeAppClient renders page 0x0f. The page is opaque to the standard; by
// default only the first 64 bytes are dumped, verbose mode walks and dumps
// every descriptor.
func decodeAppClient(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)

	if ctx.Verbose == 0 && ctx.FilterParamCode < 0 {
		end := h.EffectiveLen
		if end > 4+64 {
			end = 4 + 64
		}
		p.Bytes("first_64_bytes", buf[4:end])
		p.EndPage()
		return
	}

	p.BeginParams("parameters")
	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		p.Bytes("data", prm.Payload)
		p.EndParam()
	}
	p.EndParams()
	p.EndPage()
}

// decodeSelfTest renders page 0x10: twenty fixed-size results, most recent
// first. An all-zero entry means no test has been run in that slot and, per
// the standard, terminates the listing.
func decodeSelfTest(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("self_test_results")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		if len(prm.Payload) < 16 {
			p.BeginParam(prm.Code, prm.Control)
			emitMalformed(p, prm, "self-test result shorter than 16 bytes")
			p.EndParam()
			continue
		}

		code := uint64(prm.Payload[0] >> 5 & 0x7)
		result := uint64(prm.Payload[0] & 0xf)
		poh := uint64(beUint16(prm.Payload, 2))
		addr := prm.Payload[4:12]

		// Unused slot: all fields zero. The standard terminates the list
		// at the first one.
		if code == 0 && result == 0 && poh == 0 && prm.Payload[1] == 0 && allZeros(addr) {
			break
		}

		p.BeginParam(prm.Code, prm.Control)
		p.EnumL("self_test_code", "Self-test code", code, selfTestCodeNames[code])
		p.EnumL("self_test_result", "Self-test result", result, lookupName(selfTestResultNames, result, 0))
		p.Int("segment_number", uint64(prm.Payload[1]))
		if poh == 0xffff {
			p.IntNote("accumulated_power_on_hours", poh, "65535 hours or more")
		} else {
			p.IntL("accumulated_power_on_hours", "accumulated power-on hours", poh)
		}
		if allFFs(addr) {
			p.Sentinel("address_of_first_failure", beUint64(addr, 0), "no errors detected")
		} else {
			p.IntHex("address_of_first_failure", beUint64(addr, 0))
		}
		sk := uint64(prm.Payload[12] & 0xf)
		p.EnumL("sense_key", "Sense key", sk, senseKeyNames[sk])
		p.IntHex("additional_sense_code", uint64(prm.Payload[13]))
		p.IntHex("additional_sense_code_qualifier", uint64(prm.Payload[14]))
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeSolidState renders page 0x11 (disk): the percentage used endurance
// indicator.
func decodeSolidState(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("parameters")

	w := newParamWalker(buf, h, ctx)
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		p.BeginParam(prm.Code, prm.Control)
		if prm.Code == 0x0001 && len(prm.Payload) >= 4 {
			p.IntUnit("percentage_used_endurance_indicator", uint64(prm.Payload[3]), "%")
		} else {
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeInfoExceptions renders page 0x2f: parameter 0 carries the
// informational exception ASC/ASCQ plus the most recent temperature reading.
func decodeInfoExceptions(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
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
		if prm.Code == 0 && len(prm.Payload) >= 3 {
			p.IntHex("informational_exception_asc", uint64(prm.Payload[0]))
			p.IntHex("informational_exception_ascq", uint64(prm.Payload[1]))
			t := uint64(prm.Payload[2])
			if t == 0xff {
				p.NotAvailable("most_recent_temperature_reading", t)
			} else {
				p.IntUnit("most_recent_temperature_reading", t, "C")
			}
			if len(prm.Payload) > 3 {
				p.Bytes("vendor_specific", prm.Payload[3:])
			}
		} else {
			emitUnknownParam(p, prm)
		}
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeUnknownPage is the fallback: name tag plus a full hex dump.
func decodeUnknownPage(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.Bytes("raw", buf[:h.EffectiveLen])
	p.EndPage()
}
