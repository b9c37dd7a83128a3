// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Decoder for the protocol specific port page (0x18). Only protocol
// identifier 6 (SAS) has a defined layout; anything else is dumped as hex.

package logpage

import "fmt"

// decodeProtocolPort walks one parameter per relative target port; each
// holds a generation code, a phy count and one 48-byte block per phy,
// optionally followed by phy event descriptors.
func decodeProtocolPort(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
	p.BeginParams("ports")

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
		if len(prm.Payload) < 4 {
			emitMalformed(p, prm, "port parameter shorter than 4 bytes")
			p.EndParam()
			continue
		}

		proto := uint64(prm.Payload[0] & 0xf)
		if proto != 6 {
			p.Enum("protocol_identifier", proto, fmt.Sprintf("unsupported protocol [0x%x]", proto))
			p.Bytes("raw", prm.Payload)
			p.EndParam()
			continue
		}

		p.Enum("protocol_identifier", proto, "SAS")
		p.IntL("relative_target_port", "Relative target port", uint64(prm.Code))
		p.Int("generation_code", uint64(prm.Payload[1]))
		nphys := int(prm.Payload[2])
		p.IntL("number_of_phys", "Number of phys", uint64(nphys))

		phys := p.top().put("phys", newArray())
		p.push(phys)
		off := 4
		for i := 0; i < nphys; i++ {
			if off+48 > len(prm.Payload) {
				p.Note("phy descriptor %d truncated", i)
				break
			}
			off = decodeSASPhy(p, prm.Payload, off)
		}
		p.pop()
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// decodeSASPhy renders one phy block starting at off and returns the offset
// of the next one (the block is 48 bytes plus any phy event descriptors).
func decodeSASPhy(p *Printer, b []byte, off int) int {
	phy := newObject()
	p.attach("phy", phy)
	p.push(phy)
	p.Indent()

	d := b[off : off+48]

	p.IntL("phy_identifier", "Phy identifier", uint64(d[1]))

	attType := uint64(d[4] >> 4 & 0x7)
	p.EnumL("attached_device_type", "Attached device type", attType, sasDeviceTypeNames[attType])
	reason := uint64(d[4] & 0xf)
	p.EnumL("attached_reason", "Attached reason", reason, sasReasonNames[reason])
	reason = uint64(d[5] >> 4)
	p.EnumL("reason", "Reason", reason, sasReasonNames[reason])
	rate := uint64(d[5] & 0xf)
	p.EnumL("negotiated_logical_link_rate", "Negotiated logical link rate", rate,
		lookupName(sasLinkRateNames, rate, 0))

	p.Bool("attached_ssp_initiator_port", d[6]&0x08 != 0)
	p.Bool("attached_stp_initiator_port", d[6]&0x04 != 0)
	p.Bool("attached_smp_initiator_port", d[6]&0x02 != 0)
	p.Bool("attached_ssp_target_port", d[7]&0x08 != 0)
	p.Bool("attached_stp_target_port", d[7]&0x04 != 0)
	p.Bool("attached_smp_target_port", d[7]&0x02 != 0)

	p.IntHex("sas_address", beUint64(d, 8))
	p.IntHex("attached_sas_address", beUint64(d, 16))
	p.Int("attached_phy_identifier", uint64(d[24]))

	p.IntL("invalid_dword_count", "Invalid DWORD count", uint64(beUint32(d, 32)))
	p.IntL("running_disparity_error_count", "Running disparity error count", uint64(beUint32(d, 36)))
	p.IntL("loss_of_dword_sync_count", "Loss of DWORD sync count", uint64(beUint32(d, 40)))
	p.IntL("phy_reset_problem_count", "Phy reset problem count", uint64(beUint32(d, 44)))

	next := off + 48

	// SPL adds a descriptor count pair after the fixed block: phy event
	// descriptor length and number of descriptors.
	if next+2 <= len(b) {
		pedLen := int(b[next])
		nped := int(b[next+1])
		next += 2
		if nped > 0 && pedLen >= 12 {
			events := p.top().put("phy_event_descriptors", newArray())
			p.push(events)
			p.Indent()
			for i := 0; i < nped && next+pedLen <= len(b); i++ {
				decodeSASPhyEvent(p, b[next:next+pedLen])
				next += pedLen
			}
			p.Outdent()
			p.pop()
		}
	}

	p.Outdent()
	p.pop()
	return next
}

// decodeSASPhyEvent renders one 12-byte phy event descriptor.
func decodeSASPhyEvent(p *Printer, d []byte) {
	ev := newObject()
	p.attach("phy_event", ev)
	p.push(ev)

	src := uint64(d[3])
	name := lookupName(sasPhyEventNames, src, 0)
	p.EnumL("phy_event_source", "Phy event source", src, name)
	p.IntL("phy_event", "Phy event value", uint64(beUint32(d, 4)))
	if sasPhyEventHasPVD(src) {
		p.IntL("peak_value_detector_threshold", "Peak value detector threshold", uint64(beUint32(d, 8)))
	}

	p.pop()
}
