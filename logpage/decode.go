// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// The decode dispatcher: header parse, registry lookup, hex short-circuits,
// and the supported-pages merge.

package logpage

import (
	"io"
	"sort"
)

// DecodePage decodes one complete LOG SENSE response (header included) into
// the printer. The resolved registry entry is returned for the caller's
// bookkeeping. A header shorter than 4 bytes is fatal for the page; every
// other defect degrades to notes and hex inside the page.
func DecodePage(p *Printer, buf []byte, ctx *DecodeContext) (*RegistryEntry, error) {
	if ctx == nil {
		ctx = NewDecodeContext()
	}

	h, err := ParseHeader(buf, ctx.Vendor)
	if err != nil {
		return nil, err
	}

	if h.Truncated {
		p.DeferNote("response truncated: header declares %d bytes, buffer holds %d",
			h.DeclaredLen+4, len(buf))
	}

	e := resolveEntry(h, ctx)

	if ctx.RawOutput || ctx.HexOnly > 1 {
		p.BeginPage(e.Name, h)
		body := buf[:h.EffectiveLen]
		if !ctx.RawOutput {
			body = buf[4:h.EffectiveLen]
		}
		p.Bytes("data", body)
		p.EndPage()
		return e, nil
	}

	if ctx.HexOnly == 1 {
		decodeParamsHex(p, buf, h, e, ctx)
		return e, nil
	}

	e.Decode(p, buf, h, e, ctx)
	return e, nil
}

// decodeParamsHex walks the descriptor list but renders every payload as hex,
// keeping the parameter boundaries visible.
func decodeParamsHex(p *Printer, buf []byte, h PageHeader, e *RegistryEntry, ctx *DecodeContext) {
	p.BeginPage(e.Name, h)
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
		p.Bytes("data", prm.Payload)
		p.EndParam()
	}

	p.EndParams()
	p.EndPage()
}

// resolveEntry maps the header to a registry entry. Subpage 0xff on any page
// is the supported-subpages listing regardless of the page code; everything
// unmatched falls back to the hex dump entry.
func resolveEntry(h PageHeader, ctx *DecodeContext) *RegistryEntry {
	if h.Subpage == 0xff && h.Page != 0x00 {
		return &RegistryEntry{
			Page: h.Page, SubLow: 0xff, SubHigh: 0xff,
			PDT: FilterAny, Vendors: MaskStd,
			Acronym: "ssp", Name: "Supported subpages",
			Decode: decodeSupportedSubpages,
		}
	}

	if e := Lookup(h.Page, h.Subpage, ctx.PDT, ctx.Vendor); e != nil {
		return e
	}
	return &unknownPageEntry
}

// Decode is the one-shot convenience wrapper: human lines go to w (nil
// suppresses them) and the structured tree is returned.
func Decode(w io.Writer, buf []byte, ctx *DecodeContext) (*Node, error) {
	p := NewPrinter(w, ctx)
	if _, err := DecodePage(p, buf, ctx); err != nil {
		return nil, err
	}
	return p.Tree(), nil
}

// PageRef identifies one (page, subpage) pair in a supported listing.
type PageRef struct {
	Page    uint8
	Subpage uint8
}

// MergeSupported combines the supported log pages response (one byte per
// entry) with the supported subpages response (two bytes per entry) into one
// ascending, de-duplicated listing. Either argument may be nil; both are full
// responses including their 4-byte headers.
func MergeSupported(pages, subpages []byte) []PageRef {
	seen := make(map[PageRef]bool)
	var out []PageRef

	add := func(r PageRef) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}

	if h, err := ParseHeader(pages, VendorStd); err == nil {
		for _, b := range pages[4:h.EffectiveLen] {
			add(PageRef{Page: b & 0x3f})
		}
	}

	if h, err := ParseHeader(subpages, VendorStd); err == nil {
		body := subpages[4:h.EffectiveLen]
		for i := 0; i+2 <= len(body); i += 2 {
			add(PageRef{Page: body[i] & 0x3f, Subpage: body[i+1]})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		return out[i].Subpage < out[j].Subpage
	})

	return out
}
