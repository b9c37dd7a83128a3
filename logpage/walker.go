// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

// Param is one parameter descriptor yielded by the walker.
type Param struct {
	Code    uint16
	Control byte
	Payload []byte

	// Truncated marks a descriptor whose declared length ran past the end
	// of the page window; Payload holds whatever bytes were present.
	Truncated bool
}

// DU/DS/TSD/ETC/TMC/format bits of the parameter control byte.
func (p Param) DU() bool            { return p.Control&0x80 != 0 }
func (p Param) DS() bool            { return p.Control&0x40 != 0 }
func (p Param) TSD() bool           { return p.Control&0x20 != 0 }
func (p Param) ETC() bool           { return p.Control&0x10 != 0 }
func (p Param) TMC() byte           { return p.Control >> 2 & 3 }
func (p Param) FormatLinking() byte { return p.Control & 3 }

// paramWalker iterates the parameter descriptor list of one page. It never
// advances past the effective page length, stops cleanly when fewer than one
// descriptor header remains, and honours the context's parameter code filter
// and hex/raw short-circuits.
type paramWalker struct {
	buf  []byte
	off  int
	end  int
	ctx  *DecodeContext
	done bool

	yielded int
}

// newParamWalker positions a walker over the descriptor region of buf,
// bytes 4..EffectiveLen.
func newParamWalker(buf []byte, h PageHeader, ctx *DecodeContext) *paramWalker {
	end := h.EffectiveLen
	if end > len(buf) {
		end = len(buf)
	}
	if end < 4 {
		end = 4
	}
	return &paramWalker{buf: buf, off: 4, end: end, ctx: ctx}
}

// Next yields the next descriptor, or ok=false at the end of the page.
func (w *paramWalker) Next() (Param, bool) {
	for {
		if w.done || w.end-w.off < 4 {
			return Param{}, false
		}

		// A filter in effect, or raw/hex mode, forces a single-descriptor
		// iteration.
		if w.yielded > 0 && (w.ctx.RawOutput || w.ctx.HexOnly > 1 || w.ctx.FilterParamCode >= 0) {
			return Param{}, false
		}

		pc := beUint16(w.buf, w.off)
		pcb := w.buf[w.off+2]
		plen := int(w.buf[w.off+3])

		p := Param{Code: pc, Control: pcb}

		if w.off+4+plen > w.end {
			// Truncated final descriptor: yield what is present, stop.
			p.Payload = w.buf[w.off+4 : w.end]
			p.Truncated = true
			w.done = true
			if w.ctx.FilterParamCode >= 0 && int(pc) != w.ctx.FilterParamCode {
				return Param{}, false
			}
			w.yielded++
			return p, true
		}

		p.Payload = w.buf[w.off+4 : w.off+4+plen]
		w.off += 4 + plen

		if w.ctx.FilterParamCode >= 0 && int(pc) != w.ctx.FilterParamCode {
			continue
		}

		w.yielded++
		return p, true
	}
}
