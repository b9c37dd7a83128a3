// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// The dual output sink. Every page decoder speaks to a Printer, which drives
// the line-oriented human sink and the structured tree together, so a field
// is mentioned exactly once at the call site.

package logpage

import (
	"fmt"
	"io"
	"strings"
)

// Printer is owned by a single decode invocation and must not be shared.
type Printer struct {
	w   io.Writer
	ctx *DecodeContext

	pages []*Node
	page  *Node
	stack []*Node

	indent        int
	vendorSkipped int
	pending       []string
}

// NewPrinter returns a Printer writing human lines to w. A nil w suppresses
// the human sink (the tree is still built).
func NewPrinter(w io.Writer, ctx *DecodeContext) *Printer {
	if w == nil {
		w = io.Discard
	}
	if ctx == nil {
		ctx = NewDecodeContext()
	}
	return &Printer{w: w, ctx: ctx}
}

// Line appends one human-readable line at the current indentation.
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// Indent deepens the human indentation; used by nested descriptor lists.
func (p *Printer) Indent() { p.indent++ }

// Outdent reverses one Indent.
func (p *Printer) Outdent() {
	if p.indent > 0 {
		p.indent--
	}
}

func (p *Printer) top() *Node {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *Printer) push(n *Node) { p.stack = append(p.stack, n) }

func (p *Printer) pop() {
	if len(p.stack) > 0 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// attach places a node into the open container: keyed into an object, or
// appended to an array (the key is ignored there).
func (p *Printer) attach(key string, n *Node) {
	t := p.top()
	if t == nil {
		return
	}
	switch t.Kind {
	case KindArray:
		t.append(n)
	default:
		t.put(key, n)
	}
}

// BeginPage opens the page object, recording the header fields per the page
// summary layout. The human sink gets the title line unless brief mode
// suppresses it. When the structured sink is off the page object is still
// built, detached from the root, so decoders never see an empty stack; Tree
// simply never references it.
func (p *Printer) BeginPage(name string, h PageHeader) {
	if p.ctx.Brief < 1 {
		if h.Subpage != 0 {
			p.Line("%s  [0x%x,0x%x]:", name, h.Page, h.Subpage)
		} else {
			p.Line("%s  [0x%x]:", name, h.Page)
		}
	}

	page := newObject()
	page.put("name", &Node{Kind: KindString, strVal: name})
	page.put("did_not_save", &Node{Kind: KindBool, boolVal: h.DidNotSave})
	page.put("subpage_format", &Node{Kind: KindBool, boolVal: h.SubpageFormat})
	page.put("page_code", &Node{Kind: KindAnnotatedInt, intVal: uint64(h.Page), hexed: true})
	page.put("subpage_code", &Node{Kind: KindAnnotatedInt, intVal: uint64(h.Subpage), hexed: true})

	if p.ctx.Structured {
		p.pages = append(p.pages, page)
	}
	p.page = page
	p.stack = []*Node{page}
	p.indent = 1
	p.vendorSkipped = 0

	for _, s := range p.pending {
		if p.ctx.Brief < 2 {
			p.Line("%s", s)
		}
		p.notePage(s)
	}
	p.pending = nil
}

// DeferNote queues a note to be emitted just after the next page opens; used
// for conditions detected before the page title is known.
func (p *Printer) DeferNote(format string, args ...interface{}) {
	p.pending = append(p.pending, fmt.Sprintf(format, args...))
}

// EndPage closes the page, flushing the aggregated vendor-skip note.
func (p *Printer) EndPage() {
	if p.vendorSkipped > 0 {
		if p.ctx.Brief < 2 {
			p.indent = 1
			p.Line("%d vendor specific parameter(s) ignored", p.vendorSkipped)
		}
		if p.page != nil {
			p.notePage(fmt.Sprintf("%d vendor specific parameter(s) ignored", p.vendorSkipped))
		}
		p.vendorSkipped = 0
	}
	p.stack = nil
	p.indent = 0
}

// BeginParams opens the array all parameter descriptors attach to.
func (p *Printer) BeginParams(key string) {
	arr := newArray()
	p.attach(key, arr)
	p.push(arr)
}

// EndParams closes the parameter array.
func (p *Printer) EndParams() { p.pop() }

// BeginParam opens one descriptor object. The parameter code is recorded in
// the tree always, and echoed on the human sink only in name mode (callers
// normally print their own label). Control byte decode follows the context.
func (p *Printer) BeginParam(pc uint16, pcb byte) {
	obj := newObject()
	obj.put("parameter_code", &Node{Kind: KindAnnotatedInt, intVal: uint64(pc), hexed: true})
	p.attach("parameter", obj)
	p.push(obj)

	if p.ctx.NameMode && p.ctx.Brief < 3 {
		p.Line("parameter_code=0x%x", pc)
	}

	if p.ctx.EmitControlBytes {
		du := pcb >> 7 & 1
		ds := pcb >> 6 & 1
		tsd := pcb >> 5 & 1
		etc := pcb >> 4 & 1
		tmc := pcb >> 2 & 3
		fl := pcb & 3

		if p.ctx.Brief < 3 {
			p.Line("<du=%d ds=%d tsd=%d etc=%d tmc=%d format_and_linking=%d>", du, ds, tsd, etc, tmc, fl)
		}

		cb := obj.put("control", newObject())
		cb.put("du", &Node{Kind: KindInt, intVal: uint64(du)})
		cb.put("ds", &Node{Kind: KindInt, intVal: uint64(ds)})
		cb.put("tsd", &Node{Kind: KindInt, intVal: uint64(tsd)})
		cb.put("etc", &Node{Kind: KindInt, intVal: uint64(etc)})
		cb.put("tmc", &Node{Kind: KindInt, intVal: uint64(tmc)})
		cb.put("format_and_linking", &Node{Kind: KindInt, intVal: uint64(fl)})
	}
}

// EndParam closes the open descriptor object.
func (p *Printer) EndParam() { p.pop() }

// humanLabel derives the default display label from a snake_case key.
func humanLabel(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Int emits a plain decimal counter.
func (p *Printer) Int(key string, v uint64) {
	p.IntL(key, humanLabel(key), v)
}

// IntL is Int with an explicit human label.
func (p *Printer) IntL(key, label string, v uint64) {
	p.Line("%s = %d", label, v)
	p.attach(key, &Node{Kind: KindInt, intVal: v})
}

// IntNote emits a counter with an explanatory note rendered in brackets.
func (p *Printer) IntNote(key string, v uint64, note string) {
	p.Line("%s = %d [%s]", humanLabel(key), v, note)
	p.attach(key, &Node{Kind: KindInt, intVal: v, note: note})
}

// IntUnit emits a counter whose unit follows the value on the human line.
func (p *Printer) IntUnit(key string, v uint64, unit string) {
	p.IntUnitL(key, humanLabel(key), v, unit)
}

// IntUnitL is IntUnit with an explicit human label.
func (p *Printer) IntUnitL(key, label string, v uint64, unit string) {
	p.Line("%s = %d %s", label, v, unit)
	p.attach(key, &Node{Kind: KindInt, intVal: v, note: unit})
}

// IntHex emits a value rendered in hex on both sinks.
func (p *Printer) IntHex(key string, v uint64) {
	p.Line("%s = 0x%x", humanLabel(key), v)
	p.attach(key, &Node{Kind: KindAnnotatedInt, intVal: v, hexed: true})
}

// Enum emits an enumerated value as `name [0xNN]` plus the annotated scalar.
func (p *Printer) Enum(key string, v uint64, name string) {
	p.EnumL(key, humanLabel(key), v, name)
}

// EnumL is Enum with an explicit human label.
func (p *Printer) EnumL(key, label string, v uint64, name string) {
	p.Line("%s: %s [0x%x]", label, name, v)
	p.attach(key, &Node{Kind: KindAnnotatedInt, intVal: v, hexed: true, strVal: name})
}

// NotAvailable emits the sentinel rendering for an all-ones (or otherwise
// reserved) field.
func (p *Printer) NotAvailable(key string, raw uint64) {
	p.NotAvailableL(key, humanLabel(key), raw)
}

// NotAvailableL is NotAvailable with an explicit human label.
func (p *Printer) NotAvailableL(key, label string, raw uint64) {
	p.Line("%s = <not available>", label)
	p.attach(key, &Node{Kind: KindAnnotatedInt, intVal: raw, hexed: true, strVal: "not available"})
}

// Sentinel emits an arbitrary sentinel string in place of a value.
func (p *Printer) Sentinel(key string, raw uint64, text string) {
	p.SentinelL(key, humanLabel(key), raw, text)
}

// SentinelL is Sentinel with an explicit human label.
func (p *Printer) SentinelL(key, label string, raw uint64, text string) {
	p.Line("%s = <%s>", label, text)
	p.attach(key, &Node{Kind: KindAnnotatedInt, intVal: raw, hexed: true, strVal: text})
}

// Bool emits a single-bit flag.
func (p *Printer) Bool(key string, v bool) {
	b := 0
	if v {
		b = 1
	}
	p.Line("%s = %d", humanLabel(key), b)
	p.attach(key, &Node{Kind: KindBool, boolVal: v})
}

// Str emits a length-bounded text field.
func (p *Printer) Str(key, text string) {
	p.Line("%s: %s", humanLabel(key), text)
	p.attach(key, &Node{Kind: KindString, strVal: text})
}

// Bytes emits a hex blob: a dump on the human sink, chunked hex strings in
// the tree.
func (p *Printer) Bytes(key string, b []byte) {
	for _, line := range hexDumpLines(b) {
		p.Line("%s", line)
	}
	p.attach(key, &Node{Kind: KindBytes, raw: append([]byte(nil), b...)})
}

// Note records a page-level annotation (truncation, quirks) on both sinks.
// Brief level 2 silences notes on the human sink; the tree keeps them.
func (p *Printer) Note(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if p.ctx.Brief < 2 {
		p.Line("%s", s)
	}
	p.notePage(s)
}

func (p *Printer) notePage(s string) {
	if p.page == nil {
		return
	}
	notes := p.page.Get("notes")
	if notes == nil {
		notes = p.page.put("notes", newArray())
	}
	notes.append(&Node{Kind: KindString, strVal: s})
}

// SkipVendor counts one suppressed vendor-specific parameter; the aggregate
// is reported once at EndPage.
func (p *Printer) SkipVendor() { p.vendorSkipped++ }

// Tree returns the structured output: a single object holding the page (or,
// after multiple decodes, the page list).
func (p *Printer) Tree() *Node {
	root := newObject()
	switch len(p.pages) {
	case 0:
	case 1:
		root.put("log_page", p.pages[0])
	default:
		arr := root.put("log_pages", newArray())
		for _, pg := range p.pages {
			arr.append(pg)
		}
	}
	return root
}

// hexDumpLines renders b as offset-prefixed rows of 16 hex bytes.
func hexDumpLines(b []byte) []string {
	var lines []string

	for off := 0; off < len(b); off += 16 {
		end := off + 16
		if end > len(b) {
			end = len(b)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%04x ", off)
		for i := off; i < end; i++ {
			if i == off+8 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, " %02x", b[i])
		}
		lines = append(lines, sb.String())
	}

	return lines
}
