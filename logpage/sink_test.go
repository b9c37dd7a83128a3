// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterDualSink(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	p := NewPrinter(&out, NewDecodeContext())

	h := PageHeader{Page: 0x0d, DeclaredLen: 12, EffectiveLen: 16}
	p.BeginPage("Temperature", h)
	p.BeginParams("parameters")
	p.BeginParam(0, 0x03)
	p.IntUnit("current_temperature", 34, "C")
	p.EndParam()
	p.EndParams()
	p.EndPage()

	assert.Equal("Temperature  [0xd]:\n  Current temperature = 34 C\n", out.String())

	tree := p.Tree()
	page := tree.Get("log_page")
	require.NotNil(t, page)
	assert.Equal("Temperature", page.Get("name").Str())
	assert.Equal(uint64(0xd), page.Get("page_code").Int())
	assert.Equal(uint64(34), page.Get("parameters").Item(0).Get("current_temperature").Int())
}

func TestPrinterNilWriter(t *testing.T) {
	assert := assert.New(t)

	p := NewPrinter(nil, nil)
	p.BeginPage("X", PageHeader{Page: 1})
	p.BeginParams("parameters")
	p.EndParams()
	p.EndPage()

	assert.NotNil(p.Tree().Get("log_page"))
}

func TestPrinterControlByteEmission(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	ctx := NewDecodeContext()
	ctx.EmitControlBytes = true
	p := NewPrinter(&out, ctx)

	p.BeginPage("X", PageHeader{Page: 2})
	p.BeginParams("parameters")
	p.BeginParam(3, 0xe3)
	p.EndParam()
	p.EndParams()
	p.EndPage()

	assert.Contains(out.String(), "<du=1 ds=1 tsd=1 etc=0 tmc=0 format_and_linking=3>\n")

	cb := p.Tree().Get("log_page").Get("parameters").Item(0).Get("control")
	require.NotNil(t, cb)
	assert.Equal(uint64(1), cb.Get("du").Int())
	assert.Equal(uint64(3), cb.Get("format_and_linking").Int())
}

func TestPrinterMultiPageTree(t *testing.T) {
	assert := assert.New(t)

	p := NewPrinter(nil, nil)
	p.BeginPage("A", PageHeader{Page: 1})
	p.EndPage()
	p.BeginPage("B", PageHeader{Page: 2})
	p.EndPage()

	root := p.Tree()
	assert.Nil(root.Get("log_page"))
	assert.Equal(2, root.Get("log_pages").Len())
}

func TestTreeJSONOrderAndShapes(t *testing.T) {
	assert := assert.New(t)

	n := newObject()
	n.put("zeta", &Node{Kind: KindInt, intVal: 1})
	n.put("alpha", &Node{Kind: KindInt, intVal: 2})
	n.put("flag", &Node{Kind: KindBool, boolVal: true})
	n.put("state", &Node{Kind: KindAnnotatedInt, intVal: 5, hexed: true, strVal: "first segment in self test failed"})

	b, err := json.Marshal(n)
	assert.NoError(err)
	assert.Equal(`{"zeta":1,"alpha":2,"flag":true,`+
		`"state":{"value":5,"hex":"0x5","name":"first segment in self test failed"}}`,
		string(b))
}

func TestTreeJSONIntWithNote(t *testing.T) {
	assert := assert.New(t)

	n := newObject()
	n.put("temp", &Node{Kind: KindInt, intVal: 0, note: "0 C or less"})

	b, err := json.Marshal(n)
	assert.NoError(err)
	assert.Equal(`{"temp":{"value":0,"note":"0 C or less"}}`, string(b))
}

func TestTreeJSONBytesChunked(t *testing.T) {
	assert := assert.New(t)

	small := &Node{Kind: KindBytes, raw: []byte{0xde, 0xad}}
	b, err := json.Marshal(small)
	assert.NoError(err)
	assert.Equal(`"dead"`, string(b))

	big := &Node{Kind: KindBytes, raw: bytes.Repeat([]byte{0x42}, 300)}
	b, err = json.Marshal(big)
	assert.NoError(err)

	var chunks []string
	require.NoError(t, json.Unmarshal(b, &chunks))
	require.Len(t, chunks, 2)
	assert.Len(chunks[0], 512)
	assert.Len(chunks[1], 88)
}

func TestVendorSkipAggregation(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	p := NewPrinter(&out, NewDecodeContext())

	p.BeginPage("X", PageHeader{Page: 6})
	p.SkipVendor()
	p.SkipVendor()
	p.SkipVendor()
	p.EndPage()

	assert.Contains(out.String(), "3 vendor specific parameter(s) ignored\n")
	assert.Equal(1, p.Tree().Get("log_page").Get("notes").Len())
}

func TestHumanLabel(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Current temperature", humanLabel("current_temperature"))
	assert.Equal("Worm", humanLabel("worm"))
	assert.Equal("", humanLabel(""))
}

func TestBriefLevels(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{
		0x0d, 0x00, 0x00, 0x06,
		0x00, 0x00, 0x03, 0x02, 0x00, 0x22,
	}

	ctx := NewDecodeContext()
	ctx.Brief = 1
	human, _ := decodeBoth(t, buf, ctx)
	assert.NotContains(human, "Temperature  [0xd]:")
	assert.Contains(human, "Current temperature = 34 C\n")

	// Truncated response: level 2 drops the note from the human sink but
	// keeps it in the tree.
	trunc := append([]byte(nil), buf...)
	trunc[3]++
	ctx = NewDecodeContext()
	ctx.Brief = 2
	human, tree := decodeBoth(t, trunc, ctx)
	assert.NotContains(human, "truncated")
	notes := tree.Get("log_page").Get("notes")
	assert.Equal(1, notes.Len())

	ctx = NewDecodeContext()
	ctx.Brief = 3
	ctx.EmitControlBytes = true
	human, tree = decodeBoth(t, buf, ctx)
	assert.NotContains(human, "<du=")
	assert.NotNil(tree.Get("log_page").Get("parameters").Item(0).Get("control"))
}

func TestUnstructuredDecode(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{
		0x0d, 0x00, 0x00, 0x06,
		0x00, 0x00, 0x03, 0x02, 0x00, 0x22,
	}

	ctx := NewDecodeContext()
	ctx.Structured = false
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Current temperature = 34 C\n")
	assert.Nil(tree.Get("log_page"))
	assert.Equal(0, tree.Len())
}
