// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkerCoversDeclaredLength(t *testing.T) {
	assert := assert.New(t)

	// Three descriptors with payload lengths 2, 0 and 4.
	buf := []byte{
		0x0d, 0x00, 0x00, 0x12,
		0x00, 0x01, 0x03, 0x02, 0xaa, 0xbb,
		0x00, 0x02, 0x03, 0x00,
		0x00, 0x03, 0x03, 0x04, 0x01, 0x02, 0x03, 0x04,
	}
	h, err := ParseHeader(buf, VendorStd)
	require.NoError(t, err)
	require.False(t, h.Truncated)

	w := newParamWalker(buf, h, NewDecodeContext())

	var codes []uint16
	var total int
	for {
		prm, ok := w.Next()
		if !ok {
			break
		}
		codes = append(codes, prm.Code)
		total += 4 + len(prm.Payload)
		assert.False(prm.Truncated)
	}

	assert.Equal([]uint16{1, 2, 3}, codes)
	assert.Equal(h.DeclaredLen, total)
}

func TestWalkerTruncatedFinalDescriptor(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{
		0x0d, 0x00, 0x00, 0x08,
		0x00, 0x01, 0x03, 0x20, 0xaa, 0xbb, 0xcc, 0xdd,
	}
	h, err := ParseHeader(buf, VendorStd)
	require.NoError(t, err)

	w := newParamWalker(buf, h, NewDecodeContext())

	prm, ok := w.Next()
	assert.True(ok)
	assert.True(prm.Truncated)
	assert.Equal([]byte{0xaa, 0xbb, 0xcc, 0xdd}, prm.Payload)

	_, ok = w.Next()
	assert.False(ok)
}

func TestWalkerControlBits(t *testing.T) {
	assert := assert.New(t)

	p := Param{Control: 0xa5} // du=1 tsd=1 tmc=1 format=1
	assert.True(p.DU())
	assert.False(p.DS())
	assert.True(p.TSD())
	assert.False(p.ETC())
	assert.Equal(byte(1), p.TMC())
	assert.Equal(byte(1), p.FormatLinking())
}

func TestWalkerFilter(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{
		0x0d, 0x00, 0x00, 0x0c,
		0x00, 0x00, 0x03, 0x02, 0x00, 0x22,
		0x00, 0x01, 0x03, 0x02, 0x00, 0x2d,
	}
	h, _ := ParseHeader(buf, VendorStd)

	ctx := NewDecodeContext()
	ctx.FilterParamCode = 1
	w := newParamWalker(buf, h, ctx)

	prm, ok := w.Next()
	assert.True(ok)
	assert.Equal(uint16(1), prm.Code)

	_, ok = w.Next()
	assert.False(ok)
}

func TestHeaderHitachiQuirk(t *testing.T) {
	assert := assert.New(t)

	// Vendor page 0x35 with a subpage in byte 1 but SPF clear.
	buf := []byte{0x35, 0x02, 0x00, 0x00}

	h, err := ParseHeader(buf, VendorHitachi)
	assert.NoError(err)
	assert.Equal(uint8(0x02), h.Subpage)
	assert.True(h.SubpageQuirk)

	h, err = ParseHeader(buf, VendorStd)
	assert.NoError(err)
	assert.Equal(uint8(0), h.Subpage)
	assert.False(h.SubpageQuirk)
}
