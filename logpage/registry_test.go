// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPDTRouting(t *testing.T) {
	assert := assert.New(t)

	// Page 0x0c splits on device class.
	e := Lookup(0x0c, 0, PDTDisk, VendorStd)
	require.NotNil(t, e)
	assert.Equal("lbp", e.Acronym)

	e = Lookup(0x0c, 0, PDTTape, VendorStd)
	require.NotNil(t, e)
	assert.Equal("sad", e.Acronym)

	// Zoned block devices decay to disk.
	e = Lookup(0x0c, 0, PDTZBC, VendorStd)
	require.NotNil(t, e)
	assert.Equal("lbp", e.Acronym)
}

func TestLookupSubpageRanges(t *testing.T) {
	assert := assert.New(t)

	e := Lookup(0x19, 0x07, PDTDisk, VendorStd)
	require.NotNil(t, e)
	assert.Equal("grsp", e.Acronym)

	e = Lookup(0x19, 0x20, PDTDisk, VendorStd)
	require.NotNil(t, e)
	assert.Equal("cms", e.Acronym)

	e = Lookup(0x17, 0x0f, PDTTape, VendorStd)
	require.NotNil(t, e)
	assert.Equal("vs", e.Acronym)

	assert.Nil(Lookup(0x17, 0x10, PDTTape, VendorStd))
}

func TestLookupVendorGating(t *testing.T) {
	assert := assert.New(t)

	// Seagate cache page is invisible without the selector.
	assert.Nil(Lookup(0x37, 0, PDTDisk, VendorStd))

	e := Lookup(0x37, 0, PDTDisk, VendorSeagate)
	require.NotNil(t, e)
	assert.Equal("scs", e.Acronym)

	e = Lookup(0x37, 0, PDTDisk, VendorHitachi)
	require.NotNil(t, e)
	assert.Equal("hvp7", e.Acronym)

	// Same page code means something else entirely on LTO-6 tape.
	e = Lookup(0x37, 0, PDTTape, VendorLTO6)
	require.NotNil(t, e)
	assert.Equal("pc", e.Acronym)
	assert.Nil(Lookup(0x37, 0, PDTTape, VendorLTO5))
}

func TestLookupDeterministic(t *testing.T) {
	assert := assert.New(t)

	a := Lookup(0x15, 0, PDTDisk, VendorStd)
	b := Lookup(0x15, 0, PDTDisk, VendorStd)
	assert.Same(a, b)
}

func TestLookupUnknownPDTMatchesFirst(t *testing.T) {
	assert := assert.New(t)

	// With an unknown device type the disk entry wins for shared codes.
	e := Lookup(0x11, 0, PDTAny, VendorStd)
	require.NotNil(t, e)
	assert.Equal("ssm", e.Acronym)
}

func TestFindAcronym(t *testing.T) {
	assert := assert.New(t)

	e := FindAcronym("temp")
	require.NotNil(t, e)
	assert.Equal(uint8(0x0d), e.Page)

	assert.Nil(FindAcronym("nope"))
	assert.Nil(FindAcronym("TEMP"))
}

func TestEntriesVendorSuppression(t *testing.T) {
	assert := assert.New(t)

	for _, e := range Entries(false) {
		assert.False(e.VendorOnly(), "vendor entry %s leaked into standard listing", e.Acronym)
	}

	all := Entries(true)
	std := Entries(false)
	assert.Greater(len(all), len(std))
}

func TestEntriesByAcronymSorted(t *testing.T) {
	assert := assert.New(t)

	prev := ""
	for _, e := range EntriesByAcronym(true) {
		assert.LessOrEqual(prev, e.Acronym)
		prev = e.Acronym
	}
}

func TestRegistryPopulatedAtInit(t *testing.T) {
	assert := assert.New(t)

	// The listing decoders resolve names through Lookup while a decode is
	// already in flight, so the table must be complete before first use.
	assert.NotEmpty(registry)

	e := Lookup(0x00, 0x00, PDTAny, VendorStd)
	assert.NotNil(e)
	assert.Equal("sp", e.Acronym)
}
