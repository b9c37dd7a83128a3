// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigEndianReads(t *testing.T) {
	assert := assert.New(t)

	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}

	assert.Equal(uint16(0x0102), beUint16(b, 0))
	assert.Equal(uint16(0x0203), beUint16(b, 1))
	assert.Equal(uint32(0x010203), beUint24(b, 0))
	assert.Equal(uint32(0x01020304), beUint32(b, 0))
	assert.Equal(uint64(0x010203040506), beUint48(b, 0))
	assert.Equal(uint64(0x0102030405060708), beUint64(b, 0))
	assert.Equal(uint64(0x0203040506070809), beUint64(b, 1))
}

func TestCheckedReads(t *testing.T) {
	assert := assert.New(t)

	b := []byte{0xde, 0xad, 0xbe, 0xef}

	v16, err := beUint16At(b, 2)
	assert.NoError(err)
	assert.Equal(uint16(0xbeef), v16)

	_, err = beUint16At(b, 3)
	assert.ErrorIs(err, ErrShortBuffer)

	v32, err := beUint32At(b, 0)
	assert.NoError(err)
	assert.Equal(uint32(0xdeadbeef), v32)

	_, err = beUint32At(b, 1)
	assert.ErrorIs(err, ErrShortBuffer)

	_, err = beUint64At(b, 0)
	assert.ErrorIs(err, ErrShortBuffer)
}

func TestBeVariable(t *testing.T) {
	assert := assert.New(t)

	b := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}

	v, err := beVariable(b, 0, 1)
	assert.NoError(err)
	assert.Equal(uint64(0), v)

	v, err = beVariable(b, 1, 3)
	assert.NoError(err)
	assert.Equal(uint64(0x010203), v)

	v, err = beVariable(b, 0, 8)
	assert.NoError(err)
	assert.Equal(uint64(0x0001020304050607), v)

	_, err = beVariable(b, 0, 9)
	assert.Error(err)

	_, err = beVariable(b, 4, 8)
	assert.ErrorIs(err, ErrShortBuffer)
}

func TestRangePredicates(t *testing.T) {
	assert := assert.New(t)

	assert.True(allFFs(nil))
	assert.True(allFFs([]byte{0xff, 0xff}))
	assert.False(allFFs([]byte{0xff, 0xfe}))

	assert.True(allZeros(nil))
	assert.True(allZeros([]byte{0, 0, 0}))
	assert.False(allZeros([]byte{0, 1}))
}

func TestASCIIField(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("SEAGATE", asciiField([]byte("SEAGATE ")))
	assert.Equal("ST3300", asciiField([]byte("ST3300\x00garbage")))
	assert.Equal("", asciiField(nil))
}
