// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package scsi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dswarbrick/sglogs/logpage"
)

func TestParseSenseFixed(t *testing.T) {
	assert := assert.New(t)

	sb := make([]byte, 18)
	sb[0] = 0x70
	sb[2] = 0x05
	sb[12] = 0x24
	sb[13] = 0x00

	s, ok := ParseSense(sb)
	assert.True(ok)
	assert.Equal(uint8(5), s.Key)
	assert.Equal(uint8(0x24), s.ASC)
}

func TestParseSenseDescriptor(t *testing.T) {
	assert := assert.New(t)

	sb := []byte{0x72, 0x06, 0x29, 0x00}
	s, ok := ParseSense(sb)
	assert.True(ok)
	assert.Equal(uint8(6), s.Key)
	assert.Equal(uint8(0x29), s.ASC)

	_, ok = ParseSense([]byte{0x42})
	assert.False(ok)
	_, ok = ParseSense(nil)
	assert.False(ok)
}

func TestSgioErrorExitStatus(t *testing.T) {
	assert := assert.New(t)

	mk := func(key, asc byte) SgioError {
		sb := make([]byte, 18)
		sb[0] = 0x70
		sb[2] = key
		sb[12] = asc
		return SgioError{ScsiStatus: 0x02, SenseBuf: sb}
	}

	assert.Equal(logpage.StatusNotReady, mk(0x2, 0x04).ExitStatus())
	assert.Equal(logpage.StatusIllegalReq, mk(0x5, 0x24).ExitStatus())
	assert.Equal(logpage.StatusInvalidOpcode, mk(0x5, 0x20).ExitStatus())
	assert.Equal(logpage.StatusUnitAttention, mk(0x6, 0x29).ExitStatus())
	assert.Equal(logpage.StatusAborted, mk(0xb, 0x00).ExitStatus())
	assert.Equal(logpage.StatusOther, mk(0x3, 0x00).ExitStatus())
	assert.Equal(logpage.StatusOther, SgioError{}.ExitStatus())
}

func TestParseInquiry(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, INQ_REPLY_LEN)
	buf[0] = 0x01 // sequential access
	copy(buf[8:16], []byte("IBM     "))
	copy(buf[16:32], []byte("ULT3580-TD5     "))
	copy(buf[32:36], []byte("E4J1"))

	r, err := parseInquiry(buf)
	assert.NoError(err)
	assert.Equal(uint8(1), r.PDT)
	assert.Equal("IBM", r.Vendor)
	assert.Equal("ULT3580-TD5", r.Product)
	assert.Equal("E4J1", r.Revision)

	_, err = parseInquiry(buf[:10])
	assert.Error(err)
}

func TestTransferLength(t *testing.T) {
	assert := assert.New(t)

	got, err := transferLength(512, 12)
	assert.NoError(err)
	assert.Equal(500, got)

	got, err = transferLength(512, 0)
	assert.NoError(err)
	assert.Equal(512, got)

	_, err = transferLength(512, -4)
	assert.ErrorIs(err, ErrWildResid)

	_, err = transferLength(512, 600)
	assert.ErrorIs(err, ErrWildResid)
}
