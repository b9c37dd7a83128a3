// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadHexBytes(t *testing.T) {
	assert := assert.New(t)

	in := `
# temperature page capture
0000:  00 0d 00 0c
0010   00 00 00 02  02 26   # current temperature
00,01,00,02,01,2d
`
	b, err := ReadHexBytes(strings.NewReader(in))
	assert.NoError(err)
	assert.Equal([]byte{
		0x00, 0x0d, 0x00, 0x0c,
		0x00, 0x00, 0x00, 0x02, 0x02, 0x26,
		0x00, 0x01, 0x00, 0x02, 0x01, 0x2d,
	}, b)
}

func TestReadHexBytesNoOffsets(t *testing.T) {
	assert := assert.New(t)

	b, err := ReadHexBytes(strings.NewReader("0x4d 00\nff fe"))
	assert.NoError(err)
	assert.Equal([]byte{0x4d, 0x00, 0xff, 0xfe}, b)
}

func TestReadHexBytesRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadHexBytes(strings.NewReader("00 zz 01"))
	assert.Error(err)
	assert.Contains(err.Error(), "line 1")

	_, err = ReadHexBytes(strings.NewReader("00\n01 123"))
	assert.Error(err)
	assert.Contains(err.Error(), "line 2")
}

func TestReadHexBytesEmpty(t *testing.T) {
	assert := assert.New(t)

	b, err := ReadHexBytes(strings.NewReader("\n# nothing\n"))
	assert.NoError(err)
	assert.Empty(b)
}
