// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dswarbrick/sglogs/logpage"
)

func TestCheckSources(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(checkSources("/dev/sg0", "", ""))
	assert.NoError(checkSources("", "dump.hex", ""))
	assert.NoError(checkSources("", "", ""))

	err := checkSources("/dev/sg0", "dump.hex", "")
	assert.Error(err)
	var se *statusError
	assert.True(errors.As(err, &se))
	assert.Equal(logpage.StatusContradict, se.status)

	err = checkSources("", "dump.hex", "dump.bin")
	assert.True(errors.As(err, &se))
	assert.Equal(logpage.StatusContradict, se.status)
}

func TestParsePageArg(t *testing.T) {
	assert := assert.New(t)

	page, subpage, err := parsePageArg("temp")
	assert.NoError(err)
	assert.Equal(uint8(0x0d), page)
	assert.Equal(uint8(0x00), subpage)

	page, subpage, err = parsePageArg("0x19,0x20")
	assert.NoError(err)
	assert.Equal(uint8(0x19), page)
	assert.Equal(uint8(0x20), subpage)

	page, subpage, err = parsePageArg("13")
	assert.NoError(err)
	assert.Equal(uint8(13), page)
	assert.Equal(uint8(0), subpage)

	_, _, err = parsePageArg("0x40")
	assert.Error(err)

	_, _, err = parsePageArg("bogus")
	assert.Error(err)
}
