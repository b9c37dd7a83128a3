// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package vendordb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dswarbrick/sglogs/logpage"
)

func TestBuiltinLookup(t *testing.T) {
	assert := assert.New(t)

	db := Builtin()

	assert.Equal(logpage.VendorLTO5, db.Lookup("IBM", "ULT3580-TD5"))
	assert.Equal(logpage.VendorLTO6, db.Lookup("IBM     ", "ULT3580-TD6     "))
	assert.Equal(logpage.VendorLTO5, db.Lookup("HP", "Ultrium 5-SCSI"))
	assert.Equal(logpage.VendorSeagate, db.Lookup("SEAGATE", "ST4000NM0023"))
	assert.Equal(logpage.VendorHitachi, db.Lookup("HGST", "HUH721212AL5200"))
	assert.Equal(logpage.VendorHitachi, db.Lookup("WDC", "WUH721414AL5204"))
	assert.Equal(logpage.VendorToshiba, db.Lookup("TOSHIBA", "MG07ACA14TA"))

	// Unknown vendors fall back to the standard selector.
	assert.Equal(logpage.VendorStd, db.Lookup("FUJITSU", "MBA3300RC"))
	assert.Equal(logpage.VendorStd, db.Lookup("IBM", "2145"))
}

func TestOpenMissingFileFallsBack(t *testing.T) {
	assert := assert.New(t)

	db, err := Open(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(err)
	assert.Equal(logpage.VendorSeagate, db.Lookup("SEAGATE", "X"))
}

func TestOpenFileOverridesBuiltin(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "vendors.yaml")
	data := "models:\n" +
		"  - t10_vendor: ACME\n" +
		"    vendor: seagate\n" +
		"  - t10_vendor: SEAGATE\n" +
		"    product_prefix: XT\n" +
		"    vendor: hitachi\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	db, err := Open(path)
	assert.NoError(err)

	assert.Equal(logpage.VendorSeagate, db.Lookup("ACME", "ANVIL"))
	// File entry is consulted before the builtin SEAGATE rule.
	assert.Equal(logpage.VendorHitachi, db.Lookup("SEAGATE", "XT9000"))
	assert.Equal(logpage.VendorSeagate, db.Lookup("SEAGATE", "ST8000"))
}
