// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package vendordb maps INQUIRY vendor/product identification strings to the
// vendor selector that gates vendor-specific log page decoding. The builtin
// table covers the common cases; a YAML file can extend or override it.
package vendordb

import (
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/dswarbrick/sglogs/logpage"
)

// VendorModel is one match rule. T10Vendor matches the 8-byte INQUIRY vendor
// identification exactly (after trimming); ProductPrefix, when set, must
// additionally prefix the product identification.
type VendorModel struct {
	T10Vendor     string `yaml:"t10_vendor"`
	ProductPrefix string `yaml:"product_prefix"`
	Vendor        string `yaml:"vendor"`
}

type VendorDb struct {
	Models []VendorModel
}

// builtin mirrors the selector table sg_logs style tools carry internally.
var builtin = []VendorModel{
	{"IBM", "ULTRIUM-TD5", "lto-5"},
	{"IBM", "ULT3580-TD5", "lto-5"},
	{"IBM", "ULTRIUM-TD6", "lto-6"},
	{"IBM", "ULT3580-TD6", "lto-6"},
	{"HP", "Ultrium 5", "lto-5"},
	{"HP", "Ultrium 6", "lto-6"},
	{"SEAGATE", "", "seagate"},
	{"HGST", "", "hitachi"},
	{"HITACHI", "", "hitachi"},
	{"WDC", "", "hitachi"},
	{"TOSHIBA", "", "toshiba"},
}

// Builtin returns the compiled-in table.
func Builtin() VendorDb {
	return VendorDb{Models: builtin}
}

// Open reads a YAML vendor table and appends the builtin entries after it, so
// file entries take precedence. A missing file yields just the builtins.
func Open(path string) (VendorDb, error) {
	db := VendorDb{}

	f, err := os.Open(path)
	if err != nil {
		db.Models = builtin
		return db, nil
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&db); err != nil {
		return db, err
	}

	db.Models = append(db.Models, builtin...)
	return db, nil
}

// Lookup resolves the vendor selector for an INQUIRY vendor/product pair.
// First match wins; among equal T10 vendors the longer product prefix should
// therefore come first in the table.
func (db VendorDb) Lookup(t10Vendor, product string) logpage.Vendor {
	t10Vendor = strings.TrimSpace(t10Vendor)
	product = strings.TrimSpace(product)

	for _, m := range db.Models {
		if !strings.EqualFold(m.T10Vendor, t10Vendor) {
			continue
		}
		if m.ProductPrefix != "" && !strings.HasPrefix(product, m.ProductPrefix) {
			continue
		}
		if v, ok := logpage.ParseVendor(m.Vendor); ok {
			return v
		}
	}

	return logpage.VendorStd
}
