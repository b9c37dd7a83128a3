// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkPage assembles a response from a page/subpage pair and a body of
// already-encoded parameter descriptors.
func mkPage(page, subpage byte, body ...[]byte) []byte {
	var b []byte
	for _, d := range body {
		b = append(b, d...)
	}
	hdr := []byte{page, subpage, byte(len(b) >> 8), byte(len(b))}
	if subpage != 0 {
		hdr[0] |= 0x40
	}
	return append(hdr, b...)
}

// mkParam encodes one parameter descriptor.
func mkParam(pc uint16, payload ...byte) []byte {
	d := []byte{byte(pc >> 8), byte(pc), 0x03, byte(len(payload))}
	return append(d, payload...)
}

func TestDecodeErrorCounters(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x02, 0,
		mkParam(0x0003, 0x00, 0x00, 0x00, 0x07),
		mkParam(0x0005, 0x00, 0x00, 0x00, 0x00, 0xba, 0xdc, 0x0f, 0xfe),
	)
	human, tree := decodeBoth(t, buf, nil)

	assert.Contains(human, "Write error counters  [0x2]:\n")
	assert.Contains(human, "Total errors corrected = 7\n")

	params := tree.Get("log_page").Get("parameters")
	assert.Equal(2, params.Len())
	tbp := params.Item(1).Get("total_bytes_processed")
	assert.Equal(uint64(0xbadc0ffe), tbp.Int())
	// Values past the threshold carry the byte-quantity hint, rounded to
	// three significant digits.
	assert.Equal("3.13 GB", tbp.Note())
}

func TestDecodeBufferOverrun(t *testing.T) {
	assert := assert.New(t)

	// Parameter code 0x23: basis 1 (per command), cause 1 (bus busy),
	// over-run.
	buf := mkPage(0x01, 0, mkParam(0x0023, 0x00, 0x00, 0x00, 0x05))
	human, tree := decodeBoth(t, buf, nil)

	assert.Contains(human, "Count basis: per command [0x1]\n")
	assert.Contains(human, "Cause: bus busy [0x1]\n")
	assert.Contains(human, "Type: over-run [0x1]\n")
	assert.Contains(human, "Count = 5\n")

	prm := tree.Get("log_page").Get("parameters").Item(0)
	assert.Equal(uint64(1), prm.Get("count_basis").Int())
	assert.Equal(uint64(5), prm.Get("count").Int())
}

func TestDecodeFormatStatusSentinels(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x08, 0,
		mkParam(0x0000, 0xff, 0xff, 0xff, 0xff),
		mkParam(0x0002, 0x00, 0x00, 0x00, 0x09),
	)
	ctx := NewDecodeContext()
	ctx.PDT = PDTDisk
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Format data out = <not available (or device not formatted)>\n")
	assert.Contains(human, "Total blocks reassigned during format = 9\n")

	params := tree.Get("log_page").Get("parameters")
	assert.Equal("not available (or device not formatted)",
		params.Item(0).Get("format_data_out").Str())
}

func TestDecodeBackgroundScanStatus(t *testing.T) {
	assert := assert.New(t)

	status := []byte{
		0x00, 0x00, 0x0e, 0x10, // 3600 power-on minutes
		0x00, 0x01, // status: medium scan active
		0x00, 0x02, // scans performed
		0x80, 0x00, // progress 50%
		0x00, 0x02, // medium scans performed
	}
	buf := mkPage(0x15, 0, mkParam(0x0000, status...))
	ctx := NewDecodeContext()
	ctx.PDT = PDTDisk
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Accumulated power on minutes = 3600 minutes\n")
	assert.Contains(human, "Background scan status: background medium scan is active [0x1]\n")
	assert.Contains(human, "Background scan progress = 32768 [50.00 %]\n")

	prm := tree.Get("log_page").Get("parameters").Item(0)
	assert.Equal(uint64(1), prm.Get("background_scan_status").Int())
	assert.Equal("50.00 %", prm.Get("background_scan_progress").Note())
}

func TestDecodeNonVolatileCacheSentinels(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x17, 0,
		mkParam(0x0000, 0xff, 0xff, 0xff),
		mkParam(0x0001, 0x00, 0x00, 0x00),
	)
	ctx := NewDecodeContext()
	ctx.PDT = PDTDisk
	human, _ := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Remaining non-volatile time = <indefinite>\n")
	assert.Contains(human, "Maximum non-volatile time = <volatile (no power saved)>\n")

	buf = mkPage(0x17, 0, mkParam(0x0000, 0x00, 0x00, 0x3c))
	human, _ = decodeBoth(t, buf, ctx)
	assert.Contains(human, "Remaining non-volatile time = 60 minutes\n")
}

func TestDecodeProtocolPortSASPhy(t *testing.T) {
	assert := assert.New(t)

	phy := make([]byte, 48)
	phy[1] = 0x00                              // phy id
	phy[4] = 0x11                              // attached: SAS/SATA device, power on
	phy[5] = 0x19                              // reason: power on, rate 3 Gbps
	phy[6] = 0x08                              // attached SSP initiator
	phy[7] = 0x08                              // attached SSP target
	copy(phy[8:16], []byte{0x50, 0x06, 0x05, 0xb0, 0x00, 0x00, 0x00, 0x01})
	copy(phy[16:24], []byte{0x50, 0x06, 0x05, 0xb0, 0x00, 0x00, 0x00, 0x02})
	phy[24] = 0x02
	phy[35] = 0x04 // invalid dword count

	payload := append([]byte{0x06, 0x01, 0x01, 0x00}, phy...)
	payload = append(payload, 0x00, 0x00) // no phy event descriptors

	buf := mkPage(0x18, 0, mkParam(0x0001, payload...))
	human, tree := decodeBoth(t, buf, nil)

	assert.Contains(human, "Protocol identifier: SAS [0x6]\n")
	assert.Contains(human, "Number of phys = 1\n")
	assert.Contains(human, "Negotiated logical link rate: 3 Gbps [0x9]\n")
	assert.Contains(human, "Invalid DWORD count = 4\n")

	port := tree.Get("log_page").Get("ports").Item(0)
	phyNode := port.Get("phys").Item(0)
	require.NotNil(t, phyNode)
	assert.Equal(uint64(0x500605b000000001), phyNode.Get("sas_address").Int())
	assert.Equal(uint64(0x500605b000000002), phyNode.Get("attached_sas_address").Int())
	assert.Equal(uint64(4), phyNode.Get("invalid_dword_count").Int())
}

func TestDecodeProtocolPortPhyEvents(t *testing.T) {
	assert := assert.New(t)

	phy := make([]byte, 48)
	phy[5] = 0x09 // rate 1.5 Gbps

	ped := []byte{0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x64, 0x00, 0x00, 0x01, 0x00}

	payload := append([]byte{0x06, 0x01, 0x01, 0x00}, phy...)
	payload = append(payload, 12, 1) // one 12-byte descriptor
	payload = append(payload, ped...)

	buf := mkPage(0x18, 0, mkParam(0x0001, payload...))
	human, tree := decodeBoth(t, buf, nil)

	assert.Contains(human, "Phy event source: Peak transmitted arbitration wait time [0x2c]\n")
	assert.Contains(human, "Peak value detector threshold = 256\n")

	events := tree.Get("log_page").Get("ports").Item(0).
		Get("phys").Item(0).Get("phy_event_descriptors")
	require.Equal(t, 1, events.Len())
	assert.Equal(uint64(100), events.Item(0).Get("phy_event").Int())
}

func TestDecodeSequentialAccessSentinels(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x0c, 0,
		mkParam(0x0000, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00),
		mkParam(0x0004, 0xff, 0xff, 0xff, 0xff),
		mkParam(0x0005, 0xff, 0xff, 0xff, 0xfe),
	)
	ctx := NewDecodeContext()
	ctx.PDT = PDTTape
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Data bytes received with WRITE commands = 65536\n")
	assert.Contains(human, "Native capacity from BOP to EOD = <not available>\n")
	assert.Contains(human, "= <unknown but nonzero>\n")

	params := tree.Get("log_page").Get("parameters")
	assert.Equal("unknown but nonzero",
		params.Item(2).Get("native_capacity_from_bop_to_ew").Str())
}

func TestDecodeTapeAlertFlags(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x2e, 0,
		mkParam(0x0014, 0x01), // flag 20: clean now
		mkParam(0x0015, 0x00),
	)
	ctx := NewDecodeContext()
	ctx.PDT = PDTTape
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Clean now [flag 20] = 1\n")
	assert.Contains(human, "Clean periodic [flag 21] = 0\n")

	params := tree.Get("log_page").Get("parameters")
	assert.True(params.Item(0).Get("flag").Get("set") != nil)
}

func TestDecodeTapeAlertResponseBitmap(t *testing.T) {
	assert := assert.New(t)

	flags := make([]byte, 8)
	flags[2] = 0x10 // flag 20 (third byte, bit 3 from msb)
	buf := mkPage(0x12, 0, mkParam(0x0000, flags...))
	ctx := NewDecodeContext()
	ctx.PDT = PDTTape
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Flag 20 set: Clean now\n")
	assert.Equal(64, tree.Get("log_page").Get("parameters").Item(0).Get("flags").Len())
}

func TestDecodeVolumeStatsPartitions(t *testing.T) {
	assert := assert.New(t)

	// Two partition records: (0, 4-byte counter 1000) and (1, counter 2000).
	partitions := []byte{
		0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x03, 0xe8,
		0x00, 0x01, 0x00, 0x04, 0x00, 0x00, 0x07, 0xd0,
	}
	buf := mkPage(0x17, 0x01,
		mkParam(0x0010, 0x00, 0x00, 0x10, 0x00),
		mkParam(0x0202, partitions...),
	)
	ctx := NewDecodeContext()
	ctx.PDT = PDTTape
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Lifetime megabytes written = 4096 MiB\n")
	assert.Contains(human, "Native capacity of partitions:\n")
	assert.Contains(human, "Partition 0: 1000\n")
	assert.Contains(human, "Partition 1: 2000\n")

	params := tree.Get("log_page").Get("parameters")
	parts := params.Item(1).Get("native_capacity_partitions")
	require.Equal(t, 2, parts.Len())
	assert.Equal(uint64(2000), parts.Item(1).Get("value").Int())
}

func TestDecodeVolumeStatsMountHistory(t *testing.T) {
	assert := assert.New(t)

	rec := append([]byte{0x00, 0x01, 0x00, 0x14}, []byte("IBM     0123456789AB")...)
	buf := mkPage(0x17, 0x00, mkParam(0x0300, rec...))
	ctx := NewDecodeContext()
	ctx.PDT = PDTTape
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Mount 1: vendor IBM, unit serial number 0123456789AB\n")

	hist := tree.Get("log_page").Get("parameters").Item(0).Get("mount_history")
	require.Equal(t, 1, hist.Len())
	assert.Equal("IBM", hist.Item(0).Get("vendor_identification").Str())
}

func TestDecodeDataCompressionVendorRouting(t *testing.T) {
	assert := assert.New(t)

	body := mkParam(0x0000, 0x00, 0x64)

	// Standard page 0x1b carries no vendor note.
	_, tree := decodeBoth(t, mkPageCtx(0x1b, 0, body), tapeCtx(VendorStd))
	assert.Nil(tree.Get("log_page").Get("notes"))

	// The LTO-5 twin at 0x32 does.
	var out bytes.Buffer
	ctx := tapeCtx(VendorLTO5)
	tree, err := Decode(&out, mkPageCtx(0x32, 0, body), ctx)
	assert.NoError(err)
	notes := tree.Get("log_page").Get("notes")
	require.Equal(t, 1, notes.Len())
	assert.Contains(notes.Item(0).Str(), "LTO-5")
	assert.Contains(out.String(), "Read compression ratio = 100 x100\n")
}

func mkPageCtx(page, subpage byte, body ...[]byte) []byte {
	return mkPage(page, subpage, body...)
}

func tapeCtx(v Vendor) *DecodeContext {
	ctx := NewDecodeContext()
	ctx.PDT = PDTTape
	ctx.Vendor = v
	return ctx
}

func TestDecodeTapeCapacity(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x31, 0,
		mkParam(0x0001, 0x00, 0x01, 0x00, 0x00),
		mkParam(0x0003, 0x00, 0x02, 0x00, 0x00),
	)
	human, _ := decodeBoth(t, buf, tapeCtx(VendorLTO5))

	assert.Contains(human, "Main partition remaining capacity = 65536 MiB\n")
	assert.Contains(human, "Main partition maximum capacity = 131072 MiB\n")
}

func TestDecodeSeagateFactoryHours(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x3e, 0,
		mkParam(0x0000, 0x00, 0x00, 0x00, 0x5a), // 90 minutes
		mkParam(0x0008, 0x00, 0x1e),
	)
	ctx := NewDecodeContext()
	ctx.PDT = PDTDisk
	ctx.Vendor = VendorSeagate
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Number of hours powered up = 1.50\n")
	assert.Contains(human, "Minutes until next internal SMART test = 30\n")

	hrs := tree.Get("log_page").Get("parameters").Item(0).Get("number_of_hours_powered_up")
	require.NotNil(t, hrs)
	assert.Equal(uint64(90), hrs.Get("value_minutes").Int())
	assert.Equal("1.50", hrs.Get("hours").Str())
}

func TestDecodeHGSTVendorQuirk(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x35, 0, mkParam(0x0000, 0x00, 0x2a))
	buf[1] = 0x03 // subpage in byte 1 without SPF

	ctx := NewDecodeContext()
	ctx.PDT = PDTDisk
	ctx.Vendor = VendorHitachi
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "subpage code taken from byte 1 without SPF set\n")
	assert.Contains(human, "Counter [0x0] = 42\n")
	assert.Equal(uint64(3), tree.Get("log_page").Get("subpage_code").Int())
}

func TestDecodeElementStats(t *testing.T) {
	assert := assert.New(t)

	payload := make([]byte, 24)
	payload[3] = 5  // places
	payload[11] = 2 // picks

	buf := mkPage(0x15, 0, mkParam(0x01f0, payload...))
	ctx := NewDecodeContext()
	ctx.PDT = PDTChanger
	human, tree := decodeBoth(t, buf, ctx)

	assert.Contains(human, "Element address = 496\n")
	assert.Contains(human, "Number of places = 5\n")
	assert.Contains(human, "Number of picks = 2\n")

	el := tree.Get("log_page").Get("elements").Item(0)
	assert.Equal(uint64(496), el.Get("element_address").Int())
}

func TestDecodeStartStop(t *testing.T) {
	assert := assert.New(t)

	buf := mkPage(0x0e, 0,
		mkParam(0x0001, []byte("2019"+"03")...),
		mkParam(0x0004, 0x00, 0x00, 0x01, 0x2c),
	)
	human, _ := decodeBoth(t, buf, nil)

	assert.Contains(human, "2019")
	assert.Contains(human, "= 300\n")
}
