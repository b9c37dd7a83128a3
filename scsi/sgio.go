// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// SCSI generic IO functions.

package scsi

import (
	"fmt"

	"github.com/dswarbrick/sglogs/logpage"
)

const (
	SG_DXFER_NONE        = -1
	SG_DXFER_TO_DEV      = -2
	SG_DXFER_FROM_DEV    = -3
	SG_DXFER_TO_FROM_DEV = -4

	SG_INFO_OK_MASK = 0x1
	SG_INFO_OK      = 0x0

	SG_IO = 0x2285

	// Timeout in milliseconds
	DEFAULT_TIMEOUT = 20000

	senseBufLen = 32
)

// SenseInfo is the sense key / additional sense code triple extracted from a
// sense buffer.
type SenseInfo struct {
	Key  uint8
	ASC  uint8
	ASCQ uint8
}

// ParseSense extracts the key fields from a fixed (0x70/0x71) or descriptor
// (0x72/0x73) format sense buffer.
func ParseSense(sb []byte) (SenseInfo, bool) {
	if len(sb) < 1 {
		return SenseInfo{}, false
	}

	switch sb[0] & 0x7f {
	case 0x70, 0x71:
		if len(sb) < 14 {
			return SenseInfo{}, false
		}
		return SenseInfo{Key: sb[2] & 0xf, ASC: sb[12], ASCQ: sb[13]}, true
	case 0x72, 0x73:
		if len(sb) < 4 {
			return SenseInfo{}, false
		}
		return SenseInfo{Key: sb[1] & 0xf, ASC: sb[2], ASCQ: sb[3]}, true
	}
	return SenseInfo{}, false
}

type SgioError struct {
	ScsiStatus   uint8
	HostStatus   uint16
	DriverStatus uint16
	SenseBuf     []byte
}

func (e SgioError) Error() string {
	if s, ok := ParseSense(e.SenseBuf); ok {
		return fmt.Sprintf("SCSI status: %#02x, sense key: %#x, asc: %#02x, ascq: %#02x",
			e.ScsiStatus, s.Key, s.ASC, s.ASCQ)
	}
	return fmt.Sprintf("SCSI status: %#02x, host status: %#02x, driver status: %#02x",
		e.ScsiStatus, e.HostStatus, e.DriverStatus)
}

// ExitStatus classifies the error per the sense key, for the process exit
// code.
func (e SgioError) ExitStatus() logpage.ExitStatus {
	s, ok := ParseSense(e.SenseBuf)
	if !ok {
		return logpage.StatusOther
	}

	switch s.Key {
	case 0x2:
		return logpage.StatusNotReady
	case 0x5:
		if s.ASC == 0x20 {
			return logpage.StatusInvalidOpcode
		}
		return logpage.StatusIllegalReq
	case 0x6:
		return logpage.StatusUnitAttention
	case 0xb:
		return logpage.StatusAborted
	}
	return logpage.StatusOther
}
