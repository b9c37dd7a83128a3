// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// SCSI command definitions.

package scsi

const (
	// SCSI commands used by this package
	SCSI_INQUIRY   = 0x12
	SCSI_LOG_SENSE = 0x4d

	// Minimum length of standard INQUIRY response
	INQ_REPLY_LEN = 36

	// LOG SENSE page control field values (CDB byte 2, bits 7..6)
	LOG_PC_THRESHOLD  = 0x0
	LOG_PC_CUMULATIVE = 0x1
	LOG_PC_DEF_THRESH = 0x2
	LOG_PC_DEF_CUMUL  = 0x3

	// Maximum allocation length a LOG SENSE CDB can express.
	LOG_SENSE_MAX_LEN = 0xffff
)

// SCSI CDB types
type CDB6 [6]byte
type CDB10 [10]byte
type CDB16 [16]byte
