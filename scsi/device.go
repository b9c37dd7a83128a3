// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Linux SG_IO transport.

package scsi

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ErrWildResid marks a kernel residual count that implies a transfer larger
// than requested. Callers map it to its own exit status.
var ErrWildResid = errors.New("scsi: wild resid")

// SCSI generic IO, analogous to the Linux sg_io_hdr struct.
type sgIoHdr struct {
	interface_id    int32
	dxfer_direction int32
	cmd_len         uint8
	mx_sb_len       uint8
	iovec_count     uint16
	dxfer_len       uint32
	dxferp          uintptr
	cmdp            uintptr
	sbp             uintptr
	timeout         uint32
	flags           uint32
	pack_id         int32
	usr_ptr         uintptr
	status          uint8
	masked_status   uint8
	msg_status      uint8
	sb_len_wr       uint8
	host_status     uint16
	driver_status   uint16
	resid           int32
	duration        uint32
	info            uint32
}

// Device is an open SCSI generic device node.
type Device struct {
	Name string
	fd   int
}

// Open opens a device node for SG_IO. O_NONBLOCK keeps the open from hanging
// on a tape drive with no medium loaded.
func Open(name string) (*Device, error) {
	fd, err := unix.Open(name, unix.O_RDWR|unix.O_NONBLOCK, 0600)
	if err != nil {
		return nil, fmt.Errorf("scsi: open %s: %w", name, err)
	}
	return &Device{Name: name, fd: fd}, nil
}

func (d *Device) Close() error {
	return unix.Close(d.fd)
}

// execGenericIO issues one SG_IO ioctl and converts a non-good status into an
// SgioError carrying the sense buffer.
func (d *Device) execGenericIO(hdr *sgIoHdr, senseBuf []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), SG_IO, uintptr(unsafe.Pointer(hdr)))
	if errno != 0 {
		return errno
	}

	if hdr.info&SG_INFO_OK_MASK != SG_INFO_OK {
		return SgioError{
			ScsiStatus:   hdr.status,
			HostStatus:   hdr.host_status,
			DriverStatus: hdr.driver_status,
			SenseBuf:     senseBuf[:hdr.sb_len_wr],
		}
	}

	return nil
}

// LogSense issues LOG SENSE for (page, subpage) with the given page control
// and allocation length. It returns the response trimmed to the transferred
// length, plus the kernel's residual count for wild-resid detection.
func (d *Device) LogSense(page, subpage, pc uint8, paramPtr uint16, allocLen int) ([]byte, int, error) {
	if allocLen < 4 || allocLen > LOG_SENSE_MAX_LEN {
		return nil, 0, fmt.Errorf("scsi: log sense allocation length %d out of range", allocLen)
	}

	respBuf := make([]byte, allocLen)
	senseBuf := make([]byte, senseBufLen)

	cdb := CDB10{SCSI_LOG_SENSE}
	cdb[2] = pc<<6 | page&0x3f
	cdb[3] = subpage
	cdb[5] = uint8(paramPtr >> 8)
	cdb[6] = uint8(paramPtr)
	cdb[7] = uint8(allocLen >> 8)
	cdb[8] = uint8(allocLen)

	hdr := sgIoHdr{
		interface_id:    'S',
		dxfer_direction: SG_DXFER_FROM_DEV,
		timeout:         DEFAULT_TIMEOUT,
		cmd_len:         uint8(len(cdb)),
		mx_sb_len:       senseBufLen,
		dxfer_len:       uint32(len(respBuf)),
		dxferp:          uintptr(unsafe.Pointer(&respBuf[0])),
		cmdp:            uintptr(unsafe.Pointer(&cdb[0])),
		sbp:             uintptr(unsafe.Pointer(&senseBuf[0])),
	}

	if err := d.execGenericIO(&hdr, senseBuf); err != nil {
		return nil, 0, err
	}

	resid := int(hdr.resid)
	got, err := transferLength(allocLen, resid)
	if err != nil {
		return respBuf, resid, err
	}

	return respBuf[:got], resid, nil
}

// transferLength derives the transferred byte count from the requested
// length and the kernel residual, rejecting counts outside [0, allocLen].
func transferLength(allocLen, resid int) (int, error) {
	got := allocLen - resid
	if got < 0 || got > allocLen {
		return 0, fmt.Errorf("%w: resid %d for %d byte transfer", ErrWildResid, resid, allocLen)
	}
	return got, nil
}

// Inquiry issues a standard INQUIRY and returns the parsed response.
func (d *Device) Inquiry() (InquiryResponse, error) {
	respBuf := make([]byte, INQ_REPLY_LEN)
	senseBuf := make([]byte, senseBufLen)

	cdb := CDB6{SCSI_INQUIRY}
	cdb[4] = uint8(len(respBuf))

	hdr := sgIoHdr{
		interface_id:    'S',
		dxfer_direction: SG_DXFER_FROM_DEV,
		timeout:         DEFAULT_TIMEOUT,
		cmd_len:         uint8(len(cdb)),
		mx_sb_len:       senseBufLen,
		dxfer_len:       uint32(len(respBuf)),
		dxferp:          uintptr(unsafe.Pointer(&respBuf[0])),
		cmdp:            uintptr(unsafe.Pointer(&cdb[0])),
		sbp:             uintptr(unsafe.Pointer(&senseBuf[0])),
	}

	if err := d.execGenericIO(&hdr, senseBuf); err != nil {
		return InquiryResponse{}, err
	}

	return parseInquiry(respBuf)
}
