// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Name tables for enumerated fields. Simple array/map lookups guarded by a
// length or presence check; unknown values render through reservedName.

package logpage

import "fmt"

// reservedName renders an out-of-table value the way log parameters reserve
// their code spaces: below the vendor split it is reserved, above it vendor
// specific.
func reservedName(v uint64, vendorFrom uint64) string {
	if vendorFrom > 0 && v >= vendorFrom {
		return fmt.Sprintf("Vendor specific [0x%x]", v)
	}
	return fmt.Sprintf("Reserved [0x%x]", v)
}

// lookupName returns table[v] or the reserved/vendor rendering.
func lookupName(table map[uint64]string, v, vendorFrom uint64) string {
	if s, ok := table[v]; ok {
		return s
	}
	return reservedName(v, vendorFrom)
}

// Sense keys, SPC-5 table 48.
var senseKeyNames = [16]string{
	"No sense", "Recovered error", "Not ready", "Medium error",
	"Hardware error", "Illegal request", "Unit attention", "Data protect",
	"Blank check", "Vendor specific", "Copy aborted", "Aborted command",
	"Reserved [0xc]", "Volume overflow", "Miscompare", "Completed",
}

// Self-test codes, SPC-5 table 268.
var selfTestCodeNames = [8]string{
	"default self-test",
	"background short",
	"background extended",
	"reserved [0x3]",
	"aborted background self-test",
	"foreground short",
	"foreground extended",
	"reserved [0x7]",
}

// Self-test results, SPC-5 table 269.
var selfTestResultNames = map[uint64]string{
	0x0: "completed without error",
	0x1: "aborted by SEND DIAGNOSTIC",
	0x2: "aborted other than by SEND DIAGNOSTIC",
	0x3: "unknown error, unable to complete self test",
	0x4: "self test completed with failure in unknown test segment",
	0x5: "first segment in self test failed",
	0x6: "second segment in self test failed",
	0x7: "another segment in self test failed",
	0xf: "self test in progress",
}

// Fixed parameter code names of the error counter pages (0x02..0x05).
var errorCounterParamNames = map[uint16]struct{ key, label string }{
	0: {"errors_corrected_without_substantial_delay", "Errors corrected without substantial delay"},
	1: {"errors_corrected_with_possible_delays", "Errors corrected with possible delays"},
	2: {"total_rewrites_or_rereads", "Total rewrites or rereads"},
	3: {"total_errors_corrected", "Total errors corrected"},
	4: {"total_times_correction_algorithm_processed", "Total times correction algorithm processed"},
	5: {"total_bytes_processed", "Total bytes processed"},
	6: {"total_uncorrected_errors", "Total uncorrected errors"},
}

// Background scan status, SBC-4 table 188.
var bgScanStatusNames = map[uint64]string{
	0x0: "no background scans active",
	0x1: "background medium scan is active",
	0x2: "background pre-scan is active",
	0x3: "background scan halted due to fatal error",
	0x4: "background scan halted due to a vendor specific pattern of error",
	0x5: "background scan halted due to medium formatted without P-List",
	0x6: "background scan halted - vendor specific cause",
	0x7: "background scan halted due to temperature out of range",
	0x8: "background scan enabled, none active (waiting for BMS interval timer to expire)",
	0x9: "background scan halted - scan results list full",
	0xa: "background scan halted - pre-scan time limit timer expired",
}

// Reassign status nibble of a background scan medium scan parameter.
var reassignStatusNames = map[uint64]string{
	0x1: "Reassignment pending receipt of Reassign or Write command",
	0x2: "Logical block successfully reassigned by device server",
	0x4: "Reassignment by device server failed",
	0x5: "Logical block recovered via rewrite in-place",
	0x6: "Logical block reassigned by application client, has valid data",
	0x7: "Logical block reassigned by application client, contains no valid data",
	0x8: "Logical block unsuccessfully reassigned by application client",
}

// SAS attached device types (SPL-5).
var sasDeviceTypeNames = [8]string{
	"no device attached",
	"SAS or SATA device",
	"expander device",
	"expander device (fanout)",
	"reserved [0x4]", "reserved [0x5]", "reserved [0x6]", "reserved [0x7]",
}

// SAS phy reset reason codes.
var sasReasonNames = [16]string{
	"unknown reason",
	"power on",
	"hard reset",
	"SMP phy control function",
	"loss of dword synchronization",
	"mux mix up",
	"I_T nexus loss timeout for STP/SATA",
	"break timeout timer expired",
	"phy test function stopped",
	"expander device reduced functionality",
	"reserved [0xa]", "reserved [0xb]", "reserved [0xc]",
	"reserved [0xd]", "reserved [0xe]", "reserved [0xf]",
}

// SAS negotiated logical link rates.
var sasLinkRateNames = map[uint64]string{
	0x0: "phy enabled; unknown rate",
	0x1: "phy disabled",
	0x2: "phy enabled; speed negotiation failed",
	0x3: "phy enabled; SATA spinup hold state",
	0x4: "phy enabled; port selector",
	0x5: "phy enabled; reset in progress",
	0x6: "phy enabled; unsupported phy attached",
	0x8: "1.5 Gbps",
	0x9: "3 Gbps",
	0xa: "6 Gbps",
	0xb: "12 Gbps",
	0xc: "22.5 Gbps",
}

// SAS phy event sources (SPL-5 table 70). The peak set carries a peak value
// detector threshold alongside the event value.
var sasPhyEventNames = map[uint64]string{
	0x01: "Invalid word count",
	0x02: "Running disparity error count",
	0x03: "Loss of dword synchronization count",
	0x04: "Phy reset problem count",
	0x05: "Elasticity buffer overflow count",
	0x06: "Received ERROR count",
	0x07: "Invalid SPL packet count",
	0x08: "Loss of SPL packet synchronization count",
	0x20: "Received address frame error count",
	0x21: "Transmitted abandon-class OPEN_REJECT count",
	0x22: "Received abandon-class OPEN_REJECT count",
	0x23: "Transmitted retry-class OPEN_REJECT count",
	0x24: "Received retry-class OPEN_REJECT count",
	0x25: "Received AIP (WAITING ON PARTIAL) count",
	0x26: "Received AIP (WAITING ON CONNECTION) count",
	0x27: "Transmitted BREAK count",
	0x28: "Received BREAK count",
	0x29: "Break timeout count",
	0x2a: "Connection count",
	0x2b: "Peak transmitted pathway blocked count",
	0x2c: "Peak transmitted arbitration wait time",
	0x2d: "Peak arbitration time",
	0x2e: "Peak connection time",
	0x2f: "Peak persistent connection count",
	0x40: "Transmitted SSP frame count",
	0x41: "Received SSP frame count",
	0x42: "Transmitted SSP frame error count",
	0x43: "Received SSP frame error count",
	0x44: "Transmitted CREDIT_BLOCKED count",
	0x45: "Received CREDIT_BLOCKED count",
	0x50: "Transmitted SATA frame count",
	0x51: "Received SATA frame count",
	0x52: "SATA flow control buffer overflow count",
	0x60: "Transmitted SMP frame count",
	0x61: "Received SMP frame count",
	0x63: "Received SMP frame error count",
}

// sasPhyEventHasPVD reports whether the event carries a peak value detector
// threshold in its final dword.
func sasPhyEventHasPVD(src uint64) bool {
	switch src {
	case 0x2b, 0x2c, 0x2d, 0x2e, 0x2f:
		return true
	}
	return false
}

// TapeAlert flags 1..64 (SSC-4 annex A). Index 0 is flag 1.
var tapeAlertFlagNames = [64]string{
	"Read warning", "Write warning", "Hard error", "Media",
	"Read failure", "Write failure", "Media life", "Not data grade",
	"Write protect", "No removal", "Cleaning media", "Unsupported format",
	"Recoverable mechanical cartridge failure", "Unrecoverable mechanical cartridge failure",
	"Memory chip in cartridge failure", "Forced eject",
	"Read only format", "Tape directory corrupted on load", "Nearing media life", "Clean now",
	"Clean periodic", "Expired cleaning media", "Invalid cleaning tape", "Retension requested",
	"Dual-port interface error", "Cooling fan failing", "Power supply failure", "Power consumption",
	"Drive maintenance", "Hardware A", "Hardware B", "Interface",
	"Eject media", "Microcode update fail", "Drive humidity", "Drive temperature",
	"Drive voltage", "Predictive failure", "Diagnostics required", "Obsolete [40]",
	"Obsolete [41]", "Obsolete [42]", "Obsolete [43]", "Obsolete [44]",
	"Obsolete [45]", "Obsolete [46]", "Reserved [47]", "Reserved [48]",
	"Reserved [49]", "Lost statistics", "Tape directory invalid at unload",
	"Tape system area write failure", "Tape system area read failure", "No start of data",
	"Loading failure", "Unrecoverable unload failure", "Automation interface failure",
	"Firmware failure", "WORM medium - integrity check failed", "WORM medium - overwrite attempted",
	"Reserved [61]", "Reserved [62]", "Reserved [63]", "Reserved [64]",
}

// Sequential access device page (0x0c, tape) parameter names.
var seqAccessParamNames = map[uint16]struct{ key, label string }{
	0x0000: {"data_bytes_received_with_write_commands", "Data bytes received with WRITE commands"},
	0x0001: {"data_bytes_written_to_media", "Data bytes written to media by WRITE commands"},
	0x0002: {"data_bytes_read_from_media", "Data bytes read from media by READ commands"},
	0x0003: {"data_bytes_transferred_by_read_commands", "Data bytes transferred by READ commands"},
	0x0004: {"native_capacity_from_bop_to_eod", "Native capacity from BOP to EOD"},
	0x0005: {"native_capacity_from_bop_to_ew", "Native capacity from BOP to EW of current partition"},
	0x0006: {"minimum_native_capacity_from_ew_to_eop", "Minimum native capacity from EW to EOP of current partition"},
	0x0007: {"native_capacity_from_bop_to_current_position", "Native capacity from BOP to current position"},
	0x0008: {"maximum_native_capacity_in_device_buffer", "Maximum native capacity in device object buffer"},
	0x8000: {"cleaning_required", "Cleaning action required"},
}

// Device statistics page (0x14, tape/adc) parameter names.
var deviceStatsParamNames = map[uint16]struct{ key, label string }{
	0x0000: {"lifetime_media_loads", "Lifetime media loads"},
	0x0001: {"lifetime_cleaning_operations", "Lifetime cleaning operations"},
	0x0002: {"lifetime_power_on_hours", "Lifetime power on hours"},
	0x0003: {"lifetime_media_motion_hours", "Lifetime media motion (head) hours"},
	0x0004: {"lifetime_metres_of_tape_processed", "Lifetime metres of tape processed"},
	0x0005: {"lifetime_media_motion_hours_incompatible_media", "Lifetime media motion hours when incompatible media last loaded"},
	0x0006: {"lifetime_power_on_hours_last_temperature_condition", "Lifetime power on hours when last temperature condition occurred"},
	0x0007: {"lifetime_power_on_hours_last_power_consumption_condition", "Lifetime power on hours when last power consumption condition occurred"},
	0x0008: {"media_motion_hours_since_last_successful_cleaning", "Media motion hours since last successful cleaning operation"},
	0x0009: {"media_motion_hours_since_2nd_last_successful_cleaning", "Media motion hours since 2nd to last successful cleaning"},
	0x000a: {"media_motion_hours_since_3rd_last_successful_cleaning", "Media motion hours since 3rd to last successful cleaning"},
	0x000b: {"lifetime_power_on_hours_last_forced_reset", "Lifetime power on hours when last operator initiated forced reset occurred"},
	0x000c: {"lifetime_power_cycles", "Lifetime power cycles"},
	0x000d: {"volume_loads_since_last_parameter_reset", "Volume loads since last parameter reset"},
	0x000e: {"hard_write_errors", "Hard write errors"},
	0x000f: {"hard_read_errors", "Hard read errors"},
	0x0010: {"duty_cycle_sample_time", "Duty cycle sample time"},
	0x0011: {"read_duty_cycle", "Read duty cycle"},
	0x0012: {"write_duty_cycle", "Write duty cycle"},
	0x0013: {"activity_duty_cycle", "Activity duty cycle"},
	0x0014: {"volume_not_present_duty_cycle", "Volume not present duty cycle"},
	0x0015: {"ready_duty_cycle", "Ready duty cycle"},
	0x0016: {"megabytes_transferred_from_application_client", "MBs transferred from application client in duty cycle sample time"},
	0x0017: {"megabytes_transferred_to_application_client", "MBs transferred to application client in duty cycle sample time"},
	0x0040: {"drive_manufacturer_serial_number", "Drive manufacturer's serial number"},
	0x0041: {"drive_serial_number", "Drive serial number"},
	0x0042: {"manufacturing_date", "Manufacturing date (yyyymmdd)"},
	0x0080: {"medium_removal_prevented", "Medium removal prevented"},
	0x0081: {"maximum_recommended_mechanical_temperature_exceeded", "Maximum recommended mechanical temperature exceeded"},
}

// Media changer statistics page (0x14, smc) parameter names.
var changerStatsParamNames = map[uint16]struct{ key, label string }{
	0x0000: {"number_of_moves", "Number of moves"},
	0x0001: {"number_of_picks", "Number of picks"},
	0x0002: {"number_of_pick_retries", "Number of pick retries"},
	0x0003: {"number_of_places", "Number of places"},
	0x0004: {"number_of_place_retries", "Number of place retries"},
	0x0005: {"number_of_volume_tags_read", "Number of determined volume identifiers"},
	0x0006: {"number_of_invalid_volume_tags", "Number of unreadable volume identifiers"},
	0x0007: {"number_of_library_door_opens", "Number of library door opens"},
	0x0008: {"number_of_import_export_door_opens", "Number of import/export station door opens"},
	0x0009: {"number_of_physical_inventory_scans", "Number of physical inventory scans"},
	0x000a: {"number_of_medium_transport_unrecovered_errors", "Number of medium transport unrecovered errors"},
	0x000b: {"number_of_medium_transport_recovered_errors", "Number of medium transport recovered errors"},
	0x000c: {"number_of_x_translation_unrecovered_errors", "Number of X axis translation unrecovered errors"},
	0x000d: {"number_of_x_translation_recovered_errors", "Number of X axis translation recovered errors"},
	0x000e: {"number_of_y_translation_unrecovered_errors", "Number of Y axis translation unrecovered errors"},
	0x000f: {"number_of_y_translation_recovered_errors", "Number of Y axis translation recovered errors"},
	0x0010: {"number_of_z_translation_unrecovered_errors", "Number of Z axis translation unrecovered errors"},
	0x0011: {"number_of_z_translation_recovered_errors", "Number of Z axis translation recovered errors"},
	0x0012: {"number_of_rotational_translation_unrecovered_errors", "Number of rotational translation unrecovered errors"},
	0x0013: {"number_of_rotational_translation_recovered_errors", "Number of rotational translation recovered errors"},
}

// volStatUnit marks how a volume statistics counter should be annotated.
type volStatUnit int

const (
	unitNone volStatUnit = iota
	unitMiB
	unitRatioX100 // value is compression ratio times 100
	unitMinutes
)

// Volume statistics page (0x17, tape) fixed parameter table.
var volumeStatsParams = map[uint16]struct {
	key, label string
	unit       volStatUnit
}{
	0x0000: {"page_valid", "Page valid", unitNone},
	0x0001: {"thread_count", "Thread count", unitNone},
	0x0002: {"total_data_sets_written", "Total data sets written", unitNone},
	0x0003: {"total_write_retries", "Total write retries", unitNone},
	0x0004: {"total_unrecovered_write_errors", "Total unrecovered write errors", unitNone},
	0x0005: {"total_suspended_writes", "Total suspended writes", unitNone},
	0x0006: {"total_fatal_suspended_writes", "Total fatal suspended writes", unitNone},
	0x0007: {"total_data_sets_read", "Total data sets read", unitNone},
	0x0008: {"total_read_retries", "Total read retries", unitNone},
	0x0009: {"total_unrecovered_read_errors", "Total unrecovered read errors", unitNone},
	0x000a: {"total_suspended_reads", "Total suspended reads", unitNone},
	0x000b: {"total_fatal_suspended_reads", "Total fatal suspended reads", unitNone},
	0x000c: {"last_mount_unrecovered_write_errors", "Last mount unrecovered write errors", unitNone},
	0x000d: {"last_mount_unrecovered_read_errors", "Last mount unrecovered read errors", unitNone},
	0x000e: {"last_mount_megabytes_written", "Last mount megabytes written", unitMiB},
	0x000f: {"last_mount_megabytes_read", "Last mount megabytes read", unitMiB},
	0x0010: {"lifetime_megabytes_written", "Lifetime megabytes written", unitMiB},
	0x0011: {"lifetime_megabytes_read", "Lifetime megabytes read", unitMiB},
	0x0012: {"last_load_write_compression_ratio", "Last load write compression ratio", unitRatioX100},
	0x0013: {"last_load_read_compression_ratio", "Last load read compression ratio", unitRatioX100},
	0x0014: {"medium_mount_time", "Medium mount time", unitMinutes},
	0x0015: {"medium_ready_time", "Medium ready time", unitMinutes},
	0x0016: {"total_native_capacity", "Total native capacity", unitMiB},
	0x0017: {"total_used_native_capacity", "Total used native capacity", unitMiB},
	0x0040: {"volume_serial_number", "Volume serial number", unitNone},
	0x0041: {"tape_lot_identifier", "Tape lot identifier", unitNone},
	0x0042: {"volume_barcode", "Volume barcode", unitNone},
	0x0043: {"volume_manufacturer", "Volume manufacturer", unitNone},
	0x0044: {"volume_license_code", "Volume license code", unitNone},
	0x0045: {"volume_personality", "Volume personality", unitNone},
	0x0080: {"write_protect", "Write protect", unitNone},
	0x0081: {"worm", "WORM", unitNone},
	0x0082: {"maximum_recommended_tape_path_temperature_exceeded", "Maximum recommended tape path temperature exceeded", unitNone},
	0x0100: {"volume_write_mounts", "Volume write mounts", unitNone},
	0x0101: {"beginning_of_medium_passes", "Beginning of medium passes", unitNone},
	0x0102: {"middle_of_tape_passes", "Middle of tape passes", unitNone},
	0x0200: {"logical_position_of_first_encrypted_block", "Logical position of first encrypted block", unitNone},
	0x0201: {"logical_position_of_first_unencrypted_block_after_first_encrypted_block", "Logical position of first unencrypted block after first encrypted block", unitNone},
}

// Volume statistics string-valued parameter codes.
func volumeStatsIsString(pc uint16) bool { return pc >= 0x0040 && pc <= 0x0045 }

// Data compression page (0x1b ssc, 0x32 on LTO-5) parameter names.
var dataCompressionParamNames = map[uint16]struct {
	key, label string
	unit       string
}{
	0x0000: {"read_compression_ratio", "Read compression ratio", "x100"},
	0x0001: {"write_compression_ratio", "Write compression ratio", "x100"},
	0x0002: {"megabytes_transferred_to_server", "Megabytes transferred to server", "MiB"},
	0x0003: {"bytes_transferred_to_server", "Bytes transferred to server", ""},
	0x0004: {"megabytes_read_from_tape", "Megabytes read from tape", "MiB"},
	0x0005: {"bytes_read_from_tape", "Bytes read from tape", ""},
	0x0006: {"megabytes_transferred_from_server", "Megabytes transferred from server", "MiB"},
	0x0007: {"bytes_transferred_from_server", "Bytes transferred from server", ""},
	0x0008: {"megabytes_written_to_tape", "Megabytes written to tape", "MiB"},
	0x0009: {"bytes_written_to_tape", "Bytes written to tape", ""},
}

// General statistics and performance page (0x19) parameter 0x0001 counters,
// in payload order, eight 8-byte fields.
var statsPerfCounterKeys = [8]struct{ key, label string }{
	{"read_commands", "Number of read commands"},
	{"write_commands", "Number of write commands"},
	{"logical_blocks_received", "Number of logical blocks received"},
	{"logical_blocks_transmitted", "Number of logical blocks transmitted"},
	{"read_command_processing_intervals", "Read command processing intervals"},
	{"write_command_processing_intervals", "Write command processing intervals"},
	{"weighted_commands", "Weighted number of read plus write commands"},
	{"weighted_command_processing", "Weighted read plus write command processing"},
}

// Cache memory statistics subpage (0x19,0x20) parameter names.
var cacheMemStatsParamNames = map[uint16]struct{ key, label string }{
	0x0001: {"read_cache_memory_hits", "Read cache memory hits"},
	0x0002: {"reads_to_cache_memory", "Reads to cache memory"},
	0x0003: {"write_cache_memory_hits", "Write cache memory hits"},
	0x0004: {"writes_from_cache_memory", "Writes from cache memory"},
	0x0005: {"time_from_last_hard_reset", "Time from last hard reset"},
	0x0006: {"time_interval", "Time interval"},
}

// Power condition transitions page (0x1a) parameter names.
var powerTransitionParamNames = map[uint16]struct{ key, label string }{
	0x0001: {"transitions_to_active", "Accumulated transitions to active"},
	0x0002: {"transitions_to_idle_a", "Accumulated transitions to idle_a"},
	0x0003: {"transitions_to_idle_b", "Accumulated transitions to idle_b"},
	0x0004: {"transitions_to_idle_c", "Accumulated transitions to idle_c"},
	0x0008: {"transitions_to_standby_z", "Accumulated transitions to standby_z"},
	0x0009: {"transitions_to_standby_y", "Accumulated transitions to standby_y"},
}

// Logical block provisioning page (0x0c, disk) parameter names.
var lbProvisioningParamNames = map[uint16]struct{ key, label string }{
	0x0001: {"available_lba_mapping_resource_count", "Available LBA mapping resource count"},
	0x0002: {"used_lba_mapping_resource_count", "Used LBA mapping resource count"},
	0x0003: {"available_provisioning_resource_percentage", "Available provisioning resource percentage"},
	0x0100: {"deduplicated_lba_resource_count", "De-duplicated LBA resource count"},
	0x0101: {"compressed_lba_resource_count", "Compressed LBA resource count"},
	0x0102: {"total_efficiency_lba_resource_count", "Total efficiency LBA resource count"},
}

// Format status page (0x08, disk) parameter names for codes 1..4.
var formatStatusParamNames = map[uint16]struct{ key, label string }{
	0x0001: {"grown_defects_during_certification", "Grown defects during certification"},
	0x0002: {"total_blocks_reassigned_during_format", "Total blocks reassigned during format"},
	0x0003: {"total_new_blocks_reassigned", "Total new blocks reassigned"},
	0x0004: {"power_on_minutes_since_format", "Power on minutes since format"},
}

// Requested recovery page (0x13, tape) recovery procedure codes.
var recoveryProcedureNames = map[uint64]string{
	0x00: "no recovery procedure",
	0x01: "repeat command",
	0x02: "require WRITE BUFFER (download microcode)",
	0x03: "require initialize element status",
	0x04: "require operator intervention and repeat command",
	0x05: "require operator intervention, no repeat of command",
	0x06: "issue UNLOAD, then repeat command",
	0x07: "require manual media removal",
	0x08: "issue REWIND, then repeat command",
}

// Tape capacity page (0x31, LTO) parameter names.
var tapeCapacityParamNames = map[uint16]struct{ key, label string }{
	0x0001: {"main_partition_remaining_capacity", "Main partition remaining capacity"},
	0x0002: {"alternate_partition_remaining_capacity", "Alternate partition remaining capacity"},
	0x0003: {"main_partition_maximum_capacity", "Main partition maximum capacity"},
	0x0004: {"alternate_partition_maximum_capacity", "Alternate partition maximum capacity"},
}

// Tape usage page (0x30, LTO) parameter names.
var tapeUsageParamNames = map[uint16]struct{ key, label string }{
	0x0001: {"thread_count", "Thread count"},
	0x0002: {"total_data_sets_written", "Total data sets written"},
	0x0003: {"total_write_retries", "Total write retries"},
	0x0004: {"total_unrecovered_write_errors", "Total unrecovered write errors"},
	0x0005: {"total_suspended_writes", "Total suspended writes"},
	0x0006: {"total_fatal_suspended_writes", "Total fatal suspended writes"},
	0x0007: {"total_data_sets_read", "Total data sets read"},
	0x0008: {"total_read_retries", "Total read retries"},
	0x0009: {"total_unrecovered_read_errors", "Total unrecovered read errors"},
	0x000a: {"total_suspended_reads", "Total suspended reads"},
	0x000b: {"total_fatal_suspended_reads", "Total fatal suspended reads"},
}

// Seagate cache statistics page (0x37) parameter names.
var seagateCacheParamNames = map[uint16]struct{ key, label string }{
	0x0000: {"blocks_sent_to_initiator", "Blocks sent to initiator"},
	0x0001: {"blocks_received_from_initiator", "Blocks received from initiator"},
	0x0002: {"blocks_read_from_cache_and_sent_to_initiator", "Blocks read from cache and sent to initiator"},
	0x0003: {"read_and_write_commands_with_size_le_segment_size", "Number of read and write commands whose size <= segment size"},
	0x0004: {"read_and_write_commands_with_size_gt_segment_size", "Number of read and write commands whose size > segment size"},
}
