// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

// ExitStatus is the process exit taxonomy shared with the CLI wrapper. The
// numeric values follow the sg3_utils convention so scripts written against
// sg_logs keep working.
type ExitStatus int

const (
	StatusOK            ExitStatus = 0
	StatusSyntaxError   ExitStatus = 1
	StatusNotReady      ExitStatus = 2
	StatusContradict    ExitStatus = 4
	StatusIllegalReq    ExitStatus = 5
	StatusUnitAttention ExitStatus = 6
	StatusInvalidOpcode ExitStatus = 9
	StatusAborted       ExitStatus = 11
	StatusFileError     ExitStatus = 15
	StatusNotSupported  ExitStatus = 19
	StatusShortInput    ExitStatus = 20
	StatusWildResid     ExitStatus = 21
	StatusLogicError    ExitStatus = 22
	StatusOther         ExitStatus = 99
)

var statusNames = map[ExitStatus]string{
	StatusOK:            "ok",
	StatusSyntaxError:   "syntax-error",
	StatusNotReady:      "not-ready",
	StatusContradict:    "contradict",
	StatusIllegalReq:    "illegal-request",
	StatusUnitAttention: "unit-attention",
	StatusInvalidOpcode: "invalid-opcode",
	StatusAborted:       "aborted-command",
	StatusFileError:     "file-error",
	StatusNotSupported:  "not-supported",
	StatusShortInput:    "short-input",
	StatusWildResid:     "wild-resid",
	StatusLogicError:    "logic-error",
	StatusOther:         "other",
}

func (s ExitStatus) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "other"
}
