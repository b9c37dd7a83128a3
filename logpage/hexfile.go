// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package logpage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxHexInput caps how many bytes ReadHexBytes will accept; log page
// responses are bounded by the 16-bit allocation length anyway.
const maxHexInput = 1 << 16

// ReadHexBytes parses a textual hex dump into bytes. Accepted per line:
// whitespace or comma separated two-digit hex pairs, an optional leading
// offset token (three or more hex digits followed by a colon or longer than
// two digits), and `#` comments running to end of line. Blank lines are
// ignored.
func ReadHexBytes(r io.Reader) ([]byte, error) {
	var out []byte

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.ReplaceAll(line, ",", " ")

		for i, tok := range strings.Fields(line) {
			if i == 0 && isOffsetToken(tok) {
				continue
			}
			tok = strings.TrimPrefix(tok, "0x")
			if len(tok) != 2 {
				return nil, fmt.Errorf("logpage: line %d: bad hex token %q", lineno, tok)
			}
			v, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("logpage: line %d: bad hex token %q", lineno, tok)
			}
			if len(out) >= maxHexInput {
				return nil, fmt.Errorf("logpage: input exceeds %d bytes", maxHexInput)
			}
			out = append(out, byte(v))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("logpage: reading hex input: %w", err)
	}

	return out, nil
}

// isOffsetToken recognises the offset column a canonical hex dump starts each
// line with: a trailing colon, or a run of more than two hex digits.
func isOffsetToken(tok string) bool {
	if strings.HasSuffix(tok, ":") {
		tok = tok[:len(tok)-1]
		if tok == "" {
			return false
		}
		_, err := strconv.ParseUint(tok, 16, 32)
		return err == nil
	}
	if len(tok) > 2 {
		_, err := strconv.ParseUint(tok, 16, 32)
		return err == nil
	}
	return false
}
