/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw roster bytes to text. Input with a UTF-8 BOM or that
// is valid UTF-8 is used as is; anything else is treated as Shift_JIS, the
// default export encoding of Japanese spreadsheet software.
func Decode(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		return string(raw[len(utf8BOM):]), nil
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("unable to decode roster as Shift_JIS: %w", err)
	}
	return string(out), nil
}
