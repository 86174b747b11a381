// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

const jsonHexChars = "0123456789abcdef"

// jsonSafeSet holds the bytes that can be copied into a JSON string literal
// without escaping. Bytes >= 0x80 are always copied.
var jsonSafeSet [256]bool

func init() {
	for b := 0x20; b < 256; b++ {
		jsonSafeSet[b] = true
	}
	jsonSafeSet['"'] = false
	jsonSafeSet['\\'] = false
}

// AppendJSONQuoted appends s to buf as a JSON string literal. Quote and
// backslash are escaped, \b \t \n \f \r use their short forms, the other
// control bytes use \u00xx, and every other byte is copied verbatim.
func AppendJSONQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if jsonSafeSet[b] {
			continue
		}
		if start < i {
			buf = append(buf, s[start:i]...)
		}
		switch b {
		case '\\', '"':
			buf = append(buf, '\\', b)
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\r':
			buf = append(buf, '\\', 'r')
		default:
			buf = append(buf, `\u00`...)
			buf = append(buf, jsonHexChars[b>>4], jsonHexChars[b&0xF])
		}
		start = i + 1
	}
	if start < len(s) {
		buf = append(buf, s[start:]...)
	}
	return append(buf, '"')
}

// QuoteJSONString returns s as a JSON string literal.
func QuoteJSONString(s string) string {
	return string(AppendJSONQuoted(make([]byte, 0, len(s)+2), s))
}

// AppendJSONInt appends the JSON number text of an integer.
func AppendJSONInt(buf []byte, i int64) []byte {
	return strconv.AppendInt(buf, i, 10)
}

var jsonTextDecoder = jsoniter.Config{UseNumber: true}.Froze()

// IsValidJSON reports whether s is one complete JSON value, scalars included.
func IsValidJSON(s string) bool {
	var v any
	return jsonTextDecoder.UnmarshalFromString(s, &v) == nil
}
