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
	"strings"
)

// Kind constants.
const (
	KindNull   byte = 0
	KindInt64  byte = 1
	KindString byte = 2
	KindJSON   byte = 3
	KindArray  byte = 4
	KindMap    byte = 5
	KindRow    byte = 6
)

// Datum is a data box holds one logical value of any type. It is used where
// values must be compared independently of how a vector stores them.
type Datum struct {
	k byte
	i int64
	s string
	// x holds array elements, row fields, or map keys and values interleaved.
	x []Datum
}

// NewIntDatum creates a new Datum from an int64 value.
func NewIntDatum(i int64) Datum {
	return Datum{k: KindInt64, i: i}
}

// NewStringDatum creates a new Datum from a string.
func NewStringDatum(s string) Datum {
	return Datum{k: KindString, s: s}
}

// NewJSONDatum creates a new Datum from JSON text.
func NewJSONDatum(text string) Datum {
	return Datum{k: KindJSON, s: text}
}

// NewArrayDatum creates a new Datum holding an array.
func NewArrayDatum(elems ...Datum) Datum {
	return Datum{k: KindArray, x: elems}
}

// NewMapDatum creates a new Datum holding a map. keys and values must have the
// same length.
func NewMapDatum(keys, values []Datum) Datum {
	x := make([]Datum, 0, 2*len(keys))
	for i := range keys {
		x = append(x, keys[i], values[i])
	}
	return Datum{k: KindMap, x: x}
}

// NewRowDatum creates a new Datum holding a row.
func NewRowDatum(fields ...Datum) Datum {
	return Datum{k: KindRow, x: fields}
}

// Kind gets the kind of the datum.
func (d *Datum) Kind() byte {
	return d.k
}

// IsNull checks if datum is null.
func (d *Datum) IsNull() bool {
	return d.k == KindNull
}

// GetInt64 gets int64 value.
func (d *Datum) GetInt64() int64 {
	return d.i
}

// GetString gets string value. It is also the text of a JSON datum.
func (d *Datum) GetString() string {
	return d.s
}

// GetElems returns the elements of an array or the fields of a row.
func (d *Datum) GetElems() []Datum {
	return d.x
}

// MapLen returns the number of entries of a map datum.
func (d *Datum) MapLen() int {
	return len(d.x) / 2
}

// MapEntry returns the i-th key and value of a map datum.
func (d *Datum) MapEntry(i int) (key, value Datum) {
	return d.x[2*i], d.x[2*i+1]
}

// Equal reports whether d and other hold the same kind and value.
func (d *Datum) Equal(other *Datum) bool {
	if d.k != other.k {
		return false
	}
	switch d.k {
	case KindNull:
		return true
	case KindInt64:
		return d.i == other.i
	case KindString, KindJSON:
		return d.s == other.s
	}
	if len(d.x) != len(other.x) {
		return false
	}
	for i := range d.x {
		if !d.x[i].Equal(&other.x[i]) {
			return false
		}
	}
	return true
}

// String returns a human readable form of the datum.
func (d Datum) String() string {
	var sb strings.Builder
	d.writeTo(&sb)
	return sb.String()
}

func (d *Datum) writeTo(sb *strings.Builder) {
	switch d.k {
	case KindNull:
		sb.WriteString("NULL")
	case KindInt64:
		sb.WriteString(strconv.FormatInt(d.i, 10))
	case KindString:
		sb.WriteString(strconv.Quote(d.s))
	case KindJSON:
		sb.WriteString("JSON ")
		sb.WriteString(d.s)
	case KindArray, KindRow:
		open, closing := byte('['), byte(']')
		if d.k == KindRow {
			open, closing = '(', ')'
		}
		sb.WriteByte(open)
		for i := range d.x {
			if i > 0 {
				sb.WriteString(", ")
			}
			d.x[i].writeTo(sb)
		}
		sb.WriteByte(closing)
	case KindMap:
		sb.WriteByte('{')
		for i := 0; i < len(d.x); i += 2 {
			if i > 0 {
				sb.WriteString(", ")
			}
			d.x[i].writeTo(sb)
			sb.WriteString(": ")
			d.x[i+1].writeTo(sb)
		}
		sb.WriteByte('}')
	}
}
