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

package chunk

import (
	"unsafe"

	"github.com/vexdb/vexcast/pkg/types"
)

const (
	varElemLen = -1
	// estimatedElemLen is the reserved size of one var-length element.
	estimatedElemLen = 8
)

func getFixedLen(tp *types.FieldType) int {
	if tp.GetType().IsInteger() {
		return 8
	}
	return varElemLen
}

// Column is a flat vector of a scalar type. Integers are stored as 8 byte
// elements; VARCHAR and JSON values are stored back to back in data with
// offsets marking their boundaries.
//
// A Column is built with the Append methods and must not be appended to after
// it is handed to a reader.
type Column struct {
	tp         *types.FieldType
	length     int
	nullBitmap []byte // bit 0 is null, 1 is not null
	offsets    []int64
	data       []byte
	elemBuf    []byte
}

// NewColumn creates a flat column of a scalar type with the given capacity.
func NewColumn(tp *types.FieldType, capacity int) *Column {
	if !tp.IsScalar() {
		panicNotScalar("NewColumn", tp)
	}
	if elemLen := getFixedLen(tp); elemLen != varElemLen {
		return newFixedLenColumn(tp, elemLen, capacity)
	}
	return newVarLenColumn(tp, capacity)
}

func newFixedLenColumn(tp *types.FieldType, elemLen, capacity int) *Column {
	return &Column{
		tp:         tp,
		elemBuf:    make([]byte, elemLen),
		data:       make([]byte, 0, capacity*elemLen),
		nullBitmap: make([]byte, 0, (capacity+7)>>3),
	}
}

func newVarLenColumn(tp *types.FieldType, capacity int) *Column {
	return &Column{
		tp:         tp,
		offsets:    make([]int64, 1, capacity+1),
		data:       make([]byte, 0, capacity*estimatedElemLen),
		nullBitmap: make([]byte, 0, (capacity+7)>>3),
	}
}

func (c *Column) isFixed() bool {
	return c.elemBuf != nil
}

func (c *Column) appendNullBitmap(notNull bool) {
	idx := c.length >> 3
	if idx >= len(c.nullBitmap) {
		c.nullBitmap = append(c.nullBitmap, 0)
	}
	if notNull {
		pos := uint(c.length) & 7
		c.nullBitmap[idx] |= byte(1 << pos)
	}
}

func (c *Column) finishAppendFixed() {
	c.data = append(c.data, c.elemBuf...)
	c.appendNullBitmap(true)
	c.length++
}

func (c *Column) finishAppendVar() {
	c.appendNullBitmap(true)
	c.offsets = append(c.offsets, int64(len(c.data)))
	c.length++
}

// AppendNull appends a null value into this Column.
func (c *Column) AppendNull() {
	c.appendNullBitmap(false)
	if c.isFixed() {
		clear(c.elemBuf)
		c.data = append(c.data, c.elemBuf...)
	} else {
		c.offsets = append(c.offsets, c.offsets[c.length])
	}
	c.length++
}

// AppendInt64 appends an int64 value into this Column.
func (c *Column) AppendInt64(i int64) {
	if !c.isFixed() {
		panicNotScalar("AppendInt64", c.tp)
	}
	*(*int64)(unsafe.Pointer(&c.elemBuf[0])) = i
	c.finishAppendFixed()
}

// AppendString appends a string value into this Column.
func (c *Column) AppendString(s string) {
	if c.isFixed() {
		panicNotScalar("AppendString", c.tp)
	}
	c.data = append(c.data, s...)
	c.finishAppendVar()
}

// AppendBytes appends a byte slice into this Column.
func (c *Column) AppendBytes(b []byte) {
	if c.isFixed() {
		panicNotScalar("AppendBytes", c.tp)
	}
	c.data = append(c.data, b...)
	c.finishAppendVar()
}

// AppendJSON appends JSON text into this Column.
func (c *Column) AppendJSON(text string) {
	c.AppendString(text)
}

// AppendDatum appends a scalar datum into this Column.
func (c *Column) AppendDatum(d types.Datum) {
	switch d.Kind() {
	case types.KindNull:
		c.AppendNull()
	case types.KindInt64:
		c.AppendInt64(d.GetInt64())
	case types.KindString, types.KindJSON:
		c.AppendString(d.GetString())
	default:
		panicNotScalar("AppendDatum", c.tp)
	}
}

// FieldType implements the Vector interface.
func (c *Column) FieldType() *types.FieldType {
	return c.tp
}

// Encoding implements the Vector interface.
func (*Column) Encoding() Encoding {
	return EncodingFlat
}

// Len implements the Vector interface.
func (c *Column) Len() int {
	return c.length
}

// IsNull implements the Vector interface.
func (c *Column) IsNull(rowIdx int) bool {
	nullByte := c.nullBitmap[rowIdx/8]
	return nullByte&(1<<(uint(rowIdx)&7)) == 0
}

// GetInt64 implements the Vector interface.
func (c *Column) GetInt64(rowID int) int64 {
	if !c.isFixed() {
		panicNotScalar("GetInt64", c.tp)
	}
	return *(*int64)(unsafe.Pointer(&c.data[rowID*8]))
}

// GetString implements the Vector interface.
func (c *Column) GetString(rowID int) string {
	return string(c.GetBytes(rowID))
}

// GetBytes returns the byte slice in the specific row. The slice aliases the
// column memory and must not be modified.
func (c *Column) GetBytes(rowID int) []byte {
	if c.isFixed() {
		panicNotScalar("GetBytes", c.tp)
	}
	start, end := c.offsets[rowID], c.offsets[rowID+1]
	return c.data[start:end:end]
}

// GetDatum implements the Vector interface.
func (c *Column) GetDatum(rowID int) types.Datum {
	if c.IsNull(rowID) {
		return types.Datum{}
	}
	switch c.tp.GetType() {
	case types.TypeVarchar:
		return types.NewStringDatum(c.GetString(rowID))
	case types.TypeJSON:
		return types.NewJSONDatum(c.GetString(rowID))
	}
	return types.NewIntDatum(c.GetInt64(rowID))
}

// Int64s returns an int64 slice stored in this Column. Values at null
// positions are zero.
func (c *Column) Int64s() []int64 {
	if !c.isFixed() {
		panicNotScalar("Int64s", c.tp)
	}
	if c.length == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&c.data[0])), c.length)
}

// NullCount returns the number of null values in this Column.
func (c *Column) NullCount() int {
	cnt := 0
	for i := 0; i < c.length; i++ {
		if c.IsNull(i) {
			cnt++
		}
	}
	return cnt
}

// MemoryUsage returns the reserved memory of this Column in bytes.
func (c *Column) MemoryUsage() int64 {
	return int64(cap(c.nullBitmap) + cap(c.data) + cap(c.elemBuf) + cap(c.offsets)*8)
}
