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
	"github.com/pingcap/errors"
	"github.com/vexdb/vexcast/pkg/types"
)

// nullMask marks null positions of a container vector.
type nullMask []bool

func (m nullMask) isNull(i int) bool {
	return len(m) > 0 && m[i]
}

// ArrayColumn is a flat vector of arrays. Array i holds the elements
// [offsets[i], offsets[i+1]) of the element vector.
type ArrayColumn struct {
	tp      *types.FieldType
	offsets []int32
	nulls   nullMask
	elems   Vector
}

// NewArrayColumn creates an empty array vector over the element vector. Rows
// are added with AppendArray and AppendNull.
func NewArrayColumn(elems Vector) *ArrayColumn {
	return &ArrayColumn{
		tp:      types.NewArrayType(elems.FieldType()),
		offsets: []int32{0},
		elems:   elems,
	}
}

// AppendArray appends an array made of the next n elements.
func (c *ArrayColumn) AppendArray(n int) {
	end := c.offsets[len(c.offsets)-1] + int32(n)
	if int(end) > c.elems.Len() {
		panic("chunk: array elements exceed the element vector")
	}
	c.offsets = append(c.offsets, end)
	if c.nulls != nil {
		c.nulls = append(c.nulls, false)
	}
}

// AppendNull appends a null array.
func (c *ArrayColumn) AppendNull() {
	if c.nulls == nil {
		c.nulls = make(nullMask, c.Len(), cap(c.offsets))
	}
	c.nulls = append(c.nulls, true)
	c.offsets = append(c.offsets, c.offsets[len(c.offsets)-1])
}

// Elems returns the element vector.
func (c *ArrayColumn) Elems() Vector {
	return c.elems
}

// Offsets returns the array boundaries; it has Len()+1 entries.
func (c *ArrayColumn) Offsets() []int32 {
	return c.offsets
}

// FieldType implements the Vector interface.
func (c *ArrayColumn) FieldType() *types.FieldType { return c.tp }

// Encoding implements the Vector interface.
func (*ArrayColumn) Encoding() Encoding { return EncodingFlat }

// Len implements the Vector interface.
func (c *ArrayColumn) Len() int { return len(c.offsets) - 1 }

// IsNull implements the Vector interface.
func (c *ArrayColumn) IsNull(i int) bool { return c.nulls.isNull(i) }

// GetInt64 implements the Vector interface.
func (c *ArrayColumn) GetInt64(int) int64 {
	panicNotScalar("GetInt64", c.tp)
	return 0
}

// GetString implements the Vector interface.
func (c *ArrayColumn) GetString(int) string {
	panicNotScalar("GetString", c.tp)
	return ""
}

// GetDatum implements the Vector interface.
func (c *ArrayColumn) GetDatum(i int) types.Datum {
	if c.IsNull(i) {
		return types.Datum{}
	}
	start, end := int(c.offsets[i]), int(c.offsets[i+1])
	elems := make([]types.Datum, 0, end-start)
	for j := start; j < end; j++ {
		elems = append(elems, c.elems.GetDatum(j))
	}
	return types.NewArrayDatum(elems...)
}

// MapColumn is a flat vector of maps. Map i holds the entries
// [offsets[i], offsets[i+1]) of the key and value vectors.
type MapColumn struct {
	tp      *types.FieldType
	offsets []int32
	nulls   nullMask
	keys    Vector
	values  Vector
}

// NewMapColumn creates an empty map vector over the key and value vectors,
// which must have the same length.
func NewMapColumn(keys, values Vector) (*MapColumn, error) {
	if keys.Len() != values.Len() {
		return nil, errors.Errorf("map keys have %d rows but values have %d rows", keys.Len(), values.Len())
	}
	return &MapColumn{
		tp:      types.NewMapType(keys.FieldType(), values.FieldType()),
		offsets: []int32{0},
		keys:    keys,
		values:  values,
	}, nil
}

// AppendMap appends a map made of the next n entries.
func (c *MapColumn) AppendMap(n int) {
	end := c.offsets[len(c.offsets)-1] + int32(n)
	if int(end) > c.keys.Len() {
		panic("chunk: map entries exceed the key vector")
	}
	c.offsets = append(c.offsets, end)
	if c.nulls != nil {
		c.nulls = append(c.nulls, false)
	}
}

// AppendNull appends a null map.
func (c *MapColumn) AppendNull() {
	if c.nulls == nil {
		c.nulls = make(nullMask, c.Len(), cap(c.offsets))
	}
	c.nulls = append(c.nulls, true)
	c.offsets = append(c.offsets, c.offsets[len(c.offsets)-1])
}

// Keys returns the key vector.
func (c *MapColumn) Keys() Vector { return c.keys }

// Values returns the value vector.
func (c *MapColumn) Values() Vector { return c.values }

// Offsets returns the map boundaries; it has Len()+1 entries.
func (c *MapColumn) Offsets() []int32 { return c.offsets }

// FieldType implements the Vector interface.
func (c *MapColumn) FieldType() *types.FieldType { return c.tp }

// Encoding implements the Vector interface.
func (*MapColumn) Encoding() Encoding { return EncodingFlat }

// Len implements the Vector interface.
func (c *MapColumn) Len() int { return len(c.offsets) - 1 }

// IsNull implements the Vector interface.
func (c *MapColumn) IsNull(i int) bool { return c.nulls.isNull(i) }

// GetInt64 implements the Vector interface.
func (c *MapColumn) GetInt64(int) int64 {
	panicNotScalar("GetInt64", c.tp)
	return 0
}

// GetString implements the Vector interface.
func (c *MapColumn) GetString(int) string {
	panicNotScalar("GetString", c.tp)
	return ""
}

// GetDatum implements the Vector interface.
func (c *MapColumn) GetDatum(i int) types.Datum {
	if c.IsNull(i) {
		return types.Datum{}
	}
	start, end := int(c.offsets[i]), int(c.offsets[i+1])
	keys := make([]types.Datum, 0, end-start)
	values := make([]types.Datum, 0, end-start)
	for j := start; j < end; j++ {
		keys = append(keys, c.keys.GetDatum(j))
		values = append(values, c.values.GetDatum(j))
	}
	return types.NewMapDatum(keys, values)
}

// RowColumn is a flat vector of rows; field j of row i is fields[j] at i.
type RowColumn struct {
	tp     *types.FieldType
	length int
	nulls  nullMask
	fields []Vector
}

// NewRowColumn creates a row vector. names may be nil; nulls may be nil when
// no row is null. With no fields the length is taken from nulls.
func NewRowColumn(names []string, fields []Vector, nulls []bool) (*RowColumn, error) {
	length := len(nulls)
	if len(fields) > 0 {
		length = fields[0].Len()
	}
	fieldTypes := make([]*types.FieldType, 0, len(fields))
	for i, f := range fields {
		if f.Len() != length {
			return nil, errors.Errorf("row field %d has %d rows, expected %d", i, f.Len(), length)
		}
		fieldTypes = append(fieldTypes, f.FieldType())
	}
	if nulls != nil && len(nulls) != length {
		return nil, errors.Errorf("row null mask has %d entries, expected %d", len(nulls), length)
	}
	return &RowColumn{
		tp:     types.NewRowType(names, fieldTypes),
		length: length,
		nulls:  nulls,
		fields: fields,
	}, nil
}

// Field returns the j-th field vector.
func (c *RowColumn) Field(j int) Vector { return c.fields[j] }

// NumFields returns the number of fields.
func (c *RowColumn) NumFields() int { return len(c.fields) }

// FieldType implements the Vector interface.
func (c *RowColumn) FieldType() *types.FieldType { return c.tp }

// Encoding implements the Vector interface.
func (*RowColumn) Encoding() Encoding { return EncodingFlat }

// Len implements the Vector interface.
func (c *RowColumn) Len() int { return c.length }

// IsNull implements the Vector interface.
func (c *RowColumn) IsNull(i int) bool { return c.nulls.isNull(i) }

// GetInt64 implements the Vector interface.
func (c *RowColumn) GetInt64(int) int64 {
	panicNotScalar("GetInt64", c.tp)
	return 0
}

// GetString implements the Vector interface.
func (c *RowColumn) GetString(int) string {
	panicNotScalar("GetString", c.tp)
	return ""
}

// GetDatum implements the Vector interface.
func (c *RowColumn) GetDatum(i int) types.Datum {
	if c.IsNull(i) {
		return types.Datum{}
	}
	fields := make([]types.Datum, 0, len(c.fields))
	for _, f := range c.fields {
		fields = append(fields, f.GetDatum(i))
	}
	return types.NewRowDatum(fields...)
}
