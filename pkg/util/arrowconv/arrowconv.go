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

package arrowconv

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pingcap/errors"
	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/chunk"
)

// ArrowType returns the Arrow data type values of tp are exported as.
func ArrowType(tp *types.FieldType) (arrow.DataType, error) {
	switch tp.GetType() {
	case types.TypeTinyInt:
		return arrow.PrimitiveTypes.Int8, nil
	case types.TypeSmallInt:
		return arrow.PrimitiveTypes.Int16, nil
	case types.TypeInteger:
		return arrow.PrimitiveTypes.Int32, nil
	case types.TypeBigInt:
		return arrow.PrimitiveTypes.Int64, nil
	case types.TypeVarchar, types.TypeJSON:
		return arrow.BinaryTypes.String, nil
	case types.TypeArray:
		elem, err := ArrowType(tp.ArrayElem())
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(elem), nil
	case types.TypeMap:
		key, err := ArrowType(tp.MapKey())
		if err != nil {
			return nil, err
		}
		value, err := ArrowType(tp.MapValue())
		if err != nil {
			return nil, err
		}
		return arrow.MapOf(key, value), nil
	case types.TypeRow:
		fields := make([]arrow.Field, 0, len(tp.ElemTypes()))
		for i, elem := range tp.ElemTypes() {
			dt, err := ArrowType(elem)
			if err != nil {
				return nil, err
			}
			fields = append(fields, arrow.Field{Name: tp.FieldNames()[i], Type: dt, Nullable: true})
		}
		return arrow.StructOf(fields...), nil
	case types.TypeUnspecified:
	}
	return nil, errors.Errorf("type %s has no arrow representation", tp)
}

// ToArrow exports v as an Arrow array allocated from mem. A dictionary vector
// over a scalar base keeps its encoding and becomes an *array.Dictionary with
// int32 indices; every other vector is materialized. The caller must Release
// the result.
func ToArrow(mem memory.Allocator, v chunk.Vector) (arrow.Array, error) {
	if dict, ok := v.(*chunk.DictionaryVector); ok && dict.FieldType().IsScalar() {
		return dictionaryToArrow(mem, dict)
	}
	dt, err := ArrowType(v.FieldType())
	if err != nil {
		return nil, err
	}
	b := array.NewBuilder(mem, dt)
	defer b.Release()
	b.Reserve(v.Len())
	for i := 0; i < v.Len(); i++ {
		if err := appendValue(b, v, i); err != nil {
			return nil, err
		}
	}
	return b.NewArray(), nil
}

func dictionaryToArrow(mem memory.Allocator, dict *chunk.DictionaryVector) (arrow.Array, error) {
	values, err := ToArrow(mem, dict.Base())
	if err != nil {
		return nil, err
	}
	defer values.Release()

	ib := array.NewInt32Builder(mem)
	defer ib.Release()
	ib.Reserve(dict.Len())
	nulls := dict.Nulls()
	for i, idx := range dict.Indices() {
		if idx == chunk.NullIndex || (nulls != nil && nulls[i]) {
			ib.AppendNull()
			continue
		}
		ib.Append(idx)
	}
	indices := ib.NewArray()
	defer indices.Release()

	dt := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: values.DataType()}
	return array.NewDictionaryArray(dt, indices, values), nil
}

// resolve maps row i of v to the flat vector and row holding its value.
func resolve(v chunk.Vector, i int) (chunk.Vector, int) {
	for {
		switch x := v.(type) {
		case *chunk.ConstantVector:
			v, i = x.Base(), x.Index()
		case *chunk.DictionaryVector:
			v, i = x.Base(), int(x.Indices()[i])
		default:
			return v, i
		}
	}
}

func appendValue(b array.Builder, v chunk.Vector, i int) error {
	if v.IsNull(i) {
		b.AppendNull()
		return nil
	}
	switch builder := b.(type) {
	case *array.Int8Builder:
		builder.Append(int8(v.GetInt64(i)))
	case *array.Int16Builder:
		builder.Append(int16(v.GetInt64(i)))
	case *array.Int32Builder:
		builder.Append(int32(v.GetInt64(i)))
	case *array.Int64Builder:
		builder.Append(v.GetInt64(i))
	case *array.StringBuilder:
		builder.Append(v.GetString(i))
	case *array.ListBuilder:
		arrays, row := resolve(v, i)
		col, ok := arrays.(*chunk.ArrayColumn)
		if !ok {
			return errors.Errorf("unexpected array vector %T", arrays)
		}
		builder.Append(true)
		offsets := col.Offsets()
		for j := offsets[row]; j < offsets[row+1]; j++ {
			if err := appendValue(builder.ValueBuilder(), col.Elems(), int(j)); err != nil {
				return err
			}
		}
	case *array.MapBuilder:
		maps, row := resolve(v, i)
		col, ok := maps.(*chunk.MapColumn)
		if !ok {
			return errors.Errorf("unexpected map vector %T", maps)
		}
		builder.Append(true)
		offsets := col.Offsets()
		for j := offsets[row]; j < offsets[row+1]; j++ {
			if err := appendValue(builder.KeyBuilder(), col.Keys(), int(j)); err != nil {
				return err
			}
			if err := appendValue(builder.ItemBuilder(), col.Values(), int(j)); err != nil {
				return err
			}
		}
	case *array.StructBuilder:
		rows, row := resolve(v, i)
		col, ok := rows.(*chunk.RowColumn)
		if !ok {
			return errors.Errorf("unexpected row vector %T", rows)
		}
		builder.Append(true)
		for j := 0; j < col.NumFields(); j++ {
			if err := appendValue(builder.FieldBuilder(j), col.Field(j), row); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("unsupported arrow builder %T", b)
	}
	return nil
}
