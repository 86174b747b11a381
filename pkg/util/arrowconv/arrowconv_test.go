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
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/chunk"
)

func bigintColumn(vals ...any) *chunk.Column {
	col := chunk.NewColumn(types.NewFieldType(types.TypeBigInt), len(vals))
	for _, v := range vals {
		if v == nil {
			col.AppendNull()
			continue
		}
		col.AppendInt64(int64(v.(int)))
	}
	return col
}

func varcharColumn(vals ...any) *chunk.Column {
	col := chunk.NewColumn(types.NewFieldType(types.TypeVarchar), len(vals))
	for _, v := range vals {
		if v == nil {
			col.AppendNull()
			continue
		}
		col.AppendString(v.(string))
	}
	return col
}

func TestArrowType(t *testing.T) {
	bigint := types.NewFieldType(types.TypeBigInt)
	cases := []struct {
		tp   *types.FieldType
		want arrow.DataType
	}{
		{types.NewFieldType(types.TypeTinyInt), arrow.PrimitiveTypes.Int8},
		{types.NewFieldType(types.TypeSmallInt), arrow.PrimitiveTypes.Int16},
		{types.NewFieldType(types.TypeInteger), arrow.PrimitiveTypes.Int32},
		{bigint, arrow.PrimitiveTypes.Int64},
		{types.NewFieldType(types.TypeJSON), arrow.BinaryTypes.String},
		{types.NewArrayType(bigint), arrow.ListOf(arrow.PrimitiveTypes.Int64)},
		{types.NewMapType(bigint, bigint), arrow.MapOf(arrow.PrimitiveTypes.Int64, arrow.PrimitiveTypes.Int64)},
	}
	for _, c := range cases {
		dt, err := ArrowType(c.tp)
		require.NoError(t, err, c.tp.String())
		require.True(t, arrow.TypeEqual(c.want, dt), "%s: %s", c.tp, dt)
	}

	dt, err := ArrowType(types.NewRowType([]string{"a"}, []*types.FieldType{bigint}))
	require.NoError(t, err)
	st := dt.(*arrow.StructType)
	require.Equal(t, "a", st.Field(0).Name)

	_, err = ArrowType(types.NewFieldType(types.TypeUnspecified))
	require.Error(t, err)
}

func TestFlatToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr, err := ToArrow(mem, bigintColumn(1, nil, -3))
	require.NoError(t, err)
	defer arr.Release()
	ints := arr.(*array.Int64)
	require.Equal(t, 3, ints.Len())
	require.Equal(t, int64(1), ints.Value(0))
	require.True(t, ints.IsNull(1))
	require.Equal(t, int64(-3), ints.Value(2))

	sarr, err := ToArrow(mem, varcharColumn("a", nil))
	require.NoError(t, err)
	defer sarr.Release()
	strs := sarr.(*array.String)
	require.Equal(t, "a", strs.Value(0))
	require.True(t, strs.IsNull(1))
}

func TestDictionaryToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	dict, err := chunk.NewDictionaryWithNulls([]int32{2, chunk.NullIndex, 0, 1}, []bool{false, false, false, true}, varcharColumn("x", "y", nil))
	require.NoError(t, err)
	arr, err := ToArrow(mem, dict)
	require.NoError(t, err)
	defer arr.Release()

	d := arr.(*array.Dictionary)
	require.Equal(t, 4, d.Len())
	require.True(t, d.IsNull(1))
	require.True(t, d.IsNull(3))
	require.Equal(t, 0, d.GetValueIndex(2))
	values := d.Dictionary().(*array.String)
	require.Equal(t, 3, values.Len())
	require.Equal(t, "x", values.Value(d.GetValueIndex(2)))
	require.True(t, values.IsNull(d.GetValueIndex(0)))
}

func TestConstantToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	arr, err := ToArrow(mem, chunk.NewConstant(bigintColumn(1, 7), 1, 3))
	require.NoError(t, err)
	defer arr.Release()
	ints := arr.(*array.Int64)
	require.Equal(t, []int64{7, 7, 7}, ints.Int64Values())

	null, err := ToArrow(mem, chunk.NewNullConstant(types.NewFieldType(types.TypeJSON), 2))
	require.NoError(t, err)
	defer null.Release()
	require.Equal(t, 2, null.NullN())
}

func TestNestedToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	maps, err := chunk.NewMapColumn(bigintColumn(1, 2, 3), varcharColumn("a", "b", nil))
	require.NoError(t, err)
	maps.AppendMap(2)
	maps.AppendNull()
	maps.AppendMap(1)
	lists := chunk.NewArrayColumn(bigintColumn(5, 6))
	lists.AppendArray(0)
	lists.AppendArray(2)
	lists.AppendNull()
	rows, err := chunk.NewRowColumn([]string{"m", "l"}, []chunk.Vector{maps, lists}, nil)
	require.NoError(t, err)

	arr, err := ToArrow(mem, rows)
	require.NoError(t, err)
	defer arr.Release()
	st := arr.(*array.Struct)
	require.Equal(t, 3, st.Len())

	m := st.Field(0).(*array.Map)
	require.True(t, m.IsNull(1))
	start, end := m.ValueOffsets(0)
	require.Equal(t, int64(0), start)
	require.Equal(t, int64(2), end)
	require.Equal(t, int64(2), m.Keys().(*array.Int64).Value(1))
	require.True(t, m.Items().IsNull(2))

	l := st.Field(1).(*array.List)
	start, end = l.ValueOffsets(1)
	require.Equal(t, int64(2), end-start)
	require.True(t, l.IsNull(2))

	reversed, err := chunk.NewDictionary(chunk.ReverseIndices(3), rows)
	require.NoError(t, err)
	rarr, err := ToArrow(mem, reversed)
	require.NoError(t, err)
	defer rarr.Release()
	rl := rarr.(*array.Struct).Field(1).(*array.List)
	require.True(t, rl.IsNull(0))
	start, end = rl.ValueOffsets(2)
	require.Equal(t, start, end)
}
