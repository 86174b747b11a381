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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vexdb/vexcast/pkg/types"
)

func newBigintColumn(vals ...any) *Column {
	col := NewColumn(types.NewFieldType(types.TypeBigInt), len(vals))
	for _, v := range vals {
		if v == nil {
			col.AppendNull()
			continue
		}
		col.AppendInt64(v.(int64))
	}
	return col
}

func newVarcharColumn(vals ...any) *Column {
	col := NewColumn(types.NewFieldType(types.TypeVarchar), len(vals))
	for _, v := range vals {
		if v == nil {
			col.AppendNull()
			continue
		}
		col.AppendString(v.(string))
	}
	return col
}

func TestFixedLenColumn(t *testing.T) {
	col := newBigintColumn(int64(1), nil, int64(math.MaxInt64), int64(math.MinInt64), int64(-3), int64(0), int64(7), int64(8), nil)
	require.Equal(t, 9, col.Len())
	require.Equal(t, EncodingFlat, col.Encoding())
	require.Equal(t, 2, col.NullCount())
	require.False(t, col.IsNull(0))
	require.True(t, col.IsNull(1))
	require.True(t, col.IsNull(8))
	require.Equal(t, int64(math.MaxInt64), col.GetInt64(2))
	require.Equal(t, int64(math.MinInt64), col.GetInt64(3))
	require.Equal(t, []int64{1, 0, math.MaxInt64, math.MinInt64, -3, 0, 7, 8, 0}, col.Int64s())

	d := col.GetDatum(4)
	require.Equal(t, types.KindInt64, d.Kind())
	require.Equal(t, int64(-3), d.GetInt64())
	d = col.GetDatum(1)
	require.True(t, d.IsNull())

	require.Panics(t, func() { col.AppendString("x") })
	require.Panics(t, func() { col.GetString(0) })
}

func TestVarLenColumn(t *testing.T) {
	col := newVarcharColumn("abc", nil, "", "中文")
	require.Equal(t, 4, col.Len())
	require.Equal(t, "abc", col.GetString(0))
	require.True(t, col.IsNull(1))
	require.False(t, col.IsNull(2))
	require.Equal(t, "", col.GetString(2))
	require.Equal(t, []byte("中文"), col.GetBytes(3))
	require.Panics(t, func() { col.AppendInt64(1) })
	require.Panics(t, func() { col.Int64s() })

	js := NewColumn(types.NewFieldType(types.TypeJSON), 2)
	js.AppendJSON(`"a"`)
	js.AppendDatum(types.Datum{})
	d := js.GetDatum(0)
	require.Equal(t, types.KindJSON, d.Kind())
	require.Equal(t, `"a"`, d.GetString())
	require.True(t, js.IsNull(1))
}

func TestNewColumnRejectsContainer(t *testing.T) {
	require.Panics(t, func() {
		NewColumn(types.NewArrayType(types.NewFieldType(types.TypeBigInt)), 1)
	})
}

func TestColumnMemoryUsage(t *testing.T) {
	col := NewColumn(types.NewFieldType(types.TypeBigInt), 16)
	require.Equal(t, int64(16*8+2+8), col.MemoryUsage())
}
