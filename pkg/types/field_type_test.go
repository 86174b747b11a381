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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldTypeString(t *testing.T) {
	bigint := NewFieldType(TypeBigInt)
	require.Equal(t, "BIGINT", bigint.String())
	require.Equal(t, "ARRAY<VARCHAR>", NewArrayType(NewFieldType(TypeVarchar)).String())
	require.Equal(t, "MAP<BIGINT,JSON>", NewMapType(bigint, NewFieldType(TypeJSON)).String())

	row := NewRowType(nil, []*FieldType{NewMapType(bigint, bigint)})
	require.Equal(t, "ROW<c0:MAP<BIGINT,BIGINT>>", row.String())
	require.Equal(t, []string{"c0"}, row.FieldNames())

	named := NewRowType([]string{"a", "b"}, []*FieldType{bigint, NewFieldType(TypeVarchar)})
	require.Equal(t, "ROW<a:BIGINT,b:VARCHAR>", named.String())
}

func TestFieldTypeKinds(t *testing.T) {
	for _, tp := range []TypeKind{TypeTinyInt, TypeSmallInt, TypeInteger, TypeBigInt} {
		require.True(t, tp.IsInteger(), tp.String())
		require.False(t, tp.IsContainer(), tp.String())
	}
	for _, tp := range []TypeKind{TypeArray, TypeMap, TypeRow} {
		require.True(t, tp.IsContainer(), tp.String())
		require.False(t, tp.IsInteger(), tp.String())
	}
	require.False(t, TypeVarchar.IsInteger())
	require.False(t, TypeJSON.IsContainer())
	require.Equal(t, "TYPE(200)", TypeKind(200).String())
	require.Panics(t, func() { NewFieldType(TypeArray) })
}

func TestFieldTypeEqual(t *testing.T) {
	a := NewMapType(NewFieldType(TypeBigInt), NewArrayType(NewFieldType(TypeJSON)))
	b := NewMapType(NewFieldType(TypeBigInt), NewArrayType(NewFieldType(TypeJSON)))
	c := NewMapType(NewFieldType(TypeBigInt), NewArrayType(NewFieldType(TypeVarchar)))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, NewFieldType(TypeInteger).Equal(NewFieldType(TypeBigInt)))

	r1 := NewRowType([]string{"a"}, []*FieldType{NewFieldType(TypeBigInt)})
	r2 := NewRowType([]string{"b"}, []*FieldType{NewFieldType(TypeBigInt)})
	require.False(t, r1.Equal(r2))
	require.True(t, r1.Equal(NewRowType([]string{"a"}, []*FieldType{NewFieldType(TypeBigInt)})))
}

func TestParseFieldType(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"bigint", "BIGINT"},
		{"  TinyInt ", "TINYINT"},
		{"int", "INTEGER"},
		{"text", "VARCHAR"},
		{"json", "JSON"},
		{"array(varchar)", "ARRAY<VARCHAR>"},
		{"map(bigint, array(json))", "MAP<BIGINT,ARRAY<JSON>>"},
		{"row(a bigint, b varchar)", "ROW<a:BIGINT,b:VARCHAR>"},
		{"ROW<c0:MAP<BIGINT,BIGINT>>", "ROW<c0:MAP<BIGINT,BIGINT>>"},
	}
	for _, c := range cases {
		ft, err := ParseFieldType(c.src)
		require.NoError(t, err, c.src)
		require.Equal(t, c.want, ft.String(), c.src)
		again, err := ParseFieldType(ft.String())
		require.NoError(t, err)
		require.True(t, ft.Equal(again), c.src)
	}
}

func TestParseFieldTypeError(t *testing.T) {
	for _, src := range []string{
		"",
		"double",
		"array",
		"array(bigint",
		"map(bigint)",
		"row()",
		"bigint bigint",
		"array(bigint>",
	} {
		_, err := ParseFieldType(src)
		require.Error(t, err, src)
		require.True(t, ErrInvalidFieldType.Equal(err), src)
	}
}
