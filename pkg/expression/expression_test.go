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

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/chunk"
)

type identityFunction struct {
	BaseFunction
}

func (*identityFunction) EvalVec(_ EvalContext, args []chunk.Vector, _ *types.FieldType, _ int) (chunk.Vector, error) {
	return args[0], nil
}

func newTestRegistry(t *testing.T) *FunctionRegistry {
	registry, err := NewFunctionRegistry(
		NewTestingDictionaryFunction(chunk.ReverseIndices),
		&identityFunction{NewBaseFunction("identity", 1, -1)},
	)
	require.NoError(t, err)
	return registry
}

func TestFunctionRegistry(t *testing.T) {
	registry := newTestRegistry(t)

	fn, err := registry.Lookup("TESTING_DICTIONARY")
	require.NoError(t, err)
	require.Equal(t, TestingDictionaryName, fn.Name())

	_, err = registry.Lookup("nope")
	require.True(t, ErrFunctionNotExists.Equal(err))
	require.ErrorContains(t, err, "FUNCTION nope does not exist")

	err = registry.Register(&identityFunction{NewBaseFunction("Identity", 1, 1)})
	require.True(t, ErrFunctionAlreadyExists.Equal(err))

	_, err = NewFunctionRegistry(&identityFunction{NewBaseFunction("a", 1, 1)}, &identityFunction{NewBaseFunction("a", 1, 1)})
	require.True(t, ErrFunctionAlreadyExists.Equal(err))

	var nilRegistry *FunctionRegistry
	_, err = nilRegistry.Lookup("identity")
	require.True(t, ErrFunctionNotExists.Equal(err))
}

func TestNewCallExpr(t *testing.T) {
	registry := newTestRegistry(t)
	bigint := types.NewFieldType(types.TypeBigInt)
	a, b := NewFieldAccess(bigint, "a"), NewFieldAccess(bigint, "b")

	call, err := NewCallExpr(registry, "testing_dictionary", bigint, a)
	require.NoError(t, err)
	require.Equal(t, "testing_dictionary(a)", call.String())
	require.Equal(t, []TypedExpr{a}, call.Children())
	require.Same(t, bigint, call.GetType())

	_, err = NewCallExpr(registry, "testing_dictionary", bigint, a, b)
	require.True(t, ErrIncorrectParameterCount.Equal(err))
	require.ErrorContains(t, err, "Incorrect parameter count in the call to native function 'testing_dictionary'")
	_, err = NewCallExpr(registry, "testing_dictionary", bigint)
	require.True(t, ErrIncorrectParameterCount.Equal(err))

	call, err = NewCallExpr(registry, "identity", bigint, a, b, a)
	require.NoError(t, err)
	require.Equal(t, "identity(a, b, a)", call.String())
	_, err = NewCallExpr(registry, "identity", bigint)
	require.True(t, ErrIncorrectParameterCount.Equal(err))

	_, err = NewCallExpr(registry, "missing", bigint, a)
	require.True(t, ErrFunctionNotExists.Equal(err))
}

func TestNewCastExpr(t *testing.T) {
	bigint := types.NewFieldType(types.TypeBigInt)
	json := types.NewFieldType(types.TypeJSON)
	a := NewFieldAccess(bigint, "a")

	cast, err := NewCastExpr(json, []TypedExpr{a}, false)
	require.NoError(t, err)
	require.Equal(t, "CAST(a AS JSON)", cast.String())
	require.False(t, cast.NullOnFailure())
	require.Same(t, a, cast.Arg())
	require.Equal(t, []TypedExpr{a}, cast.Children())
	require.Nil(t, a.Children())

	_, err = NewCastExpr(json, nil, false)
	require.True(t, ErrIncorrectParameterCount.Equal(err))
	_, err = NewCastExpr(json, []TypedExpr{a, a}, true)
	require.True(t, ErrIncorrectParameterCount.Equal(err))
	_, err = NewCastExpr(nil, []TypedExpr{a}, false)
	require.Error(t, err)
}

func TestEvalFieldAccess(t *testing.T) {
	col := chunk.NewColumn(types.NewFieldType(types.TypeBigInt), 1)
	col.AppendInt64(1)
	batch, err := chunk.NewBatch([]string{"a"}, []chunk.Vector{col})
	require.NoError(t, err)
	e := NewEvaluator(nil)

	vec, err := e.Eval(NewFieldAccess(types.NewFieldType(types.TypeBigInt), "a"), batch)
	require.NoError(t, err)
	require.Same(t, col, vec)

	_, err = e.Eval(NewFieldAccess(types.NewFieldType(types.TypeBigInt), "b"), batch)
	require.True(t, ErrUnknownColumn.Equal(err))
	require.ErrorContains(t, err, "Unknown column 'b' in 'batch'")

	_, err = e.Eval(NewFieldAccess(types.NewFieldType(types.TypeVarchar), "a"), batch)
	require.True(t, ErrColumnTypeMismatch.Equal(err))
	require.ErrorContains(t, err, "Column 'a' has type BIGINT, but the expression expects VARCHAR")
}

func TestEvalCall(t *testing.T) {
	registry := newTestRegistry(t)
	bigint := types.NewFieldType(types.TypeBigInt)
	col := chunk.NewColumn(bigint, 3)
	col.AppendInt64(1)
	col.AppendNull()
	col.AppendInt64(3)
	batch, err := chunk.NewBatchFromVectors(col)
	require.NoError(t, err)

	call, err := NewCallExpr(registry, TestingDictionaryName, bigint, NewFieldAccess(bigint, "c0"))
	require.NoError(t, err)
	require.Equal(t, TestingDictionaryName, call.Function().Name())
	e := NewEvaluator(nil)
	vec, err := e.Eval(call, batch)
	require.NoError(t, err)
	require.Equal(t, chunk.EncodingDictionary, vec.Encoding())
	require.Equal(t, int64(3), vec.GetInt64(0))
	require.True(t, vec.IsNull(1))
	require.Equal(t, int64(1), vec.GetInt64(2))

	wrongType, err := NewCallExpr(registry, TestingDictionaryName, types.NewFieldType(types.TypeJSON), NewFieldAccess(bigint, "c0"))
	require.NoError(t, err)
	_, err = e.Eval(wrongType, batch)
	require.Error(t, err)

	// Each call keeps the function it was built with.
	callWith := func(indices func(int) []int32) *CallExpr {
		r, err := NewFunctionRegistry(NewTestingDictionaryFunction(indices))
		require.NoError(t, err)
		c, err := NewCallExpr(r, TestingDictionaryName, bigint, NewFieldAccess(bigint, "c0"))
		require.NoError(t, err)
		return c
	}
	_, err = e.Eval(callWith(func(int) []int32 { return []int32{0} }), batch)
	require.ErrorContains(t, err, "got 1 indices for 3 rows")

	_, err = e.Eval(callWith(func(n int) []int32 { return make([]int32, n-1) }), batch)
	require.Error(t, err)

	_, err = e.Eval(callWith(func(n int) []int32 {
		indices := chunk.ReverseIndices(n)
		indices[0] = int32(n)
		return indices
	}), batch)
	require.True(t, chunk.ErrMalformedEncoding.Equal(err))

	vec, err = NewEvaluator(registry).Eval(call, batch)
	require.NoError(t, err)
	require.Equal(t, int64(3), vec.GetInt64(0))

	// An evaluator bound to a catalog only runs calls that catalog knows.
	empty, err := NewFunctionRegistry()
	require.NoError(t, err)
	_, err = NewEvaluator(empty).Eval(call, batch)
	require.True(t, ErrFunctionNotExists.Equal(err))
}

func TestJSONSerializerGate(t *testing.T) {
	json := types.NewFieldType(types.TypeJSON)
	bigint := types.NewFieldType(types.TypeBigInt)
	for _, tp := range []types.TypeKind{types.TypeTinyInt, types.TypeSmallInt, types.TypeInteger, types.TypeBigInt, types.TypeVarchar, types.TypeJSON} {
		ser, err := jsonSerializerFor(types.NewFieldType(tp), json)
		require.NoError(t, err, tp.String())
		require.NotNil(t, ser)
	}

	mapType := types.NewMapType(bigint, bigint)
	cases := []struct {
		tp        *types.FieldType
		offending string
	}{
		{mapType, "MAP<BIGINT,BIGINT>"},
		{types.NewArrayType(bigint), "ARRAY<BIGINT>"},
		{types.NewRowType(nil, []*types.FieldType{bigint, mapType}), "MAP<BIGINT,BIGINT>"},
		{types.NewArrayType(types.NewRowType(nil, []*types.FieldType{bigint})), "ROW<c0:BIGINT>"},
		{types.NewRowType(nil, nil), "ROW<>"},
		{types.NewFieldType(types.TypeUnspecified), "UNSPECIFIED"},
	}
	for _, c := range cases {
		_, err := jsonSerializerFor(c.tp, json)
		require.True(t, ErrCastUnsupported.Equal(err), c.tp.String())
		require.ErrorContains(t, err, "Cannot cast "+c.offending+" to JSON")
	}
}
