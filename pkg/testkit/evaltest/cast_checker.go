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

package evaltest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vexdb/vexcast/pkg/expression"
	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/chunk"
)

// constantRows is the length of the constant vectors built by CheckCast.
const constantRows = 5

// CastChecker evaluates casts over the same logical input in several
// encodings and checks that the results agree.
type CastChecker struct {
	require  *require.Assertions
	t        testing.TB
	registry *expression.FunctionRegistry
	opts     []expression.EvaluatorOption
}

// NewCastChecker returns a new *CastChecker. opts are applied to every
// evaluator it creates, before the encoding peeling option.
func NewCastChecker(t testing.TB, opts ...expression.EvaluatorOption) *CastChecker {
	registry, err := expression.NewFunctionRegistry(expression.NewTestingDictionaryFunction(chunk.ReverseIndices))
	require.NoError(t, err)
	return &CastChecker{
		require:  require.New(t),
		t:        t,
		registry: registry,
		opts:     opts,
	}
}

// Registry returns the function registry the checker evaluates with.
func (c *CastChecker) Registry() *expression.FunctionRegistry {
	return c.registry
}

func (c *CastChecker) newEvaluator(peeling bool) *expression.Evaluator {
	opts := append(append([]expression.EvaluatorOption(nil), c.opts...), expression.WithEncodingPeeling(peeling))
	return expression.NewEvaluator(c.registry, opts...)
}

// castExpr builds CAST(c0 AS to), or CAST(testing_dictionary(c0) AS to).
func (c *CastChecker) castExpr(from, to *types.FieldType, dictionary bool) expression.TypedExpr {
	var arg expression.TypedExpr = expression.NewFieldAccess(from, "c0")
	if dictionary {
		call, err := expression.NewCallExpr(c.registry, expression.TestingDictionaryName, from, arg)
		c.require.NoError(err)
		arg = call
	}
	cast, err := expression.NewCastExpr(to, []expression.TypedExpr{arg}, false)
	c.require.NoError(err)
	return cast
}

// EvalCast evaluates CAST(c0 AS to) over a batch holding input as c0. With
// dictionary the input is first passed through testing_dictionary.
func (c *CastChecker) EvalCast(from, to *types.FieldType, input chunk.Vector, dictionary, peeling bool) (chunk.Vector, error) {
	batch, err := chunk.NewBatchFromVectors(input)
	c.require.NoError(err)
	return c.newEvaluator(peeling).Eval(c.castExpr(from, to, dictionary), batch)
}

// CheckCast checks that casting input from from to to yields expected when
// input is flat, when its first value is repeated as a constant, and when it
// is reversed through a dictionary. Each case runs with and without encoding
// peeling.
func (c *CastChecker) CheckCast(from, to *types.FieldType, input, expected chunk.Vector) {
	c.require.Equal(input.Len(), expected.Len(), "input and expected lengths differ")
	for _, peeling := range []bool{true, false} {
		c.checkFlat(from, to, input, expected, peeling)
		if input.Len() > 0 {
			c.checkConstant(from, to, input, expected, peeling)
		}
		c.checkDictionary(from, to, input, expected, peeling)
	}
}

func (c *CastChecker) checkFlat(from, to *types.FieldType, input, expected chunk.Vector, peeling bool) {
	result, err := c.EvalCast(from, to, input, false, peeling)
	c.require.NoError(err)
	c.requireEquivalent(expected, result, "flat", peeling)

	again, err := c.EvalCast(from, to, input, false, peeling)
	c.require.NoError(err)
	c.require.NoError(chunk.Equivalent(result, again), "re-evaluation differs")
}

func (c *CastChecker) checkConstant(from, to *types.FieldType, input, expected chunk.Vector, peeling bool) {
	constInput := chunk.NewConstant(input, 0, constantRows)
	constExpected := chunk.NewConstant(expected, 0, constantRows)
	result, err := c.EvalCast(from, to, constInput, false, peeling)
	c.require.NoError(err)
	c.requireEquivalent(constExpected, result, "constant", peeling)
	if peeling && !from.Equal(to) {
		c.require.Equal(chunk.EncodingConstant, result.Encoding())
	}
}

func (c *CastChecker) checkDictionary(from, to *types.FieldType, input, expected chunk.Vector, peeling bool) {
	dictExpected, err := chunk.NewDictionary(chunk.ReverseIndices(expected.Len()), expected)
	c.require.NoError(err)
	result, err := c.EvalCast(from, to, input, true, peeling)
	c.require.NoError(err)
	c.requireEquivalent(dictExpected, result, "dictionary", peeling)
	if from.Equal(to) {
		return
	}
	if peeling {
		c.require.Equal(chunk.EncodingDictionary, result.Encoding())
	} else {
		c.require.Equal(chunk.EncodingFlat, result.Encoding())
	}
}

func (c *CastChecker) requireEquivalent(expected, actual chunk.Vector, encoding string, peeling bool) {
	c.require.NoError(chunk.Equivalent(expected, actual), "%s input, peeling=%v", encoding, peeling)
	if actual.FieldType().GetType() != types.TypeJSON {
		return
	}
	for i := 0; i < actual.Len(); i++ {
		if actual.IsNull(i) {
			continue
		}
		text := actual.GetString(i)
		c.require.True(types.IsValidJSON(text), "invalid JSON %q at row %d", text, i)
	}
}

// CheckCastFails checks that casting input from from to to fails with
// ErrCastUnsupported whatever the input encoding.
func (c *CastChecker) CheckCastFails(from, to *types.FieldType, input chunk.Vector) {
	for _, peeling := range []bool{true, false} {
		for _, dictionary := range []bool{false, true} {
			_, err := c.EvalCast(from, to, input, dictionary, peeling)
			c.require.Error(err)
			c.require.True(expression.ErrCastUnsupported.Equal(err), "unexpected error: %v", err)
		}
	}
}
