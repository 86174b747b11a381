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
	"github.com/pingcap/errors"
	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/chunk"
)

// TestingDictionaryName is the name TestingDictionaryFunction registers under.
const TestingDictionaryName = "testing_dictionary"

// TestingDictionaryFunction returns its only argument wrapped in a dictionary
// whose indices are supplied by the caller. The logical values only change by
// the permutation, which lets tests feed dictionary encoded input to the
// expressions above it.
type TestingDictionaryFunction struct {
	BaseFunction
	indices func(numRows int) []int32
}

// NewTestingDictionaryFunction creates the function. indices returns the
// dictionary indices for a batch of numRows rows.
func NewTestingDictionaryFunction(indices func(numRows int) []int32) *TestingDictionaryFunction {
	return &TestingDictionaryFunction{
		BaseFunction: NewBaseFunction(TestingDictionaryName, 1, 1),
		indices:      indices,
	}
}

// EvalVec implements the VectorFunction interface.
func (f *TestingDictionaryFunction) EvalVec(_ EvalContext, args []chunk.Vector, retType *types.FieldType, numRows int) (chunk.Vector, error) {
	if !retType.Equal(args[0].FieldType()) {
		return nil, errors.Errorf("%s returns %s but its argument is %s", f.funcName, retType, args[0].FieldType())
	}
	indices := f.indices(numRows)
	if len(indices) != numRows {
		return nil, errors.Errorf("%s got %d indices for %d rows", f.funcName, len(indices), numRows)
	}
	dict, err := chunk.NewDictionary(indices, args[0])
	if err != nil {
		return nil, err
	}
	return dict, nil
}
