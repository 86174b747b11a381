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
	"github.com/vexdb/vexcast/pkg/util/chunk"
)

// Evaluator evaluates typed expression trees over batches. It holds no state
// that changes during evaluation, so one Evaluator may evaluate many batches
// concurrently.
type Evaluator struct {
	registry       *FunctionRegistry
	alloc          chunk.Allocator
	encodingPeeled bool
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithAllocator sets the allocator for result columns.
func WithAllocator(alloc chunk.Allocator) EvaluatorOption {
	return func(e *Evaluator) {
		e.alloc = alloc
	}
}

// WithEncodingPeeling controls whether casts over constant and dictionary
// inputs convert only the referenced base values and rewrap the result in the
// input's encoding. When disabled, every logical position is converted into a
// flat result. It is enabled by default.
func WithEncodingPeeling(enable bool) EvaluatorOption {
	return func(e *Evaluator) {
		e.encodingPeeled = enable
	}
}

// NewEvaluator creates an Evaluator. A call runs the function NewCallExpr
// bound to it; when registry is not nil the call's function name must also be
// registered there, so expressions built against another catalog are rejected.
func NewEvaluator(registry *FunctionRegistry, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		registry:       registry,
		alloc:          chunk.DefaultAllocator{},
		encodingPeeled: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Allocator implements the EvalContext interface.
func (e *Evaluator) Allocator() chunk.Allocator {
	return e.alloc
}

// Eval evaluates expr over batch. The result has batch.NumRows() rows and may
// share memory with the input vectors.
func (e *Evaluator) Eval(expr TypedExpr, batch *chunk.Batch) (chunk.Vector, error) {
	switch x := expr.(type) {
	case *FieldAccess:
		vec, ok := batch.Column(x.name)
		if !ok {
			return nil, ErrUnknownColumn.GenWithStackByArgs(x.name, "batch")
		}
		if !vec.FieldType().Equal(x.tp) {
			return nil, ErrColumnTypeMismatch.GenWithStackByArgs(x.name, vec.FieldType(), x.tp)
		}
		return vec, nil
	case *CallExpr:
		if e.registry != nil {
			if _, err := e.registry.Lookup(x.FuncName()); err != nil {
				return nil, err
			}
		}
		args, err := e.evalArgs(x.args, batch)
		if err != nil {
			return nil, err
		}
		return x.fn.EvalVec(e, args, x.retType, batch.NumRows())
	case *CastExpr:
		input, err := e.Eval(x.arg, batch)
		if err != nil {
			return nil, err
		}
		return e.evalCast(x, input)
	}
	return nil, errors.Errorf("unsupported expression %T", expr)
}

func (e *Evaluator) evalArgs(args []TypedExpr, batch *chunk.Batch) ([]chunk.Vector, error) {
	vecs := make([]chunk.Vector, 0, len(args))
	for _, arg := range args {
		vec, err := e.Eval(arg, batch)
		if err != nil {
			return nil, err
		}
		vecs = append(vecs, vec)
	}
	return vecs, nil
}
