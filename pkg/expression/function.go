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
	"strings"
	"sync"

	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/chunk"
)

// EvalContext is the context a vector function is evaluated in.
type EvalContext interface {
	// Allocator returns the allocator for result columns.
	Allocator() chunk.Allocator
}

// VectorFunction is a function evaluated over whole vectors. Implementations
// must accept any encoding of their arguments.
type VectorFunction interface {
	Name() string
	// VerifyArgs checks the arguments of a call when it is constructed.
	VerifyArgs(args []TypedExpr) error
	// EvalVec computes numRows results of type retType.
	EvalVec(ctx EvalContext, args []chunk.Vector, retType *types.FieldType, numRows int) (chunk.Vector, error)
}

// BaseFunction implements Name and VerifyArgs for a function taking minArgs
// to maxArgs arguments. maxArgs -1 means no upper bound.
type BaseFunction struct {
	funcName string
	minArgs  int
	maxArgs  int
}

// NewBaseFunction creates a BaseFunction.
func NewBaseFunction(funcName string, minArgs, maxArgs int) BaseFunction {
	return BaseFunction{funcName: funcName, minArgs: minArgs, maxArgs: maxArgs}
}

// Name implements the VectorFunction interface.
func (b *BaseFunction) Name() string {
	return b.funcName
}

// VerifyArgs implements the VectorFunction interface.
func (b *BaseFunction) VerifyArgs(args []TypedExpr) error {
	l := len(args)
	if l < b.minArgs || (b.maxArgs != -1 && l > b.maxArgs) {
		return ErrIncorrectParameterCount.GenWithStackByArgs(b.funcName)
	}
	return nil
}

// FunctionRegistry resolves function names to implementations. Names are case
// insensitive. It is safe for concurrent use.
type FunctionRegistry struct {
	mu    sync.RWMutex
	funcs map[string]VectorFunction
}

// NewFunctionRegistry creates a registry holding fns.
func NewFunctionRegistry(fns ...VectorFunction) (*FunctionRegistry, error) {
	r := &FunctionRegistry{funcs: make(map[string]VectorFunction, len(fns))}
	for _, fn := range fns {
		if err := r.Register(fn); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds fn under its name.
func (r *FunctionRegistry) Register(fn VectorFunction) error {
	name := strings.ToLower(fn.Name())
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.funcs[name]; ok {
		return ErrFunctionAlreadyExists.GenWithStackByArgs(name)
	}
	r.funcs[name] = fn
	return nil
}

// Lookup returns the function registered as name.
func (r *FunctionRegistry) Lookup(name string) (VectorFunction, error) {
	if r != nil {
		r.mu.RLock()
		fn, ok := r.funcs[strings.ToLower(name)]
		r.mu.RUnlock()
		if ok {
			return fn, nil
		}
	}
	return nil, ErrFunctionNotExists.GenWithStackByArgs("FUNCTION", name)
}
