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
	"fmt"
	"strings"

	"github.com/pingcap/errors"
	"github.com/vexdb/vexcast/pkg/types"
)

// TypedExpr is a node of a typed expression tree. Nodes are immutable once
// constructed and may be shared by any number of evaluations.
type TypedExpr interface {
	fmt.Stringer
	// GetType returns the type of the values the node produces.
	GetType() *types.FieldType
	// Children returns the argument nodes.
	Children() []TypedExpr
}

// FieldAccess reads a column of the input batch.
type FieldAccess struct {
	tp   *types.FieldType
	name string
}

// NewFieldAccess creates a FieldAccess of the column name declared as tp.
func NewFieldAccess(tp *types.FieldType, name string) *FieldAccess {
	return &FieldAccess{tp: tp, name: name}
}

// Name returns the column name.
func (f *FieldAccess) Name() string {
	return f.name
}

// GetType implements the TypedExpr interface.
func (f *FieldAccess) GetType() *types.FieldType {
	return f.tp
}

// Children implements the TypedExpr interface.
func (*FieldAccess) Children() []TypedExpr {
	return nil
}

// String implements fmt.Stringer interface.
func (f *FieldAccess) String() string {
	return f.name
}

// CallExpr calls a registered vector function. The function is resolved once,
// when the expression is built.
type CallExpr struct {
	fn      VectorFunction
	retType *types.FieldType
	args    []TypedExpr
}

// NewCallExpr creates a call of the function registered as name. The number of
// arguments is checked against what the function accepts.
func NewCallExpr(registry *FunctionRegistry, name string, retType *types.FieldType, args ...TypedExpr) (*CallExpr, error) {
	fn, err := registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := fn.VerifyArgs(args); err != nil {
		return nil, err
	}
	return &CallExpr{fn: fn, retType: retType, args: args}, nil
}

// FuncName returns the name of the called function.
func (c *CallExpr) FuncName() string {
	return c.fn.Name()
}

// Function returns the function resolved when the call was built.
func (c *CallExpr) Function() VectorFunction {
	return c.fn
}

// GetType implements the TypedExpr interface.
func (c *CallExpr) GetType() *types.FieldType {
	return c.retType
}

// Children implements the TypedExpr interface.
func (c *CallExpr) Children() []TypedExpr {
	return c.args
}

// String implements fmt.Stringer interface.
func (c *CallExpr) String() string {
	var sb strings.Builder
	sb.WriteString(c.fn.Name())
	sb.WriteByte('(')
	for i, arg := range c.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// CastExpr converts its only argument to the target type. With nullOnFailure
// the cast is a TRY_CAST.
type CastExpr struct {
	target        *types.FieldType
	arg           TypedExpr
	nullOnFailure bool
}

// NewCastExpr creates a cast of args[0] to target. args must hold exactly one
// expression.
func NewCastExpr(target *types.FieldType, args []TypedExpr, nullOnFailure bool) (*CastExpr, error) {
	if len(args) != 1 {
		return nil, ErrIncorrectParameterCount.GenWithStackByArgs("cast")
	}
	if target == nil || args[0] == nil {
		return nil, errors.New("cast requires a target type and an argument")
	}
	return &CastExpr{target: target, arg: args[0], nullOnFailure: nullOnFailure}, nil
}

// NullOnFailure reports whether this is a TRY_CAST.
func (c *CastExpr) NullOnFailure() bool {
	return c.nullOnFailure
}

// Arg returns the expression being cast.
func (c *CastExpr) Arg() TypedExpr {
	return c.arg
}

// GetType implements the TypedExpr interface.
func (c *CastExpr) GetType() *types.FieldType {
	return c.target
}

// Children implements the TypedExpr interface.
func (c *CastExpr) Children() []TypedExpr {
	return []TypedExpr{c.arg}
}

// String implements fmt.Stringer interface.
func (c *CastExpr) String() string {
	name := "CAST"
	if c.nullOnFailure {
		name = "TRY_CAST"
	}
	return fmt.Sprintf("%s(%s AS %s)", name, c.arg, c.target)
}
