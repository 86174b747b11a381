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
	"fmt"

	"github.com/vexdb/vexcast/pkg/types"
)

// ConstantVector repeats one value of a base vector n times. A null constant
// has no base.
type ConstantVector struct {
	tp    *types.FieldType
	base  Vector
	index int
	n     int
}

// NewConstant creates a vector of length n repeating base's value at index.
// Constant and dictionary bases are resolved first, so the returned vector
// always refers to a flat base or is a null constant.
func NewConstant(base Vector, index, n int) *ConstantVector {
	tp := base.FieldType()
	for {
		if index < 0 || index >= base.Len() {
			panic(fmt.Sprintf("chunk: constant index %d out of range [0, %d)", index, base.Len()))
		}
		switch b := base.(type) {
		case *ConstantVector:
			if b.base == nil {
				return NewNullConstant(tp, n)
			}
			base, index = b.base, b.index
			continue
		case *DictionaryVector:
			if b.isNullOverride(index) {
				return NewNullConstant(tp, n)
			}
			base, index = b.base, int(b.indices[index])
			continue
		}
		break
	}
	return &ConstantVector{tp: tp, base: base, index: index, n: n}
}

// NewNullConstant creates a vector of n nulls of type tp.
func NewNullConstant(tp *types.FieldType, n int) *ConstantVector {
	return &ConstantVector{tp: tp, n: n}
}

// Base returns the vector holding the repeated value, nil for a null constant.
func (c *ConstantVector) Base() Vector {
	return c.base
}

// Index returns the position of the repeated value in Base.
func (c *ConstantVector) Index() int {
	return c.index
}

// FieldType implements the Vector interface.
func (c *ConstantVector) FieldType() *types.FieldType { return c.tp }

// Encoding implements the Vector interface.
func (*ConstantVector) Encoding() Encoding { return EncodingConstant }

// Len implements the Vector interface.
func (c *ConstantVector) Len() int { return c.n }

// IsNull implements the Vector interface.
func (c *ConstantVector) IsNull(int) bool {
	return c.base == nil || c.base.IsNull(c.index)
}

// GetInt64 implements the Vector interface.
func (c *ConstantVector) GetInt64(int) int64 {
	if c.base == nil {
		return 0
	}
	return c.base.GetInt64(c.index)
}

// GetString implements the Vector interface.
func (c *ConstantVector) GetString(int) string {
	if c.base == nil {
		return ""
	}
	return c.base.GetString(c.index)
}

// GetDatum implements the Vector interface.
func (c *ConstantVector) GetDatum(int) types.Datum {
	if c.base == nil {
		return types.Datum{}
	}
	return c.base.GetDatum(c.index)
}
