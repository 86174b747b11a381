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
	"github.com/pingcap/errors"
	"github.com/vexdb/vexcast/pkg/types"
)

// NullIndex is the dictionary index marking a null position.
const NullIndex int32 = -1

// DictionaryVector maps each position to a position of a shared base vector.
// A position is null when its index is NullIndex, when the null override is
// set for it, or when the referenced base value is null.
type DictionaryVector struct {
	base    Vector
	indices []int32
	nulls   nullMask
}

// NewDictionary creates a dictionary vector over base. indices is not copied
// and must not be modified afterwards.
func NewDictionary(indices []int32, base Vector) (*DictionaryVector, error) {
	return NewDictionaryWithNulls(indices, nil, base)
}

// NewDictionaryWithNulls creates a dictionary vector with a position level
// null override. nulls may be nil.
func NewDictionaryWithNulls(indices []int32, nulls []bool, base Vector) (*DictionaryVector, error) {
	if nulls != nil && len(nulls) != len(indices) {
		return nil, errors.Errorf("dictionary null mask has %d entries, expected %d", len(nulls), len(indices))
	}
	baseLen := base.Len()
	for pos, idx := range indices {
		if idx == NullIndex {
			continue
		}
		if idx < 0 || int(idx) >= baseLen {
			return nil, ErrMalformedEncoding.GenWithStackByArgs(idx, pos, baseLen)
		}
	}
	return &DictionaryVector{base: base, indices: indices, nulls: nulls}, nil
}

// isNullOverride reports whether position i is null regardless of the base.
func (d *DictionaryVector) isNullOverride(i int) bool {
	return d.indices[i] == NullIndex || d.nulls.isNull(i)
}

// Base returns the shared base vector.
func (d *DictionaryVector) Base() Vector {
	return d.base
}

// Indices returns the base position of every row.
func (d *DictionaryVector) Indices() []int32 {
	return d.indices
}

// Nulls returns the null override, nil when there is none.
func (d *DictionaryVector) Nulls() []bool {
	return d.nulls
}

// FieldType implements the Vector interface.
func (d *DictionaryVector) FieldType() *types.FieldType { return d.base.FieldType() }

// Encoding implements the Vector interface.
func (*DictionaryVector) Encoding() Encoding { return EncodingDictionary }

// Len implements the Vector interface.
func (d *DictionaryVector) Len() int { return len(d.indices) }

// IsNull implements the Vector interface.
func (d *DictionaryVector) IsNull(i int) bool {
	return d.isNullOverride(i) || d.base.IsNull(int(d.indices[i]))
}

// GetInt64 implements the Vector interface.
func (d *DictionaryVector) GetInt64(i int) int64 {
	if d.isNullOverride(i) {
		return 0
	}
	return d.base.GetInt64(int(d.indices[i]))
}

// GetString implements the Vector interface.
func (d *DictionaryVector) GetString(i int) string {
	if d.isNullOverride(i) {
		return ""
	}
	return d.base.GetString(int(d.indices[i]))
}

// GetDatum implements the Vector interface.
func (d *DictionaryVector) GetDatum(i int) types.Datum {
	if d.isNullOverride(i) {
		return types.Datum{}
	}
	return d.base.GetDatum(int(d.indices[i]))
}

// ReverseIndices returns the permutation n-1, n-2, ..., 0.
func ReverseIndices(n int) []int32 {
	indices := make([]int32, n)
	for i := range indices {
		indices[i] = int32(n - 1 - i)
	}
	return indices
}
