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
	"github.com/dolthub/swiss"
)

// DictionaryEncode returns a dictionary vector with the logical content of the
// scalar vector v whose base holds each distinct non-null value once, in order
// of first appearance. Null positions get NullIndex.
func DictionaryEncode(v Vector, alloc Allocator) *DictionaryVector {
	tp := v.FieldType()
	if !tp.IsScalar() {
		panicNotScalar("DictionaryEncode", tp)
	}
	if alloc == nil {
		alloc = DefaultAllocator{}
	}
	n := v.Len()
	base := alloc.NewColumn(tp, 0)
	indices := make([]int32, n)
	if tp.GetType().IsInteger() {
		seen := swiss.NewMap[int64, int32](uint32(n))
		for i := 0; i < n; i++ {
			if v.IsNull(i) {
				indices[i] = NullIndex
				continue
			}
			val := v.GetInt64(i)
			idx, ok := seen.Get(val)
			if !ok {
				idx = int32(base.Len())
				seen.Put(val, idx)
				base.AppendInt64(val)
			}
			indices[i] = idx
		}
	} else {
		seen := swiss.NewMap[string, int32](uint32(n))
		for i := 0; i < n; i++ {
			if v.IsNull(i) {
				indices[i] = NullIndex
				continue
			}
			val := v.GetString(i)
			idx, ok := seen.Get(val)
			if !ok {
				idx = int32(base.Len())
				seen.Put(val, idx)
				base.AppendString(val)
			}
			indices[i] = idx
		}
	}
	return &DictionaryVector{base: base, indices: indices}
}
