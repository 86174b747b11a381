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
	"github.com/vexdb/vexcast/pkg/types"
	"go.uber.org/atomic"
)

// Allocator provides the flat columns an evaluation writes its results into.
type Allocator interface {
	NewColumn(tp *types.FieldType, capacity int) *Column
}

// DefaultAllocator allocates columns from the Go heap.
type DefaultAllocator struct{}

// NewColumn implements the Allocator interface.
func (DefaultAllocator) NewColumn(tp *types.FieldType, capacity int) *Column {
	return NewColumn(tp, capacity)
}

// TrackingAllocator counts the columns it allocates and the memory they
// reserve. It is safe for concurrent use.
type TrackingAllocator struct {
	alloc   Allocator
	columns atomic.Int64
	bytes   atomic.Int64
}

// NewTrackingAllocator wraps alloc, or the DefaultAllocator when alloc is nil.
func NewTrackingAllocator(alloc Allocator) *TrackingAllocator {
	if alloc == nil {
		alloc = DefaultAllocator{}
	}
	return &TrackingAllocator{alloc: alloc}
}

// NewColumn implements the Allocator interface.
func (a *TrackingAllocator) NewColumn(tp *types.FieldType, capacity int) *Column {
	col := a.alloc.NewColumn(tp, capacity)
	a.columns.Inc()
	a.bytes.Add(col.MemoryUsage())
	return col
}

// AllocatedColumns returns the number of columns allocated so far.
func (a *TrackingAllocator) AllocatedColumns() int64 {
	return a.columns.Load()
}

// AllocatedBytes returns the memory reserved by the allocated columns when
// they were created.
func (a *TrackingAllocator) AllocatedBytes() int64 {
	return a.bytes.Load()
}
