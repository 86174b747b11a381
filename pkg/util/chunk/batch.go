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
	"strconv"

	"github.com/pingcap/errors"
)

// Batch is an ordered set of named vectors sharing one row count. It is owned
// by the caller for the duration of an evaluation.
type Batch struct {
	names   []string
	vectors []Vector
	offsets map[string]int
	numRows int
}

// NewBatch creates a batch. names and vectors must have the same length.
func NewBatch(names []string, vectors []Vector) (*Batch, error) {
	if len(names) != len(vectors) {
		return nil, errors.Errorf("batch has %d names but %d columns", len(names), len(vectors))
	}
	b := &Batch{
		names:   names,
		vectors: vectors,
		offsets: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, ok := b.offsets[name]; ok {
			return nil, ErrDuplicateColumn.GenWithStackByArgs(name)
		}
		b.offsets[name] = i
		if i == 0 {
			b.numRows = vectors[0].Len()
		} else if vectors[i].Len() != b.numRows {
			return nil, ErrBatchRowCountMismatch.GenWithStackByArgs(name, vectors[i].Len(), b.numRows)
		}
	}
	return b, nil
}

// NewBatchFromVectors creates a batch naming the vectors c0, c1, ...
func NewBatchFromVectors(vectors ...Vector) (*Batch, error) {
	names := make([]string, 0, len(vectors))
	for i := range vectors {
		names = append(names, "c"+strconv.Itoa(i))
	}
	return NewBatch(names, vectors)
}

// NumRows returns the row count shared by all columns.
func (b *Batch) NumRows() int {
	return b.numRows
}

// NumCols returns the number of columns.
func (b *Batch) NumCols() int {
	return len(b.vectors)
}

// Column returns the vector named name.
func (b *Batch) Column(name string) (Vector, bool) {
	i, ok := b.offsets[name]
	if !ok {
		return nil, false
	}
	return b.vectors[i], true
}

// ColumnAt returns the i-th vector.
func (b *Batch) ColumnAt(i int) Vector {
	return b.vectors[i]
}

// Names returns the column names in order.
func (b *Batch) Names() []string {
	return b.names
}
