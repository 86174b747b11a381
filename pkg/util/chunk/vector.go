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

// Encoding is the physical arrangement of a Vector.
type Encoding byte

// Encodings.
const (
	EncodingFlat Encoding = iota
	EncodingConstant
	EncodingDictionary
)

// String implements fmt.Stringer interface.
func (e Encoding) String() string {
	switch e {
	case EncodingFlat:
		return "flat"
	case EncodingConstant:
		return "constant"
	case EncodingDictionary:
		return "dictionary"
	}
	return fmt.Sprintf("encoding(%d)", byte(e))
}

// Vector is a read-only column of Len() logical values sharing one type.
// Positions are always logical: a constant or dictionary vector resolves them
// to the value it refers to. A Vector is never mutated once it is handed to a
// reader, so it can be shared between goroutines without locking.
//
// GetInt64 and GetString are only valid on non-null positions of integer and
// text (VARCHAR or JSON) vectors respectively.
type Vector interface {
	FieldType() *types.FieldType
	Encoding() Encoding
	Len() int
	IsNull(i int) bool
	GetInt64(i int) int64
	GetString(i int) string
	// GetDatum returns the logical value at i, Datum{} for null.
	GetDatum(i int) types.Datum
}

func panicNotScalar(op string, tp *types.FieldType) {
	panic(fmt.Sprintf("chunk: %s called on a %s vector", op, tp))
}
