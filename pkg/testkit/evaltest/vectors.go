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

package evaltest

import (
	"fmt"

	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/chunk"
)

// NewColumn builds a flat column of the scalar type tp. A nil value is a
// null; integers may be given as int or int64 and text as string.
func NewColumn(tp *types.FieldType, vals ...any) *chunk.Column {
	col := chunk.NewColumn(tp, len(vals))
	for _, v := range vals {
		switch x := v.(type) {
		case nil:
			col.AppendNull()
		case int:
			col.AppendInt64(int64(x))
		case int64:
			col.AppendInt64(x)
		case string:
			col.AppendString(x)
		default:
			panic(fmt.Sprintf("evaltest: unsupported value %T", v))
		}
	}
	return col
}

// BigintColumn builds a flat BIGINT column.
func BigintColumn(vals ...any) *chunk.Column {
	return NewColumn(types.NewFieldType(types.TypeBigInt), vals...)
}

// VarcharColumn builds a flat VARCHAR column.
func VarcharColumn(vals ...any) *chunk.Column {
	return NewColumn(types.NewFieldType(types.TypeVarchar), vals...)
}

// JSONColumn builds a flat JSON column from JSON texts.
func JSONColumn(vals ...any) *chunk.Column {
	return NewColumn(types.NewFieldType(types.TypeJSON), vals...)
}
