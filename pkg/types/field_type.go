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

package types

import (
	"strconv"
	"strings"
)

// TypeKind is the tag of a logical type.
type TypeKind byte

// Type kinds. The set is closed: every switch over TypeKind in this module is
// expected to handle all of them.
const (
	TypeUnspecified TypeKind = iota
	TypeTinyInt
	TypeSmallInt
	TypeInteger
	TypeBigInt
	TypeVarchar
	TypeJSON
	TypeArray
	TypeMap
	TypeRow
)

var typeKindNames = map[TypeKind]string{
	TypeUnspecified: "UNSPECIFIED",
	TypeTinyInt:     "TINYINT",
	TypeSmallInt:    "SMALLINT",
	TypeInteger:     "INTEGER",
	TypeBigInt:      "BIGINT",
	TypeVarchar:     "VARCHAR",
	TypeJSON:        "JSON",
	TypeArray:       "ARRAY",
	TypeMap:         "MAP",
	TypeRow:         "ROW",
}

// String implements fmt.Stringer interface.
func (k TypeKind) String() string {
	if s, ok := typeKindNames[k]; ok {
		return s
	}
	return "TYPE(" + strconv.Itoa(int(k)) + ")"
}

// IsInteger returns whether values of this kind are signed integers.
func (k TypeKind) IsInteger() bool {
	switch k {
	case TypeTinyInt, TypeSmallInt, TypeInteger, TypeBigInt:
		return true
	}
	return false
}

// IsContainer returns whether values of this kind hold other values.
func (k TypeKind) IsContainer() bool {
	switch k {
	case TypeArray, TypeMap, TypeRow:
		return true
	}
	return false
}

// FieldType describes the logical type shared by every value of a vector.
// A FieldType is immutable after construction and may be shared freely.
type FieldType struct {
	tp TypeKind
	// elems holds the element type of an array, the key and value types of a
	// map, or the field types of a row.
	elems []*FieldType
	// names holds the field names of a row.
	names []string
}

// NewFieldType returns a scalar FieldType.
func NewFieldType(tp TypeKind) *FieldType {
	if tp.IsContainer() {
		panic("types: use NewArrayType, NewMapType or NewRowType to create " + tp.String())
	}
	return &FieldType{tp: tp}
}

// NewArrayType returns ARRAY<elem>.
func NewArrayType(elem *FieldType) *FieldType {
	return &FieldType{tp: TypeArray, elems: []*FieldType{elem}}
}

// NewMapType returns MAP<key,value>.
func NewMapType(key, value *FieldType) *FieldType {
	return &FieldType{tp: TypeMap, elems: []*FieldType{key, value}}
}

// NewRowType returns ROW<names[0]:fields[0],...>. A nil names slice names the
// fields c0, c1, ...
func NewRowType(names []string, fields []*FieldType) *FieldType {
	if names == nil {
		names = make([]string, len(fields))
		for i := range fields {
			names[i] = "c" + strconv.Itoa(i)
		}
	}
	if len(names) != len(fields) {
		panic("types: row field names and types differ in length")
	}
	return &FieldType{
		tp:    TypeRow,
		elems: append([]*FieldType(nil), fields...),
		names: append([]string(nil), names...),
	}
}

// GetType returns the kind of ft.
func (ft *FieldType) GetType() TypeKind {
	return ft.tp
}

// ElemTypes returns the child types of a container type. The returned slice
// must not be modified.
func (ft *FieldType) ElemTypes() []*FieldType {
	return ft.elems
}

// ArrayElem returns the element type of an array.
func (ft *FieldType) ArrayElem() *FieldType {
	return ft.elems[0]
}

// MapKey returns the key type of a map.
func (ft *FieldType) MapKey() *FieldType {
	return ft.elems[0]
}

// MapValue returns the value type of a map.
func (ft *FieldType) MapValue() *FieldType {
	return ft.elems[1]
}

// FieldNames returns the field names of a row type.
func (ft *FieldType) FieldNames() []string {
	return ft.names
}

// IsScalar returns whether ft is neither an array, a map nor a row.
func (ft *FieldType) IsScalar() bool {
	return !ft.tp.IsContainer()
}

// Equal checks whether two FieldTypes are structurally equal.
func (ft *FieldType) Equal(other *FieldType) bool {
	if ft == other {
		return true
	}
	if ft == nil || other == nil {
		return false
	}
	if ft.tp != other.tp || len(ft.elems) != len(other.elems) || len(ft.names) != len(other.names) {
		return false
	}
	for i := range ft.names {
		if ft.names[i] != other.names[i] {
			return false
		}
	}
	for i := range ft.elems {
		if !ft.elems[i].Equal(other.elems[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer interface.
func (ft *FieldType) String() string {
	var sb strings.Builder
	ft.writeTo(&sb)
	return sb.String()
}

func (ft *FieldType) writeTo(sb *strings.Builder) {
	sb.WriteString(ft.tp.String())
	if !ft.tp.IsContainer() {
		return
	}
	sb.WriteByte('<')
	for i, elem := range ft.elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		if ft.tp == TypeRow {
			sb.WriteString(ft.names[i])
			sb.WriteByte(':')
		}
		elem.writeTo(sb)
	}
	sb.WriteByte('>')
}
