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
	"strings"

	"github.com/vexdb/vexcast/pkg/errno"
	"github.com/vexdb/vexcast/pkg/util/dbterror"
)

// ErrInvalidFieldType is returned when a type definition cannot be parsed.
var ErrInvalidFieldType = dbterror.ClassTypes.NewStd(errno.ErrInvalidFieldType)

var scalarTypeNames = map[string]TypeKind{
	"tinyint":  TypeTinyInt,
	"smallint": TypeSmallInt,
	"int":      TypeInteger,
	"integer":  TypeInteger,
	"bigint":   TypeBigInt,
	"varchar":  TypeVarchar,
	"text":     TypeVarchar,
	"json":     TypeJSON,
}

// ParseFieldType parses a type definition such as `bigint`,
// `map(bigint, varchar)`, `row(a bigint, b array(json))` or the form printed by
// FieldType.String, e.g. `ROW<c0:MAP<BIGINT,BIGINT>>`. Keywords are case
// insensitive.
func ParseFieldType(s string) (*FieldType, error) {
	p := &typeParser{src: s}
	ft, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input")
	}
	return ft, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) errorf(msg string) error {
	return ErrInvalidFieldType.GenWithStackByArgs(p.src, msg)
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

// peek returns the next non-space byte, or 0 at the end of input.
func (p *typeParser) peek() byte {
	p.skipSpace()
	if p.pos == len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected '" + string(c) + "'")
	}
	p.pos++
	return nil
}

func (p *typeParser) parseType() (*FieldType, error) {
	name := strings.ToLower(p.ident())
	if name == "" {
		return nil, p.errorf("expected a type name")
	}
	if tp, ok := scalarTypeNames[name]; ok {
		return NewFieldType(tp), nil
	}
	var closing byte
	switch p.peek() {
	case '(':
		closing = ')'
	case '<':
		closing = '>'
	default:
		return nil, p.errorf("unknown type " + name)
	}
	p.pos++
	var ft *FieldType
	switch name {
	case "array":
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		ft = NewArrayType(elem)
	case "map":
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		value, err := p.parseType()
		if err != nil {
			return nil, err
		}
		ft = NewMapType(key, value)
	case "row":
		var (
			names  []string
			fields []*FieldType
		)
		for {
			fieldName := p.ident()
			if fieldName == "" {
				return nil, p.errorf("expected a field name")
			}
			if p.peek() == ':' {
				p.pos++
			}
			field, err := p.parseType()
			if err != nil {
				return nil, err
			}
			names = append(names, fieldName)
			fields = append(fields, field)
			if p.peek() != ',' {
				break
			}
			p.pos++
		}
		ft = NewRowType(names, fields)
	default:
		return nil, p.errorf("unknown type " + name)
	}
	if err := p.expect(closing); err != nil {
		return nil, err
	}
	return ft, nil
}
