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
	"github.com/vexdb/vexcast/pkg/metrics"
	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/chunk"
	"github.com/vexdb/vexcast/pkg/util/logutil"
	"go.uber.org/zap"
)

// jsonSerializer appends the JSON text of the non-null value at row i of v.
type jsonSerializer func(buf []byte, v chunk.Vector, i int) []byte

func castIntAsJSON(buf []byte, v chunk.Vector, i int) []byte {
	return types.AppendJSONInt(buf, v.GetInt64(i))
}

func castStringAsJSON(buf []byte, v chunk.Vector, i int) []byte {
	return types.AppendJSONQuoted(buf, v.GetString(i))
}

func castJSONAsJSON(buf []byte, v chunk.Vector, i int) []byte {
	return append(buf, v.GetString(i)...)
}

// jsonSerializerFor returns how values of tp are written as JSON, or
// ErrCastUnsupported when they cannot be. Only the type is inspected. The
// children of a container are checked first so the error names the innermost
// type that cannot be converted.
func jsonSerializerFor(tp, target *types.FieldType) (jsonSerializer, error) {
	switch tp.GetType() {
	case types.TypeTinyInt, types.TypeSmallInt, types.TypeInteger, types.TypeBigInt:
		return castIntAsJSON, nil
	case types.TypeVarchar:
		return castStringAsJSON, nil
	case types.TypeJSON:
		return castJSONAsJSON, nil
	case types.TypeArray, types.TypeMap, types.TypeRow:
		for _, elem := range tp.ElemTypes() {
			if _, err := jsonSerializerFor(elem, target); err != nil {
				return nil, err
			}
		}
		return nil, ErrCastUnsupported.GenWithStackByArgs(tp, target)
	case types.TypeUnspecified:
	}
	return nil, ErrCastUnsupported.GenWithStackByArgs(tp, target)
}

// evalCast converts input to the target type of expr. A TRY_CAST fails the
// same way as a CAST when the types cannot be converted at all.
func (e *Evaluator) evalCast(expr *CastExpr, input chunk.Vector) (chunk.Vector, error) {
	from, to := input.FieldType(), expr.target
	fromLabel := from.GetType().String()
	if from.Equal(to) {
		metrics.CastCounter.WithLabelValues(fromLabel, metrics.LblIdentity).Inc()
		return input, nil
	}
	var (
		ser jsonSerializer
		err error
	)
	if to.GetType() == types.TypeJSON {
		ser, err = jsonSerializerFor(from, to)
	} else {
		err = ErrCastUnsupported.GenWithStackByArgs(from, to)
	}
	if err != nil {
		logutil.BgLogger().Debug("cast rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Bool("nullOnFailure", expr.nullOnFailure),
			zap.Error(err))
		metrics.CastCounter.WithLabelValues(fromLabel, metrics.LblUnsupported).Inc()
		return nil, err
	}
	metrics.EvalEncodingCounter.WithLabelValues(input.Encoding().String()).Inc()
	result, err := e.castToJSON(ser, to, input)
	metrics.CastCounter.WithLabelValues(fromLabel, metrics.RetLabel(err)).Inc()
	return result, err
}

// castToJSON converts every logical row of input. With encoding peeling a
// dictionary input converts its base and keeps its indices, and a constant
// input converts the single value it refers to.
func (e *Evaluator) castToJSON(ser jsonSerializer, to *types.FieldType, input chunk.Vector) (chunk.Vector, error) {
	if e.encodingPeeled {
		switch v := input.(type) {
		case *chunk.DictionaryVector:
			logutil.BgLogger().Debug("cast peels dictionary",
				zap.Int("rows", v.Len()), zap.Int("baseRows", v.Base().Len()))
			base, err := e.castToJSON(ser, to, v.Base())
			if err != nil {
				return nil, err
			}
			dict, err := chunk.NewDictionaryWithNulls(v.Indices(), v.Nulls(), base)
			if err != nil {
				return nil, err
			}
			return dict, nil
		case *chunk.ConstantVector:
			logutil.BgLogger().Debug("cast peels constant", zap.Int("rows", v.Len()))
			if v.Base() == nil {
				return chunk.NewNullConstant(to, v.Len()), nil
			}
			one, err := chunk.NewDictionary([]int32{int32(v.Index())}, v.Base())
			if err != nil {
				return nil, err
			}
			return chunk.NewConstant(e.castFlat(ser, to, one), 0, v.Len()), nil
		}
	}
	return e.castFlat(ser, to, input), nil
}

// castFlat walks the logical rows of input and writes a flat result.
func (e *Evaluator) castFlat(ser jsonSerializer, to *types.FieldType, input chunk.Vector) *chunk.Column {
	n := input.Len()
	result := e.alloc.NewColumn(to, n)
	var buf []byte
	for i := 0; i < n; i++ {
		if input.IsNull(i) {
			result.AppendNull()
			continue
		}
		buf = ser(buf[:0], input, i)
		result.AppendBytes(buf)
	}
	return result
}
