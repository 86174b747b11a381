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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"
	jsoniter "github.com/json-iterator/go"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/vexdb/vexcast/pkg/config"
	"github.com/vexdb/vexcast/pkg/expression"
	"github.com/vexdb/vexcast/pkg/types"
	"github.com/vexdb/vexcast/pkg/util/arrowconv"
	"github.com/vexdb/vexcast/pkg/util/chunk"
	"github.com/vexdb/vexcast/pkg/util/logutil"
	"go.uber.org/zap"
)

const nullLiteral = "null"

// prettyJSON keeps integers exact and indents nested values by two spaces.
var prettyJSON = jsoniter.Config{UseNumber: true, IndentionStep: 2}.Froze()

type castOptions struct {
	typeName   string
	encoding   string
	configPath string
	repeat     int
	arrow      bool
	pretty     bool
}

func newRootCmd() *cobra.Command {
	opts := &castOptions{}
	cmd := &cobra.Command{
		Use:   "vexcast [flags] values...",
		Short: "Cast a column of values to JSON",
		Long: `vexcast builds a one column batch from the given values, evaluates
CAST(c0 AS JSON) over it and prints one line per row. The literal null is a
null value.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCast(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "bigint", "Type of the input column, e.g. bigint, varchar, map(bigint, bigint)")
	cmd.Flags().StringVarP(&opts.encoding, "encoding", "e", chunk.EncodingFlat.String(), "Encoding of the input column: flat, constant or dictionary")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path of the configuration file")
	cmd.Flags().IntVar(&opts.repeat, "repeat", 5, "Number of rows of a constant input")
	cmd.Flags().BoolVar(&opts.arrow, "arrow", false, "Print the result as an Arrow array")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent JSON results")
	return cmd
}

func runCast(ctx context.Context, out io.Writer, opts *castOptions, values []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := logutil.InitLogger(cfg.Log.ToLogConfig()); err != nil {
		return errors.Trace(err)
	}
	tp, err := types.ParseFieldType(opts.typeName)
	if err != nil {
		return err
	}
	ctx = logutil.WithLogger(ctx, logutil.Logger(ctx).With(zap.Stringer("type", tp)))
	logger := logutil.Logger(logutil.WithCategory(ctx, "vexcast"))
	if len(values) > cfg.Evaluation.MaxChunkSize {
		return errors.Errorf("got %d values, more than max-chunk-size %d", len(values), cfg.Evaluation.MaxChunkSize)
	}
	if strings.EqualFold(opts.encoding, chunk.EncodingConstant.String()) &&
		(opts.repeat < 1 || opts.repeat > cfg.Evaluation.MaxChunkSize) {
		return errors.Errorf("--repeat must be in [1, %d], got %d", cfg.Evaluation.MaxChunkSize, opts.repeat)
	}

	var alloc *chunk.TrackingAllocator
	evalOpts := []expression.EvaluatorOption{expression.WithEncodingPeeling(cfg.Evaluation.EnableEncodingPeeling)}
	if cfg.Evaluation.TrackMemory {
		alloc = chunk.NewTrackingAllocator(nil)
		evalOpts = append(evalOpts, expression.WithAllocator(alloc))
	}

	input, err := buildInput(tp, opts, values)
	if err != nil {
		return err
	}
	batch, err := chunk.NewBatchFromVectors(input)
	if err != nil {
		return err
	}
	cast, err := expression.NewCastExpr(types.NewFieldType(types.TypeJSON),
		[]expression.TypedExpr{expression.NewFieldAccess(tp, "c0")}, false)
	if err != nil {
		return err
	}
	result, err := expression.NewEvaluator(nil, evalOpts...).Eval(cast, batch)
	if err != nil {
		return err
	}
	logger.Debug("cast evaluated",
		zap.Stringer("expr", cast),
		zap.Stringer("inputEncoding", input.Encoding()),
		zap.Stringer("resultEncoding", result.Encoding()),
		zap.Int("rows", result.Len()))
	if alloc != nil {
		logger.Info("evaluation memory",
			zap.Int64("columns", alloc.AllocatedColumns()),
			zap.Int64("bytes", alloc.AllocatedBytes()))
	}

	if opts.arrow {
		arr, err := arrowconv.ToArrow(memory.DefaultAllocator, result)
		if err != nil {
			return err
		}
		defer arr.Release()
		_, err = fmt.Fprintln(out, arr)
		return errors.Trace(err)
	}
	return printRows(out, result, opts.pretty)
}

func buildInput(tp *types.FieldType, opts *castOptions, values []string) (chunk.Vector, error) {
	var col chunk.Vector
	if tp.IsScalar() {
		flat, err := parseColumn(tp, values)
		if err != nil {
			return nil, err
		}
		col = flat
	} else {
		if len(values) > 0 {
			return nil, errors.Errorf("values of type %s cannot be given on the command line", tp)
		}
		empty, err := emptyVector(tp)
		if err != nil {
			return nil, err
		}
		col = empty
	}

	switch strings.ToLower(opts.encoding) {
	case chunk.EncodingFlat.String():
		return col, nil
	case chunk.EncodingConstant.String():
		if col.Len() != 1 {
			return nil, errors.Errorf("a constant input needs exactly one value, got %d", col.Len())
		}
		return chunk.NewConstant(col, 0, opts.repeat), nil
	case chunk.EncodingDictionary.String():
		if tp.IsScalar() {
			return chunk.DictionaryEncode(col, nil), nil
		}
		dict, err := chunk.NewDictionary(nil, col)
		if err != nil {
			return nil, err
		}
		return dict, nil
	}
	return nil, errors.Errorf("unknown encoding %q", opts.encoding)
}

func parseColumn(tp *types.FieldType, values []string) (*chunk.Column, error) {
	col := chunk.NewColumn(tp, len(values))
	for _, v := range values {
		if v == nullLiteral {
			col.AppendNull()
			continue
		}
		switch tp.GetType() {
		case types.TypeVarchar:
			col.AppendString(v)
		case types.TypeJSON:
			if !types.IsValidJSON(v) {
				return nil, errors.Errorf("invalid JSON value %q", v)
			}
			col.AppendJSON(v)
		default:
			i, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, errors.Trace(err)
			}
			col.AppendInt64(i)
		}
	}
	return col, nil
}

// emptyVector returns a vector of tp without rows.
func emptyVector(tp *types.FieldType) (chunk.Vector, error) {
	switch tp.GetType() {
	case types.TypeArray:
		elem, err := emptyVector(tp.ArrayElem())
		if err != nil {
			return nil, err
		}
		return chunk.NewArrayColumn(elem), nil
	case types.TypeMap:
		keys, err := emptyVector(tp.MapKey())
		if err != nil {
			return nil, err
		}
		values, err := emptyVector(tp.MapValue())
		if err != nil {
			return nil, err
		}
		maps, err := chunk.NewMapColumn(keys, values)
		if err != nil {
			return nil, err
		}
		return maps, nil
	case types.TypeRow:
		fields := make([]chunk.Vector, 0, len(tp.ElemTypes()))
		for _, elem := range tp.ElemTypes() {
			field, err := emptyVector(elem)
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
		}
		rows, err := chunk.NewRowColumn(tp.FieldNames(), fields, nil)
		if err != nil {
			return nil, err
		}
		return rows, nil
	}
	return chunk.NewColumn(tp, 0), nil
}

func printRows(out io.Writer, result chunk.Vector, pretty bool) error {
	for i := 0; i < result.Len(); i++ {
		line := "NULL"
		if !result.IsNull(i) {
			line = result.GetString(i)
			if pretty {
				var err error
				if line, err = indentJSON(line); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// indentJSON re-renders text with object keys sorted.
func indentJSON(text string) (string, error) {
	var v any
	if err := prettyJSON.UnmarshalFromString(text, &v); err != nil {
		return "", errors.Trace(err)
	}
	stream := prettyJSON.BorrowStream(nil)
	defer prettyJSON.ReturnStream(stream)
	writeIndented(stream, v)
	if stream.Error != nil {
		return "", errors.Trace(stream.Error)
	}
	return string(stream.Buffer()), nil
}

func writeIndented(stream *jsoniter.Stream, v any) {
	switch x := v.(type) {
	case map[string]any:
		if len(x) == 0 {
			stream.WriteEmptyObject()
			return
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		stream.WriteObjectStart()
		for i, k := range keys {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			writeIndented(stream, x[k])
		}
		stream.WriteObjectEnd()
	case []any:
		if len(x) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, elem := range x {
			if i > 0 {
				stream.WriteMore()
			}
			writeIndented(stream, elem)
		}
		stream.WriteArrayEnd()
	case json.Number:
		stream.WriteRaw(x.String())
	default:
		stream.WriteVal(x)
	}
}
