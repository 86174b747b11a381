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
	"github.com/vexdb/vexcast/pkg/errno"
	"github.com/vexdb/vexcast/pkg/util/dbterror"
)

var (
	// ErrMalformedEncoding is returned when a dictionary index points outside its base.
	ErrMalformedEncoding = dbterror.ClassChunk.NewStd(errno.ErrMalformedEncoding)
	// ErrDuplicateColumn is returned when a batch names two columns the same.
	ErrDuplicateColumn = dbterror.ClassChunk.NewStd(errno.ErrDupFieldName)
	// ErrBatchRowCountMismatch is returned when the columns of a batch differ in length.
	ErrBatchRowCountMismatch = dbterror.ClassChunk.NewStd(errno.ErrBatchRowCountMismatch)
)
