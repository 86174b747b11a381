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
	"github.com/vexdb/vexcast/pkg/errno"
	"github.com/vexdb/vexcast/pkg/util/dbterror"
)

// Error instances.
var (
	// All the exported errors are defined here:
	ErrCastUnsupported         = dbterror.ClassExpression.NewStd(errno.ErrCastUnsupported)
	ErrIncorrectParameterCount = dbterror.ClassExpression.NewStd(errno.ErrWrongParamcountToNative)
	ErrFunctionNotExists       = dbterror.ClassExpression.NewStd(errno.ErrSpDoesNotExist)
	ErrFunctionAlreadyExists   = dbterror.ClassExpression.NewStd(errno.ErrFunctionAlreadyExists)
	ErrUnknownColumn           = dbterror.ClassExpression.NewStd(errno.ErrBadField)
	ErrColumnTypeMismatch      = dbterror.ClassExpression.NewStd(errno.ErrColumnTypeMismatch)
)
