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

package errno

// Error codes used by the expression and chunk layers.
const (
	ErrUnknown                 = 1105
	ErrBadField                = 1054
	ErrDupFieldName            = 1060
	ErrWrongParamcountToNative = 1582
	ErrSpDoesNotExist          = 1305
	ErrFunctionAlreadyExists   = 1304

	ErrCastUnsupported       = 8250
	ErrMalformedEncoding     = 8251
	ErrColumnTypeMismatch    = 8252
	ErrBatchRowCountMismatch = 8253
	ErrInvalidFieldType      = 8254
)
