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

// ErrMessage is a message template and the indices of its arguments that may
// carry user data.
type ErrMessage struct {
	Raw          string
	RedactArgPos []int
}

// Message creates a error message with the format specified.
func Message(message string, redactArgs []int) *ErrMessage {
	return &ErrMessage{Raw: message, RedactArgPos: redactArgs}
}

// MySQLErrName maps error codes to the message templates.
var MySQLErrName = map[uint16]*ErrMessage{
	ErrUnknown:                 Message("Unknown error", nil),
	ErrBadField:                Message("Unknown column '%-.192s' in '%-.192s'", nil),
	ErrDupFieldName:            Message("Duplicate column name '%-.192s'", nil),
	ErrWrongParamcountToNative: Message("Incorrect parameter count in the call to native function '%-.192s'", nil),
	ErrSpDoesNotExist:          Message("%s %s does not exist", nil),
	ErrFunctionAlreadyExists:   Message("Function %s already exists", nil),

	ErrCastUnsupported:       Message("Cannot cast %s to %s", nil),
	ErrMalformedEncoding:     Message("Dictionary index %d at position %d is out of range [0, %d)", nil),
	ErrColumnTypeMismatch:    Message("Column '%s' has type %s, but the expression expects %s", nil),
	ErrBatchRowCountMismatch: Message("Column '%s' has %d rows, but the batch has %d rows", nil),
	ErrInvalidFieldType:      Message("Invalid type definition '%s': %s", nil),
}
