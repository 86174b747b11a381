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

package dbterror

import (
	"fmt"

	"github.com/pingcap/errors"
	"github.com/vexdb/vexcast/pkg/errno"
)

// ErrClass represents a class of errors.
type ErrClass int

// Error classes.
const (
	ClassExpression ErrClass = iota + 1
	ClassChunk
	ClassTypes
)

var errClass2Desc = map[ErrClass]string{
	ClassExpression: "expression",
	ClassChunk:      "chunk",
	ClassTypes:      "types",
}

// String implements fmt.Stringer interface.
func (ec ErrClass) String() string {
	if s, ok := errClass2Desc[ec]; ok {
		return s
	}
	return fmt.Sprintf("class-%d", int(ec))
}

// NewStd calls New using the standard message for the error code.
func (ec ErrClass) NewStd(code int) *errors.Error {
	msg, ok := errno.MySQLErrName[uint16(code)]
	if !ok {
		msg = errno.MySQLErrName[errno.ErrUnknown]
	}
	return ec.NewStdErr(code, msg)
}

// NewStdErr defines an *Error with a message template.
func (ec ErrClass) NewStdErr(code int, message *errno.ErrMessage) *errors.Error {
	rfcCode := errors.RFCCodeText(fmt.Sprintf("%s:%d", ec, code))
	return errors.Normalize(message.Raw, rfcCode, errors.MySQLErrorCode(code))
}
