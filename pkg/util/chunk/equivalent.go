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
	"github.com/pingcap/errors"
)

// Equivalent checks that actual holds the same logical content as expected:
// same length, same type, and the same nullness and value at every position.
// Encodings are not compared. The returned error names the first difference.
func Equivalent(expected, actual Vector) error {
	if expected.Len() != actual.Len() {
		return errors.Errorf("length mismatch: expected %d, got %d", expected.Len(), actual.Len())
	}
	if !expected.FieldType().Equal(actual.FieldType()) {
		return errors.Errorf("type mismatch: expected %s, got %s", expected.FieldType(), actual.FieldType())
	}
	for i := 0; i < expected.Len(); i++ {
		expNull, actNull := expected.IsNull(i), actual.IsNull(i)
		if expNull != actNull {
			return errors.Errorf("nullness mismatch at position %d: expected null=%v, got null=%v", i, expNull, actNull)
		}
		if expNull {
			continue
		}
		exp, act := expected.GetDatum(i), actual.GetDatum(i)
		if !exp.Equal(&act) {
			return errors.Errorf("value mismatch at position %d: expected %s, got %s", i, exp, act)
		}
	}
	return nil
}
