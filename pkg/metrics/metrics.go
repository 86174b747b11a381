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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label constants.
const (
	LblFrom     = "from"
	LblResult   = "result"
	LblEncoding = "encoding"

	LblOK          = "ok"
	LblIdentity    = "identity"
	LblUnsupported = "unsupported"
	LblError       = "error"
)

func init() {
	InitMetrics()
}

// InitMetrics is used to initialize metrics.
func InitMetrics() {
	InitExpressionMetrics()
}

// RegisterMetrics registers the metrics which are ONLY used in vexcast.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		CastCounter,
		EvalEncodingCounter,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// NewCounterVec creates a new CounterVec.
func NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(opts, labelNames)
}

// RetLabel returns "ok" when err == nil and "error" when err != nil.
func RetLabel(err error) string {
	if err == nil {
		return LblOK
	}
	return LblError
}
