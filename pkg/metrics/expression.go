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

// Metrics for expression evaluation.
var (
	CastCounter         *prometheus.CounterVec
	EvalEncodingCounter *prometheus.CounterVec
)

// InitExpressionMetrics initializes metrics for expression evaluation.
func InitExpressionMetrics() {
	CastCounter = NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vexcast",
			Subsystem: "expression",
			Name:      "cast_total",
			Help:      "Counter of evaluated cast nodes by source type kind and result.",
		}, []string{LblFrom, LblResult})

	EvalEncodingCounter = NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vexcast",
			Subsystem: "expression",
			Name:      "eval_encoding_total",
			Help:      "Counter of cast inputs by vector encoding.",
		}, []string{LblEncoding})
}
