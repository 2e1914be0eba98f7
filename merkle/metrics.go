/*
   Copyright 2019 Hashtree contributors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package merkle

import "github.com/prometheus/client_golang/prometheus"

const namespace = "hashtree"
const subSystem = "merkle"

var (
	buildTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "build_total",
			Help:      "Number of trees built.",
		},
	)
	proveTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "prove_total",
			Help:      "Number of inclusion proofs generated.",
		},
	)
	verifyTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "verify_total",
			Help:      "Number of inclusion proofs verified.",
		},
	)
	verifyFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "verify_failed_total",
			Help:      "Number of inclusion proofs that failed verification.",
		},
	)
)

// RegisterMetrics registers the package collectors in the given registry, so
// an embedding service can expose them.
func RegisterMetrics(r *prometheus.Registry) {
	metrics := []prometheus.Collector{
		buildTotal,
		proveTotal,
		verifyTotal,
		verifyFailedTotal,
	}
	for _, metric := range metrics {
		r.MustRegister(metric)
	}
}
