package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		ginkgo.It("should record request metrics", func() {
			reader := metric.NewManualReader()
			provider := metric.NewMeterProvider(metric.WithReader(reader))
			otel.SetMeterProvider(provider)
			ResetMetricsForTesting()

			handler := MetricsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/sinks/TDSQLPOSTGRESQL/form", nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())

			var data metricdata.ResourceMetrics
			gomega.Expect(reader.Collect(context.Background(), &data)).To(gomega.Succeed())

			names := []string{}
			for _, scope := range data.ScopeMetrics {
				for _, m := range scope.Metrics {
					names = append(names, m.Name)
				}
			}
			gomega.Expect(names).To(gomega.ContainElement("sink_schema_server.http.requests.total"))
		})
	})

	ginkgo.Context("NormalizeEndpoint", func() {
		ginkgo.DescribeTable("collapsing paths",
			func(path string, expected string) {
				gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal(expected))
			},
			ginkgo.Entry("root", "/", "root"),
			ginkgo.Entry("empty", "", "root"),
			ginkgo.Entry("sink list", "/v1/sinks", "/v1/sinks"),
			ginkgo.Entry("sink form", "/v1/sinks/TDSQLPOSTGRESQL/form", "/v1/sinks/_type/form"),
			ginkgo.Entry("sink table columns", "/v1/sinks/POSTGRES/table-columns", "/v1/sinks/_type/table-columns"),
		)
	})
})
