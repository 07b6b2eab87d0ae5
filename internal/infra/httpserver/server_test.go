package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type pingController struct{}

func (pingController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, map[string]string{"pong": "true"})
	}))
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add a span to the request context", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()
			createTracingMiddleware()(testHandler).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusTeapot))
			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
			gomega.Expect(recorder.Ended()[0].Name()).To(gomega.Equal("http.request"))
		})
	})

	ginkgo.Context("RequestIDMiddleware", func() {
		var handler http.Handler

		ginkgo.BeforeEach(func() {
			handler = createTracingMiddleware()(createRequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))
		})

		ginkgo.When("the caller sends a request id", func() {
			ginkgo.It("should echo it back", func() {
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				req.Header.Set(RequestIDHeader, "req-123")
				rec := httptest.NewRecorder()

				handler.ServeHTTP(rec, req)

				gomega.Expect(rec.Header().Get(RequestIDHeader)).To(gomega.Equal("req-123"))
			})
		})

		ginkgo.When("the caller sends no request id", func() {
			ginkgo.It("should mint one", func() {
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				rec := httptest.NewRecorder()

				handler.ServeHTTP(rec, req)

				gomega.Expect(rec.Header().Get(RequestIDHeader)).To(gomega.HaveLen(36))
			})
		})
	})

	ginkgo.Context("NewServer", func() {
		var server *StandardServer

		ginkgo.BeforeEach(func() {
			ResetMetricsForTesting()
			server = NewServer(Options{Addr: ":0", AllowedOrigins: []string{"http://localhost:5173"}}, pingController{})
		})

		ginkgo.It("should serve the health check", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			var body map[string]string
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body).To(gomega.HaveKeyWithValue("status", "success"))
			gomega.Expect(body).To(gomega.HaveKey("node_id"))
			gomega.Expect(body).To(gomega.HaveKey("version"))
		})

		ginkgo.It("should mount controller routes", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should answer CORS preflight for allowed origins", func() {
			req := httptest.NewRequest(http.MethodOptions, "/v1/ping", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, req)

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.Equal("http://localhost:5173"))
		})
	})
})
