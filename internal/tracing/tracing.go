package tracing

import (
	"alcyxob/athlete-tracker/internal/config"

	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GlobalTracer delegates to whatever provider Setup installs, also when obtained before it.
var GlobalTracer = otel.Tracer("athlete-tracker")

// Setup installs the OpenTelemetry SDK with an OTLP exporter when tracing is enabled.
// The returned func flushes pending spans and must be called on shutdown.
func Setup(cfg config.TracingConfig) (func(), error) {
	if !cfg.Enabled {
		log.Debugln("tracing disabled")
		return func() {}, nil
	}

	opts := []otelconfig.Option{
		otelconfig.WithServiceName(cfg.ServiceName),
		otelconfig.WithMetricsEnabled(false),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, otelconfig.WithExporterEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otelconfig.WithExporterInsecure(true))
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otelconfig.WithHeaders(cfg.Headers))
	}

	shutdown, err := otelconfig.ConfigureOpenTelemetry(opts...)
	if err != nil {
		return nil, err
	}
	log.Infof("tracing enabled, exporting to %q", cfg.Endpoint)
	return shutdown, nil
}

// EndSpan records err on the span, if any, and ends it. Meant for defer with a named error result.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
