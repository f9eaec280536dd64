package wvlegis

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("scrapers/wvlegis")
