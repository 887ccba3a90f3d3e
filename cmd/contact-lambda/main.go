package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dorolabs/site-backend/internal/api/router"
	appconfig "github.com/dorolabs/site-backend/internal/config"
	"github.com/dorolabs/site-backend/internal/contact"
	"github.com/dorolabs/site-backend/internal/mail"
	"github.com/dorolabs/site-backend/internal/observability/metrics"
	"github.com/dorolabs/site-backend/pkg/logging"
)

// Serverless build of the contact endpoint: the same router served behind
// an API Gateway v2 HTTP API.
func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	registry := prometheus.NewRegistry()
	contactMetrics := metrics.NewContactMetrics(registry)

	sender := mail.BuildSender(cfg, logger)
	if sender == nil {
		logger.Error("email delivery credential missing, contact submissions will be rejected")
	}

	contactHandler := contact.NewHandler(contact.HandlerConfig{
		Sender:  sender,
		From:    cfg.MailFrom,
		To:      cfg.MailTo,
		Timeout: cfg.MailTimeout,
	}, logger, contactMetrics)

	h := router.New(&router.Config{
		Logger:            logger,
		ContactHandler:    contactHandler,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})

	lambda.Start(func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return serve(ctx, h, evt)
	})
}

func serve(ctx context.Context, h http.Handler, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))
	path := strings.TrimSpace(evt.RawPath)
	if path == "" {
		path = strings.TrimSpace(evt.RequestContext.HTTP.Path)
	}
	target := path
	if qs := strings.TrimSpace(evt.RawQueryString); qs != "" {
		target += "?" + qs
	}

	body, err := decodeBody(evt)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusBadRequest, Body: "invalid body"}, nil
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	for name, value := range evt.Headers {
		req.Header.Set(name, value)
	}
	req.RemoteAddr = evt.RequestContext.HTTP.SourceIP
	req.Host = evt.RequestContext.DomainName

	rec := &responseRecorder{status: http.StatusOK, header: http.Header{}}
	h.ServeHTTP(rec, req)

	headers := make(map[string]string, len(rec.header))
	for name, values := range rec.header {
		headers[name] = strings.Join(values, ", ")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: rec.status,
		Headers:    headers,
		Body:       rec.body.String(),
	}, nil
}

func decodeBody(evt events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if evt.Body == "" {
		return nil, nil
	}
	if evt.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(evt.Body)
	}
	return []byte(evt.Body), nil
}

// responseRecorder captures the router's response for translation back
// into a Lambda proxy response.
type responseRecorder struct {
	status      int
	header      http.Header
	body        bytes.Buffer
	wroteHeader bool
}

func (r *responseRecorder) Header() http.Header {
	return r.header
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	r.wroteHeader = true
	return r.body.Write(p)
}

func (r *responseRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
}
