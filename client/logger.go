package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/kod2ulz/gostart/api"
	"github.com/kod2ulz/fatzebra-gateway/sql/db"
	"github.com/sirupsen/logrus"
)

// CallStore persists an audit row per gateway call.
type CallStore interface {
	LogApiRequest(ctx context.Context, arg db.LogApiRequestParams) (db.GatewayApiCall, error)
	LogApiResponse(ctx context.Context, arg db.LogApiResponseParams) (db.GatewayApiCall, error)
}

var sensitiveFields = map[string]bool{"cvv": true, "card_number": false, "account_number": false}

type gatewayLogger struct {
	*logrus.Entry
	store CallStore
}

// RequestID returns the request id carried by ctx, or a new one.
func RequestID(ctx context.Context) (out uuid.UUID) {
	var ok bool
	var err error
	if val := ctx.Value(api.RequestID); val != nil {
		if out, ok = val.(uuid.UUID); ok {
			return
		} else if out, err = uuid.Parse(fmt.Sprint(val)); err == nil {
			return
		}
	}
	return uuid.New()
}

func ContextWithRequestID(ctx context.Context, requestID uuid.UUID) context.Context {
	return context.WithValue(ctx, api.RequestID, requestID)
}

func (l *gatewayLogger) Request(ctx context.Context, requestID uuid.UUID, method Method, url, customerIP string, body Payload) {
	log := l.WithField("requestId", requestID).WithField("method", method).WithField("url", url)
	if body != nil {
		log = log.WithField("body", Redact(body))
	}
	log.Debug("gateway request")
	if l.store == nil {
		return
	}
	var request pgtype.JSONB
	if err := request.Set(Redact(body)); err != nil {
		l.WithError(err).Error("failed to encode api request")
		return
	}
	if _, err := l.store.LogApiRequest(ctx, db.LogApiRequestParams{
		RequestID:  requestID,
		CustomerIp: customerIP,
		Method:     string(method),
		Url:        url,
		Request:    request,
	}); err != nil {
		l.WithError(err).WithField("requestId", requestID).Error("failed to save api request")
	}
}

func (l *gatewayLogger) Response(ctx context.Context, requestID uuid.UUID, code int, body []byte, callErr error) {
	log := l.WithField("requestId", requestID).WithField("code", code)
	if callErr != nil {
		log.WithError(callErr).Error("gateway request failed")
	} else {
		log.Debug("gateway response")
	}
	if l.store == nil {
		return
	}
	var response pgtype.JSONB
	data := map[string]any{"code": code}
	if len(body) > 0 {
		data["body"] = string(body)
	}
	if callErr != nil {
		data["error"] = callErr.Error()
	}
	if err := response.Set(data); err != nil {
		l.WithError(err).Error("failed to encode api response")
		return
	}
	if _, err := l.store.LogApiResponse(ctx, db.LogApiResponseParams{
		RequestID:    requestID,
		ResponseCode: int32(code),
		Response:     response,
	}); err != nil {
		l.WithError(err).WithField("requestId", requestID).Error("failed to save api response")
	}
}

// Redact masks card and account numbers and drops cvv values, at any depth.
func Redact(p Payload) Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		if drop, ok := sensitiveFields[k]; ok {
			if drop {
				continue
			}
			out[k] = Mask(fmt.Sprint(v))
			continue
		}
		out[k] = redactValue(v)
	}
	return out
}

func redactValue(v any) any {
	if m, ok := asMap(v); ok {
		return Redact(m)
	} else if l, ok := asList(v); ok {
		for i := range l {
			l[i] = redactValue(l[i])
		}
		return l
	}
	return v
}

// Mask keeps the first six and last four characters of long numbers and the last
// four of short ones.
func Mask(number string) string {
	n := len(number)
	switch {
	case n > 10:
		return number[:6] + strings.Repeat("X", n-10) + number[n-4:]
	case n > 4:
		return strings.Repeat("X", n-4) + number[n-4:]
	}
	return strings.Repeat("X", n)
}
