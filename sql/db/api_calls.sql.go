package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

const apiCallColumns = `request_id, customer_ip, method, url, request, response, response_code, created_at, responded_at`

const logApiRequest = `
INSERT INTO gateway_api_calls (request_id, customer_ip, method, url, request)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + apiCallColumns

type LogApiRequestParams struct {
	RequestID  uuid.UUID
	CustomerIp string
	Method     string
	Url        string
	Request    pgtype.JSONB
}

func (q *Queries) LogApiRequest(ctx context.Context, arg LogApiRequestParams) (GatewayApiCall, error) {
	row := q.db.QueryRow(ctx, logApiRequest,
		arg.RequestID,
		arg.CustomerIp,
		arg.Method,
		arg.Url,
		arg.Request,
	)
	return scanApiCall(row)
}

const logApiResponse = `
UPDATE gateway_api_calls
SET response = $2, response_code = $3, responded_at = now()
WHERE request_id = $1
RETURNING ` + apiCallColumns

type LogApiResponseParams struct {
	RequestID    uuid.UUID
	ResponseCode int32
	Response     pgtype.JSONB
}

func (q *Queries) LogApiResponse(ctx context.Context, arg LogApiResponseParams) (GatewayApiCall, error) {
	row := q.db.QueryRow(ctx, logApiResponse, arg.RequestID, arg.Response, arg.ResponseCode)
	return scanApiCall(row)
}

const getApiCall = `SELECT ` + apiCallColumns + ` FROM gateway_api_calls WHERE request_id = $1`

func (q *Queries) GetApiCall(ctx context.Context, requestID uuid.UUID) (GatewayApiCall, error) {
	return scanApiCall(q.db.QueryRow(ctx, getApiCall, requestID))
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanApiCall(row scanner) (i GatewayApiCall, err error) {
	err = row.Scan(
		&i.RequestID,
		&i.CustomerIp,
		&i.Method,
		&i.Url,
		&i.Request,
		&i.Response,
		&i.ResponseCode,
		&i.CreatedAt,
		&i.RespondedAt,
	)
	return
}
