package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

type GatewayApiCall struct {
	RequestID    uuid.UUID
	CustomerIp   string
	Method       string
	Url          string
	Request      pgtype.JSONB
	Response     pgtype.JSONB
	ResponseCode pgtype.Int4
	CreatedAt    time.Time
	RespondedAt  pgtype.Timestamptz
}
