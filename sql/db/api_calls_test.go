package db_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/kod2ulz/fatzebra-gateway/sql/db"
)

type fakeRow struct {
	err error
	id  uuid.UUID
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*string) = "203.0.113.9"
	*dest[2].(*string) = "POST"
	*dest[3].(*string) = "https://gateway.pmnts-sandbox.io/v1.0/purchases"
	*dest[7].(*time.Time) = time.Unix(1700000000, 0)
	return nil
}

type fakeDB struct {
	sql  string
	args []interface{}
	err  error
}

func (f *fakeDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	f.sql, f.args = sql, args
	var id uuid.UUID
	if len(args) > 0 {
		id, _ = args[0].(uuid.UUID)
	}
	return fakeRow{err: f.err, id: id}
}

var _ = Describe("api call queries", func() {

	var conn *fakeDB
	var q *db.Queries
	var id uuid.UUID

	BeforeEach(func() {
		conn, id = &fakeDB{}, uuid.New()
		q = db.New(conn)
	})

	It("records a request", func() {
		var body pgtype.JSONB
		Expect(body.Set(map[string]any{"amount": 1000})).To(Succeed())
		call, err := q.LogApiRequest(context.Background(), db.LogApiRequestParams{
			RequestID:  id,
			CustomerIp: "203.0.113.9",
			Method:     "POST",
			Url:        "https://gateway.pmnts-sandbox.io/v1.0/purchases",
			Request:    body,
		})
		Expect(err).To(BeNil())
		Expect(conn.sql).To(ContainSubstring("INSERT INTO gateway_api_calls"))
		Expect(conn.args).To(HaveLen(5))
		Expect(conn.args[0]).To(Equal(id))
		Expect(conn.args[4]).To(Equal(body))
		Expect(call.RequestID).To(Equal(id))
		Expect(call.Method).To(Equal("POST"))
		Expect(call.CreatedAt.Unix()).To(Equal(int64(1700000000)))
	})

	It("records a response against the request", func() {
		var body pgtype.JSONB
		Expect(body.Set(map[string]any{"code": 200})).To(Succeed())
		_, err := q.LogApiResponse(context.Background(), db.LogApiResponseParams{RequestID: id, ResponseCode: 200, Response: body})
		Expect(err).To(BeNil())
		Expect(conn.sql).To(ContainSubstring("UPDATE gateway_api_calls"))
		Expect(conn.args).To(Equal([]interface{}{id, body, int32(200)}))
	})

	It("reports missing rows", func() {
		conn.err = pgx.ErrNoRows
		_, err := q.GetApiCall(context.Background(), id)
		Expect(db.IsSqlNoRows(err)).To(BeTrue())
		Expect(conn.sql).To(ContainSubstring("WHERE request_id = $1"))
		Expect(db.IsSqlNoRows(errors.New("connection reset"))).To(BeFalse())
		Expect(db.IsSqlNoRows(nil)).To(BeFalse())
	})
})
