package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Response is the gateway envelope. It is returned for every completed exchange,
// including declines, which show up as Successful == false or as
// Response["successful"] == false with Errors populated.
type Response struct {
	Successful bool            `json:"successful"`
	Response   map[string]any  `json:"response"`
	Errors     []string        `json:"errors"`
	Test       bool            `json:"test,omitempty"`
	StatusCode int             `json:"-"`
	Raw        json.RawMessage `json:"-"`
}

// Normalize decodes body into a Response. The body is trusted as is and not
// validated field by field.
func Normalize(code int, body []byte) (out Response, err error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return out, ResponseFormatError(ReasonSyntax, code, body, errors.New("empty response body"))
	} else if !utf8.Valid(trimmed) {
		return out, ResponseFormatError(ReasonEncoding, code, body, errors.New("invalid UTF-8 in response body"))
	}
	if err = json.Unmarshal(trimmed, &out); err != nil {
		var syntax *json.SyntaxError
		if errors.As(err, &syntax) {
			return Response{}, ResponseFormatError(ReasonSyntax, code, body, err)
		}
		return Response{}, ResponseFormatError(ReasonUnknown, code, body, err)
	} else if trimmed[0] != '{' {
		return Response{}, ResponseFormatError(ReasonUnknown, code, body, errors.Errorf("response body is not a JSON object"))
	}
	out.StatusCode = code
	out.Raw = append(json.RawMessage(nil), trimmed...)
	return
}

// Approved reports whether the exchange and the underlying transaction both succeeded.
func (r Response) Approved() bool {
	if !r.Successful {
		return false
	}
	if v, ok := r.Response["successful"]; ok {
		b, _ := v.(bool)
		return b
	}
	return true
}

func (r Response) String(key string) string {
	if v, ok := r.Response[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}

func (r Response) ID() string {
	return r.String("id")
}

func (r Response) Message() string {
	return r.String("message")
}

// Error returns the first gateway error, if any.
func (r Response) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Decode unmarshals the inner "response" object into v.
func (r Response) Decode(v any) (err error) {
	var envelope struct {
		Response json.RawMessage `json:"response"`
	}
	if err = json.Unmarshal(r.Raw, &envelope); err != nil {
		return errors.Wrap(err, "failed to read response envelope")
	} else if len(envelope.Response) == 0 || string(envelope.Response) == "null" {
		return errors.New("response object is empty")
	} else if err = json.Unmarshal(envelope.Response, v); err != nil {
		return errors.Wrapf(err, "failed to decode response into %T", v)
	}
	return
}
