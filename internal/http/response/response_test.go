package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Error(c, CodeNotFound, "missing")

	var body struct {
		StatusCode int               `json:"status_code"`
		Msg        string            `json:"msg"`
		Data       map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.StatusCode != CodeNotFound || body.Msg != "missing" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if body.Data["request_id"] != "req-1" {
		t.Fatalf("request id want req-1 got %v", body.Data)
	}
}

func TestErrorWithoutRequestIDHasNullData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	TooManyRequests(c, "slow down")

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if w.Code != 200 || body["status_code"] != float64(CodeTooManyRequests) {
		t.Fatalf("unexpected envelope: code=%d body=%v", w.Code, body)
	}
	if body["data"] != nil {
		t.Fatalf("data should be null without request id, got %v", body["data"])
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := &AppError{Message: "inner"}
	err := WrapError(CodeInternal, "outer", cause)
	if err.Unwrap() != cause {
		t.Fatalf("unwrap should return cause")
	}
	if err.Error() != "outer: inner" {
		t.Fatalf("error text mismatch: %s", err.Error())
	}
}

func TestAppErrorInternalAndLogFields(t *testing.T) {
	cause := errors.New("db down")
	internal := WrapError(CodeInternal, "server error", cause)
	if !internal.Internal() {
		t.Fatalf("500 should be internal")
	}
	fields := internal.LogFields()
	if len(fields) != 6 || fields[len(fields)-1] != cause {
		t.Fatalf("unexpected log fields: %v", fields)
	}

	rejected := WrapError(CodeNotFound, "missing", nil)
	if rejected.Internal() {
		t.Fatalf("404 should not be internal")
	}
	if got := rejected.LogFields(); len(got) != 4 {
		t.Fatalf("fields without cause want 4 got %v", got)
	}
	var nilErr *AppError
	if nilErr.Internal() || nilErr.LogFields() != nil {
		t.Fatalf("nil app error should be inert")
	}
}
