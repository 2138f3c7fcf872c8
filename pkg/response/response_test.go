package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"timeblock/pkg/response"
)

func record(handler func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.OK(c, gin.H{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Message != response.MessageSuccess {
		t.Errorf("resp = %+v", resp)
	}
}

func TestError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, errors.New("bad input"))
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != "bad input" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.InternalError(c, errors.New("secret db dsn"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != response.DefaultErrorMessage {
		t.Errorf("internal error leaked detail: %q", resp.Message)
	}
}
