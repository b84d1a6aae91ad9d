package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func writeBusiness(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteBusiness(c, err)
	return w
}

func TestWriteBusiness_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ErrValidation("bad_input", "Bad input."), http.StatusBadRequest},
		{"not_found", ErrNotFound("missing", "Missing."), http.StatusNotFound},
		{"unavailable", ErrUnavailable("busy", "Busy."), http.StatusConflict},
		{"persistence", ErrPersistence("db_down", "Down."), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := writeBusiness(tc.err)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestWriteBusiness_UnknownErrorIsOpaque(t *testing.T) {
	w := writeBusiness(errors.New("pq: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "internal_error") || strings.Contains(body, "connection refused") {
		t.Errorf("body leaks detail: %s", body)
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(ErrValidation("x", "y"))
	if !ok || kind != KindValidation {
		t.Errorf("KindOf = %v/%v", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("plain errors should not carry a kind")
	}
}

func TestIsBusiness(t *testing.T) {
	err := ErrNotFound("doctor_not_found", "Doctor not found.")

	if !IsBusiness(err, "doctor_not_found") {
		t.Error("expected code match")
	}
	if IsBusiness(err, "other_code") {
		t.Error("unexpected code match")
	}
	if IsBusiness(errors.New("plain"), "doctor_not_found") {
		t.Error("plain error matched a business code")
	}
}
