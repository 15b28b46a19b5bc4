package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusClass(t *testing.T) {
	cases := map[int]string{
		http.StatusContinue:            "1xx",
		http.StatusOK:                  "2xx",
		http.StatusAccepted:            "2xx",
		http.StatusMovedPermanently:    "3xx",
		http.StatusBadRequest:          "4xx",
		http.StatusConflict:            "4xx",
		http.StatusInternalServerError: "5xx",
		http.StatusBadGateway:          "5xx",
	}
	for code, want := range cases {
		if got := statusClass(code); got != want {
			t.Errorf("statusClass(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestStatusRecorderCapturesCode(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.WriteHeader(http.StatusConflict)
	if rec.status != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, rec.status)
	}
}
