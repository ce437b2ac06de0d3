package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pathlight-health/casebook/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	type caseSummary struct {
		CaseID string `json:"case_id"`
		Owner  string `json:"owner"`
	}

	tests := []struct {
		name   string
		status int
		data   any
		want   string
	}{
		{
			name:   "200 with map",
			status: http.StatusOK,
			data:   map[string]string{"case_id": "jane_doe_1"},
			want:   `{"case_id":"jane_doe_1"}`,
		},
		{
			name:   "201 with struct",
			status: http.StatusCreated,
			data:   caseSummary{CaseID: "jane_doe_2", Owner: "jane doe"},
			want:   `{"case_id":"jane_doe_2","owner":"jane doe"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondJSON(rec, tt.status, tt.data)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.status {
				t.Errorf("status: got %d, want %d", res.StatusCode, tt.status)
			}
			if ct := res.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type: got %s", ct)
			}

			body, _ := io.ReadAll(res.Body)

			var got, want any
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			json.Unmarshal([]byte(tt.want), &want)

			gotJSON, _ := json.Marshal(got)
			wantJSON, _ := json.Marshal(want)
			if string(gotJSON) != string(wantJSON) {
				t.Errorf("body: got %s, want %s", gotJSON, wantJSON)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := httptest.NewRecorder()

	handlers.RespondError(rec, logger, http.StatusBadRequest, errors.New("age required"))

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: got %s", ct)
	}

	body, _ := io.ReadAll(res.Body)
	var parsed map[string]string
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if parsed["error"] != "age required" {
		t.Errorf("error: got %s, want age required", parsed["error"])
	}
}
