package facades

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionHTTPFacade_Predict(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		respBody   string
		wantErr    bool
		wantResult string
	}{
		{
			name:       "Success",
			status:     http.StatusOK,
			respBody:   `{"prediction":[1]}`,
			wantResult: `{"prediction":[1]}`,
		},
		{
			name:     "ServerError",
			status:   http.StatusInternalServerError,
			respBody: `{"error":"boom"}`,
			wantErr:  true,
		},
		{
			name:     "InvalidJSON",
			status:   http.StatusOK,
			respBody: `not json`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/predict", r.URL.Path)

				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"features":[0.1,0.2]}`, string(body))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.respBody))
			}))
			defer srv.Close()

			f := NewPredictionHTTPFacade(srv.URL+"/", time.Second)
			got, err := f.Predict(context.Background(), json.RawMessage(`[0.1,0.2]`))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantResult, string(got))
		})
	}
}

func TestPredictionHTTPFacade_Unreachable(t *testing.T) {
	f := NewPredictionHTTPFacade("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := f.Predict(context.Background(), json.RawMessage(`[1]`))
	assert.Error(t, err)
}
