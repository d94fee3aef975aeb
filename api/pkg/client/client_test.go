package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

func pdfBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("%PDF-1.4\n"))
	return data
}

func newTestClient(t *testing.T, handler http.Handler) (*CVMatchClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := NewClient(server.URL, "test-token")
	require.NoError(t, err)
	return apiClient, server
}

func TestUploadCVRejectsLocally(t *testing.T) {
	var requests atomic.Int64
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		filename string
		data     []byte
		contains string
	}{
		{
			name:     "oversized pdf",
			filename: "resume.pdf",
			data:     pdfBytes(MaxUploadBytes + 1),
			contains: "larger than",
		},
		{
			name:     "wrong extension",
			filename: "resume.docx",
			data:     pdfBytes(1024),
			contains: "not a PDF",
		},
		{
			name:     "pdf extension but not pdf content",
			filename: "resume.pdf",
			data:     []byte("just some text"),
			contains: "not a PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := apiClient.UploadCV(context.Background(), tt.filename, bytes.NewReader(tt.data), false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	// validation failures must never reach the network
	assert.Equal(t, int64(0), requests.Load())
}

func TestUploadCV(t *testing.T) {
	var gotPath, gotAuth, gotFilename string
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename

		_ = json.NewEncoder(w).Encode(&types.UploadResponse{CVID: 42})
	}))

	uploadResp, err := apiClient.UploadCV(context.Background(), "/tmp/resume.pdf", bytes.NewReader(pdfBytes(4*1024*1024)), false)
	require.NoError(t, err)

	assert.Equal(t, int64(42), uploadResp.CVID)
	assert.Equal(t, "/upload", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "resume.pdf", gotFilename)
}

func TestUploadCVPremiumEndpoint(t *testing.T) {
	var gotPath string
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(&types.UploadResponse{CVID: 7})
	}))

	_, err := apiClient.UploadCV(context.Background(), "resume.pdf", bytes.NewReader(pdfBytes(1024)), true)
	require.NoError(t, err)
	assert.Equal(t, "/super-advanced/upload", gotPath)
}

func TestUploadCVRequiresToken(t *testing.T) {
	apiClient, err := NewClient("http://localhost:8000", "")
	require.NoError(t, err)

	_, err = apiClient.UploadCV(context.Background(), "resume.pdf", bytes.NewReader(pdfBytes(1024)), false)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestErrorDetailExtraction(t *testing.T) {
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "no cv uploaded yet"}`))
	}))

	_, err := apiClient.GetRecommendations(context.Background())
	require.Error(t, err)

	var httpErr *system.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, "no cv uploaded yet", httpErr.Message)
}

func TestToken(t *testing.T) {
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "jane@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))

		_ = json.NewEncoder(w).Encode(&types.TokenResponse{AccessToken: "tok", TokenType: "bearer"})
	}))

	tokenResp, err := apiClient.Token(context.Background(), "jane@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok", tokenResp.AccessToken)
}

func TestLogInteraction(t *testing.T) {
	var gotReq types.InteractionRequest
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(&types.InteractionResponse{Status: types.InteractionStatusAlreadyExists})
	}))

	resp, err := apiClient.LogInteraction(context.Background(), &types.InteractionRequest{
		JobID:  12,
		Action: types.InteractionActionApplied,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), gotReq.JobID)
	assert.Equal(t, types.InteractionActionApplied, gotReq.Action)
	// already_exists is the idempotent replay answer, still a success
	assert.True(t, resp.Recorded())
}

func TestLogInteractionValidation(t *testing.T) {
	var requests atomic.Int64
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	_, err := apiClient.LogInteraction(context.Background(), &types.InteractionRequest{
		JobID:  12,
		Action: "poked",
	})
	require.Error(t, err)

	_, err = apiClient.LogInteraction(context.Background(), &types.InteractionRequest{
		Action: types.InteractionActionViewed,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job id")
	assert.Equal(t, int64(0), requests.Load())
}

func TestUpdateApplicationStatus(t *testing.T) {
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/3/applications/9/status", r.URL.Path)

		var req types.UpdateApplicationStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(&types.Application{ID: 9, JobID: 3, Status: req.Status})
	}))

	application, err := apiClient.UpdateApplicationStatus(context.Background(), 3, 9, types.ApplicationStatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationStatusShortlisted, application.Status)
}

func TestAdminTriggerBatch(t *testing.T) {
	apiClient, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/batches/trigger", r.URL.Path)

		var req types.BatchTriggerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "recompute_matches", req.Type)

		_ = json.NewEncoder(w).Encode(&types.BatchTriggerResponse{
			Job: &types.BatchJob{ID: "batch_1", Type: req.Type, Status: types.BatchJobStatusQueued},
		})
	}))

	job, err := apiClient.AdminTriggerBatch(context.Background(), "recompute_matches")
	require.NoError(t, err)
	assert.Equal(t, types.BatchJobStatusQueued, job.Status)
}
