package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/donation-thermometer/internal/config"
	"github.com/MKhiriev/donation-thermometer/internal/ingest"
	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/service"
	"github.com/MKhiriev/donation-thermometer/internal/store"
	"github.com/MKhiriev/donation-thermometer/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEditKey = "test-edit-key"

// mockCampaignService is a hand-written test double for
// service.CampaignService with overridable behavior per test.
type mockCampaignService struct {
	GetConfigFunc     func(ctx context.Context) (models.CampaignConfig, error)
	SummaryFunc       func(ctx context.Context) (models.CampaignSummary, error)
	ReplaceTeamsFunc  func(ctx context.Context, teams []models.Team) (models.CampaignConfig, error)
	ReplaceConfigFunc func(ctx context.Context, config models.CampaignConfig) (models.CampaignConfig, error)
}

func (m *mockCampaignService) GetConfig(ctx context.Context) (models.CampaignConfig, error) {
	return m.GetConfigFunc(ctx)
}

func (m *mockCampaignService) Summary(ctx context.Context) (models.CampaignSummary, error) {
	return m.SummaryFunc(ctx)
}

func (m *mockCampaignService) ReplaceTeams(ctx context.Context, teams []models.Team) (models.CampaignConfig, error) {
	return m.ReplaceTeamsFunc(ctx, teams)
}

func (m *mockCampaignService) ReplaceConfig(ctx context.Context, config models.CampaignConfig) (models.CampaignConfig, error) {
	return m.ReplaceConfigFunc(ctx, config)
}

func newTestRouter(mock *mockCampaignService) *chi.Mux {
	handler := NewHandler(
		&service.Services{CampaignService: mock},
		config.App{EditKey: testEditKey},
		logger.Nop(),
	)
	return handler.Init()
}

func servedConfig() models.CampaignConfig {
	return models.CampaignConfig{
		OrganizationName: "CARE",
		Title:            "Spring Drive",
		Goal:             10000,
		Teams:            []models.Team{{Name: "Team Alpha", TotalRaised: 1500}},
		LastUpdated:      "2026-01-02T15:04:05Z",
	}
}

// multipartCSV builds a multipart form body with the given CSV under the
// "file" field and returns the body and its content type.
func multipartCSV(t *testing.T, csvData string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "teams.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

// ─────────────────────────────────────────────
// Public routes
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	router := newTestRouter(&mockCampaignService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestGetConfig(t *testing.T) {
	mock := &mockCampaignService{
		GetConfigFunc: func(context.Context) (models.CampaignConfig, error) {
			return servedConfig(), nil
		},
	}
	router := newTestRouter(mock)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/config", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var got models.CampaignConfig
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, servedConfig(), got)
}

func TestGetConfig_StorageUnavailable(t *testing.T) {
	mock := &mockCampaignService{
		GetConfigFunc: func(context.Context) (models.CampaignConfig, error) {
			return models.CampaignConfig{}, store.ErrStorageUnavailable
		},
	}
	router := newTestRouter(mock)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/config", nil))

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.NotEmpty(t, errResp.Error)
}

func TestGetSummary(t *testing.T) {
	mock := &mockCampaignService{
		SummaryFunc: func(context.Context) (models.CampaignSummary, error) {
			return models.CampaignSummary{
				OrganizationName: "CARE",
				Title:            "Spring Drive",
				Goal:             10000,
				TotalRaised:      1500,
				PercentOfGoal:    15,
				TeamCount:        1,
				LastUpdated:      "2026-01-02T15:04:05Z",
			}, nil
		},
	}
	router := newTestRouter(mock)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/config/summary", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var summary models.CampaignSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, 15.0, summary.PercentOfGoal)
	assert.Equal(t, 1, summary.TeamCount)
}

// TestSampleCSV verifies that the canned sample download is itself a valid
// upload, so an admin can round-trip it unchanged.
func TestSampleCSV(t *testing.T) {
	router := newTestRouter(&mockCampaignService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/sample-csv", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "attachment")

	teams, err := ingest.ParseTeams(recorder.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, teams)
}

// ─────────────────────────────────────────────
// Auth middleware
// ─────────────────────────────────────────────

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", authHeader: "not-the-key", wantStatus: http.StatusUnauthorized},
		{name: "wrong key with bearer scheme", authHeader: "Bearer not-the-key", wantStatus: http.StatusUnauthorized},
		{name: "bare key", authHeader: testEditKey, wantStatus: http.StatusOK},
		{name: "bearer key", authHeader: "Bearer " + testEditKey, wantStatus: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mock := &mockCampaignService{
				ReplaceConfigFunc: func(_ context.Context, config models.CampaignConfig) (models.CampaignConfig, error) {
					return config, nil
				},
			}
			router := newTestRouter(mock)

			body := strings.NewReader(`{"title":"Drive","goal":100,"teams":[]}`)
			request := httptest.NewRequest(http.MethodPost, "/admin/config", body)
			if test.authHeader != "" {
				request.Header.Set("Authorization", test.authHeader)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, test.wantStatus, recorder.Code)
		})
	}
}

// ─────────────────────────────────────────────
// POST /admin/upload
// ─────────────────────────────────────────────

func TestUploadCSV(t *testing.T) {
	var receivedTeams []models.Team
	mock := &mockCampaignService{
		ReplaceTeamsFunc: func(_ context.Context, teams []models.Team) (models.CampaignConfig, error) {
			receivedTeams = teams
			next := servedConfig()
			next.Teams = teams
			return next, nil
		},
	}
	router := newTestRouter(mock)

	body, contentType := multipartCSV(t, "name,image_url,total_raised\nTeam Alpha,,100\nTeam Beta,,200\n")
	request := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Authorization", "Bearer "+testEditKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, receivedTeams, 2)
	assert.Equal(t, "Team Alpha", receivedTeams[0].Name)

	var success models.SuccessResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &success))
	assert.Equal(t, "CSV uploaded successfully", success.Message)
	assert.Len(t, success.Config.Teams, 2)
}

func TestUploadCSV_NoFile(t *testing.T) {
	router := newTestRouter(&mockCampaignService{})

	request := httptest.NewRequest(http.MethodPost, "/admin/upload", strings.NewReader(""))
	request.Header.Set("Authorization", "Bearer "+testEditKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

// TestUploadCSV_InvalidRow verifies that a broken upload is rejected with a
// 400 naming the offending row and column, and the service is never called.
func TestUploadCSV_InvalidRow(t *testing.T) {
	serviceCalled := false
	mock := &mockCampaignService{
		ReplaceTeamsFunc: func(_ context.Context, teams []models.Team) (models.CampaignConfig, error) {
			serviceCalled = true
			return models.CampaignConfig{}, nil
		},
	}
	router := newTestRouter(mock)

	body, contentType := multipartCSV(t, "name,image_url,total_raised\nTeam Alpha,,not-a-number\n")
	request := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Authorization", "Bearer "+testEditKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, serviceCalled)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "row 1")
	assert.Contains(t, errResp.Error, "total_raised")
}

func TestUploadCSV_MissingColumn(t *testing.T) {
	router := newTestRouter(&mockCampaignService{})

	body, contentType := multipartCSV(t, "name,total_raised\nTeam Alpha,100\n")
	request := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Authorization", "Bearer "+testEditKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "image_url")
}

func TestUploadCSV_StorageUnavailable(t *testing.T) {
	mock := &mockCampaignService{
		ReplaceTeamsFunc: func(context.Context, []models.Team) (models.CampaignConfig, error) {
			return models.CampaignConfig{}, store.ErrStorageUnavailable
		},
	}
	router := newTestRouter(mock)

	body, contentType := multipartCSV(t, "name,image_url,total_raised\nTeam Alpha,,100\n")
	request := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Authorization", "Bearer "+testEditKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

// ─────────────────────────────────────────────
// POST /admin/config
// ─────────────────────────────────────────────

func TestUpdateConfig(t *testing.T) {
	var receivedConfig models.CampaignConfig
	mock := &mockCampaignService{
		ReplaceConfigFunc: func(_ context.Context, config models.CampaignConfig) (models.CampaignConfig, error) {
			receivedConfig = config
			config.LastUpdated = "2026-08-24T12:00:00Z"
			return config, nil
		},
	}
	router := newTestRouter(mock)

	body := strings.NewReader(`{
		"organization_name": "CARE",
		"title": "Autumn Drive",
		"goal": 20000,
		"teams": [{"name": "Team Delta", "image_url": null, "total_raised": 0}]
	}`)
	request := httptest.NewRequest(http.MethodPost, "/admin/config", body)
	request.Header.Set("Authorization", "Bearer "+testEditKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Autumn Drive", receivedConfig.Title)
	require.Len(t, receivedConfig.Teams, 1)
	assert.Nil(t, receivedConfig.Teams[0].ImageURL)

	var success models.SuccessResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &success))
	assert.Equal(t, "Configuration updated successfully", success.Message)
	assert.Equal(t, "2026-08-24T12:00:00Z", success.Config.LastUpdated)
}

func TestUpdateConfig_InvalidJSON(t *testing.T) {
	router := newTestRouter(&mockCampaignService{})

	request := httptest.NewRequest(http.MethodPost, "/admin/config", strings.NewReader("{not json"))
	request.Header.Set("Authorization", "Bearer "+testEditKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "Invalid JSON was passed", errResp.Error)
}

// TestUpdateConfig_ValidationErrorNamesField verifies that a field-level
// rejection from the service maps to 400 with the field visible to the
// admin.
func TestUpdateConfig_ValidationErrorNamesField(t *testing.T) {
	mock := &mockCampaignService{
		ReplaceConfigFunc: func(context.Context, models.CampaignConfig) (models.CampaignConfig, error) {
			return models.CampaignConfig{}, &models.FieldError{Field: "goal", Reason: "must not be negative"}
		},
	}
	router := newTestRouter(mock)

	body := strings.NewReader(`{"title":"Drive","goal":-1,"teams":[]}`)
	request := httptest.NewRequest(http.MethodPost, "/admin/config", body)
	request.Header.Set("Authorization", "Bearer "+testEditKey)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "goal")
}

// ─────────────────────────────────────────────
// Error to status mapping
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "field error", err: &models.FieldError{Field: "goal"}, want: http.StatusBadRequest},
		{name: "row error", err: &ingest.RowError{Row: 1, Column: "name"}, want: http.StatusBadRequest},
		{name: "missing column", err: ingest.ErrMissingColumn, want: http.StatusBadRequest},
		{name: "malformed csv", err: ingest.ErrMalformedCSV, want: http.StatusBadRequest},
		{name: "no teams", err: service.ErrNoTeamsProvided, want: http.StatusBadRequest},
		{name: "storage unavailable", err: store.ErrStorageUnavailable, want: http.StatusServiceUnavailable},
		{name: "malformed document", err: store.ErrMalformedDocument, want: http.StatusInternalServerError},
		{name: "unknown error", err: context.DeadlineExceeded, want: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, statusFromError(test.err))
		})
	}
}
