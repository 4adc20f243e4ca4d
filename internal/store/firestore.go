package store

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/donation-thermometer/internal/config"
	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/utils"
	"github.com/MKhiriev/donation-thermometer/models"
	"github.com/go-resty/resty/v2"
)

// The whole system manages exactly one configuration document, never a
// per-tenant set, so both identifiers are fixed.
const (
	firestoreCollection = "campaign_configs"
	firestoreDocumentID = "current_config"

	defaultFirestoreEndpoint = "https://firestore.googleapis.com/v1"
	metadataTokenURL         = "http://metadata.google.internal/computeMetadata/v1/instance/service-accounts/default/token"

	// tokenExpirySlack is subtracted from the reported token lifetime so a
	// token is never used in the last seconds before it expires.
	tokenExpirySlack = 30 * time.Second
)

// FirestoreStore is the remote-document implementation of [ConfigStore].
// It drives the Firestore REST API through a resty client: Load issues a
// document GET, Save an upsert PATCH. A single document overwrite is atomic
// on the Firestore side, so no client-side locking is done here; multiple
// server replicas may write concurrently and the last write wins.
//
// Transient network, auth, and timeout failures surface as
// [ErrStorageUnavailable]; the store never retries on its own because
// masking a remote outage could silently serve stale in-process state.
type FirestoreStore struct {
	client  *utils.HTTPClient
	docPath string

	defaultOrganization string

	// staticToken, when non-empty, is used for every request. Otherwise
	// tokens are fetched from the GCE metadata server and cached.
	staticToken string
	tokenMu     sync.Mutex
	cachedToken string
	tokenExpiry time.Time

	logger *logger.Logger
}

// NewFirestoreStore constructs a Firestore-backed [ConfigStore] for the
// project configured in cfg. Every document call is bounded by
// cfg.RequestTimeout.
func NewFirestoreStore(cfg config.Firestore, organizationName string, logger *logger.Logger) (*FirestoreStore, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore store requires a project ID")
	}

	logger.Info().Str("project_id", cfg.ProjectID).Msg("initializing firestore storage")

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultFirestoreEndpoint
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(endpoint).
		SetTimeout(cfg.RequestTimeout)

	docPath := fmt.Sprintf("/projects/%s/databases/(default)/documents/%s/%s",
		cfg.ProjectID, firestoreCollection, firestoreDocumentID)

	return &FirestoreStore{
		client:              client,
		docPath:             docPath,
		defaultOrganization: organizationName,
		staticToken:         cfg.AccessToken,
		logger:              logger,
	}, nil
}

// Load implements [ConfigStore]. A 404 from Firestore means the document
// has never been written; that is not an error. The default record is
// returned without persisting it, so a read-only outage never turns a read
// into a failed write.
func (s *FirestoreStore) Load(ctx context.Context) (models.CampaignConfig, error) {
	log := logger.FromContext(ctx)

	var doc firestoreDocument
	resp, err := s.authedRequest(ctx).
		SetResult(&doc).
		Get(s.docPath)
	if err != nil {
		log.Err(err).Msg("firestore document read failed")
		return models.CampaignConfig{}, fmt.Errorf("%w: read: %w", ErrStorageUnavailable, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		log.Debug().Msg("no config document found, returning default")
		return models.DefaultCampaignConfig(s.defaultOrganization), nil
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("firestore document read rejected")
		return models.CampaignConfig{}, fmt.Errorf("%w: read status %d", ErrStorageUnavailable, resp.StatusCode())
	}

	config, err := decodeConfigDocument(doc)
	if err != nil {
		log.Err(err).Msg("firestore document cannot be decoded")
		return models.CampaignConfig{}, err
	}

	return config, nil
}

// Save implements [ConfigStore]. The PATCH upserts the document: it is
// created when absent and overwritten otherwise, in one atomic call.
func (s *FirestoreStore) Save(ctx context.Context, config models.CampaignConfig) error {
	log := logger.FromContext(ctx)

	resp, err := s.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(encodeConfigDocument(config)).
		Patch(s.docPath)
	if err != nil {
		log.Err(err).Msg("firestore document write failed")
		return fmt.Errorf("%w: write: %w", ErrStorageUnavailable, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("firestore document write rejected")
		return fmt.Errorf("%w: write status %d", ErrStorageUnavailable, resp.StatusCode())
	}

	log.Debug().Int("teams", len(config.Teams)).Msg("config document saved")
	return nil
}

func (s *FirestoreStore) authedRequest(ctx context.Context) *resty.Request {
	req := s.client.R().SetContext(ctx)
	if token, err := s.accessToken(ctx); err == nil && token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// accessToken returns the bearer token for the next request: the static
// configured token when present, otherwise a metadata-server token cached
// until shortly before its reported expiry.
func (s *FirestoreStore) accessToken(ctx context.Context) (string, error) {
	if s.staticToken != "" {
		return s.staticToken, nil
	}

	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()

	if s.cachedToken != "" && time.Now().Before(s.tokenExpiry) {
		return s.cachedToken, nil
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Metadata-Flavor", "Google").
		SetResult(&tokenResponse).
		Get(metadataTokenURL)
	if err != nil {
		return "", fmt.Errorf("metadata token request: %w", err)
	}
	if resp.IsError() || tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("metadata token request: status %d", resp.StatusCode())
	}

	s.cachedToken = tokenResponse.AccessToken
	s.tokenExpiry = time.Now().Add(time.Duration(tokenResponse.ExpiresIn)*time.Second - tokenExpirySlack)

	return s.cachedToken, nil
}
