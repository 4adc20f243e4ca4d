package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		EditKey          string `json:"edit_key"`
		OrganizationName string `json:"organization_name"`
	} `json:"app,omitempty"`

	Storage struct {
		Firestore struct {
			ProjectID      string   `json:"project_id"`
			AccessToken    string   `json:"access_token"`
			Endpoint       string   `json:"endpoint"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"firestore,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EditKey:          jsonCfg.App.EditKey,
			OrganizationName: jsonCfg.App.OrganizationName,
		},
		Storage: Storage{
			Firestore: Firestore{
				ProjectID:      jsonCfg.Storage.Firestore.ProjectID,
				AccessToken:    jsonCfg.Storage.Firestore.AccessToken,
				Endpoint:       jsonCfg.Storage.Firestore.Endpoint,
				RequestTimeout: time.Duration(jsonCfg.Storage.Firestore.RequestTimeout),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
