package store

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/donation-thermometer/models"
)

// Firestore REST documents wrap every field in a typed value envelope
// (stringValue, doubleValue, timestampValue, ...). The functions in this
// file map [models.CampaignConfig] onto that envelope field by field in
// both directions. There is no schema-less pass-through: a document with a
// missing or mistyped field decodes to [ErrMalformedDocument], never to a
// half-populated domain object.

type firestoreDocument struct {
	Name   string                    `json:"name,omitempty"`
	Fields map[string]firestoreValue `json:"fields"`
}

type firestoreValue struct {
	StringValue    *string         `json:"stringValue,omitempty"`
	DoubleValue    *float64        `json:"doubleValue,omitempty"`
	IntegerValue   *string         `json:"integerValue,omitempty"`
	TimestampValue *string         `json:"timestampValue,omitempty"`
	NullValue      *string         `json:"nullValue,omitempty"`
	ArrayValue     *firestoreArray `json:"arrayValue,omitempty"`
	MapValue       *firestoreMap   `json:"mapValue,omitempty"`
}

type firestoreArray struct {
	Values []firestoreValue `json:"values,omitempty"`
}

type firestoreMap struct {
	Fields map[string]firestoreValue `json:"fields"`
}

func stringValue(s string) firestoreValue {
	return firestoreValue{StringValue: &s}
}

func doubleValue(f float64) firestoreValue {
	return firestoreValue{DoubleValue: &f}
}

func timestampValue(ts string) firestoreValue {
	return firestoreValue{TimestampValue: &ts}
}

func nullValue() firestoreValue {
	nv := "NULL_VALUE"
	return firestoreValue{NullValue: &nv}
}

// encodeConfigDocument maps a campaign configuration onto the Firestore
// field envelope. An absent team image is encoded as an explicit nullValue
// so the persisted document mirrors the JSON API shape 1:1.
func encodeConfigDocument(config models.CampaignConfig) firestoreDocument {
	teamValues := make([]firestoreValue, 0, len(config.Teams))
	for _, team := range config.Teams {
		fields := map[string]firestoreValue{
			"name":         stringValue(team.Name),
			"total_raised": doubleValue(team.TotalRaised),
		}
		if team.ImageURL != nil {
			fields["image_url"] = stringValue(*team.ImageURL)
		} else {
			fields["image_url"] = nullValue()
		}

		teamValues = append(teamValues, firestoreValue{
			MapValue: &firestoreMap{Fields: fields},
		})
	}

	return firestoreDocument{
		Fields: map[string]firestoreValue{
			"organization_name": stringValue(config.OrganizationName),
			"title":             stringValue(config.Title),
			"goal":              doubleValue(config.Goal),
			"teams":             firestoreValue{ArrayValue: &firestoreArray{Values: teamValues}},
			"last_updated":      timestampValue(config.LastUpdated),
		},
	}
}

// decodeConfigDocument maps a Firestore document back onto a campaign
// configuration. Every required field must be present with the expected
// value type; any deviation yields an error wrapping [ErrMalformedDocument]
// that names the offending field.
func decodeConfigDocument(doc firestoreDocument) (models.CampaignConfig, error) {
	var config models.CampaignConfig
	var err error

	if config.OrganizationName, err = decodeString(doc.Fields, "organization_name"); err != nil {
		return models.CampaignConfig{}, err
	}
	if config.Title, err = decodeString(doc.Fields, "title"); err != nil {
		return models.CampaignConfig{}, err
	}
	if config.Goal, err = decodeNumber(doc.Fields, "goal"); err != nil {
		return models.CampaignConfig{}, err
	}
	if config.LastUpdated, err = decodeTimestamp(doc.Fields, "last_updated"); err != nil {
		return models.CampaignConfig{}, err
	}

	teamsValue, ok := doc.Fields["teams"]
	if !ok || teamsValue.ArrayValue == nil {
		return models.CampaignConfig{}, malformedField("teams", "expected array value")
	}

	config.Teams = make([]models.Team, 0, len(teamsValue.ArrayValue.Values))
	for i, teamValue := range teamsValue.ArrayValue.Values {
		if teamValue.MapValue == nil {
			return models.CampaignConfig{}, malformedField(fmt.Sprintf("teams[%d]", i), "expected map value")
		}

		team, err := decodeTeam(teamValue.MapValue.Fields, i)
		if err != nil {
			return models.CampaignConfig{}, err
		}
		config.Teams = append(config.Teams, team)
	}

	return config, nil
}

func decodeTeam(fields map[string]firestoreValue, index int) (models.Team, error) {
	var team models.Team
	var err error

	prefix := fmt.Sprintf("teams[%d].", index)

	if team.Name, err = decodeString(fields, "name"); err != nil {
		return models.Team{}, malformedField(prefix+"name", "expected string value")
	}
	if team.TotalRaised, err = decodeNumber(fields, "total_raised"); err != nil {
		return models.Team{}, malformedField(prefix+"total_raised", "expected numeric value")
	}

	// image_url is the only optional field: absent key or nullValue both
	// mean "no image".
	if imageValue, ok := fields["image_url"]; ok && imageValue.NullValue == nil {
		if imageValue.StringValue == nil {
			return models.Team{}, malformedField(prefix+"image_url", "expected string or null value")
		}
		url := *imageValue.StringValue
		team.ImageURL = &url
	}

	return team, nil
}

func decodeString(fields map[string]firestoreValue, name string) (string, error) {
	value, ok := fields[name]
	if !ok || value.StringValue == nil {
		return "", malformedField(name, "expected string value")
	}
	return *value.StringValue, nil
}

// decodeNumber accepts both doubleValue and integerValue: Firestore encodes
// whole numbers written by other tooling as integerValue strings.
func decodeNumber(fields map[string]firestoreValue, name string) (float64, error) {
	value, ok := fields[name]
	if !ok {
		return 0, malformedField(name, "expected numeric value")
	}

	switch {
	case value.DoubleValue != nil:
		return *value.DoubleValue, nil
	case value.IntegerValue != nil:
		parsed, err := strconv.ParseFloat(*value.IntegerValue, 64)
		if err != nil {
			return 0, malformedField(name, "unparsable integer value")
		}
		return parsed, nil
	default:
		return 0, malformedField(name, "expected numeric value")
	}
}

func decodeTimestamp(fields map[string]firestoreValue, name string) (string, error) {
	value, ok := fields[name]
	if !ok {
		return "", malformedField(name, "expected timestamp value")
	}

	// Documents written by earlier deployments carry last_updated as a
	// plain string; accept both encodings on read.
	switch {
	case value.TimestampValue != nil:
		return *value.TimestampValue, nil
	case value.StringValue != nil:
		return *value.StringValue, nil
	default:
		return "", malformedField(name, "expected timestamp value")
	}
}

func malformedField(name, reason string) error {
	return fmt.Errorf("%w: field %q: %s", ErrMalformedDocument, name, reason)
}
