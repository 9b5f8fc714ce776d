package click

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/click-backend/internal/messages"
	"github.com/conn-castle/click-backend/internal/pk"
)

// ErrInvalidManifest wraps every manifest decoding or validation failure.
var ErrInvalidManifest = errors.New(messages.EngineErrInvalidManifest)

// reservedIDChars may not appear in the fields that form a package id.
const reservedIDChars = pk.PackageIDDelim + "\t\r\n"

// Manifest is the subset of a click package manifest the backend reads.
type Manifest struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Title      string `json:"title,omitempty"`
	Framework  string `json:"framework,omitempty"`
	Maintainer string `json:"maintainer,omitempty"`
}

// ParseManifest decodes the JSON printed by `click info` and checks the identity fields.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	m.Name = strings.TrimSpace(m.Name)
	m.Version = strings.TrimSpace(m.Version)
	if m.Name == "" {
		return Manifest{}, fmt.Errorf("%w: "+messages.EngineManifestFieldFmt, ErrInvalidManifest, "name")
	}
	if m.Version == "" {
		return Manifest{}, fmt.Errorf("%w: "+messages.EngineManifestFieldFmt, ErrInvalidManifest, "version")
	}
	for _, field := range []struct{ key, value string }{{"name", m.Name}, {"version", m.Version}} {
		if strings.ContainsAny(field.value, reservedIDChars) {
			return Manifest{}, fmt.Errorf("%w: "+messages.EngineManifestFieldReservedFmt, ErrInvalidManifest, field.key, field.value)
		}
	}
	return m, nil
}
