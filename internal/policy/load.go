// Package policy validates a content request against its owning brand profile
// and the illegal matrix.
package policy

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jonathan/content-factory/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadBrandProfile reads and validates a brand profile YAML document.
// Unknown keys and unknown enumerated values are rejected at parse time.
func LoadBrandProfile(path string) (*types.BrandProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.SchemaError{Message: fmt.Sprintf("failed to read brand profile %s", path), Cause: err}
	}

	var brand types.BrandProfile
	if err := strictUnmarshal(data, &brand); err != nil {
		return nil, &types.SchemaError{Message: fmt.Sprintf("failed to parse brand profile %s", path), Cause: err}
	}
	if err := brand.Validate(); err != nil {
		return nil, err
	}
	return &brand, nil
}

// LoadContentRequest reads and validates a content request YAML document.
func LoadContentRequest(path string) (*types.ContentRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.SchemaError{Message: fmt.Sprintf("failed to read content request %s", path), Cause: err}
	}

	var req types.ContentRequest
	if err := strictUnmarshal(data, &req); err != nil {
		return nil, &types.SchemaError{Message: fmt.Sprintf("failed to parse content request %s", path), Cause: err}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func strictUnmarshal(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
