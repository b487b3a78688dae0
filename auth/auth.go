// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Daphne-CPAdmin/Grade5PotluckApp/apperror"
)

var (
	ErrMissingCredentials = errors.New("no service account credentials configured")
	ErrInvalidCredentials = errors.New("invalid service account credentials")
)

// Source tells where the credential payload came from
type Source string

const (
	SourceEnv  Source = "env"
	SourceFile Source = "file"
)

// Credentials is a validated service account key
type Credentials struct {
	JSON        []byte
	Source      Source
	ClientEmail string
}

type serviceAccountKey struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadCredentials resolves the service account key.
// The inline payload wins when set (deployment); otherwise the file is read (local).
func LoadCredentials(inlineJSON, path string) (Credentials, error) {
	if inlineJSON != "" {
		return parseCredentials([]byte(inlineJSON), SourceEnv)
	}

	if path == "" {
		return Credentials{}, apperror.Wrap(apperror.KindAuth, "credentials unavailable", ErrMissingCredentials)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Credentials{}, apperror.Wrap(apperror.KindAuth, "credentials unavailable",
			fmt.Errorf("%w: %s not found", ErrMissingCredentials, path))
	}
	if err != nil {
		return Credentials{}, apperror.Wrap(apperror.KindAuth, "credentials unavailable",
			fmt.Errorf("failed to read %s: %w", path, err))
	}

	return parseCredentials(data, SourceFile)
}

func parseCredentials(data []byte, source Source) (Credentials, error) {
	var key serviceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return Credentials{}, apperror.Wrap(apperror.KindAuth, "credentials unavailable",
			fmt.Errorf("%w: %v", ErrInvalidCredentials, err))
	}

	if key.Type != "service_account" {
		return Credentials{}, apperror.Wrap(apperror.KindAuth, "credentials unavailable",
			fmt.Errorf("%w: type %q", ErrInvalidCredentials, key.Type))
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return Credentials{}, apperror.Wrap(apperror.KindAuth, "credentials unavailable",
			fmt.Errorf("%w: client_email and private_key are required", ErrInvalidCredentials))
	}

	return Credentials{
		JSON:        data,
		Source:      source,
		ClientEmail: key.ClientEmail,
	}, nil
}
