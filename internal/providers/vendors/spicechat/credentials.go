package spicechat

import (
	"context"
	"fmt"
	"os"

	"github.com/trackforge/bottrack/internal/adapter"
)

// staticCredentialSource serves a fixed credential pair
type staticCredentialSource struct {
	creds Credentials
}

// NewStaticCredentialSource returns a source serving the given credentials
func NewStaticCredentialSource(bearerToken, guestUserID string) CredentialSource {
	return &staticCredentialSource{
		creds: Credentials{BearerToken: bearerToken, GuestUserID: guestUserID},
	}
}

func (s *staticCredentialSource) Credentials(ctx context.Context) (Credentials, error) {
	return s.creds, nil
}

// fileCredentialSource re-reads a JSON credentials file on every call, so an
// operator can refresh expired credentials without restarting the process
type fileCredentialSource struct {
	path string
	json adapter.JSON
}

type credentialsFile struct {
	BearerToken string `json:"bearer_token"`
	GuestUserID string `json:"guest_userid"`
}

// NewFileCredentialSource returns a source backed by a JSON file
func NewFileCredentialSource(path string, jsonAdapter adapter.JSON) CredentialSource {
	return &fileCredentialSource{path: path, json: jsonAdapter}
}

func (s *fileCredentialSource) Credentials(ctx context.Context) (Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var file credentialsFile
	if err := s.json.Unmarshal(raw, &file); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return Credentials{
		BearerToken: file.BearerToken,
		GuestUserID: file.GuestUserID,
	}, nil
}
