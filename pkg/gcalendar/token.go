package gcalendar

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// DefaultTokenPath is where the interactive auth flow persists its token.
const DefaultTokenPath = "token.json"

// LoadToken reads an OAuth2 token from a JSON file.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %q: %w", path, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %q: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes an OAuth2 token to a JSON file with user-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file %q: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file %q: %w", path, err)
	}
	return nil
}

// persistingTokenSource writes the token back to disk whenever the underlying
// source refreshes it, so the next process start skips re-authorization.
// Concurrent refresh from simultaneous requests is not guarded; the token file
// is read-modify-write per service construction.
type persistingTokenSource struct {
	path string
	src  oauth2.TokenSource
	last string // last persisted access token
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := p.src.Token()
	if err != nil {
		return nil, err
	}

	if tok.AccessToken != p.last {
		if err := SaveToken(p.path, tok); err == nil {
			p.last = tok.AccessToken
		}
	}
	return tok, nil
}
