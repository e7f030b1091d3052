package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/models"
)

const discordCDNBase = "https://cdn.discordapp.com"

// DiscordFacade resolves OAuth access tokens to provider profiles via the
// identity provider's profile endpoint.
type DiscordFacade struct {
	baseURL string
	client  *http.Client
}

// NewDiscordFacade creates a facade against the given API base URL
// (normally https://discord.com/api).
func NewDiscordFacade(baseURL string, timeout time.Duration) *DiscordFacade {
	return &DiscordFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchUser returns the profile of the token's owner.
func (f *DiscordFacade) FetchUser(ctx context.Context, accessToken string) (*models.DiscordUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/users/@me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("identity profile request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("identity profile request rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user models.DiscordUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AvatarURL builds the CDN URL for the user's avatar, falling back to one of
// the provider's default embed avatars when the user has none.
func (f *DiscordFacade) AvatarURL(u *models.DiscordUser) string {
	if u.Avatar != "" {
		return fmt.Sprintf("%s/avatars/%s/%s.png", discordCDNBase, u.ID, u.Avatar)
	}

	id, err := strconv.ParseUint(u.ID, 10, 64)
	if err != nil {
		id = 0
	}
	return fmt.Sprintf("%s/embed/avatars/%d.png", discordCDNBase, id%5)
}
