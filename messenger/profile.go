package messenger

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/onurcolak/messenger-gateway/pkg/validator"
)

// SetGreeting sets the localized greeting texts shown before a conversation
// starts. The platform requires an entry with locale "default"; each text is
// capped at 160 characters.
func (c *Client) SetGreeting(ctx context.Context, greetings []Greeting) (*DeliveryResult, error) {
	if !hasDefaultLocale(greetings) {
		return nil, &validator.ValidationError{
			Errors: map[string]string{
				"greeting": "greeting must include an entry with locale " + DefaultLocale,
			},
		}
	}

	return c.send(ctx, messengerProfilePath, &greetingRequest{
		Greeting: greetings,
	})
}

func hasDefaultLocale(greetings []Greeting) bool {
	for _, greeting := range greetings {
		if greeting.Locale == DefaultLocale {
			return true
		}
	}
	return false
}

// SetGreetingText sets a single default-locale greeting.
func (c *Client) SetGreetingText(ctx context.Context, text string) (*DeliveryResult, error) {
	return c.SetGreeting(ctx, []Greeting{
		{Locale: DefaultLocale, Text: text},
	})
}

// SetGetStartedButton sets the postback payload delivered when a user taps
// Get Started.
func (c *Client) SetGetStartedButton(ctx context.Context, payload string) (*DeliveryResult, error) {
	return c.send(ctx, messengerProfilePath, &getStartedRequest{
		GetStarted: getStartedButton{Payload: payload},
	})
}

// SetPersistentMenu sets the per-locale persistent menus on the chat view.
func (c *Client) SetPersistentMenu(ctx context.Context, menus []PersistentMenu) (*DeliveryResult, error) {
	return c.send(ctx, messengerProfilePath, &persistentMenuRequest{
		PersistentMenu: menus,
	})
}

// SetDomainWhitelist whitelists up to 10 domains for Messenger Extensions.
func (c *Client) SetDomainWhitelist(ctx context.Context, domains []string) (*DeliveryResult, error) {
	return c.send(ctx, messengerProfilePath, &domainWhitelistRequest{
		WhitelistedDomains: domains,
	})
}

// DeleteDomainWhitelist removes a previously set domain whitelist.
func (c *Client) DeleteDomainWhitelist(ctx context.Context) (*DeliveryResult, error) {
	payload := &profileFieldsRequest{
		Fields: []string{"whitelisted_domains"},
	}

	var result DeliveryResult
	resp, err := c.do(ctx, http.MethodDelete, c.path(messengerProfilePath), payload, &result, nil)
	if err != nil {
		return nil, err
	}

	result.Raw = resp.Body()
	return &result, nil
}

// SetAccountLinkingURL sets the OAuth callback URL used to link Messenger
// users with the business login.
func (c *Client) SetAccountLinkingURL(ctx context.Context, url string) (*DeliveryResult, error) {
	return c.send(ctx, messengerProfilePath, &accountLinkingRequest{
		AccountLinkingURL: url,
	})
}

// defaultProfileFields are always requested; apps with extra permissions can
// ask for more via extraFields (e.g. "locale", "timezone", "gender").
var defaultProfileFields = []string{"name", "first_name", "last_name", "profile_pic"}

// GetUserProfile looks up a user's public profile by page-scoped id. An id
// the remote service does not know yields a NotFoundError.
func (c *Client) GetUserProfile(ctx context.Context, userID string, extraFields ...string) (*UserProfile, error) {
	if err := c.validate.Validate(&userProfileQuery{ID: userID}); err != nil {
		return nil, err
	}

	fields := append(append([]string{}, defaultProfileFields...), extraFields...)

	var profile UserProfile
	resp, err := c.do(ctx, http.MethodGet, c.path("/"+userID), nil, &profile, map[string]string{
		"fields": strings.Join(fields, ","),
	})
	if err != nil {
		var rejected *RemoteRejectedError
		if errors.As(err, &rejected) && rejected.Status == http.StatusNotFound {
			return nil, &NotFoundError{ID: userID}
		}
		return nil, err
	}

	profile.Raw = resp.Body()
	return &profile, nil
}
