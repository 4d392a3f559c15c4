// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/intelli-scan/internal/config"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/utils"
	"github.com/MKhiriev/intelli-scan/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	providerRequestTimeout = 10 * time.Second
	defaultGoogleUserInfo  = "https://openidconnect.googleapis.com/v1/userinfo"
)

// discoveryDocument is the subset of the OpenID Provider Metadata the server
// needs.
type discoveryDocument struct {
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserInfoEndpoint      string `json:"userinfo_endpoint"`
}

// userInfo is the OpenID Connect userinfo response.
type userInfo struct {
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

type googleProvider struct {
	oauth       *oauth2.Config
	client      *utils.HTTPClient
	userInfoURL string

	logger *logger.Logger
}

// NewGoogleProvider constructs an [OAuthProvider] for Google sign-in.
//
// Endpoints are read from the discovery document at cfg.GoogleMetadataURL.
// When the document cannot be fetched the well-known Google endpoints are
// used instead and a warning is logged, so a transient discovery outage does
// not stop the server from starting.
func NewGoogleProvider(ctx context.Context, cfg config.OAuth, log *logger.Logger) OAuthProvider {
	client := utils.NewHTTPClient(providerRequestTimeout)

	endpoint := google.Endpoint
	userInfoURL := defaultGoogleUserInfo

	doc, err := discover(ctx, client, cfg.GoogleMetadataURL)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewGoogleProvider").Str("metadata_url", cfg.GoogleMetadataURL).
			Msg("OpenID discovery failed, using built-in Google endpoints")
	} else {
		endpoint = oauth2.Endpoint{AuthURL: doc.AuthorizationEndpoint, TokenURL: doc.TokenEndpoint}
		if doc.UserInfoEndpoint != "" {
			userInfoURL = doc.UserInfoEndpoint
		}
	}

	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		client:      client,
		userInfoURL: userInfoURL,
		logger:      log,
	}
}

func discover(ctx context.Context, client *utils.HTTPClient, metadataURL string) (discoveryDocument, error) {
	if strings.TrimSpace(metadataURL) == "" {
		return discoveryDocument{}, fmt.Errorf("%w: empty metadata url", ErrProviderUnavailable)
	}

	var doc discoveryDocument
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(metadataURL)
	if err != nil {
		return discoveryDocument{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return discoveryDocument{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if doc.AuthorizationEndpoint == "" || doc.TokenEndpoint == "" {
		return discoveryDocument{}, fmt.Errorf("%w: discovery document lacks endpoints", ErrProviderUnavailable)
	}

	return doc, nil
}

// AuthCodeURL implements [OAuthProvider].
func (g *googleProvider) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange implements [OAuthProvider]. The token request and the userinfo
// request share the adapter's HTTP client.
func (g *googleProvider) Exchange(ctx context.Context, code string) (models.ExternalIdentity, error) {
	log := logger.FromContext(ctx)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.client.GetClient())
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Msg("token endpoint rejected the authorization code")
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrOAuthExchange, err)
	}

	var info userInfo
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&info).
		Get(g.userInfoURL)
	if err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Msg("userinfo request failed")
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrOAuthExchange, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Msg("userinfo endpoint returned an error")
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrOAuthExchange, err)
	}

	if info.Subject == "" || info.Email == "" {
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrOAuthExchange, ErrIncompleteIdentity)
	}

	return models.ExternalIdentity{
		Subject:    info.Subject,
		Email:      info.Email,
		GivenName:  info.GivenName,
		FamilyName: info.FamilyName,
	}, nil
}
