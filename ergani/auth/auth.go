package auth

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/apodiktos/go-ergani-client/ergani/api"
	"github.com/apodiktos/go-ergani-client/ergani/model"
)

var logger = log.WithField("component", "ergani.auth")

// Authenticator exchanges the configured credentials for a bearer token.
// Every Authenticate call performs a fresh round-trip to the
// authentication endpoint.
type Authenticator struct {
	client   *api.Client
	username string
	password string
}

func New(client *api.Client, username, password string) *Authenticator {
	return &Authenticator{client: client, username: username, password: password}
}

// Authenticate posts the credentials and returns the access token from the
// response body.
func (a *Authenticator) Authenticate(ctx context.Context) (string, error) {
	logger.Debug("authenticating")

	result := &model.AuthenticationResponse{}
	resp, err := a.client.PostJSONNoAuth(ctx, "/Authentication", model.AuthenticationRequest{
		Username: a.username,
		Password: a.password,
		UserType: "01",
	}, result)
	if err != nil {
		return "", &api.AuthenticationError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &api.AuthenticationError{
			Message:    api.ExtractErrorMessage(resp),
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	return result.AccessToken, nil
}

// Token implements TokenSource by authenticating from scratch.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	return a.Authenticate(ctx)
}
