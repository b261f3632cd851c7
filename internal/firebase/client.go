package firebase

import (
	"context"
	"errors"
	"fmt"

	fbadmin "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"zarcaro/config"
)

// NewApp initializes the Firebase admin app from the configured service
// account, preferring inline JSON over a file path.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*fbadmin.App, error) {
	var opt option.ClientOption
	switch {
	case cfg.ServiceAccountJSON != "":
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	case cfg.ServiceAccountFile != "":
		opt = option.WithCredentialsFile(cfg.ServiceAccountFile)
	default:
		return nil, errors.New("firebase service account credentials not provided")
	}
	app, err := fbadmin.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}

// Verifier checks Firebase ID tokens against the identity provider.
type Verifier struct {
	client *auth.Client
}

func NewVerifier(client *auth.Client) *Verifier {
	return &Verifier{client: client}
}

// Verify validates the ID token (signature, expiry, audience) and returns the
// stable user ID.
func (v *Verifier) Verify(ctx context.Context, idToken string) (string, error) {
	tok, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("id token verification failed: %w", err)
	}
	return tok.UID, nil
}
