package firebase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type Credentials struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

func (c Credentials) Complete() bool {
	return c.ProjectID != "" && c.ClientEmail != "" && c.PrivateKey != ""
}

// Client bundles the Auth and Firestore handles of one Firebase project.
type Client struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

func NewClient(ctx context.Context, creds Credentials) (*Client, error) {
	serviceAccount, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   creds.ProjectID,
		"client_email": creds.ClientEmail,
		// Keys arrive from env with literal \n sequences.
		"private_key": strings.ReplaceAll(creds.PrivateKey, `\n`, "\n"),
		"token_uri":   "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal service account: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: creds.ProjectID}, option.WithCredentialsJSON(serviceAccount))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init auth client: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore client: %w", err)
	}

	return &Client{Auth: authClient, Firestore: firestoreClient}, nil
}

func (c *Client) Close() error {
	return c.Firestore.Close()
}
