package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/harifurniture/internal/client/api"
	"github.com/dmitrijs2005/harifurniture/internal/client/session"
	"github.com/dmitrijs2005/harifurniture/internal/client/storage"
	"github.com/dmitrijs2005/harifurniture/internal/logging"
	"github.com/dmitrijs2005/harifurniture/internal/testutil/fakeapi"
	"github.com/stretchr/testify/require"
)

const testVisitor = "v_0123456789abcdef0123456789abcdef"

type env struct {
	srv     *fakeapi.Server
	client  *api.Client
	creds   *session.Credentials
	session *session.Controller
}

func newEnv(t *testing.T) *env {
	t.Helper()
	srv := fakeapi.NewSeeded(t)
	creds := session.NewCredentials(storage.NewMemoryStore())
	client, err := api.NewClient(srv.URL(), srv.Client(), creds)
	require.NoError(t, err)
	ctrl := session.NewController(client, creds, logging.NewDiscard())
	client.OnUnauthorized(ctrl.HandleUnauthorized)
	ctrl.Bootstrap(context.Background())
	return &env{srv: srv, client: client, creds: creds, session: ctrl}
}

func (e *env) signIn(t *testing.T, credential string) {
	t.Helper()
	_, err := e.session.LoginWithExternalCredential(context.Background(), credential)
	require.NoError(t, err)
}

// storedToken returns the persisted credential, "" when there is none.
func (e *env) storedToken(t *testing.T) string {
	t.Helper()
	token, err := e.creds.Token(context.Background())
	require.NoError(t, err)
	return token
}

func (e *env) catalog() CatalogService {
	return NewCatalogService(e.client, testVisitor, logging.NewDiscard())
}

func countRequests(log []string, req string) int {
	n := 0
	for _, r := range log {
		if r == req {
			n++
		}
	}
	return n
}
