package services

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/harifurniture/internal/client/api"
	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/dmitrijs2005/harifurniture/internal/logging"
	"github.com/dmitrijs2005/harifurniture/internal/testutil/fakeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_ToggleTwice(t *testing.T) {
	e := newEnv(t)
	likes := NewLikeService(e.client, testVisitor, e.session)

	liked, err := likes.Toggle(context.Background(), fakeapi.SofaID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = likes.Toggle(context.Background(), fakeapi.SofaID)
	require.NoError(t, err)
	assert.False(t, liked)

	ids, err := e.client.LikedProductIDs(context.Background(), testVisitor)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = likes.Toggle(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLikeService_ProjectionFollowsServer(t *testing.T) {
	e := newEnv(t)
	likes := NewLikeService(e.client, testVisitor, e.session)
	page, err := e.catalog().Products(context.Background())
	require.NoError(t, err)

	liked, err := likes.Toggle(context.Background(), fakeapi.ChairID)
	require.NoError(t, err)
	page.ApplyLike(fakeapi.ChairID, liked)
	assert.True(t, page.Liked.Has(fakeapi.ChairID))
	assert.Len(t, page.List(TabLiked, ""), 1)

	e.srv.Fail("POST /likes", 500)
	_, err = likes.Toggle(context.Background(), fakeapi.ChairID)
	require.ErrorIs(t, err, api.ErrServer)
	assert.True(t, page.Liked.Has(fakeapi.ChairID), "projection must not move without a server answer")
}

func TestLikeService_RevokedCredentialSignsOut(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, fakeapi.AshaCredential)
	e.srv.Fail("POST /likes", http.StatusUnauthorized)

	_, err := NewLikeService(e.client, testVisitor, e.session).Toggle(context.Background(), fakeapi.SofaID)
	require.ErrorIs(t, err, ErrLoginRequired)
	require.ErrorIs(t, err, api.ErrAuth)

	st := e.session.State()
	assert.Nil(t, st.User)
	assert.True(t, st.LoginModalVisible)
	assert.Empty(t, e.storedToken(t))
}

func TestLikeService_AnonymousRejectionKeepsSignedOutState(t *testing.T) {
	e := newEnv(t)
	e.srv.Fail("POST /likes", http.StatusUnauthorized)

	_, err := NewLikeService(e.client, testVisitor, e.session).Toggle(context.Background(), fakeapi.SofaID)
	require.ErrorIs(t, err, ErrLoginRequired)
	assert.Nil(t, e.session.State().User)
}

func TestSessionUpdateProfile_RevokedCredentialSignsOut(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, fakeapi.RaviCredential)
	e.srv.Fail("PUT /user-auth/update-profile", http.StatusUnauthorized)

	_, err := e.session.UpdateProfile(context.Background(), "Ravi", "9123456780")
	require.ErrorIs(t, err, api.ErrAuth)

	st := e.session.State()
	assert.Nil(t, st.User)
	assert.False(t, st.PhoneEntryPending)
	assert.Empty(t, e.storedToken(t))
}

func TestCatalog_RejectedCredentialOnReadSignsOut(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, fakeapi.AshaCredential)
	e.srv.RevokeToken(fakeapi.AshaToken)
	e.srv.Fail("GET /brands", http.StatusUnauthorized)

	_, err := e.catalog().Brands(context.Background())
	require.ErrorIs(t, err, api.ErrAuth)
	assert.Nil(t, e.session.State().User)
	assert.Empty(t, e.storedToken(t))
}

func TestOrderService_AnonymousOpensLogin(t *testing.T) {
	e := newEnv(t)
	orders := NewOrderService(e.client, e.session)

	err := orders.Place(context.Background(), fakeapi.SofaID, "12 MG Road", 1)
	require.ErrorIs(t, err, ErrLoginRequired)
	assert.True(t, e.session.State().LoginModalVisible)
	assert.Zero(t, countRequests(e.srv.RequestLog(), "POST /orders"))
}

func TestOrderService_Place(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, fakeapi.AshaCredential)
	orders := NewOrderService(e.client, e.session)

	require.NoError(t, orders.Place(context.Background(), fakeapi.SofaID, "  12 MG Road  ", 0))
	placed := e.srv.PlacedOrders()
	require.Len(t, placed, 1)
	assert.Equal(t, models.OrderRequest{Product: fakeapi.SofaID, Address: "12 MG Road", Quantity: 1}, placed[0])

	err := orders.Place(context.Background(), fakeapi.SofaID, " ", 2)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestOrderService_RevokedCredentialSignsOut(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, fakeapi.AshaCredential)
	e.srv.RevokeToken(fakeapi.AshaToken)

	err := NewOrderService(e.client, e.session).Place(context.Background(), fakeapi.SofaID, "12 MG Road", 1)
	require.ErrorIs(t, err, ErrLoginRequired)
	require.ErrorIs(t, err, api.ErrAuth)

	st := e.session.State()
	assert.Nil(t, st.User)
	assert.True(t, st.LoginModalVisible)
}

func TestOrderService_ServerValidationPassesThrough(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, fakeapi.AshaCredential)

	err := NewOrderService(e.client, e.session).Place(context.Background(), "missing", "12 MG Road", 1)
	require.ErrorIs(t, err, api.ErrValidation)
	assert.NotErrorIs(t, err, ErrLoginRequired)
	assert.NotNil(t, e.session.State().User)
}

func TestReviewService_Submit(t *testing.T) {
	e := newEnv(t)
	reviews := NewReviewService(e.client, e.session, logging.NewDiscard())

	_, err := reviews.Submit(context.Background(), fakeapi.SofaID, 5, "Great")
	require.ErrorIs(t, err, ErrLoginRequired)

	e.signIn(t, fakeapi.AshaCredential)
	_, err = reviews.Submit(context.Background(), fakeapi.SofaID, 6, "Too good")
	require.ErrorIs(t, err, ErrInvalidInput)

	summary, err := reviews.Submit(context.Background(), fakeapi.SofaID, 3, "  Okay  ")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 4.0, summary.AverageRating, 1e-9)
	assert.Equal(t, "Asha", summary.Reviews[2].UserName)
	assert.Equal(t, "Okay", summary.Reviews[2].Comment)
}

func TestReviewService_RefreshFailureIsLogged(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, fakeapi.AshaCredential)
	e.srv.Fail("GET /reviews/"+string(fakeapi.SofaID), http.StatusInternalServerError)

	var logs bytes.Buffer
	reviews := NewReviewService(e.client, e.session, logging.New("debug", &logs))

	summary, err := reviews.Submit(context.Background(), fakeapi.SofaID, 4, "Sturdy")
	require.NoError(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, logs.String(), "review stored but refresh failed")
	assert.Contains(t, logs.String(), "p-sofa")
}

func TestContactService_Send(t *testing.T) {
	e := newEnv(t)
	contact := NewContactService(e.client, e.session)

	require.ErrorIs(t, contact.Send(context.Background(), "9876543210", "Hello"), ErrLoginRequired)
	assert.True(t, e.session.State().LoginModalVisible)
	assert.Empty(t, contact.DefaultMobile())

	e.signIn(t, fakeapi.AshaCredential)
	assert.Equal(t, "9876543210", contact.DefaultMobile())

	require.NoError(t, contact.Send(context.Background(), "", "Do you deliver to Khammam?"))
	queries := e.srv.SentQueries()
	require.Len(t, queries, 1)
	assert.Equal(t, models.QueryRequest{Name: "Asha", Mobile: "9876543210", Message: "Do you deliver to Khammam?"}, queries[0])

	require.ErrorIs(t, contact.Send(context.Background(), "", " "), ErrInvalidInput)
}

func TestContactService_RequiresMobile(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, fakeapi.RaviCredential)
	contact := NewContactService(e.client, e.session)

	require.ErrorIs(t, contact.Send(context.Background(), "", "Hello"), ErrInvalidInput)
	require.NoError(t, contact.Send(context.Background(), "9123456780", "Hello"))
}
