package apiclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront-client/internal/apiclient"
	"storefront-client/internal/auth"
	"storefront-client/internal/domain"
	"storefront-client/internal/stubapi"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEnv(t *testing.T) (*apiclient.Client, *stubapi.Server) {
	t.Helper()

	stub := stubapi.New(discardLogger())
	stub.AddSession("good-token", "user-1", "shopper@example.com")
	ts := httptest.NewServer(stub.Router())
	t.Cleanup(ts.Close)

	client := apiclient.New(ts.URL, 5*time.Second, auth.Static{Value: "good-token"}, discardLogger())
	return client, stub
}

func TestListProducts(t *testing.T) {
	client, _ := newEnv(t)

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	require.Equal(t, "PROD-1", products[0].ID)
	require.Equal(t, "Fancy Widget", products[0].Name)
	require.True(t, products[0].Price.Equal(decimal.RequireFromString("10.50")),
		"price mismatch: %s", products[0].Price)
}

func TestUnauthenticated_ShortCircuitsWithoutHTTP(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	client := apiclient.New(ts.URL, 5*time.Second, auth.Static{}, discardLogger())

	_, err := client.ListProducts(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	require.Zero(t, calls.Load(), "signed-out client must not hit the backend")

	_, err = client.CreateOrder(context.Background(), domain.OrderDraft{}, "key")
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	require.Zero(t, calls.Load())
}

func TestNon2xxMapsToHTTPError(t *testing.T) {
	stub := stubapi.New(discardLogger())
	ts := httptest.NewServer(stub.Router())
	t.Cleanup(ts.Close)

	client := apiclient.New(ts.URL, 5*time.Second, auth.Static{Value: "unknown-token"}, discardLogger())

	_, err := client.ListProducts(context.Background())
	var httpErr *apiclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestCreateAndListOrders(t *testing.T) {
	client, _ := newEnv(t)
	ctx := context.Background()

	draft := domain.OrderDraft{
		Items: []domain.OrderItem{
			{ProductID: "PROD-1", Quantity: 2, PricePerUnit: decimal.RequireFromString("10.50")},
			{ProductID: "PROD-2", Quantity: 1, PricePerUnit: decimal.RequireFromString("25.00")},
		},
		TotalAmount: decimal.RequireFromString("46.00"),
	}

	order, err := client.CreateOrder(ctx, draft, "attempt-key")
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.True(t, order.TotalAmount.Equal(draft.TotalAmount))

	_, err = time.Parse(time.RFC3339, order.CreatedAt)
	require.NoError(t, err, "CreatedAt must be RFC3339")

	orders, err := client.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
	require.Len(t, orders[0].Items, 2)
}

func TestCreateOrder_SameKeyReplaysOrder(t *testing.T) {
	client, _ := newEnv(t)
	ctx := context.Background()

	draft := domain.OrderDraft{
		Items:       []domain.OrderItem{{ProductID: "PROD-1", Quantity: 1, PricePerUnit: decimal.RequireFromString("10.50")}},
		TotalAmount: decimal.RequireFromString("10.50"),
	}

	first, err := client.CreateOrder(ctx, draft, "same-key")
	require.NoError(t, err)
	second, err := client.CreateOrder(ctx, draft, "same-key")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	orders, err := client.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestProfileFlow(t *testing.T) {
	client, _ := newEnv(t)
	ctx := context.Background()

	profile, err := client.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "user-1", profile.UserID)
	require.Equal(t, "shopper@example.com", profile.Email)
	require.Empty(t, profile.FirstName)

	first := gofakeit.FirstName()
	address := gofakeit.Address().Address
	updated, err := client.UpdateProfile(ctx, domain.ProfileUpdate{
		FirstName:       &first,
		ShippingAddress: &address,
	})
	require.NoError(t, err)
	require.Equal(t, first, updated.FirstName)
	require.Equal(t, address, updated.ShippingAddress)
	require.Equal(t, "shopper@example.com", updated.Email)

	last := gofakeit.LastName()
	updated, err = client.UpdateProfile(ctx, domain.ProfileUpdate{LastName: &last})
	require.NoError(t, err)
	require.Equal(t, first, updated.FirstName, "untouched fields must survive a partial update")
	require.Equal(t, last, updated.LastName)
}
