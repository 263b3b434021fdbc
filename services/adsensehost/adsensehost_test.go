package adsensehost

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/restbind"
	"github.com/broady/restbind/model"
	"github.com/broady/restbind/testutil"
)

func newTestService(t *testing.T) (*Service, *testutil.Server) {
	t.Helper()
	spec, err := Spec()
	require.NoError(t, err)
	srv := testutil.NewServer(t)
	svc, err := New(restbind.NewHTTPTransport(srv.BaseURL(spec.ServicePath), nil))
	require.NoError(t, err)
	return svc, srv
}

func TestSpec(t *testing.T) {
	spec, err := Spec()
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	assert.Equal(t, "adsensehost", spec.Name)
	assert.Equal(t, "https://www.googleapis.com/adsensehost/v4.1/", spec.BaseURL())
	assert.Len(t, spec.ExportOperations(), 26)
	require.Len(t, spec.Scopes, 1)
	assert.Equal(t, AdsensehostScope, spec.Scopes[0].URL)
	assert.Equal(t, "ADSENSEHOST", spec.Scopes[0].Name)
}

func TestModels(t *testing.T) {
	spec, err := Spec()
	require.NoError(t, err)
	registry := Models()

	for name, schema := range spec.Models {
		t.Run(name, func(t *testing.T) {
			typ, err := registry.Describe(name)
			require.NoError(t, err)
			assert.NoError(t, model.Conform(typ, schema))
		})
	}
	assert.Len(t, registry.Names(), len(spec.Models))
}

func TestBindings(t *testing.T) {
	spec, err := Spec()
	require.NoError(t, err)
	svc, err := New(restbind.InvokerFunc(func(context.Context, *restbind.OperationSpec, restbind.Params, any) error {
		return nil
	}))
	require.NoError(t, err)

	var ids []string
	for _, op := range spec.ExportOperations() {
		ids = append(ids, op.Resource+"."+op.Operation)
	}
	testutil.AssertMethods(t, svc, ids...)
}

func TestAssociationSessions_Start(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("GET", "/adsensehost/v4.1/associationsessions/start", http.StatusOK, map[string]any{
		"id":           "s1",
		"productCodes": []string{"AFC", "AFS"},
		"redirectUrl":  "https://www.google.com/adsense/new?token=abc",
		"status":       "UNKNOWN",
	})

	session, err := svc.Associationsessions.Start(context.Background(), []string{"AFC", "AFS"}, "https://example.com",
		&AssociationsessionsStartOptions{UserLocale: "en_US"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AFC", "AFS"}, session.ProductCodes)
	assert.True(t, strings.HasPrefix(session.RedirectURL, "https://www.google.com/adsense/"))

	req := srv.LastRequest(t)
	testutil.AssertQuery(t, req, "productCode", "AFC", "AFS")
	testutil.AssertQuery(t, req, "websiteUrl", "https://example.com")
	testutil.AssertQuery(t, req, "userLocale", "en_US")
	testutil.AssertQuery(t, req, "websiteLocale")
}

func TestAssociationSessions_StartRequiresProduct(t *testing.T) {
	svc, srv := newTestService(t)
	_, err := svc.Associationsessions.Start(context.Background(), nil, "https://example.com", nil)
	require.Error(t, err)
	assert.True(t, restbind.IsCode(err, restbind.CodeMissingRequiredParameter))
	assert.Equal(t, "productCode", restbind.AsError(err).Details["parameter"])
	assert.Empty(t, srv.Requests())
}

func TestAccounts_List(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("GET", "/adsensehost/v4.1/accounts", http.StatusOK, map[string]any{
		"items": []any{
			map[string]any{"id": "pub-1", "status": "APPROVED"},
			map[string]any{"id": "pub-2", "status": "PENDING"},
		},
	})

	accounts, err := svc.Accounts.List(context.Background(), []string{"ca-pub-1", "ca-pub-2"})
	require.NoError(t, err)
	require.Len(t, accounts.Items, 2)
	assert.Equal(t, "PENDING", accounts.Items[1].Status)
	testutil.AssertQuery(t, srv.LastRequest(t), "filterAdClientId", "ca-pub-1", "ca-pub-2")
}

func TestCustomChannels_Patch(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("PATCH", "/adsensehost/v4.1/adclients/ca-host-1/customchannels", http.StatusOK, map[string]any{
		"id":   "cc-1",
		"name": "Homepage",
	})

	channel, err := svc.Customchannels.Patch(context.Background(), "ca-host-1", "cc-1", &CustomChannel{Name: "Homepage"})
	require.NoError(t, err)
	assert.Equal(t, "cc-1", channel.ID)

	req := srv.LastRequest(t)
	testutil.AssertQuery(t, req, "customChannelId", "cc-1")
	testutil.AssertJSONBody(t, req, map[string]any{"name": "Homepage"})
}

func TestCustomChannels_InsertValidatesName(t *testing.T) {
	svc, srv := newTestService(t)
	_, err := svc.Customchannels.Insert(context.Background(), "ca-host-1", &CustomChannel{Name: strings.Repeat("x", 256)})
	assert.True(t, restbind.IsCode(err, restbind.CodeInvalidArgument), "got %v", err)
	assert.Empty(t, srv.Requests())
}

func TestUrlChannels_Delete(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("DELETE", "/adsensehost/v4.1/adclients/ca-host-1/urlchannels/uc-1", http.StatusOK, map[string]any{
		"id":         "uc-1",
		"urlPattern": "example.com/blog",
	})

	channel, err := svc.Urlchannels.Delete(context.Background(), "ca-host-1", "uc-1")
	require.NoError(t, err)
	assert.Equal(t, "example.com/blog", channel.URLPattern)
}

func TestAdunits_GetAdCode(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("GET", "/adsensehost/v4.1/accounts/pub-1/adclients/ca-pub-1/adunits/u1/adcode", http.StatusOK, map[string]any{
		"adCode": "<script></script>",
	})

	code, err := svc.Accounts.Adunits.GetAdCode(context.Background(), "pub-1", "ca-pub-1", "u1",
		&AccountsAdunitsGetAdCodeOptions{HostCustomChannelID: []string{"h1", "h2"}})
	require.NoError(t, err)
	assert.Equal(t, "<script></script>", code.AdCode)
	testutil.AssertQuery(t, srv.LastRequest(t), "hostCustomChannelId", "h1", "h2")
}

func TestReports_Generate(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("GET", "/adsensehost/v4.1/reports", http.StatusOK, map[string]any{
		"totalMatchedRows": "1",
		"headers":          []any{map[string]any{"name": "AD_CLIENT_ID", "type": "DIMENSION"}},
		"rows":             [][]string{{"ca-pub-1"}},
	})

	report, err := svc.Reports.Generate(context.Background(), "2024-01-01", "2024-01-31", &ReportsGenerateOptions{
		Dimension: []string{"AD_CLIENT_ID"},
		Filter:    []string{"AD_CLIENT_ID==ca-pub-1"},
		Sort:      []string{"-AD_CLIENT_ID"},
	})
	require.NoError(t, err)
	assert.Equal(t, restbind.Ptr[int64](1), report.TotalMatchedRows)
	assert.Equal(t, [][]string{{"ca-pub-1"}}, report.Rows)

	req := srv.LastRequest(t)
	testutil.AssertQuery(t, req, "filter", "AD_CLIENT_ID==ca-pub-1")
	assert.Contains(t, req.RawQuery, "filter=AD_CLIENT_ID%3D%3Dca-pub-1")
}

func TestInterceptor(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("GET", "/adsensehost/v4.1/adclients/ca-host-1", http.StatusOK, map[string]any{"id": "ca-host-1"})

	var seen []string
	svc.WithInterceptor(func(ctx context.Context, info *restbind.CallInfo, params restbind.Params, next restbind.HandlerFunc) (any, error) {
		seen = append(seen, info.Operation.ID)
		return next(ctx, params)
	})

	client, err := svc.Adclients.Get(context.Background(), "ca-host-1")
	require.NoError(t, err)
	assert.Equal(t, "ca-host-1", client.ID)
	assert.Equal(t, []string{"adsensehost.adclients.get"}, seen)
}
