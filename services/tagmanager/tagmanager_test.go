package tagmanager

import (
	"context"
	"encoding/json"
	"net/http"
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

	assert.Equal(t, "tagmanager", spec.Name)
	assert.Equal(t, "https://www.googleapis.com/tagmanager/v1/", spec.BaseURL())
	assert.Len(t, spec.ExportOperations(), 43)

	var scopes []string
	for _, s := range spec.Scopes {
		scopes = append(scopes, s.URL)
	}
	assert.Equal(t, []string{
		TagmanagerDeleteContainersScope,
		TagmanagerEditContainersScope,
		TagmanagerEditContainerversionsScope,
		TagmanagerManageAccountsScope,
		TagmanagerManageUsersScope,
		TagmanagerPublishScope,
		TagmanagerReadonlyScope,
	}, scopes)

	publish, err := spec.Lookup("accounts.containers.versions", "publish")
	require.NoError(t, err)
	assert.Equal(t, []string{TagmanagerPublishScope}, publish.Scopes)
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

func TestParameter_Recursive(t *testing.T) {
	typ, err := model.Describe(Parameter{})
	require.NoError(t, err)
	list, ok := typ.Field("list")
	require.True(t, ok)
	assert.Equal(t, model.KindObject, list.Kind)
	assert.Equal(t, "Parameter", list.Ref)
	assert.True(t, list.Repeated)

	raw := `{"type":"list","key":"cookies","list":[{"type":"map","map":[{"type":"template","key":"name","value":"session"}]}]}`
	var p Parameter
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	require.Len(t, p.List, 1)
	require.Len(t, p.List[0].Map, 1)
	assert.Equal(t, "session", p.List[0].Map[0].Value)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestTags_Create(t *testing.T) {
	svc, srv := newTestService(t)
	srv.Handle("POST", "/tagmanager/v1/accounts/100/containers/200/tags", func(w http.ResponseWriter, r *http.Request) {
		var tag Tag
		require.NoError(t, json.NewDecoder(r.Body).Decode(&tag))
		tag.TagID = "7"
		tag.Fingerprint = "f1"
		testutil.WriteJSON(w, http.StatusOK, tag)
	})

	tag, err := svc.Accounts.Containers.Tags.Create(context.Background(), "100", "200", &Tag{
		Name: "Universal Analytics",
		Type: "ua",
		Parameter: []*Parameter{
			{Type: "template", Key: "trackingId", Value: "UA-1-1"},
		},
		ScheduleStartMs: restbind.Ptr[int64](1420070400000),
		FiringTriggerID: []string{"2147479553"},
	})
	require.NoError(t, err)
	assert.Equal(t, "7", tag.TagID)
	assert.Equal(t, restbind.Ptr[int64](1420070400000), tag.ScheduleStartMs)

	testutil.AssertJSONBody(t, srv.LastRequest(t), map[string]any{
		"name":            "Universal Analytics",
		"type":            "ua",
		"parameter":       []any{map[string]any{"type": "template", "key": "trackingId", "value": "UA-1-1"}},
		"scheduleStartMs": "1420070400000",
		"firingTriggerId": []any{"2147479553"},
	})
}

func TestTags_CreateValidation(t *testing.T) {
	svc, srv := newTestService(t)
	_, err := svc.Accounts.Containers.Tags.Create(context.Background(), "100", "200", &Tag{Name: "no type"})
	require.Error(t, err)
	assert.True(t, restbind.IsCode(err, restbind.CodeInvalidArgument))
	assert.Contains(t, restbind.AsError(err).Message, "Type")
	assert.Empty(t, srv.Requests())
}

func TestTags_UpdateFingerprint(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleError("PUT", "/tagmanager/v1/accounts/100/containers/200/tags/7", http.StatusConflict, "conflict", "Fingerprint mismatch")

	_, err := svc.Accounts.Containers.Tags.Update(context.Background(), "100", "200", "7",
		&Tag{Name: "renamed", Type: "ua"},
		&AccountsContainersTagsUpdateOptions{Fingerprint: "stale"})
	assert.True(t, restbind.IsCode(err, restbind.CodeConflict), "got %v", err)
	testutil.AssertQuery(t, srv.LastRequest(t), "fingerprint", "stale")
}

func TestMoveFolders_Update(t *testing.T) {
	svc, srv := newTestService(t)
	srv.Handle("PUT", "/tagmanager/v1/accounts/100/containers/200/move_folders/3", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := svc.Accounts.Containers.MoveFolders.Update(context.Background(), "100", "200", "3",
		&AccountsContainersMoveFoldersUpdateOptions{TagID: []string{"7", "8"}, TriggerID: []string{"9"}})
	require.NoError(t, err)

	req := srv.LastRequest(t)
	testutil.AssertQuery(t, req, "tagId", "7", "8")
	testutil.AssertQuery(t, req, "triggerId", "9")
	testutil.AssertQuery(t, req, "variableId")
	assert.Empty(t, req.Body)
}

func TestVersions_Publish(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("POST", "/tagmanager/v1/accounts/100/containers/200/versions/5/publish", http.StatusOK, map[string]any{
		"compilerError": false,
		"containerVersion": map[string]any{
			"containerVersionId": "5",
			"tag":                []any{map[string]any{"name": "t", "type": "html"}},
		},
	})

	res, err := svc.Accounts.Containers.Versions.Publish(context.Background(), "100", "200", "5", nil)
	require.NoError(t, err)
	assert.Equal(t, restbind.Ptr(false), res.CompilerError)
	assert.Equal(t, "5", res.ContainerVersion.ContainerVersionID)
	require.Len(t, res.ContainerVersion.Tag, 1)
	assert.Equal(t, "html", res.ContainerVersion.Tag[0].Type)
}

func TestPermissions_CreateValidatesEmail(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("POST", "/tagmanager/v1/accounts/100/permissions", http.StatusOK, map[string]any{
		"permissionId": "11",
		"emailAddress": "ops@example.com",
	})
	ctx := context.Background()

	_, err := svc.Accounts.Permissions.Create(ctx, "100", &UserAccess{EmailAddress: "not-an-email"})
	assert.True(t, restbind.IsCode(err, restbind.CodeInvalidArgument), "got %v", err)
	assert.Empty(t, srv.Requests())

	access, err := svc.Accounts.Permissions.Create(ctx, "100", &UserAccess{
		EmailAddress:  "ops@example.com",
		AccountAccess: &AccountAccess{Permission: []string{"read"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "11", access.PermissionID)
}

func TestAccounts_List(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("GET", "/tagmanager/v1/accounts", http.StatusOK, map[string]any{
		"accounts": []any{map[string]any{"accountId": "100", "name": "Acme", "shareData": true}},
	})

	res, err := svc.Accounts.List(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Accounts, 1)
	assert.Equal(t, restbind.Ptr(true), res.Accounts[0].ShareData)
	assert.Empty(t, srv.LastRequest(t).RawQuery)
}

func TestAccounts_UpdateStopsSharing(t *testing.T) {
	svc, srv := newTestService(t)
	srv.HandleJSON("PUT", "/tagmanager/v1/accounts/100", http.StatusOK, map[string]any{
		"accountId": "100",
		"name":      "Acme",
	})

	acct, err := svc.Accounts.Update(context.Background(), "100",
		&Account{Name: "Acme", ShareData: restbind.Ptr(false)},
		&AccountsUpdateOptions{Fingerprint: "f1"})
	require.NoError(t, err)
	assert.Nil(t, acct.ShareData)

	req := srv.LastRequest(t)
	testutil.AssertQuery(t, req, "fingerprint", "f1")
	testutil.AssertJSONBody(t, req, map[string]any{
		"name":      "Acme",
		"shareData": false,
	})
}
