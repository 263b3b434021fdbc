package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/restbind"
	"github.com/broady/restbind/services/storage"
	"github.com/broady/restbind/testutil"
)

// runCLI runs the command line in an empty working directory so that no
// restbind.yaml is picked up.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// storageConfig points the storage service at srv.
func storageConfig(t *testing.T, srv *testutil.Server, extra string) string {
	t.Helper()
	cfg := "retries: 0\nbase_url:\n  storage: " + srv.BaseURL("storage/v1") + "\n" + extra
	return writeTemp(t, "restbind.yaml", []byte(cfg))
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, strings.TrimSpace(embeddedVersion))
}

func TestOps(t *testing.T) {
	out, err := runCLI(t, "ops", "--service", "sqladmin")
	require.NoError(t, err)
	assert.Contains(t, out, "sqladmin.sslCerts.createEphemeral")
	assert.Contains(t, out, "projects/{project}/instances/{instance}/createEphemeral")
	assert.NotContains(t, out, "storage.buckets.get")
}

func TestOps_JSON(t *testing.T) {
	out, err := runCLI(t, "ops", "--json", "-s", "storage")
	require.NoError(t, err)

	var ops []restbind.ExportedOperation
	require.NoError(t, json.Unmarshal([]byte(out), &ops))
	assert.Len(t, ops, 35)
	for _, op := range ops {
		assert.Equal(t, "storage", op.Service)
	}
}

func TestOps_UnknownService(t *testing.T) {
	_, err := runCLI(t, "ops", "--service", "nope")
	assert.ErrorContains(t, err, `no operations for service "nope"`)
}

func TestCheck_Builtins(t *testing.T) {
	out, err := runCLI(t, "check")
	require.NoError(t, err)
	for _, name := range builtinNames() {
		assert.Contains(t, out, "ok   "+name+": ")
	}
	assert.NotContains(t, out, "FAIL")
}

func TestCheck_Documents(t *testing.T) {
	good := writeTemp(t, "storage.json", storage.Document())
	bad := writeTemp(t, "bad.json", []byte(`{"kind": "discovery#restDescription", "name": "broken"`))

	out, err := runCLI(t, "check", good, bad)
	assert.ErrorContains(t, err, "1 of 2 documents failed")
	assert.Contains(t, out, "ok   "+good+": storage v1")
	assert.Contains(t, out, "FAIL "+bad)
}

func TestSchema(t *testing.T) {
	out, err := runCLI(t, "schema", "sqladmin", "SslCertsCreateEphemeralRequest")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Contains(t, doc["properties"], "public_key")
}

func TestSchema_Go(t *testing.T) {
	out, err := runCLI(t, "schema", "--go", "sqladmin", "SslCertsCreateEphemeralRequest")
	require.NoError(t, err)
	assert.Contains(t, out, `"public_key"`)
}

func TestSchema_UnknownModel(t *testing.T) {
	_, err := runCLI(t, "schema", "storage", "Nope")
	assert.ErrorContains(t, err, `service storage has no model "Nope"`)
}

func TestCall_DryRun(t *testing.T) {
	t.Setenv("RESTBIND_TOKEN", "secret")
	body := writeTemp(t, "body.json", []byte(`{"public_key": "ssh-rsa AAAA"}`))

	out, err := runCLI(t, "call", "--dry-run", "--body", body,
		"sqladmin", "sslCerts", "createEphemeral", "project=p1", "instance=db")
	require.NoError(t, err)
	assert.Contains(t, out, "POST https://www.googleapis.com/sql/v1beta4/projects/p1/instances/db/createEphemeral\n")
	assert.Contains(t, out, "Content-Type: application/json\n")
	assert.Contains(t, out, `"public_key": "ssh-rsa AAAA"`)
	assert.NotContains(t, out, "secret")
}

func TestCall_Server(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.HandleJSON("GET", "/storage/v1/b/photos", http.StatusOK, map[string]any{
		"id":             "photos",
		"name":           "photos",
		"metageneration": "7",
	})
	cfg := storageConfig(t, srv, "token: t0k\nquota_user: alice\n")

	out, err := runCLI(t, "-c", cfg, "call", "storage", "buckets", "get", "bucket=photos", "projection=full")
	require.NoError(t, err)

	var bucket storage.Bucket
	require.NoError(t, json.Unmarshal([]byte(out), &bucket))
	assert.Equal(t, "photos", bucket.Name)
	assert.Equal(t, restbind.Ptr[int64](7), bucket.Metageneration)

	req := srv.LastRequest(t)
	testutil.AssertQuery(t, req, "projection", "full")
	testutil.AssertQuery(t, req, "quotaUser", "alice")
	testutil.AssertHeader(t, req, "Authorization", "Bearer t0k")
}

func TestCall_AllPages(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.Handle("GET", "/storage/v1/b/photos/o", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("pageToken") {
		case "":
			testutil.WriteJSON(w, http.StatusOK, map[string]any{
				"items":         []any{map[string]any{"name": "a.jpg"}},
				"nextPageToken": "p2",
			})
		default:
			testutil.WriteJSON(w, http.StatusOK, map[string]any{
				"items": []any{map[string]any{"name": "b.jpg"}},
			})
		}
	})

	out, err := runCLI(t, "-c", storageConfig(t, srv, ""), "call", "--all", "storage", "objects", "list", "bucket=photos", "prefix=2024/")
	require.NoError(t, err)
	assert.Contains(t, out, `"a.jpg"`)
	assert.Contains(t, out, `"b.jpg"`)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	testutil.AssertQuery(t, reqs[1], "pageToken", "p2")
	testutil.AssertQuery(t, reqs[1], "prefix", "2024/")
}

func TestCall_NotPaginated(t *testing.T) {
	_, err := runCLI(t, "call", "--all", "--dry-run", "storage", "buckets", "get", "bucket=photos")
	assert.ErrorContains(t, err, "storage.buckets.get is not paginated")
}

func TestCall_MissingParameter(t *testing.T) {
	_, err := runCLI(t, "call", "--dry-run", "storage", "buckets", "get")
	require.Error(t, err)
	assert.True(t, restbind.IsCode(err, restbind.CodeMissingRequiredParameter), "got %v", err)
}

func TestCall_InvalidBody(t *testing.T) {
	body := writeTemp(t, "body.json", []byte(`{"public_key": 42}`))
	_, err := runCLI(t, "call", "--dry-run", "--body", body,
		"sqladmin", "sslCerts", "createEphemeral", "project=p1", "instance=db")
	assert.True(t, restbind.IsCode(err, restbind.CodeInvalidArgument), "got %v", err)
}

func TestCall_APIError(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.HandleError("GET", "/storage/v1/b/missing", http.StatusNotFound, "notFound", "Not Found")

	_, err := runCLI(t, "-c", storageConfig(t, srv, ""), "call", "storage", "buckets", "get", "bucket=missing")
	assert.True(t, restbind.IsCode(err, restbind.CodeNotFound), "got %v", err)
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"a=1", "b=x=y", "c=", "r=1", "r=2", "r=3"})
	require.NoError(t, err)
	assert.Equal(t, restbind.Params{
		"a": "1",
		"b": "x=y",
		"c": "",
		"r": []string{"1", "2", "3"},
	}, params)

	_, err = parseParams([]string{"novalue"})
	assert.ErrorContains(t, err, "want name=value")
	_, err = parseParams([]string{"=x"})
	assert.Error(t, err)
}

func TestDynamicPage(t *testing.T) {
	assert.Equal(t, "n", dynamicPage{&storage.Objects{NextPageToken: "n"}}.ContinuationToken())
	assert.Equal(t, "m", dynamicPage{map[string]any{"nextPageToken": "m"}}.ContinuationToken())
	assert.Empty(t, dynamicPage{nil}.ContinuationToken())
	assert.Empty(t, dynamicPage{(*storage.Objects)(nil)}.ContinuationToken())
}
