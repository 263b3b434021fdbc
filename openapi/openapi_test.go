package openapi

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/broady/restbind"
)

func readArchive(t *testing.T, name string) map[string][]byte {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	files := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = f.Data
	}
	return files
}

func formatOps(spec *restbind.ServiceSpec) string {
	or := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	var b strings.Builder
	for _, op := range spec.ExportOperations() {
		fmt.Fprintf(&b, "%s %s %s %s %s %s -> %s\n",
			op.ID, op.HTTPMethod, op.Path,
			or(strings.Join(op.Required, ",")),
			or(strings.Join(op.Optional, ",")),
			or(op.RequestType), or(op.ResponseType))
	}
	return b.String()
}

func TestParse_Versions(t *testing.T) {
	files := readArchive(t, "notes.txtar")
	want := string(files["ops.txt"])

	for _, tt := range []struct {
		file    string
		version int
	}{
		{"notes.v3.yaml", 3},
		{"notes.v2.yaml", 2},
	} {
		t.Run(tt.file, func(t *testing.T) {
			raw := files[tt.file]
			version, err := DetectVersion(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.version, version)

			spec, err := Parse(context.Background(), raw, WithName("notes"))
			require.NoError(t, err)
			assert.Equal(t, want, formatOps(spec))

			assert.Equal(t, "https://notes.example.com/", spec.RootURL)
			assert.Equal(t, "api/v1/", spec.ServicePath)
			assert.Equal(t, "Notes API", spec.Title)
			assert.Equal(t, "1.0", spec.Version)
		})
	}
}

func TestParse_Details(t *testing.T) {
	spec, err := Parse(context.Background(), readArchive(t, "notes.txtar")["notes.v3.yaml"], WithName("notes"))
	require.NoError(t, err)

	t.Run("parameters", func(t *testing.T) {
		list, err := spec.Lookup("notes", "list")
		require.NoError(t, err)

		label, ok := list.Parameter("label")
		require.True(t, ok)
		assert.True(t, label.Repeated)
		assert.Equal(t, restbind.TypeString, label.Type)

		maxResults, _ := list.Parameter("maxResults")
		assert.Equal(t, restbind.TypeInteger, maxResults.Type)
		assert.Equal(t, "int32", maxResults.Format)

		_, ok = list.Parameter("X-Trace")
		assert.False(t, ok, "header parameters are not represented")

		get, err := spec.Lookup("notes", "get")
		require.NoError(t, err)
		view, _ := get.Parameter("view")
		assert.Equal(t, []string{"basic", "full"}, view.Enum)
	})

	t.Run("scopes", func(t *testing.T) {
		get, _ := spec.Lookup("notes", "get")
		assert.Equal(t, []string{"https://www.googleapis.com/auth/notes.readonly"}, get.Scopes)
		list, _ := spec.Lookup("notes", "list")
		assert.Equal(t, []string{"https://www.googleapis.com/auth/notes"}, list.Scopes)

		require.Len(t, spec.Scopes, 2)
		assert.Equal(t, "NOTES", spec.Scopes[0].Name)
		assert.Equal(t, "NOTES_READONLY", spec.Scopes[1].Name)
	})

	t.Run("models", func(t *testing.T) {
		require.Contains(t, spec.Models, "Note")
		require.Contains(t, spec.Models, "NoteList")
		require.Contains(t, spec.Models, "NoteAuthor")

		note := spec.Models["Note"]
		revision, ok := note.Property("revision")
		require.True(t, ok)
		assert.Equal(t, "string", revision.Type)
		assert.Equal(t, "int64", revision.Format)

		author, _ := note.Property("author")
		assert.Equal(t, "NoteAuthor", author.Ref)

		labels, _ := note.Property("labels")
		assert.True(t, labels.Repeated)

		items, _ := spec.Models["NoteList"].Property("items")
		assert.True(t, items.Repeated)
		assert.Equal(t, "Note", items.Ref)
		assert.Equal(t, "items", spec.Models["NoteList"].CollectionKey)
	})
}

func TestParse_DerivedNames(t *testing.T) {
	raw := []byte(`
openapi: 3.0.3
info: {title: Pet Store, version: "2"}
paths:
  /pets:
    get:
      responses:
        "200": {description: ok}
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name: {type: string}
      responses:
        "200": {description: ok}
  /pets/{petId}:
    get:
      parameters:
        - {name: petId, in: path, required: true, schema: {type: integer}}
      responses:
        "200": {description: ok}
`)
	spec, err := Parse(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "petstore", spec.Name)

	var ids []string
	for _, op := range spec.ExportOperations() {
		ids = append(ids, op.ID)
	}
	assert.Equal(t, []string{"petstore.pets.get", "petstore.pets.insert", "petstore.pets.list"}, ids)

	insert, err := spec.Lookup("pets", "insert")
	require.NoError(t, err)
	assert.Equal(t, "PetsInsertRequest", insert.RequestType)

	get, _ := spec.Lookup("pets", "get")
	petID, _ := get.Parameter("petId")
	assert.Equal(t, restbind.TypeInteger, petID.Type)
	assert.Equal(t, restbind.LocationPath, petID.Location)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no version", `{"info": {"title": "x"}}`, "missing or unknown version"},
		{"bad yaml", "openapi: [", "parse failed"},
		{
			"invalid document",
			`{"openapi": "3.0.0", "paths": {}}`,
			"invalid document",
		},
		{
			"unsupported parameter type",
			`openapi: 3.0.0
info: {title: T, version: "1"}
paths:
  /things:
    get:
      parameters:
        - {name: ratio, in: query, schema: {type: number}}
      responses:
        "200": {description: ok}`,
			`unsupported type "number"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), []byte(tt.raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestSplitServerURL(t *testing.T) {
	root, path, err := splitServerURL("https://api.example.com/v1/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/", root)
	assert.Equal(t, "v1/", path)

	root, path, err = splitServerURL("https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/", root)
	assert.Empty(t, path)
}
