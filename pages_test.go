package restbind

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/broady/restbind/testutil"
)

func TestPages(t *testing.T) {
	pages := map[string]*WidgetList{
		"":   {Items: []*Widget{{ID: "a"}, {ID: "b"}}, NextPageToken: "t1"},
		"t1": {Items: []*Widget{{ID: "c"}}, NextPageToken: "t2"},
		"t2": {Items: []*Widget{{ID: "d"}}},
	}
	var tokens []string
	fetch := func(ctx context.Context, token string) (*WidgetList, error) {
		tokens = append(tokens, token)
		return pages[token], nil
	}

	var ids []string
	for page, err := range Pages(context.Background(), fetch) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, w := range page.Items {
			ids = append(ids, w.ID)
		}
	}
	if len(ids) != 4 || ids[3] != "d" {
		t.Errorf("expected 4 widgets, got %v", ids)
	}
	if len(tokens) != 3 || tokens[0] != "" || tokens[1] != "t1" || tokens[2] != "t2" {
		t.Errorf("expected tokens [\"\" t1 t2], got %q", tokens)
	}
}

func TestPages_SinglePage(t *testing.T) {
	calls := 0
	for range Pages(context.Background(), func(ctx context.Context, token string) (*WidgetList, error) {
		calls++
		return &WidgetList{}, nil
	}) {
	}
	if calls != 1 {
		t.Errorf("expected 1 fetch without a continuation token, got %d", calls)
	}
}

func TestPages_NilPage(t *testing.T) {
	var got []*WidgetList
	for page, err := range Pages(context.Background(), func(ctx context.Context, token string) (*WidgetList, error) {
		if token == "" {
			return &WidgetList{Items: []*Widget{{ID: "a"}}, NextPageToken: "t1"}, nil
		}
		return nil, nil
	}) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, page)
	}
	if len(got) != 1 || got[0] == nil {
		t.Errorf("expected only the first page, got %v", got)
	}

	for range Pages(context.Background(), func(ctx context.Context, token string) (*WidgetList, error) {
		return nil, nil
	}) {
		t.Error("expected no pages when the first fetch returns nil")
	}
}

func TestPages_Error(t *testing.T) {
	boom := errors.New("boom")
	var got []error
	for _, err := range Pages(context.Background(), func(ctx context.Context, token string) (*WidgetList, error) {
		if token == "" {
			return &WidgetList{NextPageToken: "t1"}, nil
		}
		return nil, boom
	}) {
		got = append(got, err)
	}
	if len(got) != 2 || got[0] != nil || got[1] != boom {
		t.Errorf("expected [nil boom], got %v", got)
	}
}

func TestPages_RepeatedToken(t *testing.T) {
	var last error
	n := 0
	for _, err := range Pages(context.Background(), func(ctx context.Context, token string) (*WidgetList, error) {
		return &WidgetList{NextPageToken: "same"}, nil
	}) {
		n++
		last = err
		if n > 5 {
			break
		}
	}
	if last == nil {
		t.Error("expected error for repeated continuation token")
	}
}

func TestPages_StopEarly(t *testing.T) {
	calls := 0
	for range Pages(context.Background(), func(ctx context.Context, token string) (*WidgetList, error) {
		calls++
		return &WidgetList{NextPageToken: "t" + token}, nil
	}) {
		break
	}
	if calls != 1 {
		t.Errorf("expected 1 fetch, got %d", calls)
	}
}

func TestPages_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, err := range Pages(ctx, func(ctx context.Context, token string) (*WidgetList, error) {
		t.Error("fetch should not be called")
		return nil, nil
	}) {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	}
}

func TestPages_HTTP(t *testing.T) {
	srv, _, widgets := newHTTPWidgets(t)
	srv.Handle("GET", "/widgets/v1/widgets", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("pageToken") {
		case "":
			testutil.WriteJSON(w, http.StatusOK, map[string]any{"items": []any{map[string]any{"id": "a"}}, "nextPageToken": "p2"})
		case "p2":
			testutil.WriteJSON(w, http.StatusOK, map[string]any{"items": []any{map[string]any{"id": "b"}}})
		}
	})

	var ids []string
	for page, err := range Pages(context.Background(), func(ctx context.Context, token string) (*WidgetList, error) {
		return Call[WidgetList](ctx, widgets, "list", Params{"project": "p1"}, Params{"pageToken": token})
	}) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, w := range page.Items {
			ids = append(ids, w.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("expected [a b], got %v", ids)
	}

	reqs := srv.Requests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	testutil.AssertQuery(t, reqs[0], "pageToken")
	testutil.AssertQuery(t, reqs[1], "pageToken", "p2")
}
