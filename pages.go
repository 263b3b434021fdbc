package restbind

import (
	"context"
	"fmt"
	"iter"
	"reflect"
)

// Pager is implemented by list responses that carry a continuation token.
// An empty token means there are no more pages.
type Pager interface {
	ContinuationToken() string
}

// Pages iterates over a paginated list. fetch is called with an empty token for
// the first page and with the previous page's continuation token after that.
// Iteration stops after the first page without a token, after a nil page, or
// after yielding an error.
//
//	for page, err := range restbind.Pages(ctx, func(ctx context.Context, token string) (*Buckets, error) {
//	    return svc.Buckets.List(ctx, project, &ListOptions{PageToken: token})
//	}) {
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
func Pages[T Pager](ctx context.Context, fetch func(ctx context.Context, pageToken string) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		token := ""
		for {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			page, err := fetch(ctx, token)
			if err != nil {
				yield(zero, err)
				return
			}
			if isNilPage(page) {
				return
			}
			if !yield(page, nil) {
				return
			}
			next := page.ContinuationToken()
			if next == "" {
				return
			}
			if next == token {
				yield(zero, fmt.Errorf("continuation token %q repeated", next))
				return
			}
			token = next
		}
	}
}

func isNilPage(p Pager) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
