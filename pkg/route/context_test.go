package route

import (
	"errors"
	"testing"

	"github.com/wayfind-dev/wayfind/pkg/reactive"
)

func TestDescendAccumulatesPrefix(t *testing.T) {
	root := NewContext(reactive.NewSignal("/app/dashboard"), nil)

	child := Descend(root, "/app", "/dashboard", nil)
	if child.PrefixPath != "/app" {
		t.Errorf("prefix = %q, want %q", child.PrefixPath, "/app")
	}
	if child.Location.Get() != "/dashboard" {
		t.Errorf("location = %q, want %q", child.Location.Get(), "/dashboard")
	}

	grand := Descend(child, "/dashboard", "/", nil)
	if grand.PrefixPath != "/app/dashboard" {
		t.Errorf("prefix = %q, want %q", grand.PrefixPath, "/app/dashboard")
	}
}

func TestContextNavigatePrefixes(t *testing.T) {
	var navigated []string
	root := NewContext(reactive.NewSignal("/app/settings"), func(path string) {
		navigated = append(navigated, path)
	})

	child := Descend(root, "/app", "/settings", nil)
	child.Navigate("/profile")

	if len(navigated) != 1 || navigated[0] != "/app/profile" {
		t.Errorf("navigated = %v, want [/app/profile]", navigated)
	}

	if href := child.Href("/other"); href != "/app/other" {
		t.Errorf("href = %q, want %q", href, "/app/other")
	}
}

func TestContextNavigateWithoutEffect(t *testing.T) {
	ctx := NewContext(reactive.NewSignal("/"), nil)
	// Must not panic.
	ctx.Navigate("/anywhere")
}

func TestDispatchNested(t *testing.T) {
	inner := NewRouter[string]()
	inner.Handle("/dashboard", func(ctx *Context) string {
		return "prefix=" + ctx.PrefixPath
	})

	outer := NewRouter[string]()
	outer.Handle("/app", func(ctx *Context) string {
		out, err := Dispatch(inner, ctx)
		if err != nil {
			t.Fatalf("inner dispatch failed: %v", err)
		}
		return out
	})

	root := NewContext(reactive.NewSignal("/app/dashboard"), nil)
	out, err := Dispatch(outer, root)
	if err != nil {
		t.Fatalf("outer dispatch failed: %v", err)
	}
	if out != "prefix=/app/dashboard" {
		t.Errorf("got %q, want %q", out, "prefix=/app/dashboard")
	}
}

func TestDispatchNestedParams(t *testing.T) {
	inner := NewRouter[string]()
	inner.Handle("/posts/:postID", func(ctx *Context) string {
		return ctx.Params["postID"] + "@" + ctx.PrefixPath
	})

	outer := NewRouter[string]()
	outer.Handle("/users/:id", func(ctx *Context) string {
		if ctx.Params["id"] != "42" {
			t.Errorf("outer params[id] = %q", ctx.Params["id"])
		}
		out, err := Dispatch(inner, ctx)
		if err != nil {
			t.Fatalf("inner dispatch failed: %v", err)
		}
		return out
	})

	root := NewContext(reactive.NewSignal("/users/42/posts/7"), nil)
	out, err := Dispatch(outer, root)
	if err != nil {
		t.Fatalf("outer dispatch failed: %v", err)
	}
	if out != "7@/users/42/posts/7" {
		t.Errorf("got %q, want %q", out, "7@/users/42/posts/7")
	}
}

func TestDispatchNoMatch(t *testing.T) {
	r := NewRouter[string]()
	r.Handle("/a", func(ctx *Context) string { return "a" })

	_, err := Dispatch(r, NewContext(reactive.NewSignal("/b"), nil))
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}
