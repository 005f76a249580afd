package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/cleanblog"
)

func renderString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func testViews() cleanblog.ViewFuncs {
	return New(cleanblog.SiteConfig{Name: "Jo's Blog", Author: "Jo"})
}

func TestIndexListsPosts(t *testing.T) {
	posts := []cleanblog.BlogPost{
		{ID: 1, Title: "First", Subtitle: "One", Author: "Jo", Date: "January 01, 2024"},
		{ID: 2, Title: "Second", Subtitle: "Two", Author: "Sam", Date: "February 02, 2024"},
	}
	got := renderString(t, testViews().Index(posts, []string{"Successfully added the post."}))

	for _, want := range []string{
		`<h2 class="post-title">First</h2>`,
		`<h2 class="post-title">Second</h2>`,
		`href="/post?post_id=1"`,
		`href="/delete/2"`,
		"Posted by Sam on February 02, 2024",
		"Successfully added the post.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("index output missing %q", want)
		}
	}
	if strings.Contains(got, "No posts yet.") {
		t.Error("index should not show the empty message when posts exist")
	}
}

func TestIndexEmpty(t *testing.T) {
	got := renderString(t, testViews().Index(nil, nil))
	if !strings.Contains(got, "No posts yet.") {
		t.Error("empty index should say there are no posts")
	}
}

func TestPostRendersBodyAsHTML(t *testing.T) {
	post := cleanblog.BlogPost{
		ID:     5,
		Title:  "<script>alert(1)</script>",
		Body:   "<p>x</p>",
		ImgURL: "http://example.com/i.png",
	}
	got := renderString(t, testViews().Post(post))

	if !strings.Contains(got, "<p>x</p>") {
		t.Error("post body should be rendered unescaped")
	}
	if strings.Contains(got, "<script>alert(1)</script>") {
		t.Error("post title must be escaped")
	}
	if !strings.Contains(got, `href="/edit-post/5"`) {
		t.Error("post page should link to the edit form")
	}
	if !strings.Contains(got, "http://example.com/i.png") {
		t.Error("post page should use the image as masthead background")
	}
}

func TestPostFormShowsErrors(t *testing.T) {
	fp := cleanblog.PostFormPage{
		Form:      cleanblog.PostForm{Title: "Kept"},
		Errors:    cleanblog.FormErrors{"img_url": "Invalid URL."},
		Action:    "/addpost",
		CSRFToken: "tok",
	}
	got := renderString(t, testViews().PostForm(fp))

	for _, want := range []string{
		"New Post",
		`action="/addpost"`,
		`name="_csrf" value="tok"`,
		`value="Kept"`,
		`<div class="form-errors">Invalid URL.</div>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("form output missing %q", want)
		}
	}
}

func TestPostFormEditHeading(t *testing.T) {
	got := renderString(t, testViews().PostForm(cleanblog.PostFormPage{IsEdit: true, Action: "/edit-post/1"}))
	if !strings.Contains(got, "Edit Post") {
		t.Error("edit form should be headed Edit Post")
	}
}

func TestStaticAndErrorPages(t *testing.T) {
	v := testViews()
	tests := []struct {
		name string
		cmp  templ.Component
		want string
	}{
		{"about", v.About(), "About Me"},
		{"contact", v.Contact(), "Contact Me"},
		{"not found", v.NotFound(), "could not be found"},
		{"server error", v.ServerError(), "could not be completed"},
	}
	for _, tt := range tests {
		got := renderString(t, tt.cmp)
		if !strings.Contains(got, tt.want) {
			t.Errorf("%s page missing %q", tt.name, tt.want)
		}
		if !strings.Contains(got, "Jo&#39;s Blog") {
			t.Errorf("%s page should carry the site name", tt.name)
		}
	}
}
