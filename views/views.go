// Package views renders the cleanblog pages. Each page is a templ component
// that executes one of the embedded html/template files.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/cleanblog"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"postURL":   cleanblog.PostURL,
	"editURL":   cleanblog.EditURL,
	"deleteURL": cleanblog.DeleteURL,
	// Post bodies come from the rich text editor and are shown as written.
	"rawHTML": func(s string) template.HTML { return template.HTML(s) },
}).ParseFS(templateFiles, "templates/*.html"))

// page is the data every template receives. The masthead fields fill the
// header block; Data carries the page-specific payload.
type page struct {
	Site       cleanblog.SiteConfig
	Title      string
	Heading    string
	Subheading string
	Meta       string
	Image      string
	Year       int
	Data       any
}

type indexData struct {
	Posts   []cleanblog.BlogPost
	Flashes []string
}

// New returns the default views for cfg.
func New(cfg cleanblog.SiteConfig) cleanblog.ViewFuncs {
	cfg.SetDefaults()
	r := renderer{site: cfg}
	return cleanblog.ViewFuncs{
		Index: func(posts []cleanblog.BlogPost, flashes []string) templ.Component {
			return r.page("index", page{
				Title:      cfg.Name,
				Heading:    cfg.Name,
				Subheading: "A collection of random musings.",
				Data:       indexData{Posts: posts, Flashes: flashes},
			})
		},
		Post: func(post cleanblog.BlogPost) templ.Component {
			return r.page("post", page{
				Title:      post.Title,
				Heading:    post.Title,
				Subheading: post.Subtitle,
				Meta:       "Posted by " + post.Author + " on " + post.Date,
				Image:      post.ImgURL,
				Data:       post,
			})
		},
		PostForm: func(fp cleanblog.PostFormPage) templ.Component {
			heading := "New Post"
			if fp.IsEdit {
				heading = "Edit Post"
			}
			return r.page("post_form", page{
				Title:      heading,
				Heading:    heading,
				Subheading: "You're going to make a great blog post!",
				Data:       fp,
			})
		},
		About: func() templ.Component {
			return r.page("about", page{
				Title:      "About Me",
				Heading:    "About Me",
				Subheading: "This is what I do.",
			})
		},
		Contact: func() templ.Component {
			return r.page("contact", page{
				Title:      "Contact Me",
				Heading:    "Contact Me",
				Subheading: "Have questions? I have answers.",
			})
		},
		NotFound: func() templ.Component {
			return r.page("not_found", page{
				Title:      "Not Found",
				Heading:    "404",
				Subheading: "That page does not exist.",
			})
		},
		ServerError: func() templ.Component {
			return r.page("server_error", page{
				Title:      "Server Error",
				Heading:    "500",
				Subheading: "Something went wrong.",
			})
		},
	}
}

type renderer struct {
	site cleanblog.SiteConfig
}

func (r renderer) page(name string, p page) templ.Component {
	p.Site = r.site
	p.Year = time.Now().Year()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, p)
	})
}
