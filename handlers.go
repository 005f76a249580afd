package cleanblog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleIndex(c echo.Context) error {
	posts, err := a.Store.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Index(posts, popFlashes(c)))
}

// handleShowPost reads the id from the post_id query parameter.
func (a *App) handleShowPost(c echo.Context) error {
	id, ok := parseID(c.QueryParam("post_id"))
	if !ok {
		return a.renderNotFound(c)
	}
	post, err := a.Store.GetPost(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	return Render(c, a.Views.Post(post))
}

func (a *App) handleAddPost(c echo.Context) error {
	page := PostFormPage{Action: "/addpost", CSRFToken: CsrfToken(c)}
	if c.Request().Method != http.MethodPost {
		return Render(c, a.Views.PostForm(page))
	}

	form, errs, err := bindPostForm(c)
	if err != nil {
		return err
	}
	if errs != nil {
		page.Form, page.Errors = form, errs
		return Render(c, a.Views.PostForm(page))
	}

	post, err := NewBlogPost(form)
	if err != nil {
		return err
	}
	// A duplicate title is deliberately left to the error handler.
	if err := a.Store.CreatePost(c.Request().Context(), &post); err != nil {
		return err
	}
	c.Logger().Infof("added post %d %q", post.ID, post.Title)
	if err := addFlash(c, "Successfully added the post."); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

func (a *App) handleEditPost(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return a.renderNotFound(c)
	}
	ctx := c.Request().Context()
	post, err := a.Store.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}

	page := PostFormPage{
		IsEdit:    true,
		Action:    EditURL(id),
		CSRFToken: CsrfToken(c),
	}
	if c.Request().Method != http.MethodPost {
		page.Form = PostFormFor(post)
		return Render(c, a.Views.PostForm(page))
	}

	form, errs, err := bindPostForm(c)
	if err != nil {
		return err
	}
	if errs != nil {
		page.Form, page.Errors = form, errs
		return Render(c, a.Views.PostForm(page))
	}

	if err := form.applyEdit(&post); err != nil {
		return err
	}
	if err := a.Store.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	c.Logger().Infof("edited post %d", post.ID)
	if err := addFlash(c, "Successfully edited the post."); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// handleDeletePost removes the post without a confirmation step.
func (a *App) handleDeletePost(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return a.renderNotFound(c)
	}
	if err := a.Store.DeletePost(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	c.Logger().Infof("deleted post %d", id)
	if err := addFlash(c, "Successfully deleted the post."); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About())
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact())
}

func (a *App) renderNotFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
