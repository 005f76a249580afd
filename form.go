package cleanblog

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	formDateLayout    = "2006-01-02"
	displayDateLayout = "January 02, 2006"
)

// PostForm is the create/edit form, one field per input.
type PostForm struct {
	Title    string `form:"title" validate:"required,max=250"`
	Subtitle string `form:"subtitle" validate:"required,max=250"`
	Author   string `form:"author" validate:"required,max=250"`
	NewDate  string `form:"new_date" validate:"required,datetime=2006-01-02"`
	ImgURL   string `form:"img_url" validate:"required,absurl,max=250"`
	Body     string `form:"body" validate:"required"`
}

// FormErrors maps a form input name to its first validation message.
type FormErrors map[string]string

// NewBlogPost builds a post from a validated form. The date input is
// converted to the display form stored in the date column.
func NewBlogPost(f PostForm) (BlogPost, error) {
	date, err := displayDate(f.NewDate)
	if err != nil {
		return BlogPost{}, err
	}
	return BlogPost{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Date:     date,
		Body:     f.Body,
		Author:   f.Author,
		ImgURL:   f.ImgURL,
	}, nil
}

// PostFormFor pre-fills the edit form from p. The date input stays empty:
// the stored display string is not a value the date input accepts.
func PostFormFor(p BlogPost) PostForm {
	return PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Author:   p.Author,
		ImgURL:   p.ImgURL,
		Body:     p.Body,
	}
}

// applyEdit copies an edit submission onto p. The submitted date is checked
// but never written, so an edited post keeps the date it was created with.
func (f PostForm) applyEdit(p *BlogPost) error {
	if _, err := displayDate(f.NewDate); err != nil {
		return err
	}
	p.Title = f.Title
	p.Subtitle = f.Subtitle
	p.ImgURL = f.ImgURL
	p.Author = f.Author
	p.Body = f.Body
	return nil
}

// trimmed returns a copy with surrounding whitespace removed, used only for
// validation so that a blank input counts as missing. Stored values are
// never trimmed.
func (f PostForm) trimmed() PostForm {
	return PostForm{
		Title:    strings.TrimSpace(f.Title),
		Subtitle: strings.TrimSpace(f.Subtitle),
		Author:   strings.TrimSpace(f.Author),
		NewDate:  strings.TrimSpace(f.NewDate),
		ImgURL:   strings.TrimSpace(f.ImgURL),
		Body:     strings.TrimSpace(f.Body),
	}
}

func displayDate(s string) (string, error) {
	t, err := time.Parse(formDateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Format(displayDateLayout), nil
}

// formValidator adapts go-playground/validator to echo.Validator.
type formValidator struct {
	validate *validator.Validate
}

func newFormValidator() *formValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// absurl needs scheme://host; the stock url rule also takes opaque
	// values such as "javascript:alert(1)".
	_ = v.RegisterValidation("absurl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		return err == nil && u.Scheme != "" && u.Host != ""
	})
	return &formValidator{validate: v}
}

func (fv *formValidator) Validate(i interface{}) error {
	return fv.validate.Struct(i)
}

// bindPostForm binds and validates the submitted form. A non-nil FormErrors
// means the input was rejected and should be shown back to the user.
func bindPostForm(c echo.Context) (PostForm, FormErrors, error) {
	var form PostForm
	if err := c.Bind(&form); err != nil {
		return form, nil, err
	}
	checked := form.trimmed()
	// The date is not stored as typed, so the parsed form uses the trimmed value.
	form.NewDate = checked.NewDate
	if err := c.Validate(&checked); err != nil {
		errs, ok := asFormErrors(err)
		if !ok {
			return form, nil, err
		}
		return form, errs, nil
	}
	return form, nil, nil
}

func asFormErrors(err error) (FormErrors, bool) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}
	errs := make(FormErrors, len(ve))
	for _, fe := range ve {
		if _, ok := errs[fe.Field()]; !ok {
			errs[fe.Field()] = fieldMessage(fe)
		}
	}
	return errs, true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "absurl":
		return "Invalid URL."
	case "datetime":
		return "Not a valid date value."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	}
	return "Invalid value."
}
