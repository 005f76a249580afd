package cleanblog

// BlogPost is the single entity stored in the blog_post table.
type BlogPost struct {
	ID       int64
	Title    string
	Subtitle string
	Date     string // display form, e.g. "January 02, 2006"
	Body     string // rich HTML from the editor
	Author   string
	ImgURL   string
}

// PostFormPage carries everything the create/edit form template needs.
type PostFormPage struct {
	Form      PostForm
	Errors    FormErrors
	IsEdit    bool
	Action    string
	CSRFToken string
}
