package render

import (
	"embed"
	"io"
	"text/template"

	"ev-newsroom/internal/model"
)

//go:embed lists.tmpl
var files embed.FS

var compiled = template.Must(template.New("lists").Funcs(template.FuncMap{
	"date": func(ts model.Timestamp) string {
		t := ts.Time
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format("2006-01-02")
	},
}).ParseFS(files, "lists.tmpl"))

// NewsPage is the data for a rendered news list.
type NewsPage struct {
	Header string
	Items  []*model.NewsItem
}

// AnnouncementList is the data for one category of announcements.
type AnnouncementList struct {
	Category string
	Items    []model.Announcement
}

// VehicleResult is the data for a vehicle search result.
type VehicleResult struct {
	Searched bool
	Items    []model.VehicleSpec
}

func News(w io.Writer, p NewsPage) error {
	return compiled.ExecuteTemplate(w, "news", p)
}

func Announcements(w io.Writer, l AnnouncementList) error {
	return compiled.ExecuteTemplate(w, "announcements", l)
}

func Community(w io.Writer, posts []model.CommunityPost) error {
	return compiled.ExecuteTemplate(w, "community", posts)
}

func Post(w io.Writer, p model.CommunityPost) error {
	return compiled.ExecuteTemplate(w, "post", p)
}

func Vehicles(w io.Writer, r VehicleResult) error {
	return compiled.ExecuteTemplate(w, "vehicles", r)
}
