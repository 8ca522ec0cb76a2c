package model

// Announcement is a public notice scraped per region/agency category.
type Announcement struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Date  string `json:"date"`
}

// AnnouncementCategories lists the categories the API is known to serve.
var AnnouncementCategories = []string{
	"incheon",
	"incheon2",
	"gyeonggi",
	"seoul",
	"koroad",
	"gwangju",
	"bucheon",
	"ulsan",
	"goyang",
	"gangneung",
}
