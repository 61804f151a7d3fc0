package domain

// Link is an important link attached to a trip.
// Lists of links keep the order the API returned them in.
type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
