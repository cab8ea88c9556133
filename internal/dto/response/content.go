package response

// PublicContentResponse is the single storefront payload: menu, upcoming
// events and recent posts in one round trip
type PublicContentResponse struct {
	Menu   []MenuSectionResponse `json:"menu"`
	Events []EventResponse       `json:"events"`
	Posts  []BlogPostResponse    `json:"posts"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
