package response_models

type PostResponse struct {
	ID          string   `json:"id"`
	Author      string   `json:"author"`
	Title       string   `json:"title"`
	Cover       string   `json:"cover,omitempty"`
	ContentHTML string   `json:"content_html"`
	Images      []string `json:"images,omitempty"`
	Date        string   `json:"date"`
}
