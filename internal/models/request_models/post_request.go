package request_models

type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Cover       string   `json:"cover"`
	ContentHTML string   `json:"content_html" binding:"required"`
	Images      []string `json:"images"`
}

// Pointer fields so PUT can distinguish "leave unchanged" from "clear".
type UpdatePostRequest struct {
	Title       *string   `json:"title"`
	Cover       *string   `json:"cover"`
	ContentHTML *string   `json:"content_html"`
	Images      *[]string `json:"images"`
}
