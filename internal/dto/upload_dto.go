package dto

type PresignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size" binding:"required,gt=0"`
}

type PresignResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
