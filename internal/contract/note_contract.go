package contract

type NoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateStatusRequest struct {
	Status bool `json:"status"`
}
