package types

import "github.com/portfolio-studio/showcase/internal/services"

// ProjectCreateRequest is the POST /api/projects body. Non-string values make
// the body undecodable.
type ProjectCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (r ProjectCreateRequest) Input() *services.CreateProjectInput {
	return &services.CreateProjectInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}
