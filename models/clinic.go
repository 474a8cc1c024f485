package models

// Testimonial is a clinic-level patient testimonial shown on the home page.
type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating"`
	Image    string `json:"image"`
}

// FAQ is a general clinic question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GalleryImage is one entry of the clinic gallery.
type GalleryImage struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ClinicInfo holds the clinic's contact details.
type ClinicInfo struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
