package store

import "galaxydental/models"

// Catalog provides read-only access to the clinic's reference data.
type Catalog interface {
	Doctors() []models.Doctor
	DoctorByID(id string) (models.Doctor, bool)
	Services() []models.Service
	ServiceByID(id string) (models.Service, bool)
	Testimonials() []models.Testimonial
	FAQs() []models.FAQ
	Gallery() []models.GalleryImage
	Clinic() models.ClinicInfo
	PriceList() []models.PriceListEntry
}

type memoryCatalog struct{}

// NewMemoryCatalog returns the in-memory catalog backed by the seed data
// in catalog_data.go.
func NewMemoryCatalog() Catalog {
	return &memoryCatalog{}
}

func (c *memoryCatalog) Doctors() []models.Doctor {
	return doctors
}

func (c *memoryCatalog) DoctorByID(id string) (models.Doctor, bool) {
	for _, d := range doctors {
		if d.ID == id {
			return d, true
		}
	}
	return models.Doctor{}, false
}

func (c *memoryCatalog) Services() []models.Service {
	return clinicServices
}

func (c *memoryCatalog) ServiceByID(id string) (models.Service, bool) {
	for _, s := range clinicServices {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func (c *memoryCatalog) Testimonials() []models.Testimonial {
	return testimonials
}

func (c *memoryCatalog) FAQs() []models.FAQ {
	return generalFAQs
}

func (c *memoryCatalog) Gallery() []models.GalleryImage {
	return galleryImages
}

func (c *memoryCatalog) Clinic() models.ClinicInfo {
	return clinicInfo
}

// PriceList returns the pricing page rows: a general consultation entry
// followed by each treatment's price range.
func (c *memoryCatalog) PriceList() []models.PriceListEntry {
	entries := []models.PriceListEntry{
		{Title: "General Consultation", PriceRange: "₹300 - ₹500"},
	}
	for _, s := range clinicServices {
		entries = append(entries, models.PriceListEntry{Title: s.Title, PriceRange: s.PriceRange})
	}
	return entries
}
