package models

// Review is a patient review attached to a doctor profile.
type Review struct {
	ID          string `json:"id"`
	PatientName string `json:"patientName"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	Date        string `json:"date"`
}

// Doctor is immutable reference data describing one specialist.
type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Designation    string   `json:"designation"`
	Specialization string   `json:"specialization"`
	Degrees        string   `json:"degrees"`
	Experience     int      `json:"experience"`
	Image          string   `json:"image"`
	Languages      []string `json:"languages"`
	Availability   string   `json:"availability"`
	Certifications []string `json:"certifications"`
	Bio            string   `json:"bio"`
	Reviews        []Review `json:"reviews"`
}
