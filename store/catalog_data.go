package store

import "galaxydental/models"

var clinicInfo = models.ClinicInfo{
	Address: "123 Galaxy Tower, Stardust Lane, Cyber City, Hyderabad, 500081",
	Phone:   "+91 7993051031",
	Email:   "infinitesai3@gmail.com",
}

var doctors = []models.Doctor{
	{
		ID:             "dr-sharma",
		Name:           "Dr. Ananya Sharma",
		Designation:    "Senior Orthodontist",
		Specialization: "Orthodontics & Dentofacial Orthopedics",
		Degrees:        "BDS, MDS (Osmania University)",
		Experience:     12,
		Image:          "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?q=80&w=800&auto=format&fit=crop",
		Languages:      []string{"English", "Telugu", "Hindi"},
		Availability:   "Mon-Sat: 10AM - 2PM",
		Certifications: []string{"Invisalign Certified Provider", "Member of Indian Orthodontic Society"},
		Bio:            "Dr. Ananya Sharma is a highly skilled Orthodontist with over a decade of experience in creating beautiful smiles. Specializing in both traditional braces and modern clear aligners, she is dedicated to providing personalized care that boosts patient confidence. Her gentle approach makes her a favorite among teenagers and adults alike.",
		Reviews: []models.Review{
			{ID: "r1", PatientName: "Rajesh K.", Rating: 5, Comment: "Dr. Ananya is amazing with braces. My son loves coming here.", Date: "2023-10-12"},
			{ID: "r2", PatientName: "Sneha P.", Rating: 5, Comment: "Very professional and explains everything clearly.", Date: "2023-11-05"},
		},
	},
	{
		ID:             "dr-reddy",
		Name:           "Dr. Arjun Reddy",
		Designation:    "Chief Implantologist",
		Specialization: "Oral Implantology",
		Degrees:        "BDS, MDS, FICOI (USA)",
		Experience:     15,
		Image:          "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?q=80&w=800&auto=format&fit=crop",
		Languages:      []string{"English", "Telugu", "Kannada"},
		Availability:   "Tue-Sun: 11AM - 8PM",
		Certifications: []string{"Fellow of Intl Congress of Oral Implantologists", "Nobel Biocare Certified"},
		Bio:            "Dr. Arjun Reddy is a renowned Implantologist known for his precision and expertise in complex full-mouth rehabilitation. Having trained in the USA, he brings international standards of implant dentistry to Hyderabad. He uses the latest 3D guided surgery techniques for painless and accurate results.",
		Reviews: []models.Review{
			{ID: "r3", PatientName: "Vikram S.", Rating: 5, Comment: "Painless implant surgery. Highly recommended.", Date: "2023-09-20"},
		},
	},
	{
		ID:             "dr-priya",
		Name:           "Dr. Priya Desai",
		Designation:    "Pediatric Dentist",
		Specialization: "Pedodontics",
		Degrees:        "BDS, MDS",
		Experience:     8,
		Image:          "https://images.unsplash.com/photo-1594824476967-48c8b964273f?q=80&w=800&auto=format&fit=crop",
		Languages:      []string{"English", "Hindi", "Tamil"},
		Availability:   "Mon-Sat: 4PM - 9PM",
		Certifications: []string{"Child Psychology in Dentistry", "Sedation Dentistry Certified"},
		Bio:            "Dr. Priya Desai specializes in oral health care for infants, children, and adolescents. With a warm and friendly demeanor, she ensures that every child has a positive dental experience. She focuses on preventive care, habit breaking, and painless treatment modalities for kids.",
		Reviews: []models.Review{
			{ID: "r4", PatientName: "Meena L.", Rating: 5, Comment: "Best doctor for kids in Kondapur!", Date: "2023-12-01"},
		},
	},
}

var clinicServices = []models.Service{
	{
		ID:               "root-canal",
		Title:            "Root Canal Treatment",
		Icon:             "Activity",
		ShortDescription: "Save your natural tooth with painless advanced RCT.",
		Description:      "Our Root Canal Treatment is performed using rotary endodontics and microscopic magnification for precision. We focus on saving the natural tooth structure while ensuring a pain-free experience.",
		PriceRange:       "₹3,500 - ₹7,000",
		Benefits:         []string{"Relieves tooth pain immediately", "Saves natural tooth", "Prevents spread of infection"},
		Image:            "https://images.unsplash.com/photo-1606811841689-23dfddce3e95?q=80&w=800&auto=format&fit=crop",
		FAQs: []models.ServiceFAQ{
			{Question: "Is it painful?", Answer: "We use local anesthesia, making the procedure virtually painless."},
			{Question: "How many visits?", Answer: "Most cases are completed in a single sitting."},
		},
	},
	{
		ID:               "aligners",
		Title:            "Aligners & Braces",
		Icon:             "Smile",
		ShortDescription: "Invisible aligners and metal/ceramic braces for a perfect smile.",
		Description:      "Straighten your teeth with the world's best clear aligners or traditional braces. We offer Invisalign, Flash, and customized orthodontic solutions.",
		PriceRange:       "₹30,000 - ₹2,50,000",
		Benefits:         []string{"Improved confidence", "Better oral hygiene", "Corrects bite issues"},
		Image:            "https://images.unsplash.com/photo-1598256989800-fe5f95da9787?q=80&w=800&auto=format&fit=crop",
		FAQs: []models.ServiceFAQ{
			{Question: "Are aligners visible?", Answer: "They are virtually invisible."},
			{Question: "Duration of treatment?", Answer: "Varies from 6 to 18 months depending on complexity."},
		},
	},
	{
		ID:               "implants",
		Title:            "Dental Implants",
		Icon:             "ShieldCheck",
		ShortDescription: "Permanent solution for missing teeth.",
		Description:      "Replace missing teeth with titanium implants that look and feel like natural teeth. We use premium international brands.",
		PriceRange:       "₹25,000 - ₹45,000 per unit",
		Benefits:         []string{"Lifetime durability", "Prevents bone loss", "Natural look and feel"},
		Image:            "https://images.unsplash.com/photo-1551601651-2a8555f1a136?q=80&w=800&auto=format&fit=crop",
		FAQs: []models.ServiceFAQ{
			{Question: "Is surgery safe?", Answer: "Yes, it is a minor surgical procedure with high success rates."},
		},
	},
	{
		ID:               "whitening",
		Title:            "Teeth Whitening",
		Icon:             "Zap",
		ShortDescription: "Brighten your smile in just 45 minutes.",
		Description:      "Professional laser teeth whitening to remove stains from coffee, tea, or smoking.",
		PriceRange:       "₹8,000 - ₹15,000",
		Benefits:         []string{"Instant results", "Safe for enamel", "Boosts confidence"},
		Image:            "https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?q=80&w=800&auto=format&fit=crop",
		FAQs: []models.ServiceFAQ{
			{Question: "Does it damage enamel?", Answer: "No, professional whitening is safe for enamel."},
		},
	},
}

var generalFAQs = []models.FAQ{
	{Question: "Do you accept insurance?", Answer: "Yes, we are empanelled with most major insurance providers."},
	{Question: "Is parking available?", Answer: "Yes, we have ample parking space in front of Harsha Toyota."},
	{Question: "Do you handle emergencies?", Answer: "We have a dedicated team for dental emergencies available during working hours."},
}

var testimonials = []models.Testimonial{
	{
		ID:       1,
		Name:     "Suresh Reddy",
		Location: "Kondapur",
		Comment:  "The best dental experience I've ever had. Dr. Sharma was incredibly gentle and the results of my Invisalign treatment are fantastic.",
		Rating:   5,
		Image:    "https://i.pravatar.cc/150?img=11",
	},
	{
		ID:       2,
		Name:     "Priya Malhotra",
		Location: "Gachibowli",
		Comment:  "I took my 5-year-old for a checkup. The staff made him feel so comfortable that he actually enjoyed the dentist visit!",
		Rating:   5,
		Image:    "https://i.pravatar.cc/150?img=5",
	},
	{
		ID:       3,
		Name:     "Ahmed Khan",
		Location: "Miyapur",
		Comment:  "State of the art facility. I got two implants done by Dr. Reddy and the recovery was smooth. Highly recommend Galaxy Dental.",
		Rating:   5,
		Image:    "https://i.pravatar.cc/150?img=33",
	},
	{
		ID:       4,
		Name:     "Emily Clark",
		Location: "Hitech City",
		Comment:  "Very transparent pricing and excellent hygiene standards. I felt very safe during my root canal treatment.",
		Rating:   4,
		Image:    "https://i.pravatar.cc/150?img=29",
	},
}

var galleryImages = []models.GalleryImage{
	{URL: "https://images.unsplash.com/photo-1629909613654-28e377c37b09?q=80&w=800&auto=format&fit=crop", Title: "Modern Treatment Area"},
	{URL: "https://images.unsplash.com/photo-1609840114035-1c29046a8af3?q=80&w=800&auto=format&fit=crop", Title: "Patient Consultation"},
	{URL: "https://images.unsplash.com/photo-1581594693702-fbdc51b2763b?q=80&w=800&auto=format&fit=crop", Title: "Advanced Equipment"},
	{URL: "https://images.unsplash.com/photo-1445527697940-617d9ccdae9e?q=80&w=800&auto=format&fit=crop", Title: "Dental Implants Model"},
	{URL: "https://images.unsplash.com/photo-1590611936760-eeb9bc598548?q=80&w=800&auto=format&fit=crop", Title: "Sterilized Instruments"},
	{URL: "https://images.unsplash.com/photo-1606811971618-4486d14f3f72?q=80&w=800&auto=format&fit=crop", Title: "Smile Makeover Results"},
}
