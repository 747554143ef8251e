package exam

// DefaultTests is the bootstrap catalog. Question ids are unique within each
// test and every correct index points into its options.
func DefaultTests() []Test {
	return []Test{
		{
			ID:       1,
			Title:    "SSC CGL General Knowledge",
			Type:     "SSC CGL",
			Duration: 60,
			Questions: []Question{
				{
					ID:      1,
					Prompt:  "Who is the current Prime Minister of India?",
					Options: []string{"Narendra Modi", "Amit Shah", "Rajnath Singh", "Nitin Gadkari"},
					Correct: 0,
				},
				{
					ID:      2,
					Prompt:  "What is the capital of Rajasthan?",
					Options: []string{"Jodhpur", "Udaipur", "Jaipur", "Kota"},
					Correct: 2,
				},
				{
					ID:      3,
					Prompt:  "Which planet is known as the Red Planet?",
					Options: []string{"Venus", "Mars", "Jupiter", "Saturn"},
					Correct: 1,
				},
				{
					ID:      4,
					Prompt:  "In which year did India gain independence?",
					Options: []string{"1945", "1946", "1947", "1948"},
					Correct: 2,
				},
				{
					ID:      5,
					Prompt:  "Who wrote the Indian National Anthem?",
					Options: []string{"Bankim Chandra Chattopadhyay", "Rabindranath Tagore", "Sarojini Naidu", "Mahatma Gandhi"},
					Correct: 1,
				},
			},
		},
		{
			ID:       2,
			Title:    "Railway Group D Technical",
			Type:     "Railway",
			Duration: 90,
			Questions: []Question{
				{
					ID:      1,
					Prompt:  "What is the standard gauge of Indian Railways?",
					Options: []string{"1435 mm", "1676 mm", "1000 mm", "762 mm"},
					Correct: 1,
				},
				{
					ID:      2,
					Prompt:  "Which type of current is used in Indian Railways for traction?",
					Options: []string{"AC 25 kV", "DC 1500 V", "Both AC and DC", "AC 50 kV"},
					Correct: 2,
				},
				{
					ID:      3,
					Prompt:  "What does LHB stand for in railway coaches?",
					Options: []string{"Light Heavy Bogies", "Linke Hofmann Busch", "Long Heavy Bogies", "Light Hindustan Bogies"},
					Correct: 1,
				},
				{
					ID:      4,
					Prompt:  "Which is the longest railway tunnel in India?",
					Options: []string{"Pir Panjal Tunnel", "Karbude Tunnel", "Natuwadi Tunnel", "Rohtang Tunnel"},
					Correct: 0,
				},
				{
					ID:      5,
					Prompt:  "What is the maximum speed of Vande Bharat Express?",
					Options: []string{"160 km/h", "180 km/h", "200 km/h", "220 km/h"},
					Correct: 1,
				},
			},
		},
	}
}
