package config

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(projectID, location string) *Gemini {
	return &Gemini{
		projectID: projectID,
		location:  location,
	}
}

// NewSeedForTest creates a Seed config for testing purposes
func NewSeedForTest(path string) *Seed {
	return &Seed{
		path: path,
	}
}
