package tailoring

// The backend is instructed to answer with this exact JSON shape:
// {
//   "executive_summary": ["string"],
//   "personal_info": {"name","email","phone","linkedin","github","location"},
//   "skills": ["string"],
//   "experience": [{"company","role","duration","location","points":["string"]}],
//   "projects": [{"title","role","duration","points":["string"]}],
//   "education": [{"school","degree","duration","location"}]
// }

// TailoredResume is the validated tailoring result. Every field has a
// defined empty default so the renderer never sees an ambiguous state.
type TailoredResume struct {
	ExecutiveSummary []string          `json:"executive_summary"`
	PersonalInfo     PersonalInfo      `json:"personal_info"`
	Skills           []string          `json:"skills"`
	Experience       []ExperienceEntry `json:"experience"`
	Projects         []ProjectEntry    `json:"projects"`
	Education        []EducationEntry  `json:"education"`
}

// PersonalInfo holds the contact block.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Location string `json:"location"`
}

// ExperienceEntry is one job in the work history.
type ExperienceEntry struct {
	Company  string   `json:"company"`
	Role     string   `json:"role"`
	Duration string   `json:"duration"`
	Location string   `json:"location"`
	Points   []string `json:"points"`
}

// ProjectEntry is one project.
type ProjectEntry struct {
	Title    string   `json:"title"`
	Role     string   `json:"role"`
	Duration string   `json:"duration"`
	Points   []string `json:"points"`
}

// EducationEntry is one education record.
type EducationEntry struct {
	School   string `json:"school"`
	Degree   string `json:"degree"`
	Duration string `json:"duration"`
	Location string `json:"location"`
}

func emptyResume() TailoredResume {
	return TailoredResume{
		ExecutiveSummary: []string{},
		Skills:           []string{},
		Experience:       []ExperienceEntry{},
		Projects:         []ProjectEntry{},
		Education:        []EducationEntry{},
	}
}
