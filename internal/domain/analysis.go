package domain

// InternshipSuggestion is one recommended internship opening
type InternshipSuggestion struct {
	Title  string `json:"title"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// InterviewQuestion is one likely interview question with preparation hints
type InterviewQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Hint     string `json:"hint,omitempty"`
}

// ResumeAnalysis is the structured feedback produced by the inference
// boundary for one aggregated document batch plus a job description.
type ResumeAnalysis struct {
	Score              int                    `json:"score"`
	FormatIssues       []string               `json:"format_issues"`
	ContentIssues      []string               `json:"content_issues"`
	MissingKeywords    []string               `json:"missing_keywords"`
	Recommendations    []string               `json:"recommendations"`
	Internships        []InternshipSuggestion `json:"internships"`
	InterviewQuestions []InterviewQuestion    `json:"interview_questions"`
}

// AnalysisRequest couples the aggregated resume text with the target role
type AnalysisRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}
