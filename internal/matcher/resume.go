package matcher

import "fmt"

const (
	ResumeStatusPending    = "pending"
	ResumeStatusProcessing = "processing"
	ResumeStatusProcessed  = "processed"
	ResumeStatusFailed     = "failed"
)

type Resumes struct {
	Items []*Resume
}

// Resume is an uploaded candidate document. ExtractedText and
// ParsedSections are populated only by the detail endpoint; list
// responses carry the summary fields.
type Resume struct {
	ID             int               `json:"id"`
	ProjectID      int               `json:"project_id"`
	Filename       string            `json:"filename"`
	ExtractedText  string            `json:"extracted_text"`
	ParsedSections map[string]string `json:"parsed_sections"`
	CharCount      int               `json:"char_count"`
	Status         string            `json:"status"`
	CreatedAt      string            `json:"created_at"`
}

// ResumeUploadResult reports per-file outcomes of a batch upload.
type ResumeUploadResult struct {
	Message string              `json:"message"`
	Results []*FileUploadStatus `json:"results"`
}

type FileUploadStatus struct {
	Filename   string `json:"filename"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	TextLength int    `json:"text_length"`
}

func (c *Client) UploadResumes(projectID int, files []FilePart) (*ResumeUploadResult, error) {
	parts := make([]FilePart, 0, len(files))
	for _, f := range files {
		f.Field = "files"
		parts = append(parts, f)
	}

	var result *ResumeUploadResult
	path := fmt.Sprintf("/api/projects/%d/resumes", projectID)
	if err := c.postMultipart(path, parts, nil, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) GetResumes(projectID int) (*Resumes, error) {
	var items []*Resume
	if err := c.getJSON(fmt.Sprintf("/api/projects/%d/resumes", projectID), nil, &items); err != nil {
		return nil, err
	}

	return &Resumes{Items: items}, nil
}

// GetResumeDetails fetches the full resume record including extracted
// text and, for section-based projects, the parsed sections.
func (c *Client) GetResumeDetails(projectID, resumeID int) (*Resume, error) {
	var resume *Resume
	path := fmt.Sprintf("/api/projects/%d/resumes/%d", projectID, resumeID)
	if err := c.getJSON(path, nil, &resume); err != nil {
		return nil, err
	}

	return resume, nil
}

func (c *Client) ReparseResume(projectID, resumeID int) error {
	path := fmt.Sprintf("/api/projects/%d/resumes/%d/reparse", projectID, resumeID)
	return c.postJSON(path, map[string]string{}, nil)
}

func (r *Resumes) Len() int {
	return len(r.Items)
}

func (r *Resumes) FindByID(id int) *Resume {
	for _, resume := range r.Items {
		if resume.ID == id {
			return resume
		}
	}
	return nil
}

func (r *Resumes) Filenames() []string {
	names := make([]string, 0, len(r.Items))
	for _, resume := range r.Items {
		names = append(names, resume.Filename)
	}
	return names
}
