package matcher

import "fmt"

const (
	ParsingMethodFullText     = "full_text"
	ParsingMethodSectionBased = "section_based"
)

// ParsingConfig controls how the backend extracts text from uploaded
// resumes for a project.
type ParsingConfig struct {
	ParsingMethod     string   `json:"parsing_method"`
	UseDefaultHeaders bool     `json:"use_default_headers"`
	SectionHeaders    []string `json:"section_headers"`
	FilterStrings     []string `json:"filter_strings"`
}

func (c *Client) GetParsingConfig(projectID int) (*ParsingConfig, error) {
	var config *ParsingConfig
	if err := c.getJSON(parsingConfigPath(projectID), nil, &config); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Client) CreateParsingConfig(projectID int, config *ParsingConfig) (*ParsingConfig, error) {
	var created *ParsingConfig
	if err := c.postJSON(parsingConfigPath(projectID), config, &created); err != nil {
		return nil, err
	}

	return created, nil
}

func (c *Client) UpdateParsingConfig(projectID int, config *ParsingConfig) (*ParsingConfig, error) {
	var updated *ParsingConfig
	if err := c.putJSON(parsingConfigPath(projectID), config, &updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (c *Client) DeleteParsingConfig(projectID int) error {
	return c.delete(parsingConfigPath(projectID), nil)
}

// GetDefaultSections returns the backend's built-in section header list
// used when UseDefaultHeaders is set.
func (c *Client) GetDefaultSections() ([]string, error) {
	var sections []string
	if err := c.getJSON("/api/parsing-config/default-sections", nil, &sections); err != nil {
		return nil, err
	}

	return sections, nil
}

func parsingConfigPath(projectID int) string {
	return fmt.Sprintf("/api/projects/%d/parsing-config", projectID)
}
