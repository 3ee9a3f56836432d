package matcher

import "fmt"

type Projects struct {
	Items []*Project
}

type Project struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func (c *Client) ListProjects() (*Projects, error) {
	var items []*Project
	if err := c.getJSON("/api/projects", nil, &items); err != nil {
		return nil, err
	}

	return &Projects{Items: items}, nil
}

func (c *Client) CreateProject(name string) (*Project, error) {
	var project *Project
	body := map[string]string{"name": name}
	if err := c.postJSON("/api/projects", body, &project); err != nil {
		return nil, err
	}

	return project, nil
}

func (c *Client) GetProject(id int) (*Project, error) {
	var project *Project
	if err := c.getJSON(fmt.Sprintf("/api/projects/%d", id), nil, &project); err != nil {
		return nil, err
	}

	return project, nil
}

func (c *Client) DeleteProject(id int) error {
	return c.delete(fmt.Sprintf("/api/projects/%d", id), nil)
}

func (p *Projects) Len() int {
	return len(p.Items)
}

func (p *Projects) FindByID(id int) *Project {
	for _, project := range p.Items {
		if project.ID == id {
			return project
		}
	}
	return nil
}

func (p *Projects) Names() []string {
	names := make([]string, 0, len(p.Items))
	for _, project := range p.Items {
		names = append(names, project.Name)
	}
	return names
}
