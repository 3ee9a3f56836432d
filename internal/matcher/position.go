package matcher

import (
	"encoding/json"
	"fmt"
	"io"
)

type Positions struct {
	Items []*Position
}

// Position is a job opening with an arbitrary column schema decided at
// upload time. OriginalData holds the raw row; EmbeddingColumns were
// chosen for similarity scoring, OutputColumns for display.
type Position struct {
	ID               int            `json:"id"`
	ProjectID        int            `json:"project_id"`
	OriginalData     map[string]any `json:"original_data"`
	EmbeddingColumns []string       `json:"embedding_columns"`
	OutputColumns    []string       `json:"output_columns"`
	CreatedAt        string         `json:"created_at"`
}

// UploadPreview is returned for an uploaded positions sheet before the
// column choice is confirmed.
type UploadPreview struct {
	Columns  []string         `json:"columns"`
	Preview  []map[string]any `json:"preview"`
	RowCount int              `json:"row_count"`
}

type ConfirmResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (c *Client) UploadPositions(projectID int, filename string, r io.Reader) (*UploadPreview, error) {
	var preview *UploadPreview
	files := []FilePart{{Field: "file", Filename: filename, Reader: r}}

	path := fmt.Sprintf("/api/projects/%d/positions", projectID)
	if err := c.postMultipart(path, files, nil, &preview); err != nil {
		return nil, err
	}

	return preview, nil
}

func (c *Client) ConfirmPositions(projectID int, filename string, r io.Reader, embeddingColumns, outputColumns []string) (*ConfirmResult, error) {
	embedding, err := json.Marshal(embeddingColumns)
	if err != nil {
		return nil, err
	}

	output, err := json.Marshal(outputColumns)
	if err != nil {
		return nil, err
	}

	var result *ConfirmResult
	files := []FilePart{{Field: "file", Filename: filename, Reader: r}}
	fields := map[string]string{
		"embedding_columns": string(embedding),
		"output_columns":    string(output),
	}

	path := fmt.Sprintf("/api/projects/%d/positions/confirm", projectID)
	if err := c.postMultipart(path, files, fields, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) GetPositions(projectID int) (*Positions, error) {
	var items []*Position
	if err := c.getJSON(fmt.Sprintf("/api/projects/%d/positions", projectID), nil, &items); err != nil {
		return nil, err
	}

	return &Positions{Items: items}, nil
}

func (p *Positions) Len() int {
	return len(p.Items)
}

func (p *Positions) FindByID(id int) *Position {
	for _, position := range p.Items {
		if position.ID == id {
			return position
		}
	}
	return nil
}

// Title picks a human-readable label out of the schema-less payload,
// trying the usual column names before falling back to the identifier.
func (p *Position) Title() string {
	for _, key := range []string{"title", "job_title", "position"} {
		if v, ok := p.OriginalData[key]; ok {
			if s := valueAsString(v); s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("Position %d", p.ID)
}
