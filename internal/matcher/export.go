package matcher

import (
	"fmt"
	"io"
	"net/url"
	"os"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

// ExportMatches streams the project's match export in the given format
// to w.
func (c *Client) ExportMatches(projectID int, format string, w io.Writer) error {
	if format != ExportFormatCSV && format != ExportFormatXLSX {
		return fmt.Errorf("unsupported export format: %s", format)
	}

	q := url.Values{}
	q.Set("format", format)

	return c.getStream(fmt.Sprintf("/api/projects/%d/export", projectID), q, w)
}

// ExportMatchesToFile writes the export to path, or to a temp file when
// path is empty, and returns the file name.
func (c *Client) ExportMatchesToFile(projectID int, format, path string) (string, error) {
	var file *os.File
	var err error

	if path == "" {
		file, err = os.CreateTemp("", fmt.Sprintf("matches_project_%d_*.%s", projectID, format))
	} else {
		file, err = os.Create(path)
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := c.ExportMatches(projectID, format, file); err != nil {
		os.Remove(file.Name())
		return "", err
	}

	return file.Name(), nil
}
