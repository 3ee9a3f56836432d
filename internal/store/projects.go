package store

import (
	"sync"

	"github.com/emr-dev1/resume-matcher/internal/matcher"
	"go.uber.org/zap"
)

// Projects is the canonical cache of project, position and resume
// collections. Every mutating operation is backed by an API call and
// fails hard: the error propagates and the cache stays untouched.
type Projects struct {
	mu     sync.Mutex
	client *matcher.Client
	logger *zap.Logger

	projects []*matcher.Project
	selected int

	positions map[int]*matcher.Positions
	resumes   map[int]*matcher.Resumes
}

func NewProjects(client *matcher.Client, logger *zap.Logger) *Projects {
	return &Projects{
		client:    client,
		logger:    logger,
		positions: make(map[int]*matcher.Positions),
		resumes:   make(map[int]*matcher.Resumes),
	}
}

// Load replaces the project collection from the backend. On error the
// previously loaded list stays visible.
func (p *Projects) Load() error {
	projects, err := p.client.ListProjects()
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.projects = projects.Items

	return nil
}

func (p *Projects) All() []*matcher.Project {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*matcher.Project(nil), p.projects...)
}

func (p *Projects) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.projects)
}

// Create creates the project on the backend and prepends it to the
// collection.
func (p *Projects) Create(name string) (*matcher.Project, error) {
	project, err := p.client.CreateProject(name)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.projects = append([]*matcher.Project{project}, p.projects...)

	return project, nil
}

// Remove deletes the project on the backend, drops it from the
// collection and clears the selection when it was selected.
func (p *Projects) Remove(id int) error {
	if err := p.client.DeleteProject(id); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	kept := make([]*matcher.Project, 0, len(p.projects))
	for _, project := range p.projects {
		if project.ID != id {
			kept = append(kept, project)
		}
	}
	p.projects = kept

	if p.selected == id {
		p.selected = 0
	}

	delete(p.positions, id)
	delete(p.resumes, id)

	return nil
}

// Get fetches a single project and folds the fresh fields into the
// cached entry in place, preserving identity.
func (p *Projects) Get(id int) (*matcher.Project, error) {
	fresh, err := p.client.GetProject(id)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, project := range p.projects {
		if project.ID == id {
			project.Name = fresh.Name
			project.Status = fresh.Status
			project.CreatedAt = fresh.CreatedAt
			return project, nil
		}
	}

	p.projects = append(p.projects, fresh)
	return fresh, nil
}

func (p *Projects) FindByID(id int) *matcher.Project {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.findLocked(id)
}

// SetStatus updates a cached project's status without changing its
// identity or creating a duplicate entry.
func (p *Projects) SetStatus(id int, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if project := p.findLocked(id); project != nil {
		project.Status = status
	}
}

func (p *Projects) Select(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.selected = id
}

func (p *Projects) Selected() *matcher.Project {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.selected == 0 {
		return nil
	}
	return p.findLocked(p.selected)
}

func (p *Projects) ClearSelection() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.selected = 0
}

// LoadPositions fetches and caches the project's positions.
func (p *Projects) LoadPositions(projectID int) (*matcher.Positions, error) {
	positions, err := p.client.GetPositions(projectID)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.positions[projectID] = positions

	return positions, nil
}

// Positions returns the cached positions, or nil when never loaded.
func (p *Projects) Positions(projectID int) *matcher.Positions {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.positions[projectID]
}

// LoadResumes fetches and caches the project's resumes.
func (p *Projects) LoadResumes(projectID int) (*matcher.Resumes, error) {
	resumes, err := p.client.GetResumes(projectID)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.resumes[projectID] = resumes

	return resumes, nil
}

// Resumes returns the cached resumes, or nil when never loaded.
func (p *Projects) Resumes(projectID int) *matcher.Resumes {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.resumes[projectID]
}

// Invalidate drops the cached sub-collections for a project so the next
// access reloads them. Used after a processing job completes.
func (p *Projects) Invalidate(projectID int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.positions, projectID)
	delete(p.resumes, projectID)
}

func (p *Projects) findLocked(id int) *matcher.Project {
	for _, project := range p.projects {
		if project.ID == id {
			return project
		}
	}
	return nil
}
