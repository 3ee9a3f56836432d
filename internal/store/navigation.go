package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type View string

const (
	ViewDashboard     View = "dashboard"
	ViewProjectDetail View = "project-detail"
	ViewSettings      View = "settings"
)

type Tab string

const (
	TabOverview  Tab = "overview"
	TabPositions Tab = "positions"
	TabResumes   Tab = "resumes"
	TabMatches   Tab = "matches"
)

// Notification is a user-facing message queued by the UI layer.
type Notification struct {
	ID        string
	Type      string
	Title     string
	Message   string
	Timestamp time.Time
}

// Navigation tracks which screen and sub-tab is active and lazily
// triggers data loads the first time a tab becomes active.
type Navigation struct {
	mu     sync.Mutex
	logger *zap.Logger

	view View
	tab  Tab

	loaders map[Tab]func() error
	loaded  map[Tab]bool

	notifications []*Notification
}

func NewNavigation(logger *zap.Logger) *Navigation {
	return &Navigation{
		logger:  logger,
		view:    ViewDashboard,
		tab:     TabOverview,
		loaders: make(map[Tab]func() error),
		loaded:  make(map[Tab]bool),
	}
}

// RegisterLoader attaches the data load to run when tab first becomes
// active.
func (n *Navigation) RegisterLoader(tab Tab, load func() error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.loaders[tab] = load
}

func (n *Navigation) SetView(view View) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.view = view
}

func (n *Navigation) View() View {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.view
}

func (n *Navigation) ActiveTab() Tab {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.tab
}

// ActivateTab switches the active tab. The registered loader runs on
// the first successful activation; a failed load leaves the tab active
// with its previous data and will be retried on the next activation.
func (n *Navigation) ActivateTab(tab Tab) error {
	n.mu.Lock()
	n.tab = tab
	load := n.loaders[tab]
	alreadyLoaded := n.loaded[tab]
	n.mu.Unlock()

	if load == nil || alreadyLoaded {
		return nil
	}

	if err := load(); err != nil {
		if n.logger != nil {
			n.logger.Warn("tab data load failed", zap.String("tab", string(tab)), zap.Error(err))
		}
		return err
	}

	n.mu.Lock()
	n.loaded[tab] = true
	n.mu.Unlock()

	return nil
}

// ResetTabs forgets which tabs have loaded, e.g. when the selected
// project changes.
func (n *Navigation) ResetTabs() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.loaded = make(map[Tab]bool)
	n.tab = TabOverview
}

// Notify queues a notification and returns its identifier.
func (n *Navigation) Notify(kind, title, message string) string {
	note := &Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, note)

	return note.ID
}

func (n *Navigation) RemoveNotification(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	kept := make([]*Notification, 0, len(n.notifications))
	for _, note := range n.notifications {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	n.notifications = kept
}

func (n *Navigation) Notifications() []*Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]*Notification(nil), n.notifications...)
}

func (n *Navigation) ClearNotifications() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.notifications = nil
}
