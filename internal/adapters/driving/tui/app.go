package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/skeleton"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/views/recommendations"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/views/results"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/logger"
)

// User-facing texts.
const (
	msgEnterSearchTerm       = "Please enter a search term"
	msgSelectMediaType       = "Please select a media type"
	msgSearchFailed          = "Sorry, there was a problem with your search. Please try again later."
	msgRecommendationsFailed = "Sorry, there was a problem getting recommendations. Please try again later."

	statusFindingMatches = "Finding perfect matches"
	statusFindingNew     = "Finding new recommendations"
)

// Lines taken by the header, form, status bar and spacing.
const chromeLines = 10

// App is the search-and-recommend controller following the Elm architecture.
// The rendered region below the form is derived entirely from state and the
// payload of that state.
type App struct {
	ports    *Ports
	ctx      context.Context
	settings domain.Settings

	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView  *search.View
	resultsView *results.View
	recsView    *recommendations.View
	statusbar   *status.Bar

	state domain.UIState
	focus messages.Focus

	// generation identifies the current request. Responses carrying any
	// other generation are stale and dropped.
	generation uint64
	cancel     context.CancelFunc

	// lastQuery is the query behind the current results.
	lastQuery domain.SearchQuery

	// errMessage is shown in the region in StateError.
	errMessage string
	err        error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultSettings()
	if ports.Settings != nil {
		loaded, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("Using default display settings: %v", err)
		} else {
			settings = loaded
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		settings:    settings,
		styles:      s,
		keymap:      km,
		searchView:  search.NewView(s, km, ports.Catalog.MediaTypes()),
		resultsView: results.NewView(s, km, settings.PlaceholderImage),
		recsView:    recommendations.NewView(s, km, settings.PlaceholderImage),
		statusbar:   status.NewBar(s, km),
		state:       domain.StateIdle,
		focus:       messages.FocusForm,
	}, nil
}

// WithContext sets the context requests are derived from.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("medley"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.SearchSubmitted:
		return a, a.submitSearch(msg)

	case messages.ItemSelected:
		return a, a.selectItem(msg.ItemID)

	case messages.BackToSearch:
		return a, a.backToSearch()

	case messages.SearchCompleted:
		a.handleSearchCompleted(msg)
		return a, nil

	case messages.RecommendationsLoaded:
		a.handleRecommendationsLoaded(msg)
		return a, nil

	case messages.FocusChanged:
		a.setFocus(msg.Focus)
		return a, nil

	case spinner.TickMsg:
		a.statusbar, cmd = a.statusbar.Update(msg)
		return a, cmd

	case messages.Quit:
		a.supersede()
		return a, tea.Quit
	}

	// Cursor blink and other component messages.
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch {
	case keymap.Matches(key, a.keymap.Quit):
		a.supersede()
		return tea.Quit
	case keymap.Matches(key, a.keymap.ToggleFocus):
		if a.focus == messages.FocusForm {
			a.setFocus(messages.FocusRegion)
		} else {
			a.setFocus(messages.FocusForm)
		}
		return nil
	}

	var cmd tea.Cmd
	if a.focus == messages.FocusForm {
		a.searchView, cmd = a.searchView.Update(msg)
		return cmd
	}

	switch a.state {
	case domain.StateShowingResults:
		if key == "esc" {
			a.setFocus(messages.FocusForm)
			return nil
		}
		a.resultsView, cmd = a.resultsView.Update(msg)
	case domain.StateShowingRecommendations:
		a.recsView, cmd = a.recsView.Update(msg)
	case domain.StateIdle, domain.StateSearching, domain.StateShowingResultsEmpty,
		domain.StateFetchingRecommendations, domain.StateError:
		// Nothing focusable in the region.
	}
	return cmd
}

// submitSearch validates the form and starts a search.
func (a *App) submitSearch(msg messages.SearchSubmitted) tea.Cmd {
	query := domain.NewSearchQuery(msg.Query, msg.Type)

	if err := query.Validate(a.ports.Catalog.MediaTypes()); err != nil {
		a.supersede()
		logger.Debug("Search form rejected: %v", err)
		text := validationMessage(err)
		a.fail(text, err)
		a.statusbar.SetInfo(text)
		return nil
	}

	gen, ctx := a.begin()
	a.lastQuery = query
	a.err = nil
	a.setState(domain.StateSearching)
	spin := a.statusbar.StartLoading(fmt.Sprintf(`Searching for %s: "%s"`, query.Type, query.Text))

	catalog := a.ports.Catalog
	return tea.Batch(spin, func() tea.Msg {
		items, err := catalog.Search(ctx, query)
		return messages.SearchCompleted{Generation: gen, Query: query, Items: items, Err: err}
	})
}

// selectItem requests recommendations for itemID. Chained requests come
// from a recommendation card rather than a search result.
func (a *App) selectItem(itemID string) tea.Cmd {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" || !a.state.CanSelect() {
		logger.Debug("Ignoring selection of %q in state %s", itemID, a.state)
		return nil
	}

	chained := a.state == domain.StateShowingRecommendations
	gen, ctx := a.begin()

	a.err = nil
	a.setState(domain.StateFetchingRecommendations)
	text := statusFindingMatches
	if chained {
		text = statusFindingNew
	}
	spin := a.statusbar.StartLoading(text)

	catalog := a.ports.Catalog
	return tea.Batch(spin, func() tea.Msg {
		recs, err := catalog.Recommend(ctx, itemID)
		return messages.RecommendationsLoaded{
			Generation: gen,
			ItemID:     itemID,
			Chained:    chained,
			Recs:       recs,
			Err:        err,
		}
	})
}

// backToSearch resets to the idle form without a network call.
func (a *App) backToSearch() tea.Cmd {
	a.supersede()
	a.err = nil
	a.errMessage = ""
	a.resultsView.Clear()
	a.recsView.Clear()
	a.statusbar.Clear()
	a.setState(domain.StateIdle)
	a.setFocus(messages.FocusForm)
	return nil
}

func (a *App) handleSearchCompleted(msg messages.SearchCompleted) {
	if a.stale(msg.Generation, "search") {
		return
	}
	a.cancelRequest()

	if msg.Err != nil {
		if errors.Is(msg.Err, domain.ErrInvalidInput) {
			a.fail(validationMessage(msg.Err), msg.Err)
		} else {
			a.fail(msgSearchFailed, msg.Err)
		}
		a.statusbar.SetError(msg.Err)
		return
	}

	a.statusbar.SetInfo(fmt.Sprintf("Found %d results", len(msg.Items)))
	if len(msg.Items) == 0 {
		a.setState(domain.StateShowingResultsEmpty)
		return
	}
	a.resultsView.SetItems(msg.Items)
	a.setState(domain.StateShowingResults)
	a.setFocus(messages.FocusRegion)
}

func (a *App) handleRecommendationsLoaded(msg messages.RecommendationsLoaded) {
	if a.stale(msg.Generation, "recommendations") {
		return
	}
	a.cancelRequest()

	if msg.Err != nil {
		a.fail(msgRecommendationsFailed, msg.Err)
		a.statusbar.SetError(msg.Err)
		return
	}

	a.recsView.SetRecommendations(msg.Recs)
	n := a.recsView.Count()
	if msg.Chained {
		a.statusbar.SetInfo(fmt.Sprintf("Found %d new recommendations", n))
	} else {
		a.statusbar.SetInfo(fmt.Sprintf("Found %d recommendations based on your selection", n))
	}
	a.setState(domain.StateShowingRecommendations)
	a.setFocus(messages.FocusRegion)
}

// begin supersedes any outstanding request and returns the new generation
// with a context that is cancelled when the next action supersedes it.
func (a *App) begin() (uint64, context.Context) {
	gen := a.supersede()
	ctx, cancel := context.WithCancel(a.ctx)
	a.cancel = cancel
	return gen, ctx
}

// supersede invalidates the outstanding request, if any.
func (a *App) supersede() uint64 {
	a.cancelRequest()
	a.generation++
	return a.generation
}

func (a *App) cancelRequest() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *App) stale(gen uint64, what string) bool {
	if gen == a.generation {
		return false
	}
	logger.Debug("Discarding stale %s response (generation %d, current %d)", what, gen, a.generation)
	return true
}

func (a *App) fail(text string, err error) {
	a.errMessage = text
	a.err = err
	a.setState(domain.StateError)
}

func (a *App) setState(state domain.UIState) {
	a.state = state
	if !state.CanSelect() && a.focus == messages.FocusRegion {
		a.setFocus(messages.FocusForm)
	}
	a.updateHints()
}

// setFocus moves focus. The region only takes focus while it has cards.
func (a *App) setFocus(focus messages.Focus) {
	if focus == messages.FocusRegion && !a.state.CanSelect() {
		focus = messages.FocusForm
	}
	a.focus = focus

	if focus == messages.FocusForm {
		a.searchView.Focus()
	} else {
		a.searchView.Blur()
	}
	inRegion := focus == messages.FocusRegion
	a.resultsView.SetFocused(inRegion)
	a.recsView.SetFocused(inRegion)
	a.updateHints()
}

func (a *App) updateHints() {
	switch {
	case a.focus == messages.FocusForm:
		a.statusbar.SetHints(a.keymap.FormHelp())
	case a.state == domain.StateShowingRecommendations:
		a.statusbar.SetHints(a.keymap.RecommendationsHelp())
	default:
		a.statusbar.SetHints(a.keymap.ResultsHelp())
	}
}

func validationMessage(err error) string {
	if errors.Is(err, domain.ErrEmptyQuery) {
		return msgEnterSearchTerm
	}
	return msgSelectMediaType
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{
		a.header(),
		a.searchView.View(),
		"",
	}
	if region := a.Region(); region != "" {
		sections = append(sections, region, "")
	}
	sections = append(sections, a.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) header() string {
	title := a.styles.Title.Render("medley")
	if a.settings.Profile == domain.ProfileExperimental {
		title += " " + a.styles.Warning.Render("experimental")
	}
	return title
}

// Region renders the area below the form. Exactly one kind of content is
// shown per state.
func (a *App) Region() string {
	switch a.state {
	case domain.StateSearching:
		return skeleton.Results(a.styles, a.regionWidth())
	case domain.StateShowingResults:
		return a.resultsView.View()
	case domain.StateShowingResultsEmpty:
		return a.resultsView.EmptyView(a.lastQuery.Type)
	case domain.StateFetchingRecommendations:
		return skeleton.Recommendations(a.styles, a.regionWidth())
	case domain.StateShowingRecommendations:
		return a.recsView.View()
	case domain.StateError:
		return a.styles.Error.Render(a.errMessage)
	case domain.StateIdle:
	}
	return ""
}

func (a *App) regionWidth() int {
	if a.width > 100 {
		return 100
	}
	return a.width
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.cancelRequest()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		return nil
	}
	return err
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	regionHeight := height - chromeLines
	a.searchView.SetDimensions(width, height)
	a.resultsView.SetDimensions(a.regionWidth(), regionHeight)
	a.recsView.SetDimensions(a.regionWidth(), regionHeight)
	a.statusbar.SetWidth(width)
}

// State returns the current interaction state.
func (a *App) State() domain.UIState {
	return a.state
}

// Focus returns which part of the screen receives keys.
func (a *App) Focus() messages.Focus {
	return a.focus
}

// Generation returns the generation of the latest request.
func (a *App) Generation() uint64 {
	return a.generation
}

// Status returns the status line text.
func (a *App) Status() string {
	return a.statusbar.Message()
}

// ErrorMessage returns the message shown in StateError.
func (a *App) ErrorMessage() string {
	return a.errMessage
}

// Err returns the error behind the current StateError, if any.
func (a *App) Err() error {
	return a.err
}

// Results returns the items of the results grid.
func (a *App) Results() []domain.ResultItem {
	return a.resultsView.Items()
}

// Recommendations returns what the recommendations view shows.
func (a *App) Recommendations() *domain.Recommendations {
	return a.recsView.Recommendations()
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}
