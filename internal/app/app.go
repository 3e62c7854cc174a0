// internal/app/app.go
package app

import (
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/moo/internal/client"
	"github.com/llehouerou/moo/internal/config"
	"github.com/llehouerou/moo/internal/keymap"
	pagelayout "github.com/llehouerou/moo/internal/layout"
	"github.com/llehouerou/moo/internal/notify"
	"github.com/llehouerou/moo/internal/page"
	"github.com/llehouerou/moo/internal/player"
	"github.com/llehouerou/moo/internal/state"
	"github.com/llehouerou/moo/internal/ui/cover"
	"github.com/llehouerou/moo/internal/ui/helpbindings"
	"github.com/llehouerou/moo/internal/ui/textinput"
	"github.com/llehouerou/moo/internal/weather"
)

// Deps are the collaborators of the application model. Notifier, Weather
// and Cover may be nil.
type Deps struct {
	Config   *config.Config
	Client   *client.Client
	Player   player.Interface
	Cache    *player.Cache
	State    state.Interface
	Notifier notify.Notifier
	Weather  *weather.Client
	Cover    *cover.Renderer
	Cell     pagelayout.CellSize
	Logger   *slog.Logger
	Now      func() time.Time
}

// Model is the root application model. Each loaded page gets its own
// page.Controller; everything else lives as long as the program.
type Model struct {
	cfg     *config.Config
	client  *client.Client
	player  player.Interface
	cache   *player.Cache
	state   state.Interface
	tracker *notify.Tracker
	weather *weather.Client
	cover   *cover.Renderer
	cell    pagelayout.CellSize
	log     *slog.Logger
	now     func() time.Time
	opts    page.Options

	startPath string

	// current page
	page    *client.Page
	ctl     *page.Controller
	class   pagelayout.Class
	pageSeq int
	playSeq *atomic.Int64 // pageSeq of the page whose track the player holds
	track   string        // cached file of the page's audio
	art     string // cached cover next to it

	// page being loaded
	loadSeq  int
	loading  string
	spinner  spinner.Model
	spinning bool

	prompt textinput.Model
	keys   helpbindings.Model

	dark         bool
	status       string
	weatherText  string
	cacheDesc    string
	coverPending string // terminal sequence still to be written
	width        int
	height       int
}

// New creates the application model. The first page is the saved one when
// resuming is enabled, the configured start page otherwise.
func New(d Deps) Model {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Cell == (pagelayout.CellSize{}) {
		d.Cell = pagelayout.DefaultCellSize
	}
	lc := d.Config.GetLayout()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		cfg:       d.Config,
		client:    d.Client,
		player:    d.Player,
		cache:     d.Cache,
		state:     d.State,
		tracker:   notify.NewTracker(d.Notifier),
		weather:   d.Weather,
		cover:     d.Cover,
		cell:      d.Cell,
		log:       d.Logger,
		now:       d.Now,
		startPath: d.Config.GetStartPath(),
		playSeq:   new(atomic.Int64),
		spinner:   sp,
		prompt:    textinput.New(),
		keys:      helpbindings.New(keymap.Bindings),
		opts: page.Options{
			Glow: d.Config.GlowEnabled(),
			Breakpoints: pagelayout.Breakpoints{
				SmallWidth: lc.SmallWidth,
				ThinHeight: lc.ThinHeight,
			},
			Bindings: keymap.Bindings,
		},
	}
	m.ctl = page.New(page.Context{}, m.opts)
	m.restore()
	if m.cache != nil {
		m.cacheDesc = m.cache.Describe()
	}

	// the first load is issued by Init
	m.loadSeq = 1
	m.loading = m.startPath
	m.spinning = true
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCmd(m.loadSeq, m.startPath),
		m.spinner.Tick,
		ClockTickCmd(),
		m.fetchWeatherCmd(),
		m.watchFinishedCmd(),
		WatchStderr(),
	)
}

// serverHost is what the header shows for the server.
func (m Model) serverHost() string {
	u, err := url.Parse(m.client.Base())
	if err != nil || u.Host == "" {
		return m.client.Base()
	}
	return u.Host
}
