package state

// Interface is the state store used by the app.
type Interface interface {
	GetPage() (*PageState, error)
	SavePage(state PageState)
	AddHistory(path, title string) error
	History(limit int) ([]HistoryEntry, error)
	Close() error
}

var _ Interface = (*Manager)(nil)
