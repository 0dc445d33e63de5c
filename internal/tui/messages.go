package tui

type loadDoneMsg struct {
	err error
}

type submitDoneMsg struct {
	editing bool
	err     error
}

type deleteDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
