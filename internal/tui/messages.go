package tui

type biometricRegisterMsg struct {
	ok bool
}

type biometricUnlockMsg struct {
	vaultID string
	ok      bool
}

type importDoneMsg struct {
	ok  bool
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type ideasMsg struct {
	text string
	err  error
}

type titleSuggestedMsg struct {
	title string
	err   error
}

type vaultLockedMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
