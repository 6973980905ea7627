package cli

import (
	"github.com/dmitrijs2005/harifurniture/internal/client/api"
)

func (a *App) notifySuccess(msg string) {
	printlnFn(a.renderer.Success(msg))
}

func (a *App) notifyError(msg string) {
	printlnFn(a.renderer.Error(msg))
}

// notifyFailure reports err using the server's message when there is one.
func (a *App) notifyFailure(err error, fallback string) {
	a.notifyError(api.Message(err, fallback))
}

func (a *App) loginHint() {
	printlnFn("Type 'login' to sign in.")
}
