package server

import (
	"github.com/pkg/browser"
)

// openBrowser opens url in the platform's default browser.
func openBrowser(url string) error {
	return browser.OpenURL(url)
}
