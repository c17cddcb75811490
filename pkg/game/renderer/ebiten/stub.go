//go:build !ebiten

package ebiten

import "errors"

// ErrNoWindow is returned by headless builds when asked to open a window.
var ErrNoWindow = errors.New("ebiten: built without the ebiten tag")
