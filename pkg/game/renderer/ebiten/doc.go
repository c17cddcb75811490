// Package ebiten runs the agent menu in an Ebiten window: it polls keyboard,
// mouse and gamepad into input.State and draws the menu's canvas calls.
// Without the ebiten build tag only ErrNoWindow exists.
package ebiten
