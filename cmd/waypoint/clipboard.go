package main

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errNoClipboard = errors.New("clipboard: no clipboard utility found")

type systemClipboard struct{}

func (systemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(s)
}
