package main

import (
	"log"

	"golang.design/x/clipboard"
)

// Clipboard copies text to the system clipboard when one is available.
type Clipboard struct {
	ready bool
}

func NewClipboard() *Clipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
		return &Clipboard{}
	}
	return &Clipboard{ready: true}
}

// CopyText reports false when there is no clipboard to write to.
func (c *Clipboard) CopyText(s string) bool {
	if c == nil || !c.ready {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}
