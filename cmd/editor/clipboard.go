package main

import (
	"encoding/json"

	"golang.design/x/clipboard"

	"github.com/quarternotes/stagecraft/scene"
)

// clipboardMarker tags payloads so paste ignores foreign clipboard text.
const clipboardMarker = "stagecraft/nodes-v1"

type clipboardPayload struct {
	Stagecraft string        `json:"stagecraft"`
	Nodes      []*scene.Node `json:"nodes"`
}

// initClipboard reports whether the system clipboard is usable. Init
// can fail on headless setups; copy and paste are disabled then.
func initClipboard() bool {
	return clipboard.Init() == nil
}

func writeClipboardNodes(nodes []*scene.Node) error {
	data, err := json.Marshal(clipboardPayload{Stagecraft: clipboardMarker, Nodes: nodes})
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func readClipboardNodes() ([]*scene.Node, bool) {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, false
	}
	var p clipboardPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	if p.Stagecraft != clipboardMarker || len(p.Nodes) == 0 {
		return nil, false
	}
	return p.Nodes, true
}
