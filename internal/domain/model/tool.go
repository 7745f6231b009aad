// Package model defines the core domain entities for the savings service.
package model

// Tool is a business-software product offered as a toggleable option in the catalog.
//
// @Description Catalog tool and whether it counts toward the active set
// @Example {"id": 1, "name": "Slack", "img": "/tools/slack.svg", "checked": true}
type Tool struct {
	// ID is the stable catalog key
	ID int `json:"id" yaml:"id" example:"1"`
	// Name is the display label
	Name string `json:"name" yaml:"name" example:"Slack"`
	// Img is an asset reference, opaque to the calculator
	Img string `json:"img" yaml:"img" example:"/tools/slack.svg"`
	// Checked marks the tool as part of the active set
	Checked bool `json:"checked" yaml:"checked" example:"true"`
}

// CloneTools returns a copy of tools that shares no backing array with the input.
func CloneTools(tools []Tool) []Tool {
	if tools == nil {
		return nil
	}
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// CountChecked returns the number of tools with Checked set.
func CountChecked(tools []Tool) int {
	n := 0
	for _, t := range tools {
		if t.Checked {
			n++
		}
	}
	return n
}

// ToggleOutcome reports the result of a tool toggle together with the
// active count of the resulting state.
type ToggleOutcome struct {
	// Accepted is false when the selection floor rejected the toggle.
	Accepted    bool `json:"accepted" example:"true"`
	ActiveCount int  `json:"active_tool_count" example:"4"`
}
