package mcp

// ShiftInput is the input for the shift tool.
type ShiftInput struct {
	Direction string `json:"direction" jsonschema:"required,Direction to move the focused window: left, right, up or down"`
	Frame     bool   `json:"frame,omitempty" jsonschema:"Move at frame level even if the window could move inside its own frame"`
	DryRun    bool   `json:"dry_run,omitempty" jsonschema:"Only report the commands that would be sent to herbstluftwm"`
}

// ShiftOutput is the output for the shift tool.
type ShiftOutput struct {
	Direction    string     `json:"direction"`
	Action       string     `json:"action"`
	Local        bool       `json:"local"`
	Index        string     `json:"index"`
	Stack        []string   `json:"stack,omitempty"`
	RemovesFrame bool       `json:"removes_frame"`
	DryRun       bool       `json:"dry_run"`
	Commands     [][]string `json:"commands"`
}

// LayoutStackInput is the input for the layout_stack tool.
type LayoutStackInput struct{}

// LayoutStackOutput is the output for the layout_stack tool.
type LayoutStackOutput struct {
	Index string   `json:"index"`
	Stack []string `json:"stack"`
	Frame string   `json:"frame"`
}
