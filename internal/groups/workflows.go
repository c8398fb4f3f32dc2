package groups

// NewWorkflows returns the automation workflow group.
func NewWorkflows(b Backend) *Table {
	return NewTable("workflows", b, workflowEndpoints)
}

var workflowEndpoints = []Endpoint{
	{
		Name:        "ghl_get_workflows",
		Description: "List automation workflows in a location.",
		Method:      "GET",
		Path:        "/workflows/",
		Params:      []Param{locationParam(inQuery)},
	},
}
