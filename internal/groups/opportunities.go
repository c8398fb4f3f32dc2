package groups

// NewOpportunities returns the sales pipeline group.
func NewOpportunities(b Backend) *Table {
	return NewTable("opportunities", b, opportunityEndpoints)
}

var opportunityStatus = []string{"open", "won", "lost", "abandoned"}

func opportunityBody() []Param {
	return []Param{
		bodyParam("name", "string", "Opportunity name."),
		bodyParam("pipelineId", "string", "Pipeline ID."),
		bodyParam("pipelineStageId", "string", "Pipeline stage ID."),
		bodyParam("status", "string", "Opportunity status.").oneOf(opportunityStatus...),
		bodyParam("contactId", "string", "Associated contact ID."),
		bodyParam("monetaryValue", "number", "Deal value."),
		bodyParam("assignedTo", "string", "Owner user ID."),
		bodyParam("source", "string", "Lead source."),
	}
}

var opportunityEndpoints = []Endpoint{
	{
		Name:        "search_opportunities",
		Description: "Search opportunities by pipeline, stage, status or text.",
		Method:      "GET",
		Path:        "/opportunities/search",
		Params: []Param{
			locationParam(inQuery).as("location_id"),
			queryParam("query", "string", "Search text.").as("q"),
			queryParam("pipelineId", "string", "Pipeline ID.").as("pipeline_id"),
			queryParam("pipelineStageId", "string", "Stage ID.").as("pipeline_stage_id"),
			queryParam("contactId", "string", "Contact ID.").as("contact_id"),
			queryParam("status", "string", "Status filter.").oneOf(append([]string{"all"}, opportunityStatus...)...),
			queryParam("assignedTo", "string", "Owner user ID.").as("assigned_to"),
			queryParam("limit", "number", "Maximum number of results (default 20)."),
		},
	},
	{
		Name:        "get_pipelines",
		Description: "List sales pipelines and their stages.",
		Method:      "GET",
		Path:        "/opportunities/pipelines",
		Params:      []Param{locationParam(inQuery)},
	},
	{
		Name:        "get_opportunity",
		Description: "Get an opportunity by ID.",
		Method:      "GET",
		Path:        "/opportunities/{opportunityId}",
		Params:      []Param{pathParam("opportunityId", "Opportunity ID.")},
	},
	{
		Name:        "create_opportunity",
		Description: "Create an opportunity in a pipeline.",
		Method:      "POST",
		Path:        "/opportunities/",
		Params: with([]Param{locationParam(inBody)}, requiring(opportunityBody(), "name", "pipelineId", "contactId")),
	},
	{
		Name:        "update_opportunity",
		Description: "Update an opportunity.",
		Method:      "PUT",
		Path:        "/opportunities/{opportunityId}",
		Params:      with([]Param{pathParam("opportunityId", "Opportunity ID.")}, opportunityBody()),
	},
	{
		Name:        "update_opportunity_status",
		Description: "Change only the status of an opportunity.",
		Method:      "PUT",
		Path:        "/opportunities/{opportunityId}/status",
		Params: []Param{
			pathParam("opportunityId", "Opportunity ID."),
			bodyParam("status", "string", "New status.").required().oneOf(opportunityStatus...),
		},
	},
	{
		Name:        "upsert_opportunity",
		Description: "Create or update an opportunity matched on contact and pipeline.",
		Method:      "POST",
		Path:        "/opportunities/upsert",
		Params:      with([]Param{locationParam(inBody)}, opportunityBody()),
	},
	{
		Name:        "delete_opportunity",
		Description: "Delete an opportunity.",
		Method:      "DELETE",
		Path:        "/opportunities/{opportunityId}",
		Params:      []Param{pathParam("opportunityId", "Opportunity ID.")},
	},
	{
		Name:        "add_opportunity_followers",
		Description: "Add followers to an opportunity.",
		Method:      "POST",
		Path:        "/opportunities/{opportunityId}/followers",
		Params: []Param{
			pathParam("opportunityId", "Opportunity ID."),
			bodyParam("followers", "array", "User IDs to add.").required(),
		},
	},
}
