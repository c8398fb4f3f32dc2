package groups

// NewSurveys returns the survey group.
func NewSurveys(b Backend) *Table {
	return NewTable("surveys", b, surveyEndpoints)
}

var surveyEndpoints = []Endpoint{
	{
		Name:        "ghl_get_surveys",
		Description: "List surveys in a location.",
		Method:      "GET",
		Path:        "/surveys/",
		Params: []Param{
			locationParam(inQuery),
			queryParam("skip", "number", "Number of results to skip."),
			queryParam("limit", "number", "Maximum number of results (max 50)."),
			queryParam("type", "string", "Survey type filter."),
		},
	},
	{
		Name:        "ghl_get_survey_submissions",
		Description: "List survey submissions, optionally for one survey and date range.",
		Method:      "GET",
		Path:        "/surveys/submissions",
		Params: []Param{
			locationParam(inQuery),
			queryParam("surveyId", "string", "Survey ID."),
			queryParam("query", "string", "Search by contact name or email.").as("q"),
			queryParam("startAt", "string", "Range start (YYYY-MM-DD)."),
			queryParam("endAt", "string", "Range end (YYYY-MM-DD)."),
			queryParam("page", "number", "Page number, starting at 1."),
			queryParam("limit", "number", "Page size (max 100)."),
		},
	},
}
