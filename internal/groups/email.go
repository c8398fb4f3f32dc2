package groups

// NewEmail returns the email marketing group: campaigns and builder templates.
func NewEmail(b Backend) *Table {
	return NewTable("email", b, emailEndpoints)
}

var emailEndpoints = []Endpoint{
	{
		Name:        "get_email_campaigns",
		Description: "List scheduled email campaigns.",
		Method:      "GET",
		Path:        "/emails/schedule",
		Params: with([]Param{
			locationParam(inQuery),
			queryParam("status", "string", "Campaign status filter.").oneOf("active", "pause", "complete", "cancelled", "retry", "draft", "resend-scheduled"),
		}, pageParams()),
	},
	{
		Name:        "get_email_templates",
		Description: "List email builder templates.",
		Method:      "GET",
		Path:        "/emails/builder",
		Params:      with([]Param{locationParam(inQuery)}, pageParams()),
	},
	{
		Name:        "create_email_template",
		Description: "Create an HTML email template.",
		Method:      "POST",
		Path:        "/emails/builder",
		Params: []Param{
			locationParam(inBody),
			bodyParam("title", "string", "Template title.").required(),
			bodyParam("html", "string", "Template HTML.").required(),
			bodyParam("isPlainText", "boolean", "Store as plain text."),
			fixed("type", inBody, "html"),
			fixed("builderVersion", inBody, "2"),
		},
	},
	{
		Name:        "update_email_template",
		Description: "Replace the HTML of an email template.",
		Method:      "POST",
		Path:        "/emails/builder/data",
		Params: []Param{
			locationParam(inBody),
			bodyParam("templateId", "string", "Template ID.").required(),
			bodyParam("html", "string", "Template HTML.").required(),
			bodyParam("previewText", "string", "Inbox preview text."),
			fixed("editorType", inBody, "html"),
		},
	},
	{
		Name:        "delete_email_template",
		Description: "Delete an email template.",
		Method:      "DELETE",
		Path:        "/emails/builder/{locationId}/{templateId}",
		Params: []Param{
			locationParam(inPath),
			pathParam("templateId", "Template ID."),
		},
	},
}
