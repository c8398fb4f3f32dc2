package groups

// NewLocation returns the location (sub-account) group.
func NewLocation(b Backend) *Table {
	return NewTable("location", b, locationEndpoints)
}

func locationBody() []Param {
	return []Param{
		bodyParam("name", "string", "Business name."),
		bodyParam("phone", "string", "Business phone."),
		bodyParam("email", "string", "Business email."),
		bodyParam("address", "string", "Street address."),
		bodyParam("city", "string", "City."),
		bodyParam("state", "string", "State or region."),
		bodyParam("country", "string", "ISO country code."),
		bodyParam("postalCode", "string", "Postal code."),
		bodyParam("website", "string", "Website URL."),
		bodyParam("timezone", "string", "IANA time zone."),
	}
}

func customFieldBody() []Param {
	return []Param{
		bodyParam("name", "string", "Field name."),
		bodyParam("dataType", "string", "Field type.").oneOf("TEXT", "LARGE_TEXT", "NUMERICAL", "PHONE", "MONETORY", "CHECKBOX", "SINGLE_OPTIONS", "MULTIPLE_OPTIONS", "DATE", "FILE_UPLOAD"),
		bodyParam("placeholder", "string", "Placeholder text."),
		bodyParam("options", "array", "Options for choice fields."),
		bodyParam("position", "number", "Display position."),
		bodyParam("model", "string", "Object the field belongs to.").oneOf("contact", "opportunity"),
	}
}

var locationEndpoints = []Endpoint{
	{
		Name:        "search_locations",
		Description: "Search locations of an agency company.",
		Method:      "GET",
		Path:        "/locations/search",
		Params: []Param{
			queryParam("companyId", "string", "Agency company ID."),
			queryParam("email", "string", "Filter by business email."),
			queryParam("order", "string", "Sort order.").oneOf("asc", "desc"),
			queryParam("skip", "number", "Number of results to skip."),
			queryParam("limit", "number", "Maximum number of results."),
		},
	},
	{
		Name:        "get_location",
		Description: "Get a location by ID.",
		Method:      "GET",
		Path:        "/locations/{locationId}",
		Params:      []Param{locationParam(inPath)},
	},
	{
		Name:        "create_location",
		Description: "Create a location under an agency company.",
		Method:      "POST",
		Path:        "/locations/",
		Params: with([]Param{
			bodyParam("companyId", "string", "Agency company ID.").required(),
		}, requiring(locationBody(), "name")),
	},
	{
		Name:        "update_location",
		Description: "Update a location.",
		Method:      "PUT",
		Path:        "/locations/{locationId}",
		Params:      with([]Param{locationParam(inPath), bodyParam("companyId", "string", "Agency company ID.")}, locationBody()),
	},
	{
		Name:        "delete_location",
		Description: "Delete a location.",
		Method:      "DELETE",
		Path:        "/locations/{locationId}",
		Params: []Param{
			pathParam("locationId", "Location ID to delete."),
			queryParam("deleteTwilioAccount", "boolean", "Also delete the Twilio sub-account.").required(),
		},
	},
	{
		Name:        "get_location_tags",
		Description: "List tags defined in a location.",
		Method:      "GET",
		Path:        "/locations/{locationId}/tags",
		Params:      []Param{locationParam(inPath)},
	},
	{
		Name:        "create_location_tag",
		Description: "Create a tag.",
		Method:      "POST",
		Path:        "/locations/{locationId}/tags",
		Params: []Param{
			locationParam(inPath),
			bodyParam("name", "string", "Tag name.").required(),
		},
	},
	{
		Name:        "get_location_tag",
		Description: "Get a tag by ID.",
		Method:      "GET",
		Path:        "/locations/{locationId}/tags/{tagId}",
		Params:      []Param{locationParam(inPath), pathParam("tagId", "Tag ID.")},
	},
	{
		Name:        "update_location_tag",
		Description: "Rename a tag.",
		Method:      "PUT",
		Path:        "/locations/{locationId}/tags/{tagId}",
		Params: []Param{
			locationParam(inPath),
			pathParam("tagId", "Tag ID."),
			bodyParam("name", "string", "New tag name.").required(),
		},
	},
	{
		Name:        "delete_location_tag",
		Description: "Delete a tag.",
		Method:      "DELETE",
		Path:        "/locations/{locationId}/tags/{tagId}",
		Params:      []Param{locationParam(inPath), pathParam("tagId", "Tag ID.")},
	},
	{
		Name:        "search_location_tasks",
		Description: "Search tasks across all contacts of a location.",
		Method:      "POST",
		Path:        "/locations/{locationId}/tasks/search",
		Params: []Param{
			locationParam(inPath),
			bodyParam("contactId", "array", "Only tasks for these contacts."),
			bodyParam("assignedTo", "array", "Only tasks assigned to these users."),
			bodyParam("completed", "boolean", "Filter by completion."),
			bodyParam("query", "string", "Search text."),
			bodyParam("limit", "number", "Maximum number of results."),
			bodyParam("skip", "number", "Number of results to skip."),
		},
	},
	{
		Name:        "get_location_custom_fields",
		Description: "List the location's legacy custom fields.",
		Method:      "GET",
		Path:        "/locations/{locationId}/customFields",
		Params: []Param{
			locationParam(inPath),
			queryParam("model", "string", "Object the fields belong to.").oneOf("contact", "opportunity", "all"),
		},
	},
	{
		Name:        "create_location_custom_field",
		Description: "Create a legacy custom field.",
		Method:      "POST",
		Path:        "/locations/{locationId}/customFields",
		Params:      with([]Param{locationParam(inPath)}, requiring(customFieldBody(), "name", "dataType")),
	},
	{
		Name:        "delete_location_custom_field",
		Description: "Delete a legacy custom field.",
		Method:      "DELETE",
		Path:        "/locations/{locationId}/customFields/{customFieldId}",
		Params:      []Param{locationParam(inPath), pathParam("customFieldId", "Custom field ID.")},
	},
	{
		Name:        "get_location_custom_values",
		Description: "List custom values (merge fields) of a location.",
		Method:      "GET",
		Path:        "/locations/{locationId}/customValues",
		Params:      []Param{locationParam(inPath)},
	},
	{
		Name:        "create_location_custom_value",
		Description: "Create a custom value.",
		Method:      "POST",
		Path:        "/locations/{locationId}/customValues",
		Params: []Param{
			locationParam(inPath),
			bodyParam("name", "string", "Custom value name.").required(),
			bodyParam("value", "string", "Custom value.").required(),
		},
	},
	{
		Name:        "get_location_templates",
		Description: "List SMS and email templates of a location.",
		Method:      "GET",
		Path:        "/locations/{locationId}/templates",
		Params: with([]Param{
			locationParam(inPath),
			queryParam("originId", "string", "Origin of the templates.").required(),
			queryParam("type", "string", "Template type.").oneOf("sms", "email", "whatsapp"),
			queryParam("deleted", "boolean", "Include deleted templates."),
		}, []Param{queryParam("limit", "number", "Maximum number of results."), queryParam("skip", "number", "Number of results to skip.")}),
	},
	{
		Name:        "get_timezones",
		Description: "List time zones available to a location.",
		Method:      "GET",
		Path:        "/locations/{locationId}/timezones",
		Params:      []Param{locationParam(inPath)},
	},
}
