package groups

// NewContacts returns the contact management group.
func NewContacts(b Backend) *Table {
	return NewTable("contacts", b, contactEndpoints)
}

func contactBody() []Param {
	return []Param{
		bodyParam("firstName", "string", "First name."),
		bodyParam("lastName", "string", "Last name."),
		bodyParam("name", "string", "Full name."),
		bodyParam("email", "string", "Email address."),
		bodyParam("phone", "string", "Phone number in E.164 format."),
		bodyParam("companyName", "string", "Company name."),
		bodyParam("source", "string", "Lead source."),
		bodyParam("tags", "array", "Tags to apply."),
		bodyParam("customFields", "array", "Custom field values as {id, value} objects.").ofObjects(),
	}
}

var contactEndpoints = []Endpoint{
	{
		Name:        "create_contact",
		Description: "Create a new contact.",
		Method:      "POST",
		Path:        "/contacts/",
		Params:      with([]Param{locationParam(inBody)}, contactBody()),
	},
	{
		Name:        "search_contacts",
		Description: "Search contacts by free text, email or phone.",
		Method:      "POST",
		Path:        "/contacts/search",
		Params: []Param{
			locationParam(inBody),
			bodyParam("query", "string", "Search text."),
			bodyParam("pageLimit", "number", "Maximum number of results (default 25)."),
			bodyParam("startAfterId", "string", "Cursor from a previous page."),
			bodyParam("filters", "array", "Structured filter clauses.").ofObjects(),
		},
	},
	{
		Name:        "get_contact",
		Description: "Get a contact by ID.",
		Method:      "GET",
		Path:        "/contacts/{contactId}",
		Params:      []Param{pathParam("contactId", "Contact ID.")},
	},
	{
		Name:        "update_contact",
		Description: "Update an existing contact.",
		Method:      "PUT",
		Path:        "/contacts/{contactId}",
		Params:      with([]Param{pathParam("contactId", "Contact ID.")}, contactBody()),
	},
	{
		Name:        "delete_contact",
		Description: "Delete a contact.",
		Method:      "DELETE",
		Path:        "/contacts/{contactId}",
		Params:      []Param{pathParam("contactId", "Contact ID.")},
	},
	{
		Name:        "upsert_contact",
		Description: "Create or update a contact matched on email or phone.",
		Method:      "POST",
		Path:        "/contacts/upsert",
		Params:      with([]Param{locationParam(inBody)}, contactBody()),
	},
	{
		Name:        "get_duplicate_contact",
		Description: "Find an existing contact with the same email or phone.",
		Method:      "GET",
		Path:        "/contacts/search/duplicate",
		Params: []Param{
			locationParam(inQuery),
			queryParam("email", "string", "Email address to match."),
			queryParam("phone", "string", "Phone number to match.").as("number"),
		},
	},
	{
		Name:        "add_contact_tags",
		Description: "Add tags to a contact.",
		Method:      "POST",
		Path:        "/contacts/{contactId}/tags",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			bodyParam("tags", "array", "Tags to add.").required(),
		},
	},
	{
		Name:        "remove_contact_tags",
		Description: "Remove tags from a contact.",
		Method:      "DELETE",
		Path:        "/contacts/{contactId}/tags",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			bodyParam("tags", "array", "Tags to remove.").required(),
		},
	},
	{
		Name:        "get_contact_tasks",
		Description: "List the tasks attached to a contact.",
		Method:      "GET",
		Path:        "/contacts/{contactId}/tasks",
		Params:      []Param{pathParam("contactId", "Contact ID.")},
	},
	{
		Name:        "create_contact_task",
		Description: "Create a task for a contact.",
		Method:      "POST",
		Path:        "/contacts/{contactId}/tasks",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			bodyParam("title", "string", "Task title.").required(),
			bodyParam("body", "string", "Task details."),
			bodyParam("dueDate", "string", "Due date (ISO 8601).").required(),
			bodyParam("completed", "boolean", "Whether the task is done."),
			bodyParam("assignedTo", "string", "User ID of the assignee."),
		},
	},
	{
		Name:        "update_contact_task",
		Description: "Update a contact task.",
		Method:      "PUT",
		Path:        "/contacts/{contactId}/tasks/{taskId}",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			pathParam("taskId", "Task ID."),
			bodyParam("title", "string", "Task title."),
			bodyParam("body", "string", "Task details."),
			bodyParam("dueDate", "string", "Due date (ISO 8601)."),
			bodyParam("completed", "boolean", "Whether the task is done."),
			bodyParam("assignedTo", "string", "User ID of the assignee."),
		},
	},
	{
		Name:        "delete_contact_task",
		Description: "Delete a contact task.",
		Method:      "DELETE",
		Path:        "/contacts/{contactId}/tasks/{taskId}",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			pathParam("taskId", "Task ID."),
		},
	},
	{
		Name:        "get_contact_notes",
		Description: "List the notes attached to a contact.",
		Method:      "GET",
		Path:        "/contacts/{contactId}/notes",
		Params:      []Param{pathParam("contactId", "Contact ID.")},
	},
	{
		Name:        "create_contact_note",
		Description: "Add a note to a contact.",
		Method:      "POST",
		Path:        "/contacts/{contactId}/notes",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			bodyParam("body", "string", "Note text.").required(),
			bodyParam("userId", "string", "Author user ID."),
		},
	},
	{
		Name:        "delete_contact_note",
		Description: "Delete a contact note.",
		Method:      "DELETE",
		Path:        "/contacts/{contactId}/notes/{noteId}",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			pathParam("noteId", "Note ID."),
		},
	},
	{
		Name:        "get_contact_appointments",
		Description: "List appointments booked for a contact.",
		Method:      "GET",
		Path:        "/contacts/{contactId}/appointments",
		Params:      []Param{pathParam("contactId", "Contact ID.")},
	},
	{
		Name:        "add_contact_to_workflow",
		Description: "Enroll a contact in a workflow.",
		Method:      "POST",
		Path:        "/contacts/{contactId}/workflow/{workflowId}",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			pathParam("workflowId", "Workflow ID."),
			bodyParam("eventStartTime", "string", "Enrollment start time (ISO 8601)."),
		},
	},
	{
		Name:        "remove_contact_from_workflow",
		Description: "Remove a contact from a workflow.",
		Method:      "DELETE",
		Path:        "/contacts/{contactId}/workflow/{workflowId}",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			pathParam("workflowId", "Workflow ID."),
		},
	},
	{
		Name:        "add_contact_to_campaign",
		Description: "Add a contact to a campaign.",
		Method:      "POST",
		Path:        "/contacts/{contactId}/campaigns/{campaignId}",
		Params: []Param{
			pathParam("contactId", "Contact ID."),
			pathParam("campaignId", "Campaign ID."),
		},
	},
}
