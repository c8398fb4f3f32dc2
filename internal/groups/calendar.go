package groups

// NewCalendar returns the calendar and appointment group.
func NewCalendar(b Backend) *Table {
	return NewTable("calendar", b, calendarEndpoints)
}

func calendarBody() []Param {
	return []Param{
		bodyParam("name", "string", "Calendar name."),
		bodyParam("description", "string", "Calendar description."),
		bodyParam("groupId", "string", "Calendar group ID."),
		bodyParam("calendarType", "string", "Calendar type.").oneOf("round_robin", "event", "class_booking", "collective", "service_booking", "personal"),
		bodyParam("slotDuration", "number", "Slot length in minutes."),
		bodyParam("slotInterval", "number", "Minutes between slot starts."),
		bodyParam("teamMembers", "array", "Team member user IDs."),
		bodyParam("isActive", "boolean", "Whether the calendar is bookable."),
	}
}

func appointmentBody() []Param {
	return []Param{
		bodyParam("title", "string", "Appointment title."),
		bodyParam("startTime", "string", "Start time (ISO 8601)."),
		bodyParam("endTime", "string", "End time (ISO 8601)."),
		bodyParam("appointmentStatus", "string", "Status.").oneOf("new", "confirmed", "cancelled", "showed", "noshow", "invalid"),
		bodyParam("assignedUserId", "string", "Assigned user ID."),
		bodyParam("address", "string", "Meeting location or link."),
		bodyParam("ignoreDateRange", "boolean", "Book outside the calendar's date range."),
		bodyParam("toNotify", "boolean", "Send notifications."),
	}
}

var calendarEndpoints = []Endpoint{
	{
		Name:        "get_calendar_groups",
		Description: "List calendar groups.",
		Method:      "GET",
		Path:        "/calendars/groups",
		Params:      []Param{locationParam(inQuery)},
	},
	{
		Name:        "get_calendars",
		Description: "List calendars in a location.",
		Method:      "GET",
		Path:        "/calendars/",
		Params: []Param{
			locationParam(inQuery),
			queryParam("groupId", "string", "Only calendars in this group."),
			queryParam("showDrafted", "boolean", "Include draft calendars."),
		},
	},
	{
		Name:        "get_calendar",
		Description: "Get a calendar by ID.",
		Method:      "GET",
		Path:        "/calendars/{calendarId}",
		Params:      []Param{pathParam("calendarId", "Calendar ID.")},
	},
	{
		Name:        "create_calendar",
		Description: "Create a calendar.",
		Method:      "POST",
		Path:        "/calendars/",
		Params: with([]Param{locationParam(inBody)}, requiring(calendarBody(), "name")),
	},
	{
		Name:        "update_calendar",
		Description: "Update a calendar.",
		Method:      "PUT",
		Path:        "/calendars/{calendarId}",
		Params:      with([]Param{pathParam("calendarId", "Calendar ID.")}, calendarBody()),
	},
	{
		Name:        "delete_calendar",
		Description: "Delete a calendar.",
		Method:      "DELETE",
		Path:        "/calendars/{calendarId}",
		Params:      []Param{pathParam("calendarId", "Calendar ID.")},
	},
	{
		Name:        "get_calendar_events",
		Description: "List events between two times for a calendar, user or group.",
		Method:      "GET",
		Path:        "/calendars/events",
		Params: []Param{
			locationParam(inQuery),
			queryParam("startTime", "string", "Range start in epoch milliseconds.").required(),
			queryParam("endTime", "string", "Range end in epoch milliseconds.").required(),
			queryParam("calendarId", "string", "Calendar ID."),
			queryParam("userId", "string", "User ID."),
			queryParam("groupId", "string", "Calendar group ID."),
		},
	},
	{
		Name:        "get_free_slots",
		Description: "List bookable slots of a calendar.",
		Method:      "GET",
		Path:        "/calendars/{calendarId}/free-slots",
		Params: []Param{
			pathParam("calendarId", "Calendar ID."),
			queryParam("startDate", "string", "Range start in epoch milliseconds.").required(),
			queryParam("endDate", "string", "Range end in epoch milliseconds.").required(),
			queryParam("timezone", "string", "IANA time zone for the result."),
			queryParam("userId", "string", "Only slots for this user."),
		},
	},
	{
		Name:        "create_appointment",
		Description: "Book an appointment for a contact.",
		Method:      "POST",
		Path:        "/calendars/events/appointments",
		Params: with([]Param{
			locationParam(inBody),
			bodyParam("calendarId", "string", "Calendar ID.").required(),
			bodyParam("contactId", "string", "Contact ID.").required(),
		}, requiring(appointmentBody(), "startTime")),
	},
	{
		Name:        "get_appointment",
		Description: "Get an appointment by ID.",
		Method:      "GET",
		Path:        "/calendars/events/appointments/{appointmentId}",
		Params:      []Param{pathParam("appointmentId", "Appointment ID.")},
	},
	{
		Name:        "update_appointment",
		Description: "Update an appointment.",
		Method:      "PUT",
		Path:        "/calendars/events/appointments/{appointmentId}",
		Params:      with([]Param{pathParam("appointmentId", "Appointment ID.")}, appointmentBody()),
	},
	{
		Name:        "delete_appointment",
		Description: "Delete an appointment.",
		Method:      "DELETE",
		Path:        "/calendars/events/{appointmentId}",
		Params:      []Param{pathParam("appointmentId", "Appointment ID.")},
	},
	{
		Name:        "create_block_slot",
		Description: "Block time on a calendar or for a user.",
		Method:      "POST",
		Path:        "/calendars/events/block-slots",
		Params: []Param{
			locationParam(inBody),
			bodyParam("startTime", "string", "Start time (ISO 8601).").required(),
			bodyParam("endTime", "string", "End time (ISO 8601).").required(),
			bodyParam("calendarId", "string", "Calendar ID."),
			bodyParam("assignedUserId", "string", "User ID."),
			bodyParam("title", "string", "Reason shown on the calendar."),
		},
	},
}
