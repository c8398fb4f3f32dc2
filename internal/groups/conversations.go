package groups

// NewConversations returns the messaging group: SMS, email and conversation threads.
func NewConversations(b Backend) *Table {
	return NewTable("conversations", b, conversationEndpoints)
}

var conversationEndpoints = []Endpoint{
	{
		Name:        "send_sms",
		Description: "Send an SMS to a contact.",
		Method:      "POST",
		Path:        "/conversations/messages",
		Params: []Param{
			fixed("type", inBody, "SMS"),
			bodyParam("contactId", "string", "Recipient contact ID.").required(),
			bodyParam("message", "string", "Message text.").required(),
			bodyParam("fromNumber", "string", "Sending number, when the location has several."),
		},
	},
	{
		Name:        "send_email",
		Description: "Send an email to a contact.",
		Method:      "POST",
		Path:        "/conversations/messages",
		Params: []Param{
			fixed("type", inBody, "Email"),
			bodyParam("contactId", "string", "Recipient contact ID.").required(),
			bodyParam("subject", "string", "Email subject.").required(),
			bodyParam("html", "string", "HTML body."),
			bodyParam("message", "string", "Plain text body."),
			bodyParam("emailFrom", "string", "Sender address."),
			bodyParam("emailCc", "array", "CC recipients."),
			bodyParam("emailBcc", "array", "BCC recipients."),
			bodyParam("attachments", "array", "Attachment URLs."),
		},
	},
	{
		Name:        "search_conversations",
		Description: "Search conversations in a location.",
		Method:      "GET",
		Path:        "/conversations/search",
		Params: []Param{
			locationParam(inQuery),
			queryParam("contactId", "string", "Only conversations with this contact."),
			queryParam("query", "string", "Search text.").as("q"),
			queryParam("status", "string", "Conversation status.").oneOf("all", "read", "unread", "starred", "recents"),
			queryParam("assignedTo", "string", "Assigned user ID."),
			queryParam("limit", "number", "Maximum number of results (default 20)."),
		},
	},
	{
		Name:        "get_conversation",
		Description: "Get a conversation by ID.",
		Method:      "GET",
		Path:        "/conversations/{conversationId}",
		Params:      []Param{pathParam("conversationId", "Conversation ID.")},
	},
	{
		Name:        "create_conversation",
		Description: "Start a conversation with a contact.",
		Method:      "POST",
		Path:        "/conversations/",
		Params: []Param{
			locationParam(inBody),
			bodyParam("contactId", "string", "Contact ID.").required(),
		},
	},
	{
		Name:        "update_conversation",
		Description: "Update conversation state such as starred or unread count.",
		Method:      "PUT",
		Path:        "/conversations/{conversationId}",
		Params: []Param{
			pathParam("conversationId", "Conversation ID."),
			locationParam(inBody),
			bodyParam("starred", "boolean", "Star the conversation."),
			bodyParam("unreadCount", "number", "Unread message count."),
		},
	},
	{
		Name:        "delete_conversation",
		Description: "Delete a conversation.",
		Method:      "DELETE",
		Path:        "/conversations/{conversationId}",
		Params:      []Param{pathParam("conversationId", "Conversation ID.")},
	},
	{
		Name:        "get_recent_messages",
		Description: "List messages in a conversation, newest first.",
		Method:      "GET",
		Path:        "/conversations/{conversationId}/messages",
		Params: []Param{
			pathParam("conversationId", "Conversation ID."),
			queryParam("limit", "number", "Maximum number of messages."),
			queryParam("lastMessageId", "string", "Cursor from a previous page."),
			queryParam("type", "string", "Message type filter."),
		},
	},
	{
		Name:        "get_message",
		Description: "Get a message by ID.",
		Method:      "GET",
		Path:        "/conversations/messages/{messageId}",
		Params:      []Param{pathParam("messageId", "Message ID.")},
	},
	{
		Name:        "get_email_message",
		Description: "Get an email message by ID.",
		Method:      "GET",
		Path:        "/conversations/messages/email/{emailMessageId}",
		Params:      []Param{pathParam("emailMessageId", "Email message ID.")},
	},
	{
		Name:        "update_message_status",
		Description: "Set the delivery status of a message.",
		Method:      "PUT",
		Path:        "/conversations/messages/{messageId}/status",
		Params: []Param{
			pathParam("messageId", "Message ID."),
			bodyParam("status", "string", "New status.").required().oneOf("delivered", "failed", "pending", "read"),
			bodyParam("error", "object", "Error details for failed messages."),
		},
	},
	{
		Name:        "cancel_scheduled_message",
		Description: "Cancel a scheduled message.",
		Method:      "DELETE",
		Path:        "/conversations/messages/{messageId}/schedule",
		Params:      []Param{pathParam("messageId", "Message ID.")},
	},
	{
		Name:        "get_message_recording",
		Description: "Get the call recording attached to a message.",
		Method:      "GET",
		Path:        "/conversations/messages/{messageId}/locations/{locationId}/recording",
		Params: []Param{
			pathParam("messageId", "Message ID."),
			locationParam(inPath),
		},
	},
	{
		Name:        "get_message_transcription",
		Description: "Get the call transcription attached to a message.",
		Method:      "GET",
		Path:        "/conversations/locations/{locationId}/messages/{messageId}/transcription",
		Params: []Param{
			locationParam(inPath),
			pathParam("messageId", "Message ID."),
		},
	},
}
