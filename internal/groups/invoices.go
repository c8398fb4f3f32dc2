package groups

// NewInvoices returns the invoicing group: templates, schedules, invoices and estimates.
func NewInvoices(b Backend) *Table {
	return NewTable("invoices", b, invoiceEndpoints)
}

func invoiceBody() []Param {
	return []Param{
		bodyParam("name", "string", "Invoice name."),
		bodyParam("title", "string", "Title printed on the document."),
		bodyParam("currency", "string", "ISO currency code."),
		bodyParam("items", "array", "Line items as {name, amount, qty, currency} objects.").ofObjects(),
		bodyParam("contactDetails", "object", "Billed contact {id, name, email, phoneNo}."),
		bodyParam("businessDetails", "object", "Issuer details."),
		bodyParam("issueDate", "string", "Issue date (YYYY-MM-DD)."),
		bodyParam("dueDate", "string", "Due date (YYYY-MM-DD)."),
		bodyParam("discount", "object", "Discount {type, value}."),
		bodyParam("termsNotes", "string", "Terms and notes."),
	}
}

func invoiceListQuery() []Param {
	return with([]Param{
		queryParam("status", "string", "Status filter."),
		queryParam("contactId", "string", "Only documents of this contact."),
		queryParam("search", "string", "Search text."),
	}, pageParams())
}

func sendBody() []Param {
	return []Param{
		bodyParam("userId", "string", "Sending user ID.").required(),
		bodyParam("action", "string", "Delivery channel.").required().oneOf("email", "sms", "sms_and_email", "send_manually"),
		bodyParam("liveMode", "boolean", "Send as live rather than test.").required(),
	}
}

var invoiceEndpoints = []Endpoint{
	{
		Name:        "create_invoice_template",
		Description: "Create an invoice template.",
		Method:      "POST",
		Path:        "/invoices/template",
		Params:      with(altParams(inBody), requiring(invoiceBody(), "name", "currency", "items")),
	},
	{
		Name:        "list_invoice_templates",
		Description: "List invoice templates.",
		Method:      "GET",
		Path:        "/invoices/template",
		Params:      with(altParams(inQuery), invoiceListQuery()),
	},
	{
		Name:        "get_invoice_template",
		Description: "Get an invoice template by ID.",
		Method:      "GET",
		Path:        "/invoices/template/{templateId}",
		Params:      with([]Param{pathParam("templateId", "Template ID.")}, altParams(inQuery)),
	},
	{
		Name:        "update_invoice_template",
		Description: "Update an invoice template.",
		Method:      "PUT",
		Path:        "/invoices/template/{templateId}",
		Params:      with([]Param{pathParam("templateId", "Template ID.")}, altParams(inBody), invoiceBody()),
	},
	{
		Name:        "delete_invoice_template",
		Description: "Delete an invoice template.",
		Method:      "DELETE",
		Path:        "/invoices/template/{templateId}",
		Params:      with([]Param{pathParam("templateId", "Template ID.")}, altParams(inQuery)),
	},
	{
		Name:        "create_invoice_schedule",
		Description: "Create a recurring invoice schedule.",
		Method:      "POST",
		Path:        "/invoices/schedule",
		Params: with(altParams(inBody), requiring(invoiceBody(), "name", "currency", "items", "contactDetails"), []Param{
			bodyParam("schedule", "object", "Recurrence rule.").required(),
		}),
	},
	{
		Name:        "list_invoice_schedules",
		Description: "List invoice schedules.",
		Method:      "GET",
		Path:        "/invoices/schedule",
		Params:      with(altParams(inQuery), invoiceListQuery()),
	},
	{
		Name:        "get_invoice_schedule",
		Description: "Get an invoice schedule by ID.",
		Method:      "GET",
		Path:        "/invoices/schedule/{scheduleId}",
		Params:      with([]Param{pathParam("scheduleId", "Schedule ID.")}, altParams(inQuery)),
	},
	{
		Name:        "create_invoice",
		Description: "Create an invoice.",
		Method:      "POST",
		Path:        "/invoices/",
		Params:      with(altParams(inBody), requiring(invoiceBody(), "name", "currency", "items", "contactDetails", "issueDate")),
	},
	{
		Name:        "list_invoices",
		Description: "List invoices.",
		Method:      "GET",
		Path:        "/invoices/",
		Params:      with(altParams(inQuery), invoiceListQuery()),
	},
	{
		Name:        "get_invoice",
		Description: "Get an invoice by ID.",
		Method:      "GET",
		Path:        "/invoices/{invoiceId}",
		Params:      with([]Param{pathParam("invoiceId", "Invoice ID.")}, altParams(inQuery)),
	},
	{
		Name:        "update_invoice",
		Description: "Update a draft invoice.",
		Method:      "PUT",
		Path:        "/invoices/{invoiceId}",
		Params:      with([]Param{pathParam("invoiceId", "Invoice ID.")}, altParams(inBody), invoiceBody()),
	},
	{
		Name:        "delete_invoice",
		Description: "Delete an invoice.",
		Method:      "DELETE",
		Path:        "/invoices/{invoiceId}",
		Params:      with([]Param{pathParam("invoiceId", "Invoice ID.")}, altParams(inQuery)),
	},
	{
		Name:        "send_invoice",
		Description: "Send an invoice to its contact.",
		Method:      "POST",
		Path:        "/invoices/{invoiceId}/send",
		Params:      with([]Param{pathParam("invoiceId", "Invoice ID.")}, altParams(inBody), sendBody()),
	},
	{
		Name:        "void_invoice",
		Description: "Void an invoice.",
		Method:      "POST",
		Path:        "/invoices/{invoiceId}/void",
		Params:      with([]Param{pathParam("invoiceId", "Invoice ID.")}, altParams(inBody)),
	},
	{
		Name:        "generate_invoice_number",
		Description: "Reserve the next invoice number.",
		Method:      "GET",
		Path:        "/invoices/generate-invoice-number",
		Params:      altParams(inQuery),
	},
	{
		Name:        "create_estimate",
		Description: "Create an estimate.",
		Method:      "POST",
		Path:        "/invoices/estimate",
		Params:      with(altParams(inBody), requiring(invoiceBody(), "name", "currency", "items", "contactDetails")),
	},
	{
		Name:        "list_estimates",
		Description: "List estimates.",
		Method:      "GET",
		Path:        "/invoices/estimate/list",
		Params:      with(altParams(inQuery), invoiceListQuery()),
	},
	{
		Name:        "send_estimate",
		Description: "Send an estimate to its contact.",
		Method:      "POST",
		Path:        "/invoices/estimate/{estimateId}/send",
		Params:      with([]Param{pathParam("estimateId", "Estimate ID.")}, altParams(inBody), sendBody()),
	},
	{
		Name:        "create_invoice_from_estimate",
		Description: "Convert an estimate into an invoice.",
		Method:      "POST",
		Path:        "/invoices/estimate/{estimateId}/invoice",
		Params: with([]Param{pathParam("estimateId", "Estimate ID.")}, altParams(inBody), []Param{
			bodyParam("markAsInvoiced", "boolean", "Mark the estimate as invoiced.").required(),
		}),
	},
}
