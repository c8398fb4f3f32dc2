package groups

// NewEmailVerification returns the deliverability check group.
func NewEmailVerification(b Backend) *Table {
	return NewTable("email verification", b, verificationEndpoints)
}

var verificationEndpoints = []Endpoint{
	{
		Name:        "verify_email",
		Description: "Check whether an email address is deliverable. Charges the location's wallet.",
		Method:      "POST",
		Path:        "/email/verify",
		Params: []Param{
			locationParam(inQuery),
			bodyParam("email", "string", "Email address, or contact ID when type is contact.").as("verify").required(),
			bodyParam("type", "string", "What the value identifies.").required().oneOf("email", "contact"),
		},
	},
}
