package groups

// NewPayments returns the payments group: orders, transactions, subscriptions,
// coupons and payment provider integrations.
func NewPayments(b Backend) *Table {
	return NewTable("payments", b, paymentEndpoints)
}

func dateRangeQuery() []Param {
	return []Param{
		queryParam("startAt", "string", "Range start (YYYY-MM-DD)."),
		queryParam("endAt", "string", "Range end (YYYY-MM-DD)."),
	}
}

func couponBody() []Param {
	return []Param{
		bodyParam("name", "string", "Coupon name."),
		bodyParam("code", "string", "Code customers enter."),
		bodyParam("discountType", "string", "Discount kind.").oneOf("percentage", "amount"),
		bodyParam("discountValue", "number", "Percentage or amount off."),
		bodyParam("startDate", "string", "Valid from (ISO 8601)."),
		bodyParam("endDate", "string", "Valid until (ISO 8601)."),
		bodyParam("usageLimit", "number", "Maximum total redemptions."),
		bodyParam("productIds", "array", "Products the coupon applies to."),
		bodyParam("applyToFuturePayments", "boolean", "Apply to recurring payments."),
	}
}

var paymentEndpoints = []Endpoint{
	{
		Name:        "create_whitelabel_integration_provider",
		Description: "Register a white-label payment integration provider.",
		Method:      "POST",
		Path:        "/payments/integrations/provider/whitelabel",
		Params: with(altParams(inBody), []Param{
			bodyParam("uniqueName", "string", "Unique provider key.").required(),
			bodyParam("title", "string", "Display title.").required(),
			bodyParam("provider", "string", "Underlying provider.").required().oneOf("authorize-net", "nmi"),
			bodyParam("description", "string", "Provider description.").required(),
			bodyParam("imageUrl", "string", "Logo URL.").required(),
		}),
	},
	{
		Name:        "list_whitelabel_integration_providers",
		Description: "List white-label payment integration providers.",
		Method:      "GET",
		Path:        "/payments/integrations/provider/whitelabel",
		Params:      with(altParams(inQuery), pageParams()),
	},
	{
		Name:        "list_orders",
		Description: "List orders.",
		Method:      "GET",
		Path:        "/payments/orders",
		Params: with(altParams(inQuery), []Param{
			queryParam("status", "string", "Order status."),
			queryParam("paymentMode", "string", "Payment mode.").oneOf("live", "test"),
			queryParam("search", "string", "Search text."),
			queryParam("contactId", "string", "Only orders of this contact."),
			queryParam("funnelProductIds", "string", "Comma separated funnel product IDs."),
		}, dateRangeQuery(), pageParams()),
	},
	{
		Name:        "get_order_by_id",
		Description: "Get an order by ID.",
		Method:      "GET",
		Path:        "/payments/orders/{orderId}",
		Params:      with([]Param{pathParam("orderId", "Order ID.")}, altParams(inQuery)),
	},
	{
		Name:        "create_order_fulfillment",
		Description: "Record a fulfillment (shipment) for an order.",
		Method:      "POST",
		Path:        "/payments/orders/{orderId}/fulfillments",
		Params: with([]Param{pathParam("orderId", "Order ID.")}, altParams(inBody), []Param{
			bodyParam("trackings", "array", "Tracking entries as {trackingNumber, shippingCarrier, trackingUrl}.").ofObjects().required(),
			bodyParam("items", "array", "Fulfilled items as {priceId, qty}.").ofObjects().required(),
			bodyParam("notifyCustomer", "boolean", "Email the customer.").required(),
		}),
	},
	{
		Name:        "list_order_fulfillments",
		Description: "List fulfillments of an order.",
		Method:      "GET",
		Path:        "/payments/orders/{orderId}/fulfillments",
		Params:      with([]Param{pathParam("orderId", "Order ID.")}, altParams(inQuery)),
	},
	{
		Name:        "list_transactions",
		Description: "List payment transactions.",
		Method:      "GET",
		Path:        "/payments/transactions",
		Params: with(altParams(inQuery), []Param{
			queryParam("paymentMode", "string", "Payment mode.").oneOf("live", "test"),
			queryParam("entitySourceType", "string", "Source of the transaction."),
			queryParam("search", "string", "Search text."),
			queryParam("subscriptionId", "string", "Only transactions of this subscription."),
			queryParam("contactId", "string", "Only transactions of this contact."),
		}, dateRangeQuery(), pageParams()),
	},
	{
		Name:        "get_transaction_by_id",
		Description: "Get a transaction by ID.",
		Method:      "GET",
		Path:        "/payments/transactions/{transactionId}",
		Params:      with([]Param{pathParam("transactionId", "Transaction ID.")}, altParams(inQuery)),
	},
	{
		Name:        "list_subscriptions",
		Description: "List subscriptions.",
		Method:      "GET",
		Path:        "/payments/subscriptions",
		Params: with(altParams(inQuery), []Param{
			queryParam("paymentMode", "string", "Payment mode.").oneOf("live", "test"),
			queryParam("entityId", "string", "Source entity ID."),
			queryParam("search", "string", "Search text."),
			queryParam("contactId", "string", "Only subscriptions of this contact."),
		}, dateRangeQuery(), pageParams()),
	},
	{
		Name:        "get_subscription_by_id",
		Description: "Get a subscription by ID.",
		Method:      "GET",
		Path:        "/payments/subscriptions/{subscriptionId}",
		Params:      with([]Param{pathParam("subscriptionId", "Subscription ID.")}, altParams(inQuery)),
	},
	{
		Name:        "list_coupons",
		Description: "List coupons.",
		Method:      "GET",
		Path:        "/payments/coupon/list",
		Params: with(altParams(inQuery), []Param{
			queryParam("status", "string", "Coupon status.").oneOf("scheduled", "active", "expired"),
			queryParam("search", "string", "Search by name or code."),
		}, pageParams()),
	},
	{
		Name:        "create_coupon",
		Description: "Create a coupon.",
		Method:      "POST",
		Path:        "/payments/coupon",
		Params:      with(altParams(inBody), requiring(couponBody(), "name", "code", "discountType", "discountValue", "startDate")),
	},
	{
		Name:        "update_coupon",
		Description: "Update a coupon.",
		Method:      "PUT",
		Path:        "/payments/coupon",
		Params: with([]Param{bodyParam("couponId", "string", "Coupon ID.").as("id").required()},
			altParams(inBody), couponBody()),
	},
	{
		Name:        "delete_coupon",
		Description: "Delete a coupon.",
		Method:      "DELETE",
		Path:        "/payments/coupon",
		Params: with([]Param{bodyParam("couponId", "string", "Coupon ID.").as("id").required()},
			altParams(inBody)),
	},
	{
		Name:        "get_coupon",
		Description: "Get a coupon by ID and code.",
		Method:      "GET",
		Path:        "/payments/coupon",
		Params: with(altParams(inQuery), []Param{
			queryParam("couponId", "string", "Coupon ID.").as("id").required(),
			queryParam("code", "string", "Coupon code.").required(),
		}),
	},
	{
		Name:        "get_custom_provider_config",
		Description: "Get the connection config of the location's custom payment provider.",
		Method:      "GET",
		Path:        "/payments/custom-provider/connect",
		Params:      []Param{locationParam(inQuery)},
	},
}
