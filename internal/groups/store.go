package groups

// NewStore returns the e-commerce store group: shipping zones, rates, carriers and settings.
func NewStore(b Backend) *Table {
	return NewTable("store", b, storeEndpoints)
}

func shippingRateBody() []Param {
	return []Param{
		bodyParam("name", "string", "Rate name."),
		bodyParam("description", "string", "Rate description."),
		bodyParam("currency", "string", "ISO currency code."),
		bodyParam("amount", "number", "Shipping charge."),
		bodyParam("conditionType", "string", "What the rate depends on.").oneOf("none", "price", "weight"),
		bodyParam("minCondition", "number", "Minimum order value or weight."),
		bodyParam("maxCondition", "number", "Maximum order value or weight."),
		bodyParam("isCarrierRate", "boolean", "Use a carrier's live rate."),
		bodyParam("shippingCarrierId", "string", "Carrier ID for live rates."),
	}
}

var storeEndpoints = []Endpoint{
	{
		Name:        "ghl_create_shipping_zone",
		Description: "Create a shipping zone.",
		Method:      "POST",
		Path:        "/store/shipping-zone",
		Params: with(altParams(inBody), []Param{
			bodyParam("name", "string", "Zone name.").required(),
			bodyParam("countries", "array", "Countries as {code, states} objects.").ofObjects().required(),
		}),
	},
	{
		Name:        "ghl_list_shipping_zones",
		Description: "List shipping zones.",
		Method:      "GET",
		Path:        "/store/shipping-zone",
		Params: with(altParams(inQuery), []Param{
			queryParam("withShippingRate", "boolean", "Include each zone's rates."),
		}, pageParams()),
	},
	{
		Name:        "ghl_get_shipping_zone",
		Description: "Get a shipping zone by ID.",
		Method:      "GET",
		Path:        "/store/shipping-zone/{shippingZoneId}",
		Params: with([]Param{pathParam("shippingZoneId", "Shipping zone ID.")}, altParams(inQuery), []Param{
			queryParam("withShippingRate", "boolean", "Include the zone's rates."),
		}),
	},
	{
		Name:        "ghl_update_shipping_zone",
		Description: "Update a shipping zone.",
		Method:      "PUT",
		Path:        "/store/shipping-zone/{shippingZoneId}",
		Params: with([]Param{pathParam("shippingZoneId", "Shipping zone ID.")}, altParams(inBody), []Param{
			bodyParam("name", "string", "Zone name."),
			bodyParam("countries", "array", "Countries as {code, states} objects.").ofObjects(),
		}),
	},
	{
		Name:        "ghl_delete_shipping_zone",
		Description: "Delete a shipping zone.",
		Method:      "DELETE",
		Path:        "/store/shipping-zone/{shippingZoneId}",
		Params:      with([]Param{pathParam("shippingZoneId", "Shipping zone ID.")}, altParams(inQuery)),
	},
	{
		Name:        "ghl_get_available_shipping_rates",
		Description: "Quote the shipping rates available for an order.",
		Method:      "POST",
		Path:        "/store/shipping-zone/shipping-rates",
		Params: with(altParams(inBody), []Param{
			bodyParam("country", "string", "Destination country code.").required(),
			bodyParam("address", "object", "Destination address."),
			bodyParam("totalOrderAmount", "number", "Order value.").required(),
			bodyParam("totalOrderWeight", "number", "Order weight.").required(),
			bodyParam("products", "array", "Products as {id, quantity} objects.").ofObjects().required(),
		}),
	},
	{
		Name:        "ghl_create_shipping_rate",
		Description: "Add a rate to a shipping zone.",
		Method:      "POST",
		Path:        "/store/shipping-zone/{shippingZoneId}/shipping-rate",
		Params: with([]Param{pathParam("shippingZoneId", "Shipping zone ID.")}, altParams(inBody),
			requiring(shippingRateBody(), "name", "currency", "amount", "conditionType")),
	},
	{
		Name:        "ghl_list_shipping_rates",
		Description: "List the rates of a shipping zone.",
		Method:      "GET",
		Path:        "/store/shipping-zone/{shippingZoneId}/shipping-rate",
		Params:      with([]Param{pathParam("shippingZoneId", "Shipping zone ID.")}, altParams(inQuery), pageParams()),
	},
	{
		Name:        "ghl_update_shipping_rate",
		Description: "Update a shipping rate.",
		Method:      "PUT",
		Path:        "/store/shipping-zone/{shippingZoneId}/shipping-rate/{shippingRateId}",
		Params: with([]Param{
			pathParam("shippingZoneId", "Shipping zone ID."),
			pathParam("shippingRateId", "Shipping rate ID."),
		}, altParams(inBody), shippingRateBody()),
	},
	{
		Name:        "ghl_delete_shipping_rate",
		Description: "Delete a shipping rate.",
		Method:      "DELETE",
		Path:        "/store/shipping-zone/{shippingZoneId}/shipping-rate/{shippingRateId}",
		Params: with([]Param{
			pathParam("shippingZoneId", "Shipping zone ID."),
			pathParam("shippingRateId", "Shipping rate ID."),
		}, altParams(inQuery)),
	},
	{
		Name:        "ghl_create_shipping_carrier",
		Description: "Register a shipping carrier that quotes live rates.",
		Method:      "POST",
		Path:        "/store/shipping-carrier",
		Params: with(altParams(inBody), []Param{
			bodyParam("name", "string", "Carrier name.").required(),
			bodyParam("callbackUrl", "string", "URL the store calls for rates.").required(),
			bodyParam("services", "array", "Carrier services as {name, value} objects.").ofObjects(),
			bodyParam("allowsMultipleServiceSelection", "boolean", "Allow several services per order."),
		}),
	},
	{
		Name:        "ghl_list_shipping_carriers",
		Description: "List shipping carriers.",
		Method:      "GET",
		Path:        "/store/shipping-carrier",
		Params:      altParams(inQuery),
	},
	{
		Name:        "ghl_delete_shipping_carrier",
		Description: "Delete a shipping carrier.",
		Method:      "DELETE",
		Path:        "/store/shipping-carrier/{shippingCarrierId}",
		Params:      with([]Param{pathParam("shippingCarrierId", "Shipping carrier ID.")}, altParams(inQuery)),
	},
	{
		Name:        "ghl_create_store_setting",
		Description: "Create or replace the store settings.",
		Method:      "POST",
		Path:        "/store/store-setting",
		Params: with(altParams(inBody), []Param{
			bodyParam("shippingOrigin", "object", "Ship-from address.").required(),
			bodyParam("storeOrderNotification", "object", "Order notification settings."),
			bodyParam("storeOrderFulfillmentNotification", "object", "Fulfillment notification settings."),
		}),
	},
	{
		Name:        "ghl_get_store_setting",
		Description: "Get the store settings.",
		Method:      "GET",
		Path:        "/store/store-setting",
		Params:      altParams(inQuery),
	},
}
