package groups

// NewProducts returns the product catalog group.
func NewProducts(b Backend) *Table {
	return NewTable("products", b, productEndpoints)
}

func productBody() []Param {
	return []Param{
		bodyParam("name", "string", "Product name."),
		bodyParam("productType", "string", "Product kind.").oneOf("DIGITAL", "PHYSICAL", "SERVICE", "PHYSICAL/DIGITAL"),
		bodyParam("description", "string", "Product description."),
		bodyParam("image", "string", "Image URL."),
		bodyParam("availableInStore", "boolean", "List in the online store."),
		bodyParam("collectionIds", "array", "Collection IDs."),
		bodyParam("slug", "string", "URL slug."),
	}
}

var productEndpoints = []Endpoint{
	{
		Name:        "ghl_create_product",
		Description: "Create a product.",
		Method:      "POST",
		Path:        "/products/",
		Params:      with([]Param{locationParam(inBody)}, requiring(productBody(), "name", "productType")),
	},
	{
		Name:        "ghl_list_products",
		Description: "List products.",
		Method:      "GET",
		Path:        "/products/",
		Params: with([]Param{
			locationParam(inQuery),
			queryParam("search", "string", "Search text."),
			queryParam("collectionIds", "array", "Only products in these collections."),
			queryParam("expand", "array", "Related entities to include, for example prices."),
			queryParam("includedInStore", "boolean", "Only products listed in the store."),
		}, pageParams()),
	},
	{
		Name:        "ghl_get_product",
		Description: "Get a product by ID.",
		Method:      "GET",
		Path:        "/products/{productId}",
		Params:      []Param{pathParam("productId", "Product ID."), locationParam(inQuery)},
	},
	{
		Name:        "ghl_update_product",
		Description: "Update a product.",
		Method:      "PUT",
		Path:        "/products/{productId}",
		Params:      with([]Param{pathParam("productId", "Product ID."), locationParam(inBody)}, productBody()),
	},
	{
		Name:        "ghl_delete_product",
		Description: "Delete a product.",
		Method:      "DELETE",
		Path:        "/products/{productId}",
		Params:      []Param{pathParam("productId", "Product ID."), locationParam(inQuery)},
	},
	{
		Name:        "ghl_create_price",
		Description: "Add a price to a product.",
		Method:      "POST",
		Path:        "/products/{productId}/price",
		Params: []Param{
			pathParam("productId", "Product ID."),
			locationParam(inBody),
			bodyParam("name", "string", "Price name.").required(),
			bodyParam("type", "string", "Billing type.").required().oneOf("one_time", "recurring"),
			bodyParam("currency", "string", "ISO currency code.").required(),
			bodyParam("amount", "number", "Price amount.").required(),
			bodyParam("recurring", "object", "Billing interval for recurring prices."),
			bodyParam("description", "string", "Price description."),
			bodyParam("compareAtPrice", "number", "Original price shown struck through."),
			bodyParam("trackInventory", "boolean", "Track stock for this price."),
			bodyParam("availableQuantity", "number", "Units in stock."),
			bodyParam("sku", "string", "Stock keeping unit."),
		},
	},
	{
		Name:        "ghl_list_prices",
		Description: "List the prices of a product.",
		Method:      "GET",
		Path:        "/products/{productId}/price",
		Params: with([]Param{
			pathParam("productId", "Product ID."),
			locationParam(inQuery),
			queryParam("ids", "string", "Comma separated price IDs."),
		}, pageParams()),
	},
	{
		Name:        "ghl_delete_price",
		Description: "Delete a price.",
		Method:      "DELETE",
		Path:        "/products/{productId}/price/{priceId}",
		Params: []Param{
			pathParam("productId", "Product ID."),
			pathParam("priceId", "Price ID."),
			locationParam(inQuery),
		},
	},
	{
		Name:        "ghl_list_inventory",
		Description: "List inventory levels across products.",
		Method:      "GET",
		Path:        "/products/inventory",
		Params: with(altParams(inQuery), []Param{
			queryParam("search", "string", "Search text."),
		}, pageParams()),
	},
	{
		Name:        "ghl_create_product_collection",
		Description: "Create a product collection.",
		Method:      "POST",
		Path:        "/products/collections",
		Params: with(altParams(inBody), []Param{
			bodyParam("name", "string", "Collection name.").required(),
			bodyParam("slug", "string", "URL slug.").required(),
			bodyParam("image", "string", "Image URL."),
			bodyParam("seo", "object", "SEO title and description."),
		}),
	},
	{
		Name:        "ghl_list_product_collections",
		Description: "List product collections.",
		Method:      "GET",
		Path:        "/products/collections",
		Params: with(altParams(inQuery), []Param{
			queryParam("name", "string", "Filter by name."),
			queryParam("collectionIds", "string", "Comma separated collection IDs."),
		}, pageParams()),
	},
}
