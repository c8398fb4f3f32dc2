package groups

// NewCustomObjects returns the custom object schema and record group.
func NewCustomObjects(b Backend) *Table {
	return NewTable("custom objects", b, objectEndpoints)
}

func recordBody() []Param {
	return []Param{
		bodyParam("properties", "object", "Field values keyed by field key."),
		bodyParam("owner", "array", "Owner user IDs."),
		bodyParam("followers", "array", "Follower user IDs."),
	}
}

var objectEndpoints = []Endpoint{
	{
		Name:        "get_all_objects",
		Description: "List standard and custom object schemas.",
		Method:      "GET",
		Path:        "/objects/",
		Params:      []Param{locationParam(inQuery)},
	},
	{
		Name:        "create_object_schema",
		Description: "Define a new custom object.",
		Method:      "POST",
		Path:        "/objects/",
		Params: []Param{
			locationParam(inBody),
			bodyParam("labels", "object", "Singular and plural labels.").required(),
			bodyParam("key", "string", "Object key, for example custom_objects.pet.").required(),
			bodyParam("description", "string", "Object description."),
			bodyParam("primaryDisplayPropertyDetails", "object", "Primary display field {key, name, dataType}.").required(),
		},
	},
	{
		Name:        "get_object_schema",
		Description: "Get an object schema by key, optionally with its fields.",
		Method:      "GET",
		Path:        "/objects/{key}",
		Params: []Param{
			pathParam("key", "Object key."),
			locationParam(inQuery),
			queryParam("fetchProperties", "boolean", "Include field definitions."),
		},
	},
	{
		Name:        "update_object_schema",
		Description: "Update labels, description or searchable fields of an object.",
		Method:      "PUT",
		Path:        "/objects/{key}",
		Params: []Param{
			pathParam("key", "Object key."),
			locationParam(inBody),
			bodyParam("labels", "object", "Singular and plural labels."),
			bodyParam("description", "string", "Object description."),
			bodyParam("searchableProperties", "array", "Field keys used in search.").required(),
		},
	},
	{
		Name:        "create_object_record",
		Description: "Create a record of a custom object.",
		Method:      "POST",
		Path:        "/objects/{schemaKey}/records",
		Params: with([]Param{
			pathParam("schemaKey", "Object key."),
			locationParam(inBody),
		}, requiring(recordBody(), "properties")),
	},
	{
		Name:        "get_object_record",
		Description: "Get a record by ID.",
		Method:      "GET",
		Path:        "/objects/{schemaKey}/records/{recordId}",
		Params:      []Param{pathParam("schemaKey", "Object key."), pathParam("recordId", "Record ID.")},
	},
	{
		Name:        "update_object_record",
		Description: "Update a record.",
		Method:      "PUT",
		Path:        "/objects/{schemaKey}/records/{recordId}",
		Params: with([]Param{
			pathParam("schemaKey", "Object key."),
			pathParam("recordId", "Record ID."),
			locationParam(inQuery),
		}, recordBody()),
	},
	{
		Name:        "delete_object_record",
		Description: "Delete a record.",
		Method:      "DELETE",
		Path:        "/objects/{schemaKey}/records/{recordId}",
		Params:      []Param{pathParam("schemaKey", "Object key."), pathParam("recordId", "Record ID.")},
	},
	{
		Name:        "search_object_records",
		Description: "Search records of an object by searchable fields.",
		Method:      "POST",
		Path:        "/objects/{schemaKey}/records/search",
		Params: []Param{
			pathParam("schemaKey", "Object key."),
			locationParam(inBody),
			bodyParam("query", "string", "Search text.").required(),
			bodyParam("page", "number", "Page number, starting at 1.").required(),
			bodyParam("pageLimit", "number", "Page size.").required(),
			bodyParam("searchAfter", "array", "Cursor from a previous page."),
		},
	},
}
