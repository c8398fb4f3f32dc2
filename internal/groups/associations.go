package groups

// NewAssociations returns the association and relation group.
func NewAssociations(b Backend) *Table {
	return NewTable("associations", b, associationEndpoints)
}

var associationEndpoints = []Endpoint{
	{
		Name:        "ghl_get_all_associations",
		Description: "List association types between objects.",
		Method:      "GET",
		Path:        "/associations/",
		Params: []Param{
			locationParam(inQuery),
			queryParam("skip", "number", "Number of results to skip.").required(),
			queryParam("limit", "number", "Maximum number of results.").required(),
		},
	},
	{
		Name:        "ghl_create_association",
		Description: "Define an association type between two objects.",
		Method:      "POST",
		Path:        "/associations/",
		Params: []Param{
			locationParam(inBody),
			bodyParam("key", "string", "Association key.").required(),
			bodyParam("firstObjectLabel", "string", "Label seen from the first object.").required(),
			bodyParam("firstObjectKey", "string", "First object key.").required(),
			bodyParam("secondObjectLabel", "string", "Label seen from the second object.").required(),
			bodyParam("secondObjectKey", "string", "Second object key.").required(),
		},
	},
	{
		Name:        "ghl_get_association_by_id",
		Description: "Get an association type by ID.",
		Method:      "GET",
		Path:        "/associations/{associationId}",
		Params:      []Param{pathParam("associationId", "Association ID.")},
	},
	{
		Name:        "ghl_get_association_by_key",
		Description: "Get an association type by key.",
		Method:      "GET",
		Path:        "/associations/key/{keyName}",
		Params:      []Param{pathParam("keyName", "Association key."), locationParam(inQuery)},
	},
	{
		Name:        "ghl_update_association",
		Description: "Rename the labels of an association type.",
		Method:      "PUT",
		Path:        "/associations/{associationId}",
		Params: []Param{
			pathParam("associationId", "Association ID."),
			bodyParam("firstObjectLabel", "string", "Label seen from the first object.").required(),
			bodyParam("secondObjectLabel", "string", "Label seen from the second object.").required(),
		},
	},
	{
		Name:        "ghl_delete_association",
		Description: "Delete an association type and all its relations.",
		Method:      "DELETE",
		Path:        "/associations/{associationId}",
		Params:      []Param{pathParam("associationId", "Association ID.")},
	},
	{
		Name:        "ghl_create_relation",
		Description: "Link two records through an association.",
		Method:      "POST",
		Path:        "/associations/relations",
		Params: []Param{
			locationParam(inBody),
			bodyParam("associationId", "string", "Association ID.").required(),
			bodyParam("firstRecordId", "string", "Record of the first object.").required(),
			bodyParam("secondRecordId", "string", "Record of the second object.").required(),
		},
	},
	{
		Name:        "ghl_get_relations_by_record",
		Description: "List relations of a record.",
		Method:      "GET",
		Path:        "/associations/relations/{recordId}",
		Params: []Param{
			pathParam("recordId", "Record ID."),
			locationParam(inQuery),
			queryParam("skip", "number", "Number of results to skip.").required(),
			queryParam("limit", "number", "Maximum number of results.").required(),
			queryParam("associationIds", "array", "Only these associations."),
		},
	},
	{
		Name:        "ghl_delete_relation",
		Description: "Remove a relation between two records.",
		Method:      "DELETE",
		Path:        "/associations/relations/{relationId}",
		Params:      []Param{pathParam("relationId", "Relation ID."), locationParam(inQuery)},
	},
}
