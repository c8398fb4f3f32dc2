package groups

// NewCustomFields returns the custom field and folder group.
func NewCustomFields(b Backend) *Table {
	return NewTable("custom fields", b, fieldEndpoints)
}

var fieldDataTypes = []string{
	"TEXT", "LARGE_TEXT", "NUMERICAL", "PHONE", "MONETORY", "CHECKBOX",
	"SINGLE_OPTIONS", "MULTIPLE_OPTIONS", "DATE", "TEXTBOX_LIST", "FILE_UPLOAD", "RADIO", "EMAIL",
}

var fieldEndpoints = []Endpoint{
	{
		Name:        "ghl_get_custom_field_by_id",
		Description: "Get a custom field or folder by ID.",
		Method:      "GET",
		Path:        "/custom-fields/{id}",
		Params:      []Param{pathParam("id", "Field or folder ID.")},
	},
	{
		Name:        "ghl_create_custom_field",
		Description: "Create a custom field on an object.",
		Method:      "POST",
		Path:        "/custom-fields/",
		Params: []Param{
			locationParam(inBody),
			bodyParam("name", "string", "Field name.").required(),
			bodyParam("dataType", "string", "Field type.").required().oneOf(fieldDataTypes...),
			bodyParam("fieldKey", "string", "Field key, for example custom_object.pet.name.").required(),
			bodyParam("objectKey", "string", "Object the field belongs to.").required(),
			bodyParam("parentId", "string", "Folder ID.").required(),
			bodyParam("description", "string", "Field description."),
			bodyParam("placeholder", "string", "Placeholder text."),
			bodyParam("showInForms", "boolean", "Show in forms."),
			bodyParam("options", "array", "Options for choice fields."),
			bodyParam("maxFileLimit", "number", "Maximum files for upload fields."),
		},
	},
	{
		Name:        "ghl_update_custom_field",
		Description: "Update a custom field.",
		Method:      "PUT",
		Path:        "/custom-fields/{id}",
		Params: []Param{
			pathParam("id", "Field ID."),
			locationParam(inBody),
			bodyParam("name", "string", "Field name."),
			bodyParam("description", "string", "Field description."),
			bodyParam("placeholder", "string", "Placeholder text."),
			bodyParam("showInForms", "boolean", "Show in forms."),
			bodyParam("options", "array", "Options for choice fields."),
		},
	},
	{
		Name:        "ghl_delete_custom_field",
		Description: "Delete a custom field.",
		Method:      "DELETE",
		Path:        "/custom-fields/{id}",
		Params:      []Param{pathParam("id", "Field ID.")},
	},
	{
		Name:        "ghl_get_custom_fields_by_object_key",
		Description: "List custom fields and folders of an object.",
		Method:      "GET",
		Path:        "/custom-fields/object-key/{objectKey}",
		Params:      []Param{pathParam("objectKey", "Object key."), locationParam(inQuery)},
	},
	{
		Name:        "ghl_create_custom_field_folder",
		Description: "Create a folder for custom fields.",
		Method:      "POST",
		Path:        "/custom-fields/folder",
		Params: []Param{
			locationParam(inBody),
			bodyParam("objectKey", "string", "Object key.").required(),
			bodyParam("name", "string", "Folder name.").required(),
		},
	},
	{
		Name:        "ghl_update_custom_field_folder",
		Description: "Rename a custom field folder.",
		Method:      "PUT",
		Path:        "/custom-fields/folder/{id}",
		Params: []Param{
			pathParam("id", "Folder ID."),
			locationParam(inBody),
			bodyParam("name", "string", "Folder name.").required(),
		},
	},
	{
		Name:        "ghl_delete_custom_field_folder",
		Description: "Delete a custom field folder.",
		Method:      "DELETE",
		Path:        "/custom-fields/folder/{id}",
		Params:      []Param{pathParam("id", "Folder ID."), locationParam(inQuery)},
	},
}
