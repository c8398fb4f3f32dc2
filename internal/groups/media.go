package groups

// NewMedia returns the media library group.
func NewMedia(b Backend) *Table {
	return NewTable("media", b, mediaEndpoints)
}

var mediaEndpoints = []Endpoint{
	{
		Name:        "get_media_files",
		Description: "List files and folders in the media library.",
		Method:      "GET",
		Path:        "/medias/files",
		Params: with(altParams(inQuery), []Param{
			queryParam("sortBy", "string", "Sort field.").oneOf("createdAt", "name", "size"),
			queryParam("sortOrder", "string", "Sort direction.").oneOf("asc", "desc"),
			queryParam("type", "string", "Entry kind.").oneOf("file", "folder"),
			queryParam("query", "string", "Search text."),
			queryParam("parentId", "string", "Folder to list."),
		}, pageParams()),
	},
	{
		Name:        "create_media_folder",
		Description: "Create a folder in the media library.",
		Method:      "POST",
		Path:        "/medias/folder",
		Params: with(altParams(inBody), []Param{
			bodyParam("name", "string", "Folder name.").required(),
			bodyParam("parentId", "string", "Parent folder ID."),
		}),
	},
	{
		Name:        "delete_media_file",
		Description: "Delete a file or folder from the media library.",
		Method:      "DELETE",
		Path:        "/medias/{mediaId}",
		Params:      with([]Param{pathParam("mediaId", "File or folder ID.")}, altParams(inQuery)),
	},
}
