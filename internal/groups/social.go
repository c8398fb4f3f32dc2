package groups

// NewSocialMedia returns the social planner group.
func NewSocialMedia(b Backend) *Table {
	return NewTable("social media", b, socialEndpoints)
}

func socialPostBody() []Param {
	return []Param{
		bodyParam("accountIds", "array", "Connected account IDs to post to."),
		bodyParam("summary", "string", "Post text."),
		bodyParam("media", "array", "Media URLs."),
		bodyParam("status", "string", "Post status.").oneOf("draft", "scheduled", "published", "failed", "in_review"),
		bodyParam("scheduleDate", "string", "Publish time (ISO 8601)."),
		bodyParam("type", "string", "Post kind.").oneOf("post", "story", "reel"),
		bodyParam("userId", "string", "Author user ID."),
		bodyParam("tags", "array", "Tag IDs."),
		bodyParam("categoryId", "string", "Category ID."),
	}
}

var socialEndpoints = []Endpoint{
	{
		Name:        "search_social_posts",
		Description: "List social posts by status, account or date range.",
		Method:      "POST",
		Path:        "/social-media-posting/{locationId}/posts/list",
		Params: []Param{
			locationParam(inPath),
			bodyParam("type", "string", "Status filter.").oneOf("recent", "all", "scheduled", "draft", "failed", "in_review", "published", "in_progress", "deleted"),
			bodyParam("accounts", "string", "Comma separated account IDs."),
			bodyParam("fromDate", "string", "Range start (ISO 8601)."),
			bodyParam("toDate", "string", "Range end (ISO 8601)."),
			bodyParam("skip", "number", "Number of results to skip."),
			bodyParam("limit", "number", "Maximum number of results."),
			bodyParam("includeUsers", "boolean", "Include author details."),
		},
	},
	{
		Name:        "create_social_post",
		Description: "Create or schedule a social post.",
		Method:      "POST",
		Path:        "/social-media-posting/{locationId}/posts",
		Params:      with([]Param{locationParam(inPath)}, requiring(socialPostBody(), "accountIds", "summary", "type")),
	},
	{
		Name:        "get_social_post",
		Description: "Get a social post by ID.",
		Method:      "GET",
		Path:        "/social-media-posting/{locationId}/posts/{postId}",
		Params:      []Param{locationParam(inPath), pathParam("postId", "Post ID.")},
	},
	{
		Name:        "update_social_post",
		Description: "Update a social post.",
		Method:      "PUT",
		Path:        "/social-media-posting/{locationId}/posts/{postId}",
		Params:      with([]Param{locationParam(inPath), pathParam("postId", "Post ID.")}, socialPostBody()),
	},
	{
		Name:        "delete_social_post",
		Description: "Delete a social post.",
		Method:      "DELETE",
		Path:        "/social-media-posting/{locationId}/posts/{postId}",
		Params:      []Param{locationParam(inPath), pathParam("postId", "Post ID.")},
	},
	{
		Name:        "bulk_delete_social_posts",
		Description: "Delete up to 50 social posts at once.",
		Method:      "POST",
		Path:        "/social-media-posting/{locationId}/posts/bulk-delete",
		Params: []Param{
			locationParam(inPath),
			bodyParam("postIds", "array", "Post IDs to delete.").required(),
		},
	},
	{
		Name:        "get_social_accounts",
		Description: "List connected social accounts and groups.",
		Method:      "GET",
		Path:        "/social-media-posting/{locationId}/accounts",
		Params:      []Param{locationParam(inPath)},
	},
	{
		Name:        "delete_social_account",
		Description: "Disconnect a social account.",
		Method:      "DELETE",
		Path:        "/social-media-posting/{locationId}/accounts/{accountId}",
		Params: []Param{
			locationParam(inPath),
			pathParam("accountId", "Account ID."),
			queryParam("companyId", "string", "Agency company ID."),
			queryParam("userId", "string", "User ID."),
		},
	},
	{
		Name:        "get_social_categories",
		Description: "List social post categories.",
		Method:      "GET",
		Path:        "/social-media-posting/{locationId}/categories",
		Params: with([]Param{
			locationParam(inPath),
			queryParam("searchText", "string", "Filter by name."),
		}, []Param{queryParam("limit", "number", "Maximum number of results."), queryParam("skip", "number", "Number of results to skip.")}),
	},
	{
		Name:        "get_social_tags",
		Description: "List social post tags.",
		Method:      "GET",
		Path:        "/social-media-posting/{locationId}/tags",
		Params: with([]Param{
			locationParam(inPath),
			queryParam("searchText", "string", "Filter by name."),
		}, []Param{queryParam("limit", "number", "Maximum number of results."), queryParam("skip", "number", "Number of results to skip.")}),
	},
	{
		Name:        "start_social_oauth",
		Description: "Start the OAuth flow that connects a social platform account.",
		Method:      "GET",
		Path:        "/social-media-posting/oauth/{platform}/start",
		Params: []Param{
			pathParam("platform", "Platform to connect.").oneOf("google", "facebook", "instagram", "linkedin", "twitter", "tiktok", "tiktok-business"),
			locationParam(inQuery),
			queryParam("userId", "string", "User starting the flow.").required(),
			queryParam("page", "string", "Page to return to after connecting."),
			queryParam("reconnect", "boolean", "Reconnect an existing account."),
		},
	},
}
