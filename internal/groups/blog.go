package groups

// NewBlog returns the blog publishing group.
func NewBlog(b Backend) *Table {
	return NewTable("blog", b, blogEndpoints)
}

func blogPostBody() []Param {
	return []Param{
		bodyParam("title", "string", "Post title."),
		bodyParam("blogId", "string", "Blog site ID."),
		bodyParam("rawHTML", "string", "Post content as HTML."),
		bodyParam("description", "string", "Short summary used for SEO."),
		bodyParam("imageUrl", "string", "Featured image URL."),
		bodyParam("imageAltText", "string", "Featured image alt text."),
		bodyParam("categories", "array", "Category IDs."),
		bodyParam("tags", "array", "Post tags."),
		bodyParam("author", "string", "Author ID."),
		bodyParam("urlSlug", "string", "URL slug."),
		bodyParam("canonicalLink", "string", "Canonical URL."),
		bodyParam("status", "string", "Publication status.").oneOf("DRAFT", "PUBLISHED", "SCHEDULED", "ARCHIVED"),
		bodyParam("publishedAt", "string", "Publication time (ISO 8601)."),
	}
}

var blogEndpoints = []Endpoint{
	{
		Name:        "get_blog_sites",
		Description: "List the blog sites in a location.",
		Method:      "GET",
		Path:        "/blogs/site/all",
		Params: with([]Param{locationParam(inQuery), queryParam("searchTerm", "string", "Filter by name.")},
			[]Param{queryParam("limit", "number", "Maximum number of results."), queryParam("skip", "number", "Number of results to skip.")}),
	},
	{
		Name:        "get_blog_posts",
		Description: "List posts of a blog site.",
		Method:      "GET",
		Path:        "/blogs/posts/all",
		Params: with([]Param{
			locationParam(inQuery),
			queryParam("blogId", "string", "Blog site ID.").required(),
			queryParam("status", "string", "Publication status filter.").oneOf("DRAFT", "PUBLISHED", "SCHEDULED", "ARCHIVED"),
			queryParam("searchTerm", "string", "Filter by title."),
		}, pageParams()),
	},
	{
		Name:        "create_blog_post",
		Description: "Create a blog post.",
		Method:      "POST",
		Path:        "/blogs/posts",
		Params: with([]Param{locationParam(inBody)}, requiring(blogPostBody(), "title", "blogId", "rawHTML")),
	},
	{
		Name:        "update_blog_post",
		Description: "Update a blog post.",
		Method:      "PUT",
		Path:        "/blogs/posts/{postId}",
		Params:      with([]Param{pathParam("postId", "Post ID."), locationParam(inBody)}, blogPostBody()),
	},
	{
		Name:        "get_blog_authors",
		Description: "List blog authors.",
		Method:      "GET",
		Path:        "/blogs/authors",
		Params:      with([]Param{locationParam(inQuery)}, pageParams()),
	},
	{
		Name:        "get_blog_categories",
		Description: "List blog categories.",
		Method:      "GET",
		Path:        "/blogs/categories",
		Params:      with([]Param{locationParam(inQuery)}, pageParams()),
	},
	{
		Name:        "check_url_slug",
		Description: "Check whether a blog post URL slug is already taken.",
		Method:      "GET",
		Path:        "/blogs/posts/url-slug-exists",
		Params: []Param{
			locationParam(inQuery),
			queryParam("urlSlug", "string", "Slug to check.").required(),
			queryParam("postId", "string", "Post being edited, excluded from the check."),
		},
	},
}
