package dto

type ProjectInput struct {
	OwnerID   string   `json:"ownerId" binding:"required"`
	TitleEN   string   `json:"title_en" binding:"required"`
	TitleZH   string   `json:"title_zh"`
	DescEN    string   `json:"desc_en"`
	DescZH    string   `json:"desc_zh"`
	ContentEN string   `json:"content_en"`
	ContentZH string   `json:"content_zh"`
	Tags      []string `json:"tags"`
	ImageURL  string   `json:"imageUrl"`
	GithubURL *string  `json:"githubUrl"`
	DemoURL   *string  `json:"demoUrl"`
	Featured  bool     `json:"featured"`
}

// ProjectUpdateInput carries a partial-field merge update; only non-nil
// fields are written.
type ProjectUpdateInput struct {
	TitleEN   *string   `json:"title_en"`
	TitleZH   *string   `json:"title_zh"`
	DescEN    *string   `json:"desc_en"`
	DescZH    *string   `json:"desc_zh"`
	ContentEN *string   `json:"content_en"`
	ContentZH *string   `json:"content_zh"`
	Tags      *[]string `json:"tags"`
	ImageURL  *string   `json:"imageUrl"`
	GithubURL *string   `json:"githubUrl"`
	DemoURL   *string   `json:"demoUrl"`
	Featured  *bool     `json:"featured"`
	Order     *int64    `json:"order"`
}

// Fields maps the set fields to their database columns.
func (in ProjectUpdateInput) Fields() map[string]any {
	fields := map[string]any{}
	if in.TitleEN != nil {
		fields["title_en"] = *in.TitleEN
	}
	if in.TitleZH != nil {
		fields["title_zh"] = *in.TitleZH
	}
	if in.DescEN != nil {
		fields["desc_en"] = *in.DescEN
	}
	if in.DescZH != nil {
		fields["desc_zh"] = *in.DescZH
	}
	if in.ContentEN != nil {
		fields["content_en"] = *in.ContentEN
	}
	if in.ContentZH != nil {
		fields["content_zh"] = *in.ContentZH
	}
	if in.Tags != nil {
		fields["tags"] = *in.Tags
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.GithubURL != nil {
		fields["github_url"] = *in.GithubURL
	}
	if in.DemoURL != nil {
		fields["demo_url"] = *in.DemoURL
	}
	if in.Featured != nil {
		fields["featured"] = *in.Featured
	}
	if in.Order != nil {
		fields["sort_order"] = *in.Order
	}
	return fields
}

type ReorderInput struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
