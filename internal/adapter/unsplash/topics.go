package unsplash

import "context"

const topicsPath = "topics"

// TopicsOptions — параметры списка тем. IDs передаются через запятую.
type TopicsOptions struct {
	IDs     []string
	Page    int
	PerPage int
	OrderBy TopicOrderBy
}

// TopicPhotosOptions — параметры списка фотографий темы.
type TopicPhotosOptions struct {
	Page        int
	PerPage     int
	Orientation Orientation
	OrderBy     OrderBy
}

// Topics получает одну страницу списка тем.
func (c *Client) Topics(ctx context.Context, opts TopicsOptions) ([]Topic, error) {
	return call[[]Topic](ctx, c, get(topicsPath,
		list("ids", opts.IDs),
		number("page", opts.Page),
		number("per_page", opts.PerPage),
		text("order_by", opts.OrderBy),
	))
}

// Topic получает тему по ID или slug.
func (c *Client) Topic(ctx context.Context, id string) (*Topic, error) {
	if id == "" {
		return nil, ErrTopicIDMissing
	}
	return call[*Topic](ctx, c, get(resourcePath(topicsPath, id)))
}

// TopicPhotos получает одну страницу фотографий темы.
func (c *Client) TopicPhotos(ctx context.Context, id string, opts TopicPhotosOptions) ([]Photo, error) {
	if id == "" {
		return nil, ErrTopicIDMissing
	}
	return call[[]Photo](ctx, c, get(resourcePath(topicsPath, id, "photos"),
		number("page", opts.Page),
		number("per_page", opts.PerPage),
		text("orientation", opts.Orientation),
		text("order_by", opts.OrderBy),
	))
}
