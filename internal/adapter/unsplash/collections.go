package unsplash

import "context"

const collectionsPath = "collections"

// PageOptions — параметры постраничного списка без сортировки.
type PageOptions struct {
	Page    int
	PerPage int
}

// CollectionPhotosOptions — параметры списка фотографий подборки.
type CollectionPhotosOptions struct {
	Page        int
	PerPage     int
	Orientation Orientation
}

// Collections получает одну страницу списка подборок.
func (c *Client) Collections(ctx context.Context, opts PageOptions) ([]Collection, error) {
	return call[[]Collection](ctx, c, get(collectionsPath,
		number("page", opts.Page),
		number("per_page", opts.PerPage),
	))
}

// Collection получает подборку по ID.
func (c *Client) Collection(ctx context.Context, id string) (*Collection, error) {
	if id == "" {
		return nil, ErrCollectionIDMissing
	}
	return call[*Collection](ctx, c, get(resourcePath(collectionsPath, id)))
}

// CollectionPhotos получает одну страницу фотографий подборки.
func (c *Client) CollectionPhotos(ctx context.Context, id string, opts CollectionPhotosOptions) ([]Photo, error) {
	if id == "" {
		return nil, ErrCollectionIDMissing
	}
	return call[[]Photo](ctx, c, get(resourcePath(collectionsPath, id, "photos"),
		number("page", opts.Page),
		number("per_page", opts.PerPage),
		text("orientation", opts.Orientation),
	))
}

// RelatedCollections получает подборки, похожие на указанную.
func (c *Client) RelatedCollections(ctx context.Context, id string) ([]Collection, error) {
	if id == "" {
		return nil, ErrCollectionIDMissing
	}
	return call[[]Collection](ctx, c, get(resourcePath(collectionsPath, id, "related")))
}
