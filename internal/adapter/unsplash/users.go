package unsplash

import "context"

const usersPath = "users"

// UserPhotosOptions — параметры списка фотографий пользователя.
type UserPhotosOptions struct {
	Page        int
	PerPage     int
	OrderBy     OrderBy
	Stats       bool
	Resolution  Resolution
	Quantity    int
	Orientation Orientation
}

// UserListOptions — параметры списков лайков и подборок пользователя.
type UserListOptions struct {
	Page    int
	PerPage int
	OrderBy OrderBy
}

// User получает публичный профиль пользователя.
func (c *Client) User(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, ErrUsernameMissing
	}
	return call[*User](ctx, c, get(resourcePath(usersPath, username)))
}

// UserPortfolio возвращает только ссылку на портфолио пользователя.
func (c *Client) UserPortfolio(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", ErrUsernameMissing
	}
	portfolio, err := call[Portfolio](ctx, c, get(resourcePath(usersPath, username, "portfolio")))
	if err != nil {
		return "", err
	}
	return portfolio.URL, nil
}

// UserPhotos получает одну страницу фотографий пользователя.
func (c *Client) UserPhotos(ctx context.Context, username string, opts UserPhotosOptions) ([]Photo, error) {
	if username == "" {
		return nil, ErrUsernameMissing
	}
	return call[[]Photo](ctx, c, get(resourcePath(usersPath, username, "photos"),
		number("page", opts.Page),
		number("per_page", opts.PerPage),
		text("order_by", opts.OrderBy),
		boolean("stats", opts.Stats),
		text("resolution", opts.Resolution),
		number("quantity", opts.Quantity),
		text("orientation", opts.Orientation),
	))
}

// UserLikes получает одну страницу фотографий, отмеченных пользователем.
func (c *Client) UserLikes(ctx context.Context, username string, opts UserListOptions) ([]Photo, error) {
	if username == "" {
		return nil, ErrUsernameMissing
	}
	return call[[]Photo](ctx, c, get(resourcePath(usersPath, username, "likes"), userListParams(opts)...))
}

// UserCollections получает одну страницу подборок пользователя.
func (c *Client) UserCollections(ctx context.Context, username string, opts UserListOptions) ([]Collection, error) {
	if username == "" {
		return nil, ErrUsernameMissing
	}
	return call[[]Collection](ctx, c, get(resourcePath(usersPath, username, "collections"), userListParams(opts)...))
}

// UserStatistics получает статистику пользователя.
func (c *Client) UserStatistics(ctx context.Context, username string, opts StatisticsOptions) (*UserStatistics, error) {
	if username == "" {
		return nil, ErrUsernameMissing
	}
	return call[*UserStatistics](ctx, c, get(resourcePath(usersPath, username, "statistics"),
		text("resolution", opts.Resolution),
		number("quantity", opts.Quantity),
	))
}

func userListParams(opts UserListOptions) []param {
	return []param{
		number("page", opts.Page),
		number("per_page", opts.PerPage),
		text("order_by", opts.OrderBy),
	}
}
