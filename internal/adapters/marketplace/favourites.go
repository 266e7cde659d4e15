package marketplace

import (
	"context"
	"net/http"

	"github.com/internhub/marketplace-web/internal/domain/model"
)

const favouritesPath = "/favourites"

func (c *Client) ListFavourites(ctx context.Context) ([]model.Favourite, error) {
	return list[model.Favourite](ctx, c, request{
		op:     "favourites.list",
		method: http.MethodGet,
		path:   favouritesPath,
	})
}

func (c *Client) AddFavourite(ctx context.Context, internshipID int64) error {
	return c.do(ctx, request{
		op:     "favourites.add",
		method: http.MethodPost,
		path:   favouritesPath,
		body:   map[string]int64{"internshipId": internshipID},
	}, nil)
}

func (c *Client) RemoveFavourite(ctx context.Context, internshipID int64) error {
	return c.do(ctx, request{
		op:     "favourites.remove",
		method: http.MethodDelete,
		path:   idPath(favouritesPath, internshipID),
	}, nil)
}

func (c *Client) CheckFavourite(ctx context.Context, internshipID int64) (bool, error) {
	var out model.FavouriteCheck
	err := c.do(ctx, request{
		op:     "favourites.check",
		method: http.MethodGet,
		path:   idPath(favouritesPath+"/check", internshipID),
	}, &out)
	return out.IsFavourite, err
}
