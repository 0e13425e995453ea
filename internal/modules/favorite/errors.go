package favorite

import "errors"

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrAlreadyFavorited = errors.New("product already favorited")
)
