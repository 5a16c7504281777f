package service

// FavoriteServiceWrapper defines middleware composition for FavoriteService.
// Implementations wrap an existing FavoriteService to add behavior such as
// logging or validating.
type FavoriteServiceWrapper interface {
	Wrap(FavoriteService) FavoriteService // returns a decorated FavoriteService applying additional behavior
}
