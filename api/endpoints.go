package api

// Remote API paths, relative to the configured base URL.
const (
	PathLogin        = "/api/v1/auth/login/"
	PathRegister     = "/api/v1/auth/register/"
	PathLogout       = "/api/v1/auth/logout/"
	PathProfile      = "/api/v1/auth/profile/"
	PathTokenRefresh = "/api/v1/auth/token/refresh/"

	PathProducts         = "/api/v1/products/"
	PathProductCreate    = "/api/v1/products/create/"
	PathMyProducts       = "/api/v1/products/my-products/"
	PathFeaturedProducts = "/api/v1/products/featured/"
	PathTrendingProducts = "/api/v1/products/trending/"

	PathCategories   = "/api/v1/categories/"
	PathCategoryTree = "/api/v1/categories/tree/"

	PathNotifications = "/api/v1/notifications/"
	PathReviews       = "/api/v1/reviews/"
	PathUpload        = "/api/v1/upload/"
)

// Per-product paths.
func PathProduct(id string) string       { return PathProducts + id + "/" }
func PathProductUpdate(id string) string { return PathProducts + id + "/update/" }
func PathProductDelete(id string) string { return PathProducts + id + "/delete/" }
func PathProductSold(id string) string   { return PathProducts + id + "/sold/" }
