package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":              "Invalid request parameters",
		"error.unauthorized":             "Please sign in first",
		"error.token_invalid":            "Session is invalid or expired",
		"error.user_disabled":            "Account is disabled",
		"error.user_not_found":           "User not found",
		"error.user_id_invalid":          "Invalid user id",
		"error.user_id_type_invalid":     "Invalid user id type",
		"error.too_many_requests":        "Too many attempts, please try again later",
		"error.internal":                 "Internal server error",
		"error.not_found":                "Resource not found",
		"error.auth_header_missing":      "Missing Authorization header",
		"error.auth_header_invalid":      "Authorization header must be a Bearer token",
		"error.token_revoked":            "Session has been revoked, please sign in again",
		"error.jwt_secret_missing":       "Token secret is not configured",
		"error.rate_limited":             "Too many attempts, please retry in %d seconds",
		"error.rate_limit_unavailable":   "Rate limiter is unavailable",
		"error.email_invalid":            "Invalid email address",
		"error.email_exists":             "Email is already registered",
		"error.password_mismatch":        "Passwords do not match",
		"error.password_weak":            "Password is too weak",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a number",
		"error.password_require_special": "Password must contain a special character",
		"error.login_invalid":            "Invalid email or password",
		"error.login_failed":             "Sign in failed",
		"error.register_failed":          "Sign up failed",
		"error.category_fetch_failed":    "Failed to load categories",
		"error.product_fetch_failed":     "Failed to load products",
		"error.product_not_found":        "Product not found",
		"error.catalog_filter_invalid":   "Invalid filter",
		"error.cart_item_not_found":      "Cart item not found",
		"error.cart_quantity_invalid":    "Quantity must be at least 1",
		"error.cart_fetch_failed":        "Failed to load cart",
		"error.cart_add_failed":          "Failed to add to cart",
		"error.cart_update_failed":       "Failed to update cart",
		"error.cart_remove_failed":       "Failed to remove item",
	},
	LocaleZH: {
		"error.bad_request":              "请求参数错误",
		"error.unauthorized":             "请先登录",
		"error.token_invalid":            "登录状态无效或已过期",
		"error.user_disabled":            "账号已被禁用",
		"error.user_not_found":           "用户不存在",
		"error.user_id_invalid":          "用户ID无效",
		"error.user_id_type_invalid":     "用户ID类型无效",
		"error.too_many_requests":        "尝试次数过多，请稍后再试",
		"error.internal":                 "服务器内部错误",
		"error.not_found":                "资源不存在",
		"error.auth_header_missing":      "缺少 Authorization 请求头",
		"error.auth_header_invalid":      "Authorization 请求头格式错误",
		"error.token_revoked":            "登录状态已失效，请重新登录",
		"error.jwt_secret_missing":       "未配置令牌密钥",
		"error.rate_limited":             "操作过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":   "限流服务不可用",
		"error.email_invalid":            "邮箱格式不正确",
		"error.email_exists":             "邮箱已注册",
		"error.password_mismatch":        "两次输入的密码不一致",
		"error.password_weak":            "密码强度不足",
		"error.password_min_length":      "密码长度至少 %d 位",
		"error.password_require_upper":   "密码需包含大写字母",
		"error.password_require_lower":   "密码需包含小写字母",
		"error.password_require_number":  "密码需包含数字",
		"error.password_require_special": "密码需包含特殊字符",
		"error.login_invalid":            "邮箱或密码错误",
		"error.login_failed":             "登录失败",
		"error.register_failed":          "注册失败",
		"error.category_fetch_failed":    "获取分类失败",
		"error.product_fetch_failed":     "获取商品失败",
		"error.product_not_found":        "商品不存在",
		"error.catalog_filter_invalid":   "过滤条件无效",
		"error.cart_item_not_found":      "购物车项不存在",
		"error.cart_quantity_invalid":    "数量至少为 1",
		"error.cart_fetch_failed":        "获取购物车失败",
		"error.cart_add_failed":          "加入购物车失败",
		"error.cart_update_failed":       "更新购物车失败",
		"error.cart_remove_failed":       "移除商品失败",
	},
}
