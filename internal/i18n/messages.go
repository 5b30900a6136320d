package i18n

// messages 各语言文案表，key 统一使用 error./email./order_status. 前缀
var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":            "Invalid request",
		"error.validation_failed":      "Validation failed",
		"error.unauthorized":           "Unauthorized",
		"error.forbidden":              "Forbidden",
		"error.not_found":              "Not found",
		"error.internal":               "Internal server error",
		"error.auth_header_missing":    "Authorization header is missing",
		"error.auth_header_invalid":    "Authorization header is invalid",
		"error.token_invalid":          "Token is invalid or expired",
		"error.token_revoked":          "Token has been revoked",
		"error.jwt_secret_missing":     "JWT secret is not configured",
		"error.user_disabled":          "Account is disabled",
		"error.invalid_credentials":    "Invalid email or password",
		"error.email_taken":            "Email is already registered",
		"error.invalid_email":          "Invalid email address",
		"error.profile_empty":          "Nothing to update",
		"error.password_weak":          "Password does not meet the policy",
		"error.password_min_length":    "Password must be at least %d characters",
		"error.password_require_upper": "Password must contain an uppercase letter",
		"error.password_require_lower": "Password must contain a lowercase letter",
		"error.password_require_number": "Password must contain a number",
		"error.password_require_special": "Password must contain a special character",
		"error.captcha_required":       "Captcha is required",
		"error.captcha_invalid":        "Captcha verification failed",
		"error.captcha_unavailable":    "Captcha service is unavailable",
		"error.rate_limit_unavailable": "Rate limiter is unavailable",
		"error.rate_limited_wait":      "Too many attempts, try again in %d seconds",
		"error.product_not_found":      "Product not found",
		"error.product_duplicate":      "Product already exists",
		"error.category_not_found":     "Category not found",
		"error.category_duplicate":     "Category already exists",
		"error.out_of_stock":           "Out of stock!",
		"error.cart_item_not_found":    "Cart item not found",
		"error.cart_empty":             "Cart is empty",
		"error.address_required":       "Delivery address is required",
		"error.order_not_found":        "Order not found",
		"error.order_status_unknown":   "Unknown order status",
		"error.order_status_terminal":  "Order status can no longer change",
		"error.user_not_found":         "User not found",
		"error.admin_not_found":        "Admin not found",
		"error.admin_username_taken":   "Username is already taken",
		"error.admin_username_invalid": "Invalid username",
		"error.admin_create_failed":    "Failed to create admin",
		"error.admin_update_failed":    "Failed to update admin",
		"error.admin_delete_failed":    "Failed to delete admin",
		"error.admin_delete_self_forbidden": "Cannot delete the current admin",
		"error.admin_delete_protected": "This admin cannot be deleted",
		"error.admin_delete_last_forbidden": "At least one admin must remain",
		"error.authz_fetch_failed":     "Failed to load permissions",
		"error.old_password_wrong":     "Old password is incorrect",
		"error.role_unknown":           "Unknown role",
		"error.user_id_invalid":        "Invalid user identity",
		"error.user_id_type_invalid":   "Unexpected user identity type",
		"error.admin_id_invalid":       "Invalid admin identity",
		"error.admin_id_type_invalid":  "Unexpected admin identity type",
		"error.product_fetch_failed":   "Failed to load products",
		"error.product_save_failed":    "Failed to save product",
		"error.category_fetch_failed":  "Failed to load categories",
		"error.category_save_failed":   "Failed to save category",
		"error.category_in_use":        "Category still has products",
		"error.cart_fetch_failed":      "Failed to load cart",
		"error.cart_update_failed":     "Failed to update cart",
		"error.order_fetch_failed":     "Failed to load orders",
		"error.order_create_failed":    "Failed to create order",
		"error.order_update_failed":    "Failed to update order",
		"error.user_fetch_failed":      "Failed to load user",
		"error.user_update_failed":     "Failed to update user",
		"error.register_failed":        "Registration failed",
		"error.login_failed":           "Login failed",
		"error.captcha_generate_failed": "Failed to generate captcha",
		"error.save_failed":            "Failed to save",

		"order_status.pending":   "Pending",
		"order_status.paid":      "Paid",
		"order_status.shipped":   "Shipped",
		"order_status.delivered": "Delivered",
		"order_status.canceled":  "Canceled",

		"email.order_status.subject": "Your order is now %s",
		"email.order_status.body":    "Order %s is now %s. Total: %s. Delivery address: %s.",
		"email.order_status.tip":     "This is an automated message, please do not reply.",
	},
	LocaleZH: {
		"error.bad_request":            "请求参数无效",
		"error.validation_failed":      "参数校验失败",
		"error.unauthorized":           "未登录或登录已过期",
		"error.forbidden":              "没有权限执行该操作",
		"error.not_found":              "资源不存在",
		"error.internal":               "服务器内部错误",
		"error.auth_header_missing":    "缺少认证头",
		"error.auth_header_invalid":    "认证头格式无效",
		"error.token_invalid":          "令牌无效或已过期",
		"error.token_revoked":          "令牌已失效",
		"error.jwt_secret_missing":     "JWT 密钥未配置",
		"error.user_disabled":          "账号已被禁用",
		"error.invalid_credentials":    "邮箱或密码错误",
		"error.email_taken":            "邮箱已被注册",
		"error.invalid_email":          "邮箱格式无效",
		"error.profile_empty":          "没有可更新的内容",
		"error.password_weak":          "密码不符合安全策略",
		"error.password_min_length":    "密码长度至少 %d 位",
		"error.password_require_upper": "密码需包含大写字母",
		"error.password_require_lower": "密码需包含小写字母",
		"error.password_require_number": "密码需包含数字",
		"error.password_require_special": "密码需包含特殊字符",
		"error.captcha_required":       "需要验证码",
		"error.captcha_invalid":        "验证码校验失败",
		"error.captcha_unavailable":    "验证码服务不可用",
		"error.rate_limit_unavailable": "限流服务不可用",
		"error.rate_limited_wait":      "尝试次数过多，请 %d 秒后再试",
		"error.product_not_found":      "商品不存在",
		"error.product_duplicate":      "商品已存在",
		"error.category_not_found":     "分类不存在",
		"error.category_duplicate":     "分类已存在",
		"error.out_of_stock":           "商品缺货！",
		"error.cart_item_not_found":    "购物车条目不存在",
		"error.cart_empty":             "购物车为空",
		"error.address_required":       "请填写收货地址",
		"error.order_not_found":        "订单不存在",
		"error.order_status_unknown":   "未知的订单状态",
		"error.order_status_terminal":  "订单状态已终结，无法变更",
		"error.user_not_found":         "用户不存在",
		"error.admin_not_found":        "管理员不存在",
		"error.admin_username_taken":   "用户名已被占用",
		"error.admin_username_invalid": "用户名不合法",
		"error.admin_create_failed":    "管理员创建失败",
		"error.admin_update_failed":    "管理员更新失败",
		"error.admin_delete_failed":    "管理员删除失败",
		"error.admin_delete_self_forbidden": "不能删除当前登录的管理员",
		"error.admin_delete_protected": "该管理员受保护，不能删除",
		"error.admin_delete_last_forbidden": "至少需要保留一名管理员",
		"error.authz_fetch_failed":     "权限信息加载失败",
		"error.old_password_wrong":     "旧密码不正确",
		"error.role_unknown":           "未知角色",
		"error.user_id_invalid":        "用户身份无效",
		"error.user_id_type_invalid":   "用户身份类型异常",
		"error.admin_id_invalid":       "管理员身份无效",
		"error.admin_id_type_invalid":  "管理员身份类型异常",
		"error.product_fetch_failed":   "商品加载失败",
		"error.product_save_failed":    "商品保存失败",
		"error.category_fetch_failed":  "分类加载失败",
		"error.category_save_failed":   "分类保存失败",
		"error.category_in_use":        "分类下仍有商品",
		"error.cart_fetch_failed":      "购物车加载失败",
		"error.cart_update_failed":     "购物车更新失败",
		"error.order_fetch_failed":     "订单加载失败",
		"error.order_create_failed":    "订单创建失败",
		"error.order_update_failed":    "订单更新失败",
		"error.user_fetch_failed":      "用户加载失败",
		"error.user_update_failed":     "用户更新失败",
		"error.register_failed":        "注册失败",
		"error.login_failed":           "登录失败",
		"error.captcha_generate_failed": "验证码生成失败",
		"error.save_failed":            "保存失败",

		"order_status.pending":   "待处理",
		"order_status.paid":      "已支付",
		"order_status.shipped":   "已发货",
		"order_status.delivered": "已送达",
		"order_status.canceled":  "已取消",

		"email.order_status.subject": "您的订单状态已更新为%s",
		"email.order_status.body":    "订单 %s 当前状态：%s。金额：%s。收货地址：%s。",
		"email.order_status.tip":     "本邮件为系统自动发送，请勿回复。",
	},
}
