package entities

// Session результат успешного входа или активации аккаунта.
type Session struct {
	Token  string
	User   User
	ShopID int64
}
