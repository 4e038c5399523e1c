package models

// Principal là danh tính đã xác thực của request, do middleware JWT
// giải ra từ bearer token và truyền tường minh vào mọi service —
// không có session toàn cục nào trong core.
type Principal struct {
	ID      string
	Name    string
	IsAdmin bool
}
