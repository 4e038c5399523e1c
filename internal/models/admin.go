package models

// Admin là tài khoản quản trị, đăng nhập bằng username
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (a Admin) RecordID() string { return a.ID }

// PublicAdmin là Admin đã bỏ password
type PublicAdmin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (a Admin) Sanitized() PublicAdmin {
	return PublicAdmin{ID: a.ID, Username: a.Username, Name: a.Name}
}
