package model

type UserName struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type UserAddress struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Number  int64  `json:"number"`
	Zipcode string `json:"zipcode"`
}

// GET /users/{id} の結果
type User struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Phone    string      `json:"phone"`
	Name     UserName    `json:"name"`
	Address  UserAddress `json:"address"`
}

// 会員登録（POST /users）で送る内容
type NewUser struct {
	Email    string
	Username string
	Password string
	Phone    string
	Name     UserName
	Address  UserAddress
}
