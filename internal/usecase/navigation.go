package usecase

// クライアントが遷移する画面名
const (
	NavigateHome   = "Home"
	NavigateSignIn = "SignIn"
	NavigateCart   = "Cart"
)
