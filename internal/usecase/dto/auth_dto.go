package dto

// LoginModeRegister - режим регистрации формы входа
const LoginModeRegister = "register"

// LoginForm - форма демо-входа и регистрации
type LoginForm struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password"`
	Mode            string `form:"mode"`
	Redirect        string `form:"redirect"`
	Venue           string `form:"venue"`
	Facility        string `form:"facility"`
}

// IsRegister reports whether the form was submitted in register mode
func (f LoginForm) IsRegister() bool {
	return f.Mode == LoginModeRegister
}
