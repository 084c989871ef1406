package dto

type SignupInput struct {
	UserID   string `json:"userId" form:"userId" binding:"required"`
	Username string `json:"username" form:"username" binding:"required,max=100"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginInput struct {
	UserID   string `json:"userId" form:"userId" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
