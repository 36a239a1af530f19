package dto

// AdminRegisterDTO is the request body for registering an administrator.
type AdminRegisterDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AdminLoginDTO is the request body for administrator login.
type AdminLoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// StudentLoginDTO is the request body for student login.
type StudentLoginDTO struct {
	RegistrationNo string `json:"registration_no" binding:"required"`
	Password       string `json:"password" binding:"required"`
}

type AdminLoginResponseDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type StudentLoginResponseDTO struct {
	Student StudentResponseDTO `json:"student"`
	Token   string             `json:"token"`
}
