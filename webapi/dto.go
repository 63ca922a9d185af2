package webapi

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=50"`
	Role      string `json:"role" validate:"required,oneof=Admin Customer"`
	SecretKey string `json:"secret_key,omitempty"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the payload for POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// DepositRequest is the payload for POST /account/:id/deposit.
type DepositRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description,omitempty" validate:"max=255"`
}

// WithdrawRequest is the payload for POST /account/:id/withdraw.
type WithdrawRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description,omitempty" validate:"max=255"`
}

// TransferRequest is the payload for POST /account/:id/transfer.
type TransferRequest struct {
	ToAccountNumber string  `json:"to_account_number" validate:"required,len=10,numeric"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Description     string  `json:"description,omitempty" validate:"max=255"`
}

// AddBeneficiaryRequest is the payload for POST /beneficiary.
type AddBeneficiaryRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	AccountNumber string `json:"account_number" validate:"required,len=10,numeric"`
}

// ContactRequest is the payload for POST /contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"max=30"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=4000"`
}
