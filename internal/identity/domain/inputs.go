package domain

// RegisterIdentityInput carries the raw, unsanitized fields of a new identity.
type RegisterIdentityInput struct {
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyPasswordInput carries a plaintext candidate and a stored encoded form.
type VerifyPasswordInput struct {
	Plain   string `json:"plain"`
	Encoded string `json:"encoded"`
}

// CheckResult describes the outcome of running one raw value through a value
// object pipeline without keeping the instance.
type CheckResult struct {
	Kind FieldKind `json:"kind"`
	// Sanitized is the candidate produced by the sanitizer. Empty for passwords.
	Sanitized string `json:"sanitized,omitempty"`
	// Masked is the display form: punctuated CPF, sanitized email or username,
	// or one asterisk per password character.
	Masked  string `json:"masked"`
	Valid   bool   `json:"valid"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
