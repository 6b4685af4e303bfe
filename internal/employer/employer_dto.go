package employer

type CreateEmployerRequest struct {
	SubjectType      string `json:"subject_type" binding:"required,min=2"`
	FirstName        string `json:"first_name" binding:"required,min=2"`
	LastName         string `json:"last_name" binding:"required,min=2"`
	TaxCode          string `json:"tax_code" binding:"required,codicefiscale"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required,min=6"`
	WorkAddress      string `json:"work_address" binding:"required,min=5"`
	NotifyPreference string `json:"notify_preference" binding:"required,min=2"`
}

type UpdateEmployerRequest struct {
	SubjectType      string `json:"subject_type" binding:"required,min=2"`
	FirstName        string `json:"first_name" binding:"required,min=2"`
	LastName         string `json:"last_name" binding:"required,min=2"`
	TaxCode          string `json:"tax_code" binding:"required,codicefiscale"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required,min=6"`
	WorkAddress      string `json:"work_address" binding:"required,min=5"`
	NotifyPreference string `json:"notify_preference" binding:"required,min=2"`
}

type EmployerResponse struct {
	ID               string `json:"id"`
	SubjectType      string `json:"subject_type"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	TaxCode          string `json:"tax_code"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	WorkAddress      string `json:"work_address"`
	NotifyPreference string `json:"notify_preference"`
}
