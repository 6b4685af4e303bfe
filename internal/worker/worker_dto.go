package worker

type CreateWorkerRequest struct {
	FirstName        string  `json:"first_name" binding:"required,min=2"`
	LastName         string  `json:"last_name" binding:"required,min=2"`
	TaxCode          string  `json:"tax_code" binding:"required,codicefiscale"`
	BirthDate        string  `json:"birth_date" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            string  `json:"phone" binding:"required,min=6"`
	IdentityDocument string  `json:"identity_document" binding:"required,min=3"`
	IBAN             *string `json:"iban"`
}

type UpdateWorkerRequest struct {
	FirstName        string  `json:"first_name" binding:"required,min=2"`
	LastName         string  `json:"last_name" binding:"required,min=2"`
	TaxCode          string  `json:"tax_code" binding:"required,codicefiscale"`
	BirthDate        string  `json:"birth_date" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            string  `json:"phone" binding:"required,min=6"`
	IdentityDocument string  `json:"identity_document" binding:"required,min=3"`
	IBAN             *string `json:"iban"`
}

type WorkerResponse struct {
	ID               string  `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	TaxCode          string  `json:"tax_code"`
	BirthDate        string  `json:"birth_date"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	IdentityDocument string  `json:"identity_document"`
	IBAN             *string `json:"iban,omitempty"`
}
