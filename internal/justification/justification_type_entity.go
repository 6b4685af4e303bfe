package justification

import (
	"time"

	"github.com/google/uuid"
)

type JustificationType struct {
	ID    uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Code  string    `gorm:"column:code;type:varchar(40);not null;uniqueIndex:uq_justification_type_code"`
	Label string    `gorm:"column:label;type:varchar(100);not null"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (JustificationType) TableName() string {
	return "justification_types"
}

// DefaultTypes is the catalogue seeded at startup. Existing codes are left
// untouched.
var DefaultTypes = []JustificationType{
	{Code: "ferie", Label: "Ferie"},
	{Code: "malattia", Label: "Malattia"},
	{Code: "permesso", Label: "Permesso"},
	{Code: "festivita", Label: "Festività"},
	{Code: "infortunio", Label: "Infortunio"},
	{Code: "altro", Label: "Altro"},
}
