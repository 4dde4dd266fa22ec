package model

// Role represents caller roles on the platform
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // PLATFORM_ADMIN, MERCHANT, CLIENT
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
}

// Role codes as constants
const (
	RolePlatformAdmin = "PLATFORM_ADMIN"
	RoleMerchant      = "MERCHANT"
	RoleClient        = "CLIENT"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{
		Code:        RolePlatformAdmin,
		Name:        "Platform Administrator",
		Description: "Full platform access, may act for any company",
	},
	{
		Code:        RoleMerchant,
		Name:        "Merchant",
		Description: "Company owner; manages its own catalog, clients and sales",
	},
	{
		Code:        RoleClient,
		Name:        "Client",
		Description: "Buyer; holds token balance and grants purchase allowances",
	},
}
