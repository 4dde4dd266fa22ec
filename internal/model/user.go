package model

import "golang.org/x/crypto/bcrypt"

// User represents an authenticated API caller. AccountID ties the user to
// its ledger identity: the owner id of a company for merchants, the client
// id for clients, the platform account for administrators.
type User struct {
	BaseModel
	Email      string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password   string      `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName   string      `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	AccountID  string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"account_id" validate:"required"`
	RoleID     *uint       `gorm:"index" json:"role_id"`
	Role       *Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	IsActive   bool        `gorm:"default:true" json:"is_active"`
	Privileges []Privilege `gorm:"many2many:user_privileges;" json:"privileges,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasPrivilege checks if the user has a specific privilege
func (u *User) HasPrivilege(code string) bool {
	for _, p := range u.Privileges {
		if p.Code == code {
			return true
		}
	}
	return false
}

// GetPrivilegeCodes returns a slice of all privilege codes for this user
func (u *User) GetPrivilegeCodes() []string {
	codes := make([]string, len(u.Privileges))
	for i, p := range u.Privileges {
		codes[i] = p.Code
	}
	return codes
}
