package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "product:create"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// Company registry
	{Code: "company:view", Name: "View Company"},
	{Code: "company:register", Name: "Register Company"},
	{Code: "company:deactivate", Name: "Deactivate Company"},
	// Product catalog
	{Code: "product:view", Name: "View Product"},
	{Code: "product:create", Name: "Create Product"},
	// Client registry
	{Code: "client:view", Name: "View Client"},
	{Code: "client:register", Name: "Register Client"},
	// Purchases and invoices
	{Code: "purchase:execute", Name: "Execute Purchase"},
	{Code: "invoice:view", Name: "View Invoice"},
	// Token ledger
	{Code: "token:view", Name: "View Token Balance"},
	{Code: "token:transfer", Name: "Transfer Tokens"},
	{Code: "token:approve", Name: "Approve Token Allowance"},
	// Aggregated statistics
	{Code: "stats:view", Name: "View Statistics"},
	// User administration
	{Code: "user:create", Name: "Create User"},
}
