package models

import (
	"time"
)

// StoreSettings is the single settings document of a tenant database
type StoreSettings struct {
	ID        string    `json:"-" bson:"_id"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	StoreName     string  `json:"storeName" bson:"storeName"`
	Currency      string  `json:"currency" bson:"currency"`
	TaxPercent    float64 `json:"taxPercent" bson:"taxPercent"`
	Address       string  `json:"address,omitempty" bson:"address,omitempty"`
	Phone         string  `json:"phone,omitempty" bson:"phone,omitempty"`
	ReceiptFooter string  `json:"receiptFooter,omitempty" bson:"receiptFooter,omitempty"`

	// Encrypted integration credentials, managed through pkg/crypto.
	Secrets Variables `json:"-" bson:"secrets,omitempty"`
}

// Dropdown is a named option list used by the UI for select inputs
type Dropdown struct {
	Name    string   `json:"name" bson:"_id"`
	Options []string `json:"options" bson:"options"`
}
