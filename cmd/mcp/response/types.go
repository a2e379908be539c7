package response

// AzureSubscription represents a subscription visible to the credential
type AzureSubscription struct {
	SubscriptionID string `json:"subscription_id"`
	DisplayName    string `json:"display_name"`
	State          string `json:"state"`
}

// Reservation represents one classified reservation
type Reservation struct {
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	SKU               string `json:"sku"`
	Type              string `json:"type"`
	Quantity          int32  `json:"quantity"`
	Term              string `json:"term"`
	Status            string `json:"status"`
	Explanation       string `json:"explanation"`
	DaysUntilExpiry   *int   `json:"days_until_expiry,omitempty"`
	ExpiryDate        string `json:"expiry_date,omitempty"`
	ProvisioningState string `json:"provisioning_state"`
	Order             string `json:"order"`
}

// Report aggregates the reservation rows with their status counts
type Report struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	Reservations []Reservation  `json:"reservations"`
}

// Owner represents one Owner role assignment
type Owner struct {
	PrincipalName string `json:"principal_name,omitempty"`
	PrincipalType string `json:"principal_type"`
	PrincipalID   string `json:"principal_id"`
}

// ReservationOwners groups owners by reservation
type ReservationOwners struct {
	Reservation string  `json:"reservation"`
	Owners      []Owner `json:"owners"`
}
