package domain

// DisableRequest describes one account disable attempt.
type DisableRequest struct {
	// AccountID is the IdentityNow account identifier. Required.
	AccountID string

	// ExternalVerificationID is passed through to the API when non-empty.
	ExternalVerificationID string

	// ForceProvisioning is passed through to the API whenever it is set,
	// including an explicit false.
	ForceProvisioning OptionalBool
}

// Validate checks that the request can be sent.
func (r DisableRequest) Validate() error {
	if r.AccountID == "" {
		return ErrMissingAccountID
	}
	return nil
}

// Body returns the JSON request body. Optional fields that were not provided
// are omitted rather than sent as null.
func (r DisableRequest) Body() map[string]any {
	body := make(map[string]any, 2)
	if r.ExternalVerificationID != "" {
		body["externalVerificationId"] = r.ExternalVerificationID
	}
	if r.ForceProvisioning.IsSet() {
		body["forceProvisioning"] = r.ForceProvisioning.Value()
	}
	return body
}
