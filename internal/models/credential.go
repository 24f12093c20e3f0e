package models

// CredentialRecord is the persisted credential entry for one username.
// Both fields are hex-encoded.
type CredentialRecord struct {
	PasswordHash string `json:"password_hash"`
	Salt         string `json:"salt"`
}
