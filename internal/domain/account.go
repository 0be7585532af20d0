package domain

// Account is the local record of a device registration: the identifiers and
// tunnel parameters the service handed back, plus the private key they were
// bound to. It is what the store encrypts at rest and what config rendering
// reads.
type Account struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	License  string `json:"license,omitempty"`
	ClientID string `json:"client_id,omitempty"`

	PrivateKey    string `json:"private_key"`
	PeerPublicKey string `json:"peer_public_key"`
	PeerEndpoint  string `json:"peer_endpoint"`

	AddressV4 string `json:"address_v4,omitempty"`
	AddressV6 string `json:"address_v6,omitempty"`

	CreatedUTC int64 `json:"created_utc"`
}
