package warp

// Wire schema shared by the client and the development stub server.

// RegisterRequest is the enrollment payload. Only the public key leaves the
// machine; install_id and fcm_token are accepted empty by the API.
type RegisterRequest struct {
	Key       string `json:"key"`
	InstallID string `json:"install_id"`
	FCMToken  string `json:"fcm_token"`
	TOS       string `json:"tos"`
	Model     string `json:"model"`
	Type      string `json:"type"`
	Locale    string `json:"locale"`
}

// RegisterResponse mirrors the slice of the API answer we keep.
type RegisterResponse struct {
	ID      string         `json:"id"`
	Token   string         `json:"token"`
	Account AccountSection `json:"account"`
	Config  ConfigSection  `json:"config"`
}

type AccountSection struct {
	License string `json:"license"`
}

type ConfigSection struct {
	ClientID  string           `json:"client_id"`
	Peers     []Peer           `json:"peers"`
	Interface InterfaceSection `json:"interface"`
}

type Peer struct {
	PublicKey string   `json:"public_key"`
	Endpoint  Endpoint `json:"endpoint"`
}

type Endpoint struct {
	Host string `json:"host"`
}

type InterfaceSection struct {
	Addresses Addresses `json:"addresses"`
}

type Addresses struct {
	V4 string `json:"v4"`
	V6 string `json:"v6"`
}
