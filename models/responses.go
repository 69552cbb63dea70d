package models

// TokenResponse is the body returned by a successful authentication call.
type TokenResponse struct {
	// AccessToken is the compact JWS string the client must present on
	// protected routes via the "Authorization: Bearer" header.
	AccessToken string `json:"access_token"`
}

// ItemsResponse is the envelope returned by the item listing endpoint.
type ItemsResponse struct {
	// Items holds every catalog entry currently stored.
	Items []Item `json:"items"`
}

// MessageResponse is a generic human-readable status body used by endpoints
// that have no entity to return (registration, deletion).
type MessageResponse struct {
	Message string `json:"message"`
}
