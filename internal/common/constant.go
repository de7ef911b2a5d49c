package common

// AuthorizationHeaderName is the HTTP header that carries the bearer
// credential on inbound requests.
const AuthorizationHeaderName = "Authorization"
