package common

// AuthorizationHeaderName is the HTTP header carrying the identity token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the authorization scheme prefix in front of the token.
const BearerPrefix = "Bearer "
