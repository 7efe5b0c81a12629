package domain

// User holds the credentials of a local account. The account's public identity is the Actor with id ActorID.
type User struct {
	ActorID       int64
	Email         string
	PasswordHash  string
	PrivateKeyPem string
}
