package model

// AccessToken is the object embedded in JWT claims.
type AccessToken struct {
	ID   string `mapstructure:"id" json:"id"`
	Name string `mapstructure:"name" json:"name"`
	Role string `mapstructure:"role" json:"role"`
}
