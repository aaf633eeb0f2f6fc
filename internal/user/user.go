package user

// User is a registered customer. All fields are opaque display strings;
// nothing beyond presence is validated at registration. Users are
// immutable once registered and live for the whole run.
type User struct {
	FullName   string `validate:"required"`
	BirthDate  string `validate:"required"`
	NationalID string `validate:"required"`
	Address    string `validate:"required"`
}
