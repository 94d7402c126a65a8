package ports

// TokenGenerator produces single-use confirmation tokens. Uniqueness is
// enforced by the repository's primary key, not by the generator.
type TokenGenerator interface {
	Generate() (string, error)
}
