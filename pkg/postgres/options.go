package postgres

// Option configures Postgres construction.
type Option func(*Postgres)

// MaxPoolSize caps the number of pool connections.
func MaxPoolSize(size int) Option {
	return func(p *Postgres) {
		p.maxPoolSize = size
	}
}
